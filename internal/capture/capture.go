// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package capture collects the outer-scope access paths a closure reads.
package capture

import (
	"go/ast"
	"go/types"
	"strings"
)

// Info describes one distinct access path read inside the closure.
type Info struct {
	// Root is the resolved object of the path's leftmost identifier.
	Root types.Object

	// Path holds the rendered property hops, ".Field" or "[key]".
	Path []string

	// Text is the display form of the whole path, e.g. `obj.nested` or
	// `m["k"]`. Captures are deduplicated by it.
	Text string

	// Forced marks paths whose terminal step used a computed key. Such
	// captures must be declared regardless of stability, since no narrower
	// substitute is legal.
	Forced bool

	// Id is the root identifier node, used as the diagnostic anchor.
	Id *ast.Ident
}

// Depth is the number of property hops from the root identifier.
func (i Info) Depth() int {
	return len(i.Path)
}

// FirstHop returns the first selector hop of the path, or "" when the path
// is empty or starts with an index hop. It correlates field access with
// stable-result field tables.
func (i Info) FirstHop() string {
	if len(i.Path) == 0 || !strings.HasPrefix(i.Path[0], ".") {
		return ""
	}

	return i.Path[0][1:]
}
