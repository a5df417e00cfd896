// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package scope

import (
	"go/ast"
	"go/types"
)

// Index provides scope analysis for capture collection.
//
// It maps scopes back to their defining AST nodes, which makes it possible
// to walk a scope chain and recognize function boundaries.
type Index map[*types.Scope]ast.Node

// NewIndex creates a scope index from the type checker's scope map.
func NewIndex(info *types.Info) Index {
	s := make(Index, len(info.Scopes))
	for node, scope := range info.Scopes {
		s[scope] = node
	}

	return s
}

// EnclosingFunc returns the innermost function scope containing start,
// including start itself. It returns nil when start lies outside any
// function, i.e. in package or file scope.
//
// The type checker associates function scopes with *[ast.FuncType] nodes,
// for declarations and literals alike.
func (s Index) EnclosingFunc(start *types.Scope) *types.Scope {
	for scope := start; scope != nil && scope != types.Universe; scope = scope.Parent() {
		if _, ok := s[scope].(*ast.FuncType); ok {
			return scope
		}
	}

	return nil
}
