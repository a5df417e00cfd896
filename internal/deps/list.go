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

// Package deps parses declared dependency lists and diffs them against the
// capture set.
package deps

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/memodeps/internal/astutil"
	"fillmore-labs.com/memodeps/internal/hooks"
)

// Entry is one declared dependency.
type Entry struct {
	// Root is the resolved object of the entry's leftmost identifier. A nil
	// Root marks an opaque entry: kept verbatim, never matched.
	Root types.Object

	// Depth is the number of property hops from the root.
	Depth int

	// Expr is the original entry expression, reprinted when building fixes.
	Expr ast.Expr
}

// List is the parsed dependency argument of one call site.
type List struct {
	// Absent is set when the call has no argument at the dependency position.
	Absent bool

	// Opaque is set when the list cannot be analyzed statically, e.g. a
	// `deps...` spread. Opaque lists are trusted and produce no diagnostics.
	Opaque bool

	// Lit is the composite literal holding the entries, nil for the
	// trailing-argument form.
	Lit *ast.CompositeLit

	// Entries are the declared dependencies in source order.
	Entries []Entry
}

// Parse recognizes the dependency-list shapes of a hook call:
// no argument at the dependency position, a `deps...` spread or a single
// non-literal slice value (opaque), a single slice literal whose elements
// are the entries, or each trailing argument as one entry.
func Parse(info *types.Info, call *ast.CallExpr, cfg hooks.Config) List {
	if len(call.Args) <= cfg.DepsArg {
		return List{Absent: true}
	}

	if call.Ellipsis.IsValid() {
		return List{Opaque: true}
	}

	args := call.Args[cfg.DepsArg:]

	if len(args) == 1 {
		arg := astutil.Unwrap(args[0])

		if lit, ok := arg.(*ast.CompositeLit); ok {
			l := List{Lit: lit}
			for _, elt := range lit.Elts {
				l.Entries = append(l.Entries, parseEntry(info, elt))
			}

			return l
		}

		if tv, ok := info.Types[arg]; ok && tv.Type != nil {
			if _, ok := tv.Type.Underlying().(*types.Slice); ok {
				// A value standing in for the whole list must be trusted.
				return List{Opaque: true}
			}
		}
	}

	var l List
	for _, arg := range args {
		l.Entries = append(l.Entries, parseEntry(info, arg))
	}

	return l
}

// parseEntry descends an entry's access chain to its root identifier.
// Entries with a computed key or a non-identifier base stay opaque.
func parseEntry(info *types.Info, expr ast.Expr) Entry {
	entry := Entry{Expr: expr}

	depth := 0
	x := astutil.Unwrap(expr)

	for {
		switch n := x.(type) {
		case *ast.SelectorExpr:
			depth++
			x = astutil.Unwrap(n.X)

		case *ast.IndexExpr:
			if info.Types[n.Index].Value == nil {
				return entry
			}

			depth++
			x = astutil.Unwrap(n.X)

		case *ast.Ident:
			entry.Root, entry.Depth = info.Uses[n], depth

			return entry

		default:
			return entry
		}
	}
}
