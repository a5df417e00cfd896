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

package binding

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"
)

// Index maps objects to their definitions for one analysis pass.
// Object identity is only meaningful within a single pass, so the index
// must be discarded with it.
type Index struct {
	info       *types.Info
	defs       map[types.Object]Definition
	reassigned map[types.Object]struct{}
}

// NewIndex builds the definition index with a single traversal over all
// files of the pass.
func NewIndex(info *types.Info, in *inspector.Inspector) *Index {
	ix := &Index{
		info:       info,
		defs:       make(map[types.Object]Definition),
		reassigned: make(map[types.Object]struct{}),
	}

	nodes := []ast.Node{
		// keep-sorted start
		(*ast.AssignStmt)(nil),
		(*ast.FuncDecl)(nil),
		(*ast.FuncType)(nil),
		(*ast.IncDecStmt)(nil),
		(*ast.RangeStmt)(nil),
		(*ast.ValueSpec)(nil),
		// keep-sorted end
	}

	for c := range in.Root().Preorder(nodes...) {
		switch n := c.Node().(type) {
		// keep-sorted start newline_separated=yes
		case *ast.AssignStmt:
			ix.handleAssign(n)

		case *ast.FuncDecl:
			ix.handleFuncDecl(n)

		case *ast.FuncType:
			ix.handleParams(n.Params)
			ix.handleParams(n.Results)

		case *ast.IncDecStmt:
			ix.markReassigned(n.X)

		case *ast.RangeStmt:
			ix.handleRange(n)

		case *ast.ValueSpec:
			ix.handleValueSpec(n)
			// keep-sorted end
		}
	}

	return ix
}

// Lookup returns the recorded definition for an object.
func (ix *Index) Lookup(obj types.Object) (Definition, bool) {
	d, ok := ix.defs[obj]
	if !ok {
		return Definition{}, false
	}

	if _, re := ix.reassigned[obj]; re {
		d.Reassigned = true
	}

	return d, true
}

func (ix *Index) handleFuncDecl(n *ast.FuncDecl) {
	if obj := ix.info.Defs[n.Name]; obj != nil {
		ix.defs[obj] = Definition{Kind: Func, Decl: n}
	}

	if n.Recv != nil {
		ix.handleParams(n.Recv)
	}
}

func (ix *Index) handleParams(fields *ast.FieldList) {
	if fields == nil {
		return
	}

	for _, field := range fields.List {
		for _, id := range field.Names {
			if obj := ix.info.Defs[id]; obj != nil {
				ix.defs[obj] = Definition{Kind: Param, Decl: field}
			}
		}
	}
}

func (ix *Index) handleValueSpec(n *ast.ValueSpec) {
	for i, id := range n.Names {
		obj := ix.info.Defs[id]
		if obj == nil || id.Name == "_" {
			continue
		}

		d := Definition{Kind: Var, Decl: n}

		switch {
		case len(n.Values) == len(n.Names):
			d.Init = n.Values[i]

		case len(n.Values) == 1:
			// Multi-value initializer, e.g. var a, b = f()
			d.Init, d.TuplePos = n.Values[0], i
		}

		ix.defs[obj] = d
	}
}

func (ix *Index) handleAssign(n *ast.AssignStmt) {
	if n.Tok != token.DEFINE {
		for _, expr := range n.Lhs {
			ix.markReassigned(expr)
		}

		return
	}

	for i, expr := range n.Lhs {
		id, ok := ast.Unparen(expr).(*ast.Ident)
		if !ok || id.Name == "_" {
			continue
		}

		obj := ix.info.Defs[id]
		if obj == nil {
			// Redeclaration in a := with at least one new variable.
			ix.markReassigned(id)

			continue
		}

		d := Definition{Kind: Var, Decl: n}

		if len(n.Rhs) == len(n.Lhs) {
			d.Init = n.Rhs[i]
		} else if len(n.Rhs) == 1 {
			d.Init, d.TuplePos = n.Rhs[0], i
		}

		ix.defs[obj] = d
	}
}

// handleRange records range clause variables. They are rebound on every
// iteration, which makes them reassigned for stability purposes.
func (ix *Index) handleRange(n *ast.RangeStmt) {
	for _, expr := range []ast.Expr{n.Key, n.Value} {
		if expr == nil {
			continue
		}

		id, ok := ast.Unparen(expr).(*ast.Ident)
		if !ok || id.Name == "_" {
			continue
		}

		if n.Tok == token.DEFINE {
			if obj := ix.info.Defs[id]; obj != nil {
				ix.defs[obj] = Definition{Kind: Var, Decl: n, Reassigned: true}
			}

			continue
		}

		ix.markReassigned(id)
	}
}

func (ix *Index) markReassigned(expr ast.Expr) {
	id, ok := ast.Unparen(expr).(*ast.Ident)
	if !ok || id.Name == "_" {
		return
	}

	if v, ok := ix.info.Uses[id].(*types.Var); ok {
		ix.reassigned[v] = struct{}{}
	}
}
