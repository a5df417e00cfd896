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

package capture

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/memodeps/internal/scope"
)

// Collect walks a closure body and returns one [Info] per distinct access
// path rooted in a binding of the enclosing function scope.
//
// Only bindings declared directly within enclosing count: its parameters
// and everything defined in its body. Package-level bindings and bindings
// of grandparent functions cannot change between invocations of the
// enclosing scope and are excluded. Bindings defined inside the closure
// itself are locals, not captures.
func Collect(info *types.Info, scopes scope.Index, body inspector.Cursor, enclosing *types.Scope) []Info {
	c := collector{
		info:      info,
		scopes:    scopes,
		enclosing: enclosing,
		seen:      make(map[string]struct{}),
	}

	for cur := range body.Preorder((*ast.Ident)(nil)) {
		c.handleIdent(cur)
	}

	return c.captures
}

type collector struct {
	info      *types.Info
	scopes    scope.Index
	enclosing *types.Scope
	seen      map[string]struct{}
	captures  []Info
}

func (c *collector) handleIdent(cur inspector.Cursor) {
	id := cur.Node().(*ast.Ident)

	if kind, _ := cur.ParentEdge(); kind == edge.SelectorExpr_Sel {
		return // property names are hops, not roots
	}

	obj := c.info.Uses[id]
	if obj == nil || obj.Parent() == types.Universe {
		return
	}

	switch o := obj.(type) {
	case *types.Var:
		if o.IsField() {
			return // struct literal keys and promoted field selectors
		}

	case *types.Func, *types.Const:
		// Function values and constants are bindings like any other; the
		// classifier marks them Stable.

	default:
		return // package names, type names, builtins, labels
	}

	declScope := obj.Parent()
	if declScope == nil {
		return
	}

	if c.scopes.EnclosingFunc(declScope) != c.enclosing {
		return
	}

	c.add(c.ascend(cur, id, obj))
}

// ascend walks from the root identifier up through its access chain,
// recording property hops. It stops without a hop when the chain is the
// callee of a call (report the object, not the method), and stops with a
// forced dependency at a computed key.
func (c *collector) ascend(cur inspector.Cursor, id *ast.Ident, obj types.Object) Info {
	capt := Info{Root: obj, Text: id.Name, Id: id}

ascent:
	for {
		kind, _ := cur.ParentEdge()
		switch kind {
		case edge.ParenExpr_X, edge.TypeAssertExpr_X, edge.IndexListExpr_X:
			// Transparent wrappers affect neither identity nor depth.
			cur = cur.Parent()

		case edge.SelectorExpr_X:
			parent := cur.Parent()
			if kind, _ := parent.ParentEdge(); kind == edge.CallExpr_Fun {
				break ascent
			}

			hop := "." + parent.Node().(*ast.SelectorExpr).Sel.Name
			capt.Path = append(capt.Path, hop)
			capt.Text += hop
			cur = parent

		case edge.IndexExpr_X:
			parent := cur.Parent()
			index := parent.Node().(*ast.IndexExpr).Index

			tv := c.info.Types[index]
			switch {
			case tv.IsType():
				// Generic instantiation, transparent.
				cur = parent

			case tv.Value != nil:
				hop := "[" + types.ExprString(index) + "]"
				capt.Path = append(capt.Path, hop)
				capt.Text += hop
				cur = parent

			default:
				// Computed key: the base path must be declared as-is.
				capt.Forced = true

				break ascent
			}

		default:
			break ascent
		}
	}

	return capt
}

func (c *collector) add(capt Info) {
	if _, ok := c.seen[capt.Text]; ok {
		return
	}

	c.seen[capt.Text] = struct{}{}
	c.captures = append(c.captures, capt)
}
