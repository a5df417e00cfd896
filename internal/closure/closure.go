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

// Package closure resolves the expression at a hook's closure argument to
// the function body that is actually analyzed.
package closure

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/memodeps/internal/astutil"
	"fillmore-labs.com/memodeps/internal/binding"
)

// Closure is a resolved closure argument.
type Closure struct {
	// Body is the function body to analyze.
	Body *ast.BlockStmt

	// Scope is the function scope of the resolved closure. Its parent chain
	// leads to the enclosing function whose bindings count as captures.
	Scope *types.Scope
}

// Resolve yields the function behind a closure argument.
//
// A function literal resolves directly. A plain identifier resolves through
// the definition index to a function declaration, or to a variable whose
// initializer is a function literal. Anything else is unresolved and the
// call site is skipped silently: resolution through arbitrary indirection
// would trade precision for recall.
func Resolve(info *types.Info, defs *binding.Index, arg ast.Expr) (Closure, bool) {
	switch e := astutil.Unwrap(arg).(type) {
	case *ast.FuncLit:
		return newClosure(info, e.Type, e.Body)

	case *ast.Ident:
		obj := info.Uses[e]
		if obj == nil {
			return Closure{}, false
		}

		d, ok := defs.Lookup(obj)
		if !ok {
			return Closure{}, false
		}

		switch d.Kind {
		case binding.Func:
			if decl, ok := d.Decl.(*ast.FuncDecl); ok && decl.Body != nil {
				return newClosure(info, decl.Type, decl.Body)
			}

		case binding.Var:
			if d.Init == nil {
				break
			}

			if lit, ok := astutil.Unwrap(d.Init).(*ast.FuncLit); ok {
				return newClosure(info, lit.Type, lit.Body)
			}
		}
	}

	return Closure{}, false
}

func newClosure(info *types.Info, typ *ast.FuncType, body *ast.BlockStmt) (Closure, bool) {
	scope, ok := info.Scopes[typ]
	if !ok || body == nil {
		return Closure{}, false
	}

	return Closure{Body: body, Scope: scope}, true
}
