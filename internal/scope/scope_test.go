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

package scope_test

import (
	"go/ast"
	"go/types"
	"testing"

	. "fillmore-labs.com/memodeps/internal/scope"
	"fillmore-labs.com/memodeps/internal/testsource"
)

func TestEnclosingFunc(t *testing.T) {
	t.Parallel()

	fset, f, fn, body := testsource.Parse(t, `x := 1; { _ = x }; g := func() { _ = x }; _ = g`)
	_, info := testsource.Check(t, fset, f)

	scopes := NewIndex(info)

	fnScope, ok := info.Scopes[fn.Type]
	if !ok {
		t.Fatal("No scope for wrapper function")
	}

	t.Run("function_scope", func(t *testing.T) {
		t.Parallel()

		if got := scopes.EnclosingFunc(fnScope); got != fnScope {
			t.Errorf("EnclosingFunc(fnScope) = %v, want the scope itself", got)
		}
	})

	t.Run("block_scope", func(t *testing.T) {
		t.Parallel()

		var bodyScope *types.Scope
		for c := range body.Preorder((*ast.BlockStmt)(nil)) {
			if sc, ok := info.Scopes[c.Node()]; ok {
				bodyScope = sc

				break
			}
		}

		if bodyScope == nil {
			t.Fatal("No scope for block inside function body")
		}

		if got := scopes.EnclosingFunc(bodyScope); got != fnScope {
			t.Errorf("EnclosingFunc(bodyScope) = %v, want the function scope", got)
		}
	})

	t.Run("closure_scope", func(t *testing.T) {
		t.Parallel()

		var lit *ast.FuncLit
		for c := range body.Preorder((*ast.FuncLit)(nil)) {
			lit = c.Node().(*ast.FuncLit)
		}

		if lit == nil {
			t.Fatal("No function literal found")
		}

		litScope, ok := info.Scopes[lit.Type]
		if !ok {
			t.Fatal("No scope for function literal")
		}

		if got := scopes.EnclosingFunc(litScope); got != litScope {
			t.Errorf("EnclosingFunc(litScope) = %v, want the literal's own scope", got)
		}

		if got := scopes.EnclosingFunc(litScope.Parent()); got != fnScope {
			t.Errorf("EnclosingFunc(litScope.Parent()) = %v, want the wrapper scope", got)
		}
	})

	t.Run("package_scope", func(t *testing.T) {
		t.Parallel()

		fileScope, ok := info.Scopes[f]
		if !ok {
			t.Fatal("No scope for file")
		}

		if got := scopes.EnclosingFunc(fileScope); got != nil {
			t.Errorf("EnclosingFunc(fileScope) = %v, want nil", got)
		}
	})
}
