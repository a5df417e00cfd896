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

package closure_test

import (
	"go/ast"
	"testing"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/memodeps/internal/binding"
	. "fillmore-labs.com/memodeps/internal/closure"
	"fillmore-labs.com/memodeps/internal/testsource"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name   string
		src    string
		wantOK bool
	}{
		{
			name:   "literal",
			src:    `func run() int { return memoize(func() int { return 1 }) }`,
			wantOK: true,
		},
		{
			name: "parenthesized_literal",
			src:  `func run() int { return memoize((func() int { return 1 })) }`,

			wantOK: true,
		},
		{
			name: "named_function",
			src: `func compute() int { return 1 }

func run() int { return memoize(compute) }`,
			wantOK: true,
		},
		{
			name: "function_variable",
			src: `func run() int {
	f := func() int { return 2 }

	return memoize(f)
}`,
			wantOK: true,
		},
		{
			name:   "parameter",
			src:    `func run(f func() int) int { return memoize(f) }`,
			wantOK: false,
		},
		{
			name: "call_result",
			src: `func pick(f func() int) func() int { return f }

func run() int { return memoize(pick(func() int { return 3 })) }`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f, _, body := testsource.ParsePackage(t, tt.src)
			_, info := testsource.Check(t, fset, f)

			defs := binding.NewIndex(info, inspector.New([]*ast.File{f}))

			arg := closureArg(t, body)

			cl, ok := Resolve(info, defs, arg)
			if ok != tt.wantOK {
				t.Fatalf("Resolve ok = %v, want %v", ok, tt.wantOK)
			}

			if ok && (cl.Body == nil || cl.Scope == nil) {
				t.Error("Resolved closure is incomplete")
			}
		})
	}
}

// closureArg finds the first argument of the memoize call in the function body.
func closureArg(tb testing.TB, body inspector.Cursor) ast.Expr {
	tb.Helper()

	for c := range body.Preorder((*ast.CallExpr)(nil)) {
		call := c.Node().(*ast.CallExpr)

		if id, ok := call.Fun.(*ast.Ident); ok && id.Name == "memoize" && len(call.Args) > 0 {
			return call.Args[0]
		}
	}

	tb.Fatal("No memoize call found")

	return nil
}
