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

package binding_test

import (
	"go/ast"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"

	. "fillmore-labs.com/memodeps/internal/binding"
	"fillmore-labs.com/memodeps/internal/testsource"
)

const indexSrc = `
var answer = 42

var first, second = pair()

func pair() (int, string) { return 1, "x" }

func run(p int) {
	x := 1
	y := x
	y = 2

	var z []int
	for i := range 3 {
		z = append(z, i+p)
	}

	count := 0
	count++

	_, _, _, _ = x, y, z, count
}
`

func TestIndex(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name           string
		obj            string
		wantKind       Kind
		wantInit       bool
		wantTuplePos   int
		wantReassigned bool
	}{
		{name: "package_var", obj: "answer", wantKind: Var, wantInit: true},
		{name: "tuple_first", obj: "first", wantKind: Var, wantInit: true},
		{name: "tuple_second", obj: "second", wantKind: Var, wantInit: true, wantTuplePos: 1},
		{name: "func_decl", obj: "pair", wantKind: Func},
		{name: "param", obj: "p", wantKind: Param},
		{name: "local", obj: "x", wantKind: Var, wantInit: true},
		{name: "reassigned", obj: "y", wantKind: Var, wantInit: true, wantReassigned: true},
		{name: "assigned_in_loop", obj: "z", wantKind: Var, wantReassigned: true},
		{name: "range_var", obj: "i", wantKind: Var, wantReassigned: true},
		{name: "incremented", obj: "count", wantKind: Var, wantInit: true, wantReassigned: true},
	}

	fset, f, _, _ := testsource.ParsePackage(t, indexSrc)
	_, info := testsource.Check(t, fset, f)

	ix := NewIndex(info, inspector.New([]*ast.File{f}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, ok := ix.Lookup(definedObject(t, info, tt.obj))
			if !ok {
				t.Fatalf("No definition recorded for %q", tt.obj)
			}

			if d.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", d.Kind, tt.wantKind)
			}

			if got := d.Init != nil; got != tt.wantInit {
				t.Errorf("Init recorded = %v, want %v", got, tt.wantInit)
			}

			if d.TuplePos != tt.wantTuplePos {
				t.Errorf("TuplePos = %d, want %d", d.TuplePos, tt.wantTuplePos)
			}

			if d.Reassigned != tt.wantReassigned {
				t.Errorf("Reassigned = %v, want %v", d.Reassigned, tt.wantReassigned)
			}
		})
	}
}

// definedObject finds the object a top-level or local identifier defines.
func definedObject(tb testing.TB, info *types.Info, name string) types.Object {
	tb.Helper()

	for id, obj := range info.Defs {
		if obj != nil && id.Name == name {
			return obj
		}
	}

	tb.Fatalf("Object %q not found", name)

	return nil
}
