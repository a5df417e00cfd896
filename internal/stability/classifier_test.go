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

package stability_test

import (
	"go/ast"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/memodeps/internal/binding"
	"fillmore-labs.com/memodeps/internal/config"
	"fillmore-labs.com/memodeps/internal/hooks"
	. "fillmore-labs.com/memodeps/internal/stability"
	"fillmore-labs.com/memodeps/internal/testsource"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		obj  string
		mode config.Mode
		want Verdict
	}{
		{
			name: "constant",
			src:  `const limit = 3`,
			obj:  "limit",
			want: Stable,
		},
		{
			name: "basic_literal",
			src:  `func run() { x := 1; _ = x }`,
			obj:  "x",
			want: Stable,
		},
		{
			name: "signed_literal",
			src:  `func run() { x := -1; _ = x }`,
			obj:  "x",
			want: Stable,
		},
		{
			name: "identifier_chain",
			src:  `func run() { base := 1; alias := base; _ = alias }`,
			obj:  "alias",
			want: Stable,
		},
		{
			name: "function_declaration",
			src:  `func tick() {}`,
			obj:  "tick",
			want: Stable,
		},
		{
			name: "parameter_conservative",
			src:  `func run(p int) { _ = p }`,
			obj:  "p",
			want: Unknown,
		},
		{
			name: "parameter_aggressive",
			src:  `func run(p int) { _ = p }`,
			obj:  "p",
			mode: config.ModeAggressive,
			want: Unstable,
		},
		{
			name: "reassigned_conservative",
			src:  `func run() { x := 1; x = 2; _ = x }`,
			obj:  "x",
			want: Unknown,
		},
		{
			name: "reassigned_moderate",
			src:  `func run() { x := 1; x = 2; _ = x }`,
			obj:  "x",
			mode: config.ModeModerate,
			want: Unstable,
		},
		{
			name: "unrecognized_call_conservative",
			src: `func now() int { return 0 }

func run() { x := now(); _ = x }`,
			obj:  "x",
			want: Unknown,
		},
		{
			name: "unrecognized_call_moderate",
			src: `func now() int { return 0 }

func run() { x := now(); _ = x }`,
			obj:  "x",
			mode: config.ModeModerate,
			want: Unstable,
		},
		{
			name: "stable_result_whole",
			src:  `func run() { r := ref(1); _ = r }`,
			obj:  "r",
			want: Stable,
		},
		{
			name: "stable_result_index",
			src:  `func run() { val, set := cell(1); _, _ = val, set }`,
			obj:  "set",
			want: Stable,
		},
		{
			name: "unstable_result_index",
			src:  `func run() { val, set := cell(1); _, _ = val, set }`,
			obj:  "val",
			want: Unknown,
		},
		{
			name: "composite_literal",
			src:  `func run() { opts := []int{1}; _ = opts }`,
			obj:  "opts",
			want: Unknown,
		},
		{
			name: "package_level_composite",
			src:  `var table = []int{1}`,
			obj:  "table",
			want: Stable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f, _, _ := testsource.ParsePackage(t, tt.src)
			pkg, info := testsource.Check(t, fset, f)

			defs := binding.NewIndex(info, inspector.New([]*ast.File{f}))

			registry, err := hooks.NewRegistry(nil, []string{"ref:whole", "cell:1"})
			if err != nil {
				t.Fatalf("NewRegistry failed: %v", err)
			}

			cls := New(info, pkg, defs, registry, tt.mode)

			obj := definedObject(t, info, tt.obj)
			if got := cls.Classify(obj, ""); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.obj, got, tt.want)
			}

			// The memoized answer must not drift.
			if got := cls.Classify(obj, ""); got != tt.want {
				t.Errorf("Memoized Classify(%q) = %v, want %v", tt.obj, got, tt.want)
			}
		})
	}
}

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
