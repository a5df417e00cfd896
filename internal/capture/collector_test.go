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

package capture_test

import (
	"go/ast"
	"slices"
	"testing"

	"golang.org/x/tools/go/ast/inspector"

	. "fillmore-labs.com/memodeps/internal/capture"
	"fillmore-labs.com/memodeps/internal/scope"
	"fillmore-labs.com/memodeps/internal/testsource"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want []string
	}{
		{
			name: "access_paths",
			src: `type model struct {
	limit int
}

func (m *model) count() int { return m.limit }

var global = 1

func run(m *model, rows [][]int, counts map[string]int, key string) {
	_ = func() int {
		local := 1

		return m.limit + m.count() + rows[0][1] + counts[key] + global + len(key) + local
	}
}`,
			want: []string{"counts", "key", "m", "m.limit", "rows[0][1]"},
		},
		{
			name: "grandparent_excluded",
			src: `func run(outer int) {
	_ = func() {
		inner := 1
		_ = func() int { return outer + inner }
	}
}`,
			want: []string{"inner"},
		},
		{
			name: "transparent_wrappers",
			src: `func run(v any) {
	_ = func() int { return (v).(int) }
}`,
			want: []string{"v"},
		},
		{
			name: "function_value",
			src: `func run(format func() string) {
	_ = func() string { return format() }
}`,
			want: []string{"format"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			captures := collectLastClosure(t, tt.src)

			texts := make([]string, 0, len(captures))
			for _, capt := range captures {
				texts = append(texts, capt.Text)
			}

			slices.Sort(texts)

			if !slices.Equal(texts, tt.want) {
				t.Errorf("Captured %q, want %q", texts, tt.want)
			}
		})
	}
}

func TestCollectForced(t *testing.T) {
	t.Parallel()

	const src = `func run(counts map[string]int, key string) {
	_ = func() int { return counts[key] }
}`

	for _, capt := range collectLastClosure(t, src) {
		if want := capt.Text == "counts"; capt.Forced != want {
			t.Errorf("Forced(%q) = %v, want %v", capt.Text, capt.Forced, want)
		}
	}
}

// collectLastClosure runs capture collection on the last function literal of
// the fragment's last function.
func collectLastClosure(tb testing.TB, src string) []Info {
	tb.Helper()

	fset, f, _, body := testsource.ParsePackage(tb, src)
	_, info := testsource.Check(tb, fset, f)

	scopes := scope.NewIndex(info)

	var lit *ast.FuncLit
	for c := range body.Preorder((*ast.FuncLit)(nil)) {
		lit = c.Node().(*ast.FuncLit)
	}

	if lit == nil {
		tb.Fatal("No function literal found")
	}

	litBody, ok := inspector.New([]*ast.File{f}).Root().FindNode(lit.Body)
	if !ok {
		tb.Fatal("Function literal body not found")
	}

	enclosing := scopes.EnclosingFunc(info.Scopes[lit.Type].Parent())
	if enclosing == nil {
		tb.Fatal("No enclosing function scope")
	}

	return Collect(info, scopes, litBody, enclosing)
}
