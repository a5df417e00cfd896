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

package deps

import (
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/memodeps/internal/astutil"
	"fillmore-labs.com/memodeps/internal/binding"
	"fillmore-labs.com/memodeps/internal/capture"
	"fillmore-labs.com/memodeps/internal/stability"
)

// Result is the three-way diff of one call site.
type Result struct {
	// Required holds captures that must appear in the dependency list:
	// everything not Stable, plus forced dependencies regardless of verdict.
	Required []capture.Info

	// Missing holds required captures no declared entry satisfies.
	Missing []capture.Info

	// Unnecessary holds entries matching no capture, or over-specific ones
	// whose depth exceeds every matching capture's depth.
	Unnecessary []Entry

	// Unstable holds depth-0 entries bound to freshly constructed values.
	Unstable []UnstableEntry
}

// UnstableEntry is an unstable dependency together with the initializer
// that makes it unstable.
type UnstableEntry struct {
	Entry
	Init ast.Expr
}

// Diff compares the capture set against the declared list.
//
// A capture of depth d is satisfied by an entry on the same root with
// depth ≤ d. Unnecessary and Missing run over disjoint inputs and may both
// fire at one call site; Unstable runs last and only examines entries not
// already flagged unnecessary.
func Diff(info *types.Info, captures []capture.Info, list List, cls *stability.Classifier, defs *binding.Index) Result {
	var res Result

	verdicts := make([]stability.Verdict, len(captures))
	for i, capt := range captures {
		verdicts[i] = cls.Classify(capt.Root, capt.FirstHop())

		if capt.Forced || verdicts[i] != stability.Stable {
			res.Required = append(res.Required, capt)
		}
	}

	if list.Absent || list.Opaque {
		return res
	}

	maxDepth := make(map[types.Object]int, len(captures))
	for _, capt := range captures {
		if depth, ok := maxDepth[capt.Root]; !ok || capt.Depth() > depth {
			maxDepth[capt.Root] = capt.Depth()
		}
	}

	unnecessary := make(map[int]struct{})

	for i, entry := range list.Entries {
		if entry.Root == nil {
			continue // opaque entry, trusted
		}

		if depth, ok := maxDepth[entry.Root]; !ok || entry.Depth > depth {
			unnecessary[i] = struct{}{}
			res.Unnecessary = append(res.Unnecessary, entry)
		}
	}

	for _, capt := range res.Required {
		if !satisfied(capt, list.Entries) {
			res.Missing = append(res.Missing, capt)
		}
	}

	for i, entry := range list.Entries {
		if _, ok := unnecessary[i]; ok || entry.Root == nil || entry.Depth != 0 {
			continue
		}

		if !rootUnstable(captures, verdicts, entry.Root) {
			continue
		}

		if d, ok := defs.Lookup(entry.Root); ok && d.Kind == binding.Var && !d.Reassigned {
			if init := freshInit(info, d.Init); init != nil {
				res.Unstable = append(res.Unstable, UnstableEntry{Entry: entry, Init: init})
			}
		}
	}

	return res
}

func satisfied(capt capture.Info, entries []Entry) bool {
	for _, entry := range entries {
		if entry.Root == capt.Root && entry.Depth <= capt.Depth() {
			return true
		}
	}

	return false
}

func rootUnstable(captures []capture.Info, verdicts []stability.Verdict, root types.Object) bool {
	for i, capt := range captures {
		if capt.Root == root && verdicts[i] != stability.Stable {
			return true
		}
	}

	return false
}

// freshInit returns the initializer when it constructs a new value on every
// evaluation: a function or composite literal, a pointer to a composite
// literal, or a new/make call. Listing such a binding as a dependency
// defeats memoization.
func freshInit(info *types.Info, init ast.Expr) ast.Expr {
	if init == nil {
		return nil
	}

	switch e := astutil.Unwrap(init).(type) {
	case *ast.FuncLit, *ast.CompositeLit:
		return e

	case *ast.UnaryExpr:
		if e.Op != token.AND {
			return nil
		}

		if _, ok := astutil.Unwrap(e.X).(*ast.CompositeLit); ok {
			return e
		}

	case *ast.CallExpr:
		if id, ok := astutil.Unwrap(e.Fun).(*ast.Ident); ok {
			if _, ok := info.Uses[id].(*types.Builtin); ok && (id.Name == "new" || id.Name == "make") {
				return e
			}
		}
	}

	return nil
}
