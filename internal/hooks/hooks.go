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

// Package hooks maintains the registry of memoizing calls.
//
// A hook is a function taking a closure plus declared dependency arguments.
// The registry maps hook names to the argument positions of both, and
// separately records calls whose result (or part of it) is identity-stable.
package hooks

import (
	"go/ast"
	"go/types"
	"maps"
	"slices"

	"golang.org/x/tools/go/types/typeutil"
)

// Config describes one memoizing call.
type Config struct {
	// Name is "pkg.Func", matched against the callee's package and function
	// name, or a bare "Func" matched by function name alone.
	Name string

	// ClosureArg is the argument position of the closure.
	ClosureArg int

	// DepsArg is the argument position where the dependency list starts.
	DepsArg int
}

// StableKind tags the shape of a [StableResult].
type StableKind uint8

const (
	// StableWhole marks the entire result as identity-stable.
	StableWhole StableKind = iota

	// StableIndices marks selected positions of a multi-value result as stable.
	StableIndices

	// StableFields marks selected result fields as stable.
	StableFields
)

// StableResult describes which part of a call's result is identity-stable.
type StableResult struct {
	Kind    StableKind
	Indices []int
	Fields  []string
}

// Matches reports whether the binding is covered by this stable result.
// tuplePos is the binding's destructuring position in a multi-value
// assignment, field the first selector hop of the access path.
func (s StableResult) Matches(tuplePos int, field string) bool {
	switch s.Kind {
	case StableWhole:
		return true

	case StableIndices:
		return slices.Contains(s.Indices, tuplePos)

	case StableFields:
		return field != "" && slices.Contains(s.Fields, field)
	}

	return false
}

// Registry is the immutable hook table for one analyzer instance.
type Registry struct {
	hooks  map[string]Config
	stable map[string]StableResult
}

// NewRegistry merges the built-in tables with user-supplied spec strings.
// Later entries override earlier ones by name.
func NewRegistry(hookSpecs, stableSpecs []string) (*Registry, error) {
	r := &Registry{
		hooks:  maps.Clone(builtinHooks),
		stable: maps.Clone(builtinStable),
	}

	for _, spec := range hookSpecs {
		cfg, err := ParseSpec(spec)
		if err != nil {
			return nil, err
		}

		r.hooks[cfg.Name] = cfg
	}

	for _, spec := range stableSpecs {
		name, sr, err := ParseStableSpec(spec)
		if err != nil {
			return nil, err
		}

		r.stable[name] = sr
	}

	return r, nil
}

// Match resolves the callee of a call expression and looks it up in the hook
// table. Resolution goes through the type checker, so import aliases and
// dot imports all hit the same table row.
func (r *Registry) Match(info *types.Info, call *ast.CallExpr) (Config, bool) {
	return lookup(r.hooks, info, call)
}

// StableResultFor looks up the callee in the stable-result table.
func (r *Registry) StableResultFor(info *types.Info, call *ast.CallExpr) (StableResult, bool) {
	return lookup(r.stable, info, call)
}

func lookup[V any](table map[string]V, info *types.Info, call *ast.CallExpr) (V, bool) {
	var zero V

	callee := typeutil.Callee(info, call)
	if callee == nil || callee.Name() == "" {
		return zero, false
	}

	if pkg := callee.Pkg(); pkg != nil {
		if v, ok := table[pkg.Name()+"."+callee.Name()]; ok {
			return v, true
		}
	}

	v, ok := table[callee.Name()]

	return v, ok
}
