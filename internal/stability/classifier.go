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

// Package stability decides whether a captured binding keeps its identity
// across re-invocations of the enclosing scope.
package stability

import (
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/memodeps/internal/astutil"
	"fillmore-labs.com/memodeps/internal/binding"
	"fillmore-labs.com/memodeps/internal/config"
	"fillmore-labs.com/memodeps/internal/hooks"
)

// Classifier memoizes stability verdicts for one call-site analysis.
//
// The memo is keyed by object plus access-path context, since stable-result
// tables can mark a single field of a result as stable while the rest is
// not. Cycles between mutually referential bindings are broken with an
// explicit visiting set: a binding currently under classification answers
// Unknown and is not memoized until its own classification returns.
type Classifier struct {
	info  *types.Info
	pkg   *types.Package
	defs  *binding.Index
	hooks *hooks.Registry
	mode  config.Mode

	memo     map[memoKey]Verdict
	visiting map[types.Object]struct{}
}

type memoKey struct {
	obj      types.Object
	firstHop string
}

// New creates a classifier. Verdicts are valid for a single pass only,
// since object identity is meaningless across passes.
func New(info *types.Info, pkg *types.Package, defs *binding.Index, registry *hooks.Registry, mode config.Mode) *Classifier {
	return &Classifier{
		info:     info,
		pkg:      pkg,
		defs:     defs,
		hooks:    registry,
		mode:     mode,
		memo:     make(map[memoKey]Verdict),
		visiting: make(map[types.Object]struct{}),
	}
}

// Classify returns the verdict for a binding in the context of an access
// path starting with firstHop ("" for a direct reference).
func (c *Classifier) Classify(obj types.Object, firstHop string) Verdict {
	switch obj.(type) {
	case nil:
		return Unknown

	case *types.Func, *types.TypeName, *types.Const, *types.PkgName, *types.Builtin, *types.Nil:
		// Declarations and constants never change identity.
		return Stable
	}

	v, ok := obj.(*types.Var)
	if !ok {
		return Unknown
	}

	key := memoKey{obj: obj, firstHop: firstHop}
	if verdict, ok := c.memo[key]; ok {
		return verdict
	}

	if _, ok := c.visiting[obj]; ok {
		return Unknown // provisional answer for cyclic self-reference
	}

	c.visiting[obj] = struct{}{}
	verdict := c.classifyVar(v, firstHop)
	delete(c.visiting, obj)

	if verdict == Unknown && c.mode == config.ModeAggressive {
		verdict = Unstable
	}

	c.memo[key] = verdict

	return verdict
}

func (c *Classifier) classifyVar(v *types.Var, firstHop string) Verdict {
	if v.Pkg() != c.pkg {
		return Stable // imported bindings cannot change between invocations
	}

	d, ok := c.defs.Lookup(v)
	if !ok {
		if c.pkgLevel(v) {
			return Stable
		}

		return Unknown
	}

	switch d.Kind {
	case binding.Func:
		return Stable

	case binding.Param:
		// Identity cannot be constrained from inside the closure.
		return Unknown
	}

	if d.Reassigned {
		return c.mutable()
	}

	if d.Init == nil {
		if c.pkgLevel(v) {
			return Stable
		}

		return Unknown
	}

	return c.classifyInit(v, d, firstHop)
}

// classifyInit inspects the initializer of a never-reassigned variable.
// The check order encodes false-positive/false-negative trade-offs:
// stable-result calls before literals, unrecognized calls before the
// package-scope rule.
func (c *Classifier) classifyInit(v *types.Var, d binding.Definition, firstHop string) Verdict {
	switch init := astutil.Unwrap(d.Init).(type) {
	case *ast.CallExpr:
		if sr, ok := c.hooks.StableResultFor(c.info, init); ok && sr.Matches(d.TuplePos, firstHop) {
			return Stable
		}

		return c.call()

	case *ast.BasicLit:
		return Stable

	case *ast.UnaryExpr:
		if init.Op == token.ADD || init.Op == token.SUB {
			if _, ok := astutil.Unwrap(init.X).(*ast.BasicLit); ok {
				return Stable // signed literal
			}
		}

	case *ast.Ident:
		return c.Classify(c.info.Uses[init], firstHop)
	}

	if c.pkgLevel(v) {
		return Stable // package scope is never re-evaluated
	}

	return Unknown
}

func (c *Classifier) mutable() Verdict {
	if c.mode == config.ModeConservative {
		return Unknown
	}

	return Unstable
}

func (c *Classifier) call() Verdict {
	if c.mode == config.ModeConservative {
		return Unknown
	}

	return Unstable
}

func (c *Classifier) pkgLevel(v *types.Var) bool {
	return v.Parent() == c.pkg.Scope()
}
