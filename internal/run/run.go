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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/memodeps/internal/astutil"
	"fillmore-labs.com/memodeps/internal/binding"
	"fillmore-labs.com/memodeps/internal/capture"
	"fillmore-labs.com/memodeps/internal/closure"
	"fillmore-labs.com/memodeps/internal/config"
	"fillmore-labs.com/memodeps/internal/deps"
	"fillmore-labs.com/memodeps/internal/hooks"
	"fillmore-labs.com/memodeps/internal/report"
	"fillmore-labs.com/memodeps/internal/scope"
	"fillmore-labs.com/memodeps/internal/stability"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the memodeps analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("memodeps: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	registry, err := hooks.NewRegistry(r.HookSpecs, r.StableSpecs)
	if err != nil {
		return nil, fmt.Errorf("memodeps: %w", err)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "MemoDeps")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Per-pass caches. Object identity does not survive the pass, so both
	// die with it.
	scopes := scope.NewIndex(p.TypesInfo)
	defs := binding.NewIndex(p.TypesInfo, in)

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1]) {
			continue
		}

		// Loop over all call expressions in this file
		for c := range f.Preorder((*ast.CallExpr)(nil)) {
			call := c.Node().(*ast.CallExpr)

			cfg, ok := registry.Match(p.TypesInfo, call)
			if !ok {
				continue
			}

			if currentFile.NoLintComment(call.Pos()) {
				continue
			}

			r.checkCall(ctx, p, c, call, cfg, registry, scopes, defs)
		}
	}

	return nil, nil
}

// checkCall analyzes one recognized call site. Unresolvable closures are
// skipped silently; everything else degrades per mode, never to an error.
func (r *Options) checkCall(
	ctx context.Context,
	p *analysis.Pass,
	c inspector.Cursor,
	call *ast.CallExpr,
	cfg hooks.Config,
	registry *hooks.Registry,
	scopes scope.Index,
	defs *binding.Index,
) {
	defer trace.StartRegion(ctx, "CheckCall").End()

	if cfg.ClosureArg >= len(call.Args) {
		return
	}

	cl, ok := closure.Resolve(p.TypesInfo, defs, call.Args[cfg.ClosureArg])
	if !ok {
		return
	}

	// Stage 1: collect the access paths read by the closure. The enclosing
	// function is the one lexically containing the resolved closure; a nil
	// scope means the closure is a package-level function with no captures.
	var captures []capture.Info

	if enclosing := scopes.EnclosingFunc(cl.Scope.Parent()); enclosing != nil {
		body, ok := c.Inspector().Root().FindNode(cl.Body)
		if !ok {
			astutil.InternalError(p, call, "Closure body of call to '%s' is not part of this pass", cfg.Name)

			return
		}

		captures = capture.Collect(p.TypesInfo, scopes, body, enclosing)
	}

	// Stage 2: diff the declared list against the captures. The classifier
	// is created fresh per call site; only the declaration index is shared
	// across the pass.
	cls := stability.New(p.TypesInfo, p.Pkg, defs, registry, r.Mode)
	list := deps.Parse(p.TypesInfo, call, cfg)
	result := deps.Diff(p.TypesInfo, captures, list, cls, defs)

	// Stage 3: emit diagnostics with suggested fixes.
	report.Process(ctx, p, call, cfg, list, result, r.Checks)
}
