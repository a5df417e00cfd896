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

package report

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/memodeps/internal/capture"
	"fillmore-labs.com/memodeps/internal/config"
	"fillmore-labs.com/memodeps/internal/deps"
	"fillmore-labs.com/memodeps/internal/hooks"
)

// Process emits the diagnostics for one call site.
//
// This is the final phase of the analyzer pipeline. Each diagnostic carries
// a suggested fix when the corrected list text can be assembled from the
// reprinted source of the surviving entries plus the display paths of added
// captures; otherwise the diagnostic is emitted without a fix.
func Process(ctx context.Context, p *analysis.Pass, call *ast.CallExpr, cfg hooks.Config, list deps.List, result deps.Result, checks config.Checks) {
	defer trace.StartRegion(ctx, "Report").End()

	if list.Opaque {
		return
	}

	if list.Absent {
		if checks.Enabled(config.MissingListCheck) {
			reportMissingList(p, call, cfg, result.Required)
		}

		return
	}

	reportMissing(p, call, cfg, list, result.Missing)

	if checks.Enabled(config.UnnecessaryCheck) {
		reportUnnecessary(p, call, cfg, list, result.Unnecessary)
	}

	if checks.Enabled(config.UnstableCheck) {
		reportUnstable(p, result.Unstable)
	}
}

// reportMissingList handles calls without any dependency list. The fix
// appends the required paths as trailing arguments.
func reportMissingList(p *analysis.Pass, call *ast.CallExpr, cfg hooks.Config, required []capture.Info) {
	if len(required) == 0 {
		return
	}

	paths := sortedPaths(required)

	diagnostic := analysis.Diagnostic{
		Pos:     call.Pos(),
		End:     call.End(),
		Message: fmt.Sprintf("Call to '%s' is missing a dependency list for %s (md:lst)", cfg.Name, concatNames(paths)),
	}

	text := ", " + strings.Join(paths, ", ")
	diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
		Message:   diagnostic.Message,
		TextEdits: []analysis.TextEdit{{Pos: call.Rparen, End: call.Rparen, NewText: []byte(text)}},
	}}

	p.Report(diagnostic)
}

func reportMissing(p *analysis.Pass, call *ast.CallExpr, cfg hooks.Config, list deps.List, missing []capture.Info) {
	if len(missing) == 0 {
		return
	}

	paths := sortedPaths(missing)

	format := "Missing dependency %s (md:mis)"
	if len(paths) > 1 {
		format = "Missing dependencies %s (md:mis)"
	}

	pos, end := listBounds(list)

	diagnostic := analysis.Diagnostic{
		Pos:     pos,
		End:     end,
		Message: fmt.Sprintf(format, concatNames(paths)),
	}

	// The missing fix keeps every declared entry, including unnecessary
	// ones; the two diagnostics stay independently applicable.
	if texts, ok := printEntries(p, list.Entries, nil); ok {
		diagnostic.SuggestedFixes = suggestList(p, call, cfg, list, diagnostic.Message, append(texts, paths...))
	}

	p.Report(diagnostic)
}

func reportUnnecessary(p *analysis.Pass, call *ast.CallExpr, cfg hooks.Config, list deps.List, unnecessary []deps.Entry) {
	for _, entry := range unnecessary {
		diagnostic := analysis.Diagnostic{
			Pos:     entry.Expr.Pos(),
			End:     entry.Expr.End(),
			Message: fmt.Sprintf("Unnecessary dependency '%s' (md:unn)", types.ExprString(entry.Expr)),
		}

		if texts, ok := printEntries(p, list.Entries, entry.Expr); ok {
			diagnostic.SuggestedFixes = suggestList(p, call, cfg, list, diagnostic.Message, texts)
		}

		p.Report(diagnostic)
	}
}

// reportUnstable has no fix: stabilizing a freshly constructed value needs
// memoization, a semantic change the tool must not perform automatically.
func reportUnstable(p *analysis.Pass, unstable []deps.UnstableEntry) {
	for _, entry := range unstable {
		p.Report(analysis.Diagnostic{
			Pos:     entry.Expr.Pos(),
			End:     entry.Expr.End(),
			Message: fmt.Sprintf("Unstable dependency '%s' defeats memoization (md:uns)", types.ExprString(entry.Expr)),
			Related: []analysis.RelatedInformation{{
				Pos:     entry.Init.Pos(),
				End:     entry.Init.End(),
				Message: "A fresh value is constructed here",
			}},
		})
	}
}

func listBounds(list deps.List) (pos, end token.Pos) {
	if list.Lit != nil {
		return list.Lit.Pos(), list.Lit.End()
	}

	first := list.Entries[0].Expr
	last := list.Entries[len(list.Entries)-1].Expr

	return first.Pos(), last.End()
}

// sortedPaths returns the deduplicated display paths in sorted order, for
// deterministic messages and fixes.
func sortedPaths(captures []capture.Info) []string {
	paths := make([]string, 0, len(captures))
	for _, capt := range captures {
		paths = append(paths, capt.Text)
	}

	slices.Sort(paths)

	return slices.Compact(paths)
}

// concatNames formats a list of paths into a human-readable string (e.g., "'a', 'b' and 'c'").
func concatNames(paths []string) string {
	var allNames strings.Builder

	for i, name := range paths {
		if i > 0 {
			var separator string
			if i == len(paths)-1 {
				separator = " and "
			} else {
				separator = ", "
			}

			allNames.WriteString(separator) // ignore error
		}

		allNames.WriteByte('\'')   // ignore error
		allNames.WriteString(name) // ignore error
		allNames.WriteByte('\'')   // ignore error
	}

	return allNames.String()
}
