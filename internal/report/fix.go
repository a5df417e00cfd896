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
	"bytes"
	"go/ast"
	"go/printer"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/memodeps/internal/deps"
	"fillmore-labs.com/memodeps/internal/hooks"
)

var rawcfg = &printer.Config{Mode: printer.RawFormat}

// printEntries reprints the source text of the declared entries, skipping
// the entry whose expression is skip. A false result means some span could
// not be rendered; the caller then emits its diagnostic without a fix.
func printEntries(p *analysis.Pass, entries []deps.Entry, skip ast.Expr) ([]string, bool) {
	texts := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.Expr == skip {
			continue
		}

		var buf bytes.Buffer
		if err := rawcfg.Fprint(&buf, p.Fset, entry.Expr); err != nil {
			return nil, false
		}

		texts = append(texts, buf.String())
	}

	return texts, true
}

// suggestList builds the suggested fix replacing the dependency list with
// the given entry texts, for both the literal and the trailing-argument
// list shape.
func suggestList(p *analysis.Pass, call *ast.CallExpr, cfg hooks.Config, list deps.List, message string, texts []string) []analysis.SuggestedFix {
	joined := strings.Join(texts, ", ")

	var edit analysis.TextEdit

	switch {
	case list.Lit != nil:
		// Rewrite between the braces, keeping the literal's type.
		edit = analysis.TextEdit{Pos: list.Lit.Lbrace + 1, End: list.Lit.Rbrace, NewText: []byte(joined)}

	case len(texts) == 0:
		// All trailing entries removed, swallow the leading comma.
		prev := call.Args[cfg.DepsArg-1]
		last := list.Entries[len(list.Entries)-1].Expr
		edit = analysis.TextEdit{Pos: prev.End(), End: last.End()}

	default:
		first := list.Entries[0].Expr
		last := list.Entries[len(list.Entries)-1].Expr
		edit = analysis.TextEdit{Pos: first.Pos(), End: last.End(), NewText: []byte(joined)}
	}

	return []analysis.SuggestedFix{{Message: message, TextEdits: []analysis.TextEdit{edit}}}
}
