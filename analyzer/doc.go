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

// Package analyzer implements the memodeps static analysis pass.
//
// # Overview
//
// MemoDeps checks the dependency lists of memoizing calls: calls that take
// a closure and a list of values, and re-run the closure only when one of
// the listed values changes. The analyzer compares the declared list with
// what the closure actually reads from its enclosing function.
//
// # Example
//
// Before:
//
//	func view(m *Model, query string) View {
//	    rows := memo.Memo(func() []Row {
//	        return m.Search(query)  // reads query, list omits it
//	    }, m)
//	    // ...
//	}
//
// After applying memodeps' suggested fix:
//
//	func view(m *Model, query string) View {
//	    rows := memo.Memo(func() []Row {
//	        return m.Search(query)
//	    }, m, query)
//	    // ...
//	}
//
// # Diagnostics
//
// The analyzer reports:
//
//   - Missing dependencies: values the closure reads but the list omits
//   - Unnecessary dependencies: listed values the closure never reads
//   - Unstable dependencies: values rebuilt on every call, which make
//     the memoization useless
//   - Missing lists: recognized calls with no dependency list at all
package analyzer
