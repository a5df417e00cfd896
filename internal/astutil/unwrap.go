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

package astutil

import "go/ast"

// Unwrap strips parentheses and type assertions from an expression.
// Both constructs are transparent for identity: they change neither the
// value an expression denotes nor the access path leading to it.
func Unwrap(e ast.Expr) ast.Expr {
	for {
		switch x := e.(type) {
		case *ast.ParenExpr:
			e = x.X

		case *ast.TypeAssertExpr:
			if x.Type == nil {
				return e // `.(type)` only occurs in type switches
			}

			e = x.X

		default:
			return e
		}
	}
}
