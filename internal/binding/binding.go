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

// Package binding indexes the syntactic definitions of type-checked objects.
//
// The index is the analyzer's view of the binding oracle: for every object
// defined in the package under analysis it records the kind of definition,
// the initializer expression (if any), the destructuring position for
// multi-value initializers and whether the binding is ever reassigned.
package binding

import "go/ast"

// Kind classifies a definition site.
type Kind uint8

const (
	// Func is a function or method declaration.
	Func Kind = iota

	// Param is a parameter, result parameter or method receiver.
	Param

	// Var is a variable declaration, with or without initializer.
	Var
)

// Definition describes the definition site of one object.
type Definition struct {
	// Kind is the definition kind.
	Kind Kind

	// Decl is the declaring node. For Kind Func this is the *[ast.FuncDecl].
	Decl ast.Node

	// Init is the initializer expression of a Var definition, nil if none.
	Init ast.Expr

	// TuplePos is the binding's position on the left-hand side when Init is
	// a single multi-value expression, 0 otherwise.
	TuplePos int

	// Reassigned reports whether any assignment, inc/dec statement or range
	// clause rebinds the object after its definition.
	Reassigned bool
}
