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

package hooks

// Built-in hook table, mirroring the canonical memo helper package.
var builtinHooks = map[string]Config{
	// keep-sorted start
	"memo.Callback": {Name: "memo.Callback", ClosureArg: 0, DepsArg: 1},
	"memo.Effect":   {Name: "memo.Effect", ClosureArg: 0, DepsArg: 1},
	"memo.Memo":     {Name: "memo.Memo", ClosureArg: 0, DepsArg: 1},
	// keep-sorted end
}

// Built-in stable-result table.
var builtinStable = map[string]StableResult{
	// keep-sorted start
	"memo.Ref":   {Kind: StableWhole},
	"memo.State": {Kind: StableIndices, Indices: []int{1}},
	// keep-sorted end
}
