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

package stability

import "fmt"

// Verdict is the outcome of classifying a binding.
type Verdict uint8

const (
	// Stable values keep their identity across re-invocations of the
	// enclosing scope.
	Stable Verdict = iota

	// Unstable values are known to change identity.
	Unstable

	// Unknown values cannot be proven either way. Classification never
	// fails toward a false Stable.
	Unknown
)

// String implements [fmt.Stringer].
func (v Verdict) String() string {
	switch v {
	case Stable:
		return "stable"
	case Unstable:
		return "unstable"
	case Unknown:
		return "unknown"
	}

	return fmt.Sprintf("Verdict(%d)", uint8(v))
}
