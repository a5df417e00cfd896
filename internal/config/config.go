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

package config

// Check represents a specific diagnostic class.
type Check uint8

const (
	// MissingListCheck enables reporting of calls that lack a dependency list entirely.
	MissingListCheck Check = 1 << iota

	// UnnecessaryCheck enables reporting of declared dependencies the closure never reads.
	UnnecessaryCheck

	// UnstableCheck enables reporting of dependencies bound to freshly constructed values.
	UnstableCheck
)

// Checks is a bitmask of enabled diagnostic classes.
type Checks = BitMask[Check]

// DefaultChecks returns the check set enabled by default.
// Missing-dependency reporting is not represented here: it is the
// analyzer's reason to exist and always on.
func DefaultChecks() Checks {
	return NewBitMask(MissingListCheck, UnnecessaryCheck, UnstableCheck)
}

// Setting represents behavioral options of the analyzer.
type Setting uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Setting = 1 << iota
)

// Behavior is a bitmask of behavioral options.
type Behavior = BitMask[Setting]

// DefaultBehavior returns the behavioral options enabled by default.
func DefaultBehavior() Behavior {
	return NewBitMask[Setting]()
}
