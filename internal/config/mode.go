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

package config

import (
	"errors"
	"fmt"
)

// Mode selects how strictly ambiguous bindings are classified.
//
// Conservative answers Unknown where stability cannot be proven, Moderate
// hardens reassigned variables and unrecognized calls to Unstable, and
// Aggressive additionally collapses a final Unknown verdict to Unstable.
type Mode uint8

const (
	// ModeConservative fails toward Unknown. This is the default.
	ModeConservative Mode = iota

	// ModeModerate treats reassigned variables and unrecognized call
	// initializers as Unstable.
	ModeModerate

	// ModeAggressive additionally collapses a final Unknown to Unstable.
	ModeAggressive
)

// ErrUnknownMode is returned when a mode name cannot be parsed.
var ErrUnknownMode = errors.New("unknown mode")

// String implements [fmt.Stringer].
func (m Mode) String() string {
	switch m {
	case ModeConservative:
		return "conservative"
	case ModeModerate:
		return "moderate"
	case ModeAggressive:
		return "aggressive"
	}

	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode converts a mode name into a [Mode].
func ParseMode(s string) (Mode, error) {
	switch s {
	case "conservative":
		return ModeConservative, nil
	case "moderate":
		return ModeModerate, nil
	case "aggressive":
		return ModeAggressive, nil
	}

	return ModeConservative, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
