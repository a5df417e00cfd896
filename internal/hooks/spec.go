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

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSpec is returned for malformed hook or stable-result specs.
var ErrInvalidSpec = errors.New("invalid spec")

// ParseSpec parses a hook spec of the form "name:closureArg:depsArg",
// e.g. "memoize:0:1".
func ParseSpec(spec string) (Config, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 || parts[0] == "" {
		return Config{}, fmt.Errorf("%w: %q, want \"name:closureArg:depsArg\"", ErrInvalidSpec, spec)
	}

	closureArg, err := strconv.Atoi(parts[1])
	if err != nil || closureArg < 0 {
		return Config{}, fmt.Errorf("%w: %q has no valid closure argument", ErrInvalidSpec, spec)
	}

	depsArg, err := strconv.Atoi(parts[2])
	if err != nil || depsArg <= closureArg {
		// Dependencies trail the closure; earlier positions cannot be parsed
		// as a dependency list.
		return Config{}, fmt.Errorf("%w: %q has no valid dependency argument", ErrInvalidSpec, spec)
	}

	return Config{Name: parts[0], ClosureArg: closureArg, DepsArg: depsArg}, nil
}

// ParseStableSpec parses a stable-result spec. Accepted forms:
//
//	"name:whole"     the entire result is stable
//	"name:0,1"       the listed tuple positions are stable
//	"name:.A,.B"     the listed result fields are stable
func ParseStableSpec(spec string) (string, StableResult, error) {
	name, rest, ok := strings.Cut(spec, ":")
	if !ok || name == "" || rest == "" {
		return "", StableResult{}, fmt.Errorf("%w: %q, want \"name:whole\", \"name:0,1\" or \"name:.Field\"", ErrInvalidSpec, spec)
	}

	if rest == "whole" {
		return name, StableResult{Kind: StableWhole}, nil
	}

	if strings.HasPrefix(rest, ".") {
		var fields []string
		for field := range strings.SplitSeq(rest, ",") {
			field, ok := strings.CutPrefix(field, ".")
			if !ok || field == "" {
				return "", StableResult{}, fmt.Errorf("%w: %q has an invalid field list", ErrInvalidSpec, spec)
			}

			fields = append(fields, field)
		}

		return name, StableResult{Kind: StableFields, Fields: fields}, nil
	}

	var indices []int

	for part := range strings.SplitSeq(rest, ",") {
		index, err := strconv.Atoi(part)
		if err != nil || index < 0 {
			return "", StableResult{}, fmt.Errorf("%w: %q has an invalid index list", ErrInvalidSpec, spec)
		}

		indices = append(indices, index)
	}

	return name, StableResult{Kind: StableIndices, Indices: indices}, nil
}
