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

package analyzer

import (
	"strconv"
	"strings"

	"fillmore-labs.com/memodeps/internal/config"
)

type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	var null B
	if f.flags == null {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// NewCheckValue creates a boolean flag value controlling a single check.
func NewCheckValue(flags *config.Checks, value config.Check) boolValue[config.Check, *config.Checks] {
	return boolValue[config.Check, *config.Checks]{flags: flags, value: value}
}

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On", "full", "Full":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

type modeValue struct {
	mode *config.Mode
}

// Set implements [flag.Value].
func (f modeValue) Set(s string) error {
	mode, err := config.ParseMode(s)
	if err != nil {
		return err
	}

	*f.mode = mode

	return nil
}

// String implements [flag.Value].
func (f modeValue) String() string {
	if f.mode == nil {
		return config.ModeConservative.String()
	}

	return f.mode.String()
}

// Get implements [flag.Getter].
func (f modeValue) Get() any {
	if f.mode == nil {
		return config.ModeConservative
	}

	return *f.mode
}

// listValue collects repeated flag occurrences into a string slice.
type listValue struct {
	specs *[]string
}

// Set implements [flag.Value].
func (f listValue) Set(s string) error {
	*f.specs = append(*f.specs, s)

	return nil
}

// String implements [flag.Value].
func (f listValue) String() string {
	if f.specs == nil {
		return ""
	}

	return strings.Join(*f.specs, ",")
}

// Get implements [flag.Getter].
func (f listValue) Get() any {
	if f.specs == nil {
		return nil
	}

	return *f.specs
}
