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

package gclplugin

import (
	memodeps "fillmore-labs.com/memodeps/analyzer"
	"fillmore-labs.com/memodeps/internal/config"
	"fillmore-labs.com/memodeps/internal/hooks"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Mode selects the stability strictness: "conservative", "moderate" or "aggressive".
	Mode *string `json:"mode,omitzero"`
	// Hooks registers additional memoizing calls, "name:closureArg:depsArg".
	Hooks []string `json:"hooks,omitzero"`
	// StableResults registers calls with stable results, "name:whole", "name:0,1" or "name:.Field".
	StableResults []string `json:"stable-results,omitzero"`
	// MissingList enables reporting calls without any dependency list.
	MissingList *bool `json:"missing-list,omitzero"`
	// Unnecessary enables reporting unnecessary dependencies.
	Unnecessary *bool `json:"unnecessary,omitzero"`
	// Unstable enables reporting unstable dependencies.
	Unstable *bool `json:"unstable,omitzero"`
}

// Options converts [Settings] into a list of [memodeps.Option] for the memodeps analyzer.
// It processes settings and applies them only when explicitly set, and rejects
// malformed modes and specs before the analyzer runs.
func (s Settings) Options() ([]memodeps.Option, error) {
	var opts []memodeps.Option

	if s.Mode != nil {
		mode, err := config.ParseMode(*s.Mode)
		if err != nil {
			return nil, err
		}

		opts = append(opts, memodeps.WithMode(mode))
	}

	if len(s.Hooks) > 0 {
		for _, spec := range s.Hooks {
			if _, err := hooks.ParseSpec(spec); err != nil {
				return nil, err
			}
		}

		opts = append(opts, memodeps.WithHooks(s.Hooks...))
	}

	if len(s.StableResults) > 0 {
		for _, spec := range s.StableResults {
			if _, _, err := hooks.ParseStableSpec(spec); err != nil {
				return nil, err
			}
		}

		opts = append(opts, memodeps.WithStableResults(s.StableResults...))
	}

	opts = appendOption(opts, s.MissingList, memodeps.WithMissingList)
	opts = appendOption(opts, s.Unnecessary, memodeps.WithUnnecessary)
	opts = appendOption(opts, s.Unstable, memodeps.WithUnstable)

	return opts, nil
}

// appendOption appends a non-nil setting to a [memodeps.Option] list.
func appendOption[T any](opts []memodeps.Option, value *T, constructor func(T) memodeps.Option) []memodeps.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
