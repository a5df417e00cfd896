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
	"log/slog"

	"fillmore-labs.com/memodeps/internal/config"
	"fillmore-labs.com/memodeps/internal/run"
)

// Mode selects how strictly unrecognized and mutable bindings are judged.
type Mode = config.Mode

// Stability modes, from fewest to most diagnostics.
const (
	ModeConservative = config.ModeConservative
	ModeModerate     = config.ModeModerate
	ModeAggressive   = config.ModeAggressive
)

// Option configures specific behavior of a [New] memodeps analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithMode is an [Option] to select the stability strictness.
func WithMode(mode Mode) Option { return modeOption{mode: mode} }

type modeOption struct{ mode Mode }

func (o modeOption) apply(r *run.Options) {
	r.Mode = o.mode
}

func (o modeOption) LogAttr() slog.Attr {
	return slog.String("mode", o.mode.String())
}

// WithHooks is an [Option] to register additional memoizing calls,
// given as "name:closureArg:depsArg" specs.
func WithHooks(specs ...string) Option { return hooksOption{specs: specs} }

type hooksOption struct{ specs []string }

func (o hooksOption) apply(r *run.Options) {
	r.HookSpecs = append(r.HookSpecs, o.specs...)
}

func (o hooksOption) LogAttr() slog.Attr {
	return slog.Any("hooks", o.specs)
}

// WithStableResults is an [Option] to register calls with stable results,
// given as "name:whole", "name:0,1" or "name:.Field" specs.
func WithStableResults(specs ...string) Option { return stableOption{specs: specs} }

type stableOption struct{ specs []string }

func (o stableOption) apply(r *run.Options) {
	r.StableSpecs = append(r.StableSpecs, o.specs...)
}

func (o stableOption) LogAttr() slog.Attr {
	return slog.Any("stable-results", o.specs)
}

// WithMissingList is an [Option] to configure whether calls without any
// dependency list are reported.
func WithMissingList(missingList bool) Option {
	return missingListOption{missingList: missingList}
}

type missingListOption struct{ missingList bool }

func (o missingListOption) apply(r *run.Options) {
	r.Checks.Set(config.MissingListCheck, o.missingList)
}

func (o missingListOption) LogAttr() slog.Attr {
	return slog.Bool("missing-list", o.missingList)
}

// WithUnnecessary is an [Option] to configure whether unnecessary
// dependencies are reported.
func WithUnnecessary(unnecessary bool) Option {
	return unnecessaryOption{unnecessary: unnecessary}
}

type unnecessaryOption struct{ unnecessary bool }

func (o unnecessaryOption) apply(r *run.Options) {
	r.Checks.Set(config.UnnecessaryCheck, o.unnecessary)
}

func (o unnecessaryOption) LogAttr() slog.Attr {
	return slog.Bool("unnecessary", o.unnecessary)
}

// WithUnstable is an [Option] to configure whether unstable dependencies
// are reported.
func WithUnstable(unstable bool) Option { return unstableOption{unstable: unstable} }

type unstableOption struct{ unstable bool }

func (o unstableOption) apply(r *run.Options) {
	r.Checks.Set(config.UnstableCheck, o.unstable)
}

func (o unstableOption) LogAttr() slog.Attr {
	return slog.Bool("unstable", o.unstable)
}
