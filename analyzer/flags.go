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
	"flag"

	"fillmore-labs.com/memodeps/internal/config"
	"fillmore-labs.com/memodeps/internal/run"
)

// registerFlags binds the run options to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(modeValue{mode: &r.Mode}, "mode",
		"stability mode: conservative, moderate or aggressive")
	flags.Var(listValue{specs: &r.HookSpecs}, "hook",
		"additional memoizing call, \"name:closureArg:depsArg\" (repeatable)")
	flags.Var(listValue{specs: &r.StableSpecs}, "stable",
		"call with stable results, \"name:whole\", \"name:0,1\" or \"name:.Field\" (repeatable)")

	flags.Var(boolValue[config.Check, *config.Checks]{flags: &r.Checks, value: config.MissingListCheck},
		"missing-list", "report calls without any dependency list")
	flags.Var(boolValue[config.Check, *config.Checks]{flags: &r.Checks, value: config.UnnecessaryCheck},
		"unnecessary", "report unnecessary dependencies")
	flags.Var(boolValue[config.Check, *config.Checks]{flags: &r.Checks, value: config.UnstableCheck},
		"unstable", "report unstable dependencies")
	flags.Var(boolValue[config.Setting, *config.Behavior]{flags: &r.Behavior, value: config.IncludeGenerated},
		"generated", "check generated files")
}
