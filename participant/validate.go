// Copyright 2026 The Chronos Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package participant

import (
	"go.uber.org/multierr"

	"github.com/tlachtli/chronos/chronoerr"
)

// Valid checks p's shape against its variant tag, the way
// symbols.CheckAndDesugar validates a batch of declarations in two passes:
// collect every problem, then report them all together instead of
// bailing out on the first one.
func Valid(p Participant) error {
	var errs error
	if p.ID == "" {
		errs = multierr.Append(errs, chronoerr.New(chronoerr.InvalidParticipant, "missing required field: id"))
	}
	if p.Name == "" {
		errs = multierr.Append(errs, chronoerr.New(chronoerr.InvalidParticipant, "missing required field: name"))
	}
	switch p.Type {
	case Agent:
		if p.Capabilities == nil {
			errs = multierr.Append(errs, chronoerr.New(chronoerr.InvalidParticipant, "agent %q has no capability set", p.ID))
		}
		if p.hasOwner || p.OwnerAgentID != "" {
			errs = multierr.Append(errs, chronoerr.New(chronoerr.InvalidParticipant, "agent %q must not carry an owner reference", p.ID))
		}
	case Entity:
		if p.Capabilities != nil && p.Capabilities.Len() > 0 {
			errs = multierr.Append(errs, chronoerr.New(chronoerr.InvalidParticipant, "entity %q must not carry capabilities", p.ID))
		}
	case Hybrid:
		if p.Capabilities == nil {
			errs = multierr.Append(errs, chronoerr.New(chronoerr.InvalidParticipant, "hybrid %q has no capability set", p.ID))
		}
		if p.CurrentMode != ModeAgent && p.CurrentMode != ModeEntity {
			errs = multierr.Append(errs, chronoerr.New(chronoerr.InvalidParticipant, "hybrid %q has an unrecognized current mode", p.ID))
		}
	default:
		errs = multierr.Append(errs, chronoerr.New(chronoerr.InvalidParticipant, "unrecognized participant type tag %v", p.Type))
	}
	return errs
}
