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
	"bitbucket.org/creachadair/stringset"

	"github.com/tlachtli/chronos/chronoerr"
)

// TransitionToAgent forces p's variant into an acting state and installs
// the given capability set. On a pure Entity (a variant with no hybrid
// shape to fall back on) this fails with InvalidTransition: an entity
// cannot simply start acting, it would first have to have been created as
// a Hybrid.
func TransitionToAgent(p Participant, capabilities ...string) (Participant, error) {
	switch p.Type {
	case Agent:
		out := p
		out.Capabilities = stringset.New(capabilities...)
		return out, nil
	case Hybrid:
		out := p
		out.CurrentMode = ModeAgent
		out.Capabilities = stringset.New(capabilities...)
		return out, nil
	default:
		return p, chronoerr.New(chronoerr.InvalidTransition, "participant %q is an entity with no hybrid shape; cannot transition to agent", p.ID)
	}
}

// TransitionToEntity clears a participant's acting powers. On a Hybrid this
// flips CurrentMode to ModeEntity and drops its capabilities; on a pure
// Entity it is a no-op. On an Agent it fails: a pure agent has no entity
// shape to fall back to, matching TransitionToAgent's symmetric refusal.
func TransitionToEntity(p Participant) (Participant, error) {
	switch p.Type {
	case Entity:
		return p, nil
	case Hybrid:
		out := p
		out.CurrentMode = ModeEntity
		out.Capabilities = stringset.New()
		return out, nil
	default:
		return p, chronoerr.New(chronoerr.InvalidTransition, "participant %q is a pure agent with no hybrid shape; cannot transition to entity", p.ID)
	}
}
