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

import "github.com/tlachtli/chronos/chronoerr"

// OwnedBy reports whether entity is owned by the agent with the given id.
// Calling this on an Agent or Hybrid is a type error: only entities have
// owners.
func OwnedBy(entity Participant, agentID string) (bool, error) {
	if entity.Type != Entity {
		return false, chronoerr.New(chronoerr.InvalidParticipant, "ownership queries only apply to entities, got %v", entity.Type)
	}
	return entity.hasOwner && entity.OwnerAgentID == agentID, nil
}

// HasOwner reports whether entity currently has an owner.
func HasOwner(entity Participant) (bool, error) {
	if entity.Type != Entity {
		return false, chronoerr.New(chronoerr.InvalidParticipant, "ownership queries only apply to entities, got %v", entity.Type)
	}
	return entity.hasOwner, nil
}

// TransferOwnership returns a copy of entity with its owner set to
// newOwnerID. The reference is a weak id lookup, never a pointer to the
// owning agent: nothing here touches the agent's own record, so there is
// no cycle and no shared mutable state between the two participants.
func TransferOwnership(entity Participant, newOwnerID string) (Participant, error) {
	if entity.Type != Entity {
		return entity, chronoerr.New(chronoerr.InvalidParticipant, "ownership transfer only applies to entities, got %v", entity.Type)
	}
	out := entity
	out.OwnerAgentID = newOwnerID
	out.hasOwner = true
	return out, nil
}

// RemoveOwnership returns a copy of entity with its owner reference
// cleared.
func RemoveOwnership(entity Participant) (Participant, error) {
	if entity.Type != Entity {
		return entity, chronoerr.New(chronoerr.InvalidParticipant, "ownership removal only applies to entities, got %v", entity.Type)
	}
	out := entity
	out.OwnerAgentID = ""
	out.hasOwner = false
	return out, nil
}
