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
	"testing"

	"github.com/tlachtli/chronos/chronoerr"
)

func TestCapabilityLifecycle(t *testing.T) {
	a := CreateAgent("aria", "Aria", map[string]any{}, "cooking")
	if !CanPerformAction(a, "cooking") {
		t.Fatal("freshly created agent should be able to cook")
	}
	a = RemoveCapabilities(a, "cooking")
	if CanPerformAction(a, "cooking") {
		t.Fatal("capability should be gone after RemoveCapabilities")
	}
}

func TestEntityCapabilitiesNoop(t *testing.T) {
	e := CreateEntity("stove", "Stove", nil)
	e = AddCapabilities(e, "cooking")
	if CanPerformAction(e, "cooking") {
		t.Fatal("entities cannot gain capabilities")
	}
}

func TestIsCurrentlyAgent(t *testing.T) {
	h := CreateHybrid("h1", "Hybrid One", nil, ModeEntity)
	if IsCurrentlyAgent(h) {
		t.Fatal("hybrid in ModeEntity should not be currently agent")
	}
	h2, err := TransitionToAgent(h, "hacking")
	if err != nil {
		t.Fatalf("TransitionToAgent: %v", err)
	}
	if !IsCurrentlyAgent(h2) {
		t.Fatal("hybrid transitioned to agent should be currently agent")
	}
	if !CanPerformAction(h2, "hacking") {
		t.Fatal("transitioned hybrid should hold installed capabilities")
	}
}

func TestTransitionOnPureEntityFails(t *testing.T) {
	e := CreateEntity("stove", "Stove", nil)
	if _, err := TransitionToAgent(e, "cooking"); !chronoerr.Is(err, chronoerr.InvalidTransition) {
		t.Fatalf("TransitionToAgent(entity) error = %v, want invalid_transition", err)
	}
}

func TestTransitionOnPureAgentToEntityFails(t *testing.T) {
	a := CreateAgent("aria", "Aria", nil)
	if _, err := TransitionToEntity(a); !chronoerr.Is(err, chronoerr.InvalidTransition) {
		t.Fatalf("TransitionToEntity(agent) error = %v, want invalid_transition", err)
	}
}

func TestOwnership(t *testing.T) {
	e := CreateEntity("stove", "Stove", nil)
	if has, _ := HasOwner(e); has {
		t.Fatal("fresh entity should have no owner")
	}
	e, err := TransferOwnership(e, "aria")
	if err != nil {
		t.Fatalf("TransferOwnership: %v", err)
	}
	if owned, _ := OwnedBy(e, "aria"); !owned {
		t.Fatal("entity should now be owned by aria")
	}
	e, err = RemoveOwnership(e)
	if err != nil {
		t.Fatalf("RemoveOwnership: %v", err)
	}
	if has, _ := HasOwner(e); has {
		t.Fatal("entity should have no owner after removal")
	}
}

func TestOwnershipTypeErrorOnAgent(t *testing.T) {
	a := CreateAgent("aria", "Aria", nil)
	if _, err := TransferOwnership(a, "someone"); !chronoerr.Is(err, chronoerr.InvalidParticipant) {
		t.Fatalf("TransferOwnership(agent) error = %v, want invalid_participant", err)
	}
}

func TestValid(t *testing.T) {
	a := CreateAgent("aria", "Aria", nil, "cooking")
	if err := Valid(a); err != nil {
		t.Fatalf("Valid(agent) = %v, want nil", err)
	}
	bad := Participant{Type: Entity, ID: "x", Name: "X", Capabilities: nil}
	bad.Capabilities = nil
	if err := Valid(bad); err != nil {
		t.Fatalf("Valid(entity without capabilities) = %v, want nil (entities have no capability set)", err)
	}
	missing := Participant{Type: Agent}
	if err := Valid(missing); err == nil {
		t.Fatal("Valid(participant missing id/name/capabilities) = nil, want error")
	}
}
