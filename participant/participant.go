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

// Package participant implements the agent / entity / hybrid sum type:
// the actor/object distinction an Interval may carry. Rather than the
// delegation-through-many-small-modules shape the original system used
// (agent, entity, capability, state, property, ownership, validation all
// as separate modules), every operation here dispatches on a single Type
// tag, the way github.com/google/mangle/ast dispatches Term operations on
// a marker method per concrete type.
package participant

import "bitbucket.org/creachadair/stringset"

// Type tags the variant a Participant currently is.
type Type int

const (
	// Agent acts: it holds capabilities and can perform actions.
	Agent Type = iota
	// Entity is acted upon: it may be owned by an agent.
	Entity
	// Hybrid can be switched between acting as an agent or an entity.
	Hybrid
)

func (t Type) String() string {
	switch t {
	case Agent:
		return "agent"
	case Entity:
		return "entity"
	case Hybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// Mode is the current acting mode of a Hybrid participant.
type Mode int

const (
	ModeAgent Mode = iota
	ModeEntity
)

func (m Mode) String() string {
	if m == ModeAgent {
		return "agent"
	}
	return "entity"
}

// Participant is the shared shape for all three variants: a type tag, id,
// name, free-form properties and metadata, plus variant-specific fields
// that only apply to some tags (Capabilities for agents/acting hybrids,
// OwnerAgentID for entities, CurrentMode for hybrids).
type Participant struct {
	Type Type
	ID   string
	Name string

	Properties map[string]any
	Metadata   map[string]any

	// Capabilities holds the symbolic powers gating which actions an agent
	// (or a hybrid currently acting as one) may perform.
	Capabilities stringset.Set

	// OwnerAgentID is a weak, lookup-only back-reference from an entity to
	// the agent that owns it. It is never a parent pointer: nothing about
	// the referenced agent's lifetime depends on this field.
	OwnerAgentID string
	hasOwner     bool

	// CurrentMode is meaningful only for Hybrid participants.
	CurrentMode Mode
}

// CreateAgent builds an Agent participant with the given capability set.
func CreateAgent(id, name string, properties map[string]any, capabilities ...string) Participant {
	return Participant{
		Type:         Agent,
		ID:           id,
		Name:         name,
		Properties:   properties,
		Capabilities: stringset.New(capabilities...),
	}
}

// CreateEntity builds an Entity participant with no owner; an owner is
// set afterward with TransferOwnership.
func CreateEntity(id, name string, properties map[string]any) Participant {
	return Participant{
		Type:       Entity,
		ID:         id,
		Name:       name,
		Properties: properties,
	}
}

// CreateHybrid builds a Hybrid participant starting in the given mode. A
// hybrid always carries a capability set, even while ModeEntity, so that
// TransitionToAgent never has to allocate one from nothing.
func CreateHybrid(id, name string, properties map[string]any, startMode Mode, capabilities ...string) Participant {
	return Participant{
		Type:         Hybrid,
		ID:           id,
		Name:         name,
		Properties:   properties,
		CurrentMode:  startMode,
		Capabilities: stringset.New(capabilities...),
	}
}

// IsAgent reports whether p's variant tag is Agent.
func IsAgent(p Participant) bool { return p.Type == Agent }

// IsEntity reports whether p's variant tag is Entity.
func IsEntity(p Participant) bool { return p.Type == Entity }

// IsCurrentlyAgent reports whether p acts as an agent right now: true for
// Agents, and for Hybrids whose CurrentMode is ModeAgent.
func IsCurrentlyAgent(p Participant) bool {
	switch p.Type {
	case Agent:
		return true
	case Hybrid:
		return p.CurrentMode == ModeAgent
	default:
		return false
	}
}

// HasCapability reports whether p currently holds the named capability.
func HasCapability(p Participant, capability string) bool {
	return p.Capabilities.Contains(capability)
}

// CanPerformAction reports whether p, in its current mode, may perform
// action: CanPerformAction(p, a) == IsCurrentlyAgent(p) && a in p.Capabilities.
func CanPerformAction(p Participant, action string) bool {
	return IsCurrentlyAgent(p) && HasCapability(p, action)
}

// AddCapability returns a copy of p with capability added to its set.
// No-op (returns p unchanged) on an Entity, which has no capability
// powers to grant.
func AddCapability(p Participant, capability string) Participant {
	return AddCapabilities(p, capability)
}

// AddCapabilities returns a copy of p with all of capabilities added.
func AddCapabilities(p Participant, capabilities ...string) Participant {
	if p.Type == Entity {
		return p
	}
	out := p
	out.Capabilities = p.Capabilities.Clone()
	out.Capabilities.Add(capabilities...)
	return out
}

// RemoveCapabilities returns a copy of p with all of capabilities removed.
// No-op on entities, which have no capability set to mutate.
func RemoveCapabilities(p Participant, capabilities ...string) Participant {
	if p.Type == Entity {
		return p
	}
	out := p
	out.Capabilities = p.Capabilities.Clone()
	out.Capabilities.Remove(stringset.New(capabilities...))
	return out
}
