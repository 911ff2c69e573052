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

// Package bridgemarker implements the named decision/synchronization point
// used to segment a Timeline. This is distinct from bridgelowering (the
// Allen-relation-to-STN-bound translation): the two concerns used to share
// the name "Bridge", which was a standing source of confusion, so they
// live in separate packages with separate names.
package bridgemarker

import (
	"errors"

	"github.com/tlachtli/chronos/interval"
	"github.com/tlachtli/chronos/temporal"
)

// ErrUnresolvedBridge is returned by At/Before/After when a semantic
// bridge's position has not yet been resolved (ComputedPosition is nil).
var ErrUnresolvedBridge = errors.New("bridgemarker: semantic bridge position is not yet resolved")

// Type is the kind of marker a Bridge represents.
type Type int

const (
	Decision Type = iota
	Condition
	Synchronization
	ResourceCheck
	AutoGenerated
)

func (t Type) String() string {
	switch t {
	case Decision:
		return "decision"
	case Condition:
		return "condition"
	case Synchronization:
		return "synchronization"
	case ResourceCheck:
		return "resource_check"
	case AutoGenerated:
		return "auto_generated"
	default:
		return "unknown"
	}
}

// SemanticPosition anchors a Bridge to an Allen relation against a
// reference target: either the literal timeline bounds, or another
// interval's id.
type SemanticPosition struct {
	Relation        interval.AllenRelation
	ReferenceTarget string // "timeline", or an interval id
}

// IsTimelineTarget reports whether the semantic position refers to the
// timeline as a whole rather than to a specific interval.
func (sp SemanticPosition) IsTimelineTarget() bool {
	return sp.ReferenceTarget == "timeline"
}

// Bridge is a named point used to segment a Timeline: a decision,
// condition, synchronization, resource-check, or auto-generated marker.
type Bridge struct {
	ID       string
	Type     Type
	Metadata map[string]any

	// Position is exactly one of: Absolute (set), or Semantic (set).
	Absolute *temporal.Instant
	Semantic *SemanticPosition

	// ComputedPosition holds the resolved instant for a semantic bridge,
	// once the referenced entity has been looked up. Nil until resolved.
	ComputedPosition *temporal.Instant
}

// NewAbsolute builds a Bridge positioned at a concrete Instant.
func NewAbsolute(id string, typ Type, at temporal.Instant) Bridge {
	return Bridge{ID: id, Type: typ, Absolute: &at}
}

// NewAbsoluteFromISO8601 builds an absolute Bridge from an ISO-8601 string.
func NewAbsoluteFromISO8601(id string, typ Type, iso string) (Bridge, error) {
	inst, err := temporal.Parse(iso)
	if err != nil {
		return Bridge{}, err
	}
	return NewAbsolute(id, typ, inst), nil
}

// NewSemantic builds a Bridge anchored to an Allen relation against a
// reference target. Its position is unresolved (ComputedPosition is nil)
// until the caller fills it in via Resolve.
func NewSemantic(id string, typ Type, sp SemanticPosition) Bridge {
	return Bridge{ID: id, Type: typ, Semantic: &sp}
}

// Resolve returns a copy of b with ComputedPosition set. Only meaningful
// for semantic bridges; calling it on an absolute bridge is harmless but
// pointless (Position already reports the absolute instant).
func (b Bridge) Resolve(at temporal.Instant) Bridge {
	out := b
	out.ComputedPosition = &at
	return out
}

// Position returns b's resolved instant: Absolute if set, else
// ComputedPosition, else (zero, false).
func (b Bridge) Position() (temporal.Instant, bool) {
	if b.Absolute != nil {
		return *b.Absolute, true
	}
	if b.ComputedPosition != nil {
		return *b.ComputedPosition, true
	}
	return temporal.Instant{}, false
}

// At reports whether b's position equals t. Returns ErrUnresolvedBridge if
// b is semantic and not yet resolved: refusing to guess is safer than
// silently treating an unresolved bound as either extreme.
func (b Bridge) At(t temporal.Instant) (bool, error) {
	pos, ok := b.Position()
	if !ok {
		return false, ErrUnresolvedBridge
	}
	return pos.Equal(t), nil
}

// Before reports whether b's position is strictly before t.
func (b Bridge) Before(t temporal.Instant) (bool, error) {
	pos, ok := b.Position()
	if !ok {
		return false, ErrUnresolvedBridge
	}
	return pos.Before(t), nil
}

// After reports whether b's position is strictly after t.
func (b Bridge) After(t temporal.Instant) (bool, error) {
	pos, ok := b.Position()
	if !ok {
		return false, ErrUnresolvedBridge
	}
	return pos.After(t), nil
}
