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

package bridgemarker

import (
	"errors"
	"testing"

	"github.com/tlachtli/chronos/interval"
	"github.com/tlachtli/chronos/temporal"
)

func TestAbsoluteBridgeOrdering(t *testing.T) {
	at := temporal.SecondsToInstant(100)
	b := NewAbsolute("b1", Decision, at)

	if ok, err := b.At(at); err != nil || !ok {
		t.Errorf("At(position) = %v, %v, want true, nil", ok, err)
	}
	if ok, err := b.Before(temporal.SecondsToInstant(200)); err != nil || !ok {
		t.Errorf("Before(later) = %v, %v, want true, nil", ok, err)
	}
	if ok, err := b.After(temporal.SecondsToInstant(50)); err != nil || !ok {
		t.Errorf("After(earlier) = %v, %v, want true, nil", ok, err)
	}
	if ok, err := b.Before(at); err != nil || ok {
		t.Errorf("Before(position) = %v, %v, want false, nil", ok, err)
	}
}

func TestUnresolvedSemanticBridgeRefusesOrdering(t *testing.T) {
	b := NewSemantic("b1", Synchronization, SemanticPosition{
		Relation:        interval.Before,
		ReferenceTarget: "timeline",
	})
	if _, ok := b.Position(); ok {
		t.Fatal("unresolved semantic bridge reported a position")
	}
	probe := temporal.SecondsToInstant(100)
	if _, err := b.At(probe); !errors.Is(err, ErrUnresolvedBridge) {
		t.Errorf("At on unresolved bridge: err = %v, want ErrUnresolvedBridge", err)
	}
	if _, err := b.Before(probe); !errors.Is(err, ErrUnresolvedBridge) {
		t.Errorf("Before on unresolved bridge: err = %v, want ErrUnresolvedBridge", err)
	}
	if _, err := b.After(probe); !errors.Is(err, ErrUnresolvedBridge) {
		t.Errorf("After on unresolved bridge: err = %v, want ErrUnresolvedBridge", err)
	}
}

func TestResolveFillsComputedPosition(t *testing.T) {
	b := NewSemantic("b1", Condition, SemanticPosition{
		Relation:        interval.After,
		ReferenceTarget: "i1",
	})
	if b.Semantic.IsTimelineTarget() {
		t.Error("interval-targeted semantic position reported timeline target")
	}

	at := temporal.SecondsToInstant(300)
	resolved := b.Resolve(at)
	pos, ok := resolved.Position()
	if !ok || !pos.Equal(at) {
		t.Errorf("resolved Position() = %v, %v, want %v, true", pos, ok, at)
	}
	// Resolve returns a copy; the original stays unresolved.
	if _, ok := b.Position(); ok {
		t.Error("Resolve mutated the original bridge")
	}
}

func TestNewAbsoluteFromISO8601(t *testing.T) {
	b, err := NewAbsoluteFromISO8601("b1", ResourceCheck, "2025-01-01T11:30:00Z")
	if err != nil {
		t.Fatalf("NewAbsoluteFromISO8601: %v", err)
	}
	want, err := temporal.Parse("2025-01-01T11:30:00Z")
	if err != nil {
		t.Fatal(err)
	}
	pos, ok := b.Position()
	if !ok || !pos.Equal(want) {
		t.Errorf("Position() = %v, %v, want %v, true", pos, ok, want)
	}

	if _, err := NewAbsoluteFromISO8601("b2", ResourceCheck, "2025-01-01T11:30:00"); err == nil {
		t.Error("naive (zoneless) string accepted")
	}
}

func TestTypeString(t *testing.T) {
	cases := map[Type]string{
		Decision:        "decision",
		Condition:       "condition",
		Synchronization: "synchronization",
		ResourceCheck:   "resource_check",
		AutoGenerated:   "auto_generated",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", typ, got, want)
		}
	}
}
