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

package timeline

import (
	"context"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tlachtli/chronos/bridgemarker"
	"github.com/tlachtli/chronos/chronoerr"
	"github.com/tlachtli/chronos/interval"
	"github.com/tlachtli/chronos/temporal"
)

func mustIv(t *testing.T, id, start, end string) interval.Interval {
	t.Helper()
	iv, err := interval.NewFromISO8601(id, start, end)
	if err != nil {
		t.Fatalf("NewFromISO8601(%q): %v", id, err)
	}
	return iv
}

func mustInstant(t *testing.T, iso string) temporal.Instant {
	t.Helper()
	inst, err := temporal.Parse(iso)
	if err != nil {
		t.Fatalf("Parse(%q): %v", iso, err)
	}
	return inst
}

func ids(tl *Timeline) []string {
	var out []string
	for _, iv := range tl.Intervals() {
		out = append(out, iv.ID)
	}
	sort.Strings(out)
	return out
}

func TestTimelineFunctionalUpdate(t *testing.T) {
	base := New("tl", temporal.Instant{}, Options{Unit: temporal.Second})
	a := mustIv(t, "a", "2025-01-01T09:00:00Z", "2025-01-01T10:00:00Z")

	next, err := base.AddInterval(a)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := base.GetInterval("a"); ok {
		t.Error("original Timeline should be unaffected by AddInterval")
	}
	if _, ok := next.GetInterval("a"); !ok {
		t.Error("returned Timeline should contain the added interval")
	}
}

// TestAddRelationIsExplicit checks that mirroring intervals leaves them
// mutually unconstrained until the relation between them is declared.
func TestAddRelationIsExplicit(t *testing.T) {
	tl := New("tl", temporal.Instant{}, Options{Unit: temporal.Second})
	a := mustIv(t, "a", "2025-01-01T10:00:00Z", "2025-01-01T12:00:00Z")
	b := mustIv(t, "b", "2025-01-01T12:00:00Z", "2025-01-01T14:00:00Z")
	tl, err := tl.AddIntervals([]interval.Interval{a, b})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tl.Network().Constraint("a_end", "b_start"); ok {
		t.Fatal("mirroring must not derive pairwise constraints")
	}
	next, err := tl.AddRelation("a", "b")
	if err != nil {
		t.Fatalf("AddRelation: %v", err)
	}
	if _, ok := tl.Network().Constraint("a_end", "b_start"); ok {
		t.Error("AddRelation mutated the original Timeline")
	}
	bound, ok := next.Network().Constraint("a_end", "b_start")
	if !ok {
		t.Fatal("expected the lowered meets constraint on the returned Timeline")
	}
	if bound.Lo != -1 || bound.Hi != 1 {
		t.Errorf("meets bound = %+v, want {-1 1}", bound)
	}
}

func TestAddBridgeRejectsDuplicateID(t *testing.T) {
	tl := New("tl", temporal.Instant{}, Options{})
	b := bridgemarker.NewAbsolute("b1", bridgemarker.Decision, mustInstant(t, "2025-01-01T09:00:00Z"))
	tl, err := tl.AddBridge(b)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tl.AddBridge(b); !chronoerr.Is(err, chronoerr.DuplicateID) {
		t.Errorf("AddBridge duplicate = %v, want duplicate_id", err)
	}
}

func TestAddBridgeRejectsPositionCollision(t *testing.T) {
	tl := New("tl", temporal.Instant{}, Options{})
	at := mustInstant(t, "2025-01-01T09:00:00Z")
	b1 := bridgemarker.NewAbsolute("b1", bridgemarker.Decision, at)
	b2 := bridgemarker.NewAbsolute("b2", bridgemarker.Condition, at)
	tl, err := tl.AddBridge(b1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tl.AddBridge(b2); !chronoerr.Is(err, chronoerr.BoundaryConflict) {
		t.Errorf("AddBridge collision = %v, want boundary_conflict", err)
	}
}

func TestAddBridgeRejectsIntervalBoundaryCollision(t *testing.T) {
	tl := New("tl", temporal.Instant{}, Options{Unit: temporal.Second})
	a := mustIv(t, "a", "2025-01-01T09:00:00Z", "2025-01-01T10:00:00Z")
	tl, err := tl.AddInterval(a)
	if err != nil {
		t.Fatal(err)
	}
	b := bridgemarker.NewAbsolute("b1", bridgemarker.Decision, mustInstant(t, "2025-01-01T10:00:00Z"))
	if _, err := tl.AddBridge(b); !chronoerr.Is(err, chronoerr.BoundaryConflict) {
		t.Errorf("AddBridge at interval boundary = %v, want boundary_conflict", err)
	}
}

// TestSegmentByBridges is S4 plus the spanning-interval contract: a bridge
// splits two adjacent intervals into separate segments, while an interval
// spanning the bridge appears, independently, in both (it is never split
// or merged away).
func TestSegmentByBridges(t *testing.T) {
	tl := New("tl", temporal.Instant{}, Options{Unit: temporal.Second})
	before := mustIv(t, "before", "2025-01-01T08:00:00Z", "2025-01-01T09:00:00Z")
	spanning := mustIv(t, "spanning", "2025-01-01T08:30:00Z", "2025-01-01T10:30:00Z")
	after := mustIv(t, "after", "2025-01-01T10:00:00Z", "2025-01-01T11:00:00Z")

	tl, err := tl.AddIntervals([]interval.Interval{before, spanning, after})
	if err != nil {
		t.Fatal(err)
	}
	bridge := bridgemarker.NewAbsolute("cut", bridgemarker.Decision, mustInstant(t, "2025-01-01T09:30:00Z"))
	tl, err = tl.AddBridge(bridge)
	if err != nil {
		t.Fatal(err)
	}

	segments := tl.SegmentByBridges()
	if len(segments) != 2 {
		t.Fatalf("SegmentByBridges returned %d segments, want 2", len(segments))
	}
	if diff := cmp.Diff([]string{"before", "spanning"}, ids(segments[0])); diff != "" {
		t.Errorf("segment 1 intervals -want +got %s", diff)
	}
	if diff := cmp.Diff([]string{"after", "spanning"}, ids(segments[1])); diff != "" {
		t.Errorf("segment 2 intervals -want +got %s", diff)
	}
	if segments[0].Metadata["segment"] != 1 || segments[1].Metadata["segment"] != 2 {
		t.Errorf("segment metadata numbers = %v, %v, want 1, 2", segments[0].Metadata["segment"], segments[1].Metadata["segment"])
	}
	if segments[0].Metadata["bridge_before"] != nil {
		t.Errorf("first segment's bridge_before = %v, want nil", segments[0].Metadata["bridge_before"])
	}
	if segments[1].Metadata["bridge_before"] == nil {
		t.Errorf("second segment's bridge_before = nil, want the cut's position")
	}
}

func TestSegmentByBridgesNoSpanningInterval(t *testing.T) {
	tl := New("tl", temporal.Instant{}, Options{Unit: temporal.Second})
	before := mustIv(t, "before", "2025-01-01T08:00:00Z", "2025-01-01T09:00:00Z")
	after := mustIv(t, "after", "2025-01-01T10:00:00Z", "2025-01-01T11:00:00Z")
	tl, err := tl.AddIntervals([]interval.Interval{before, after})
	if err != nil {
		t.Fatal(err)
	}
	bridge := bridgemarker.NewAbsolute("cut", bridgemarker.Decision, mustInstant(t, "2025-01-01T09:30:00Z"))
	tl, err = tl.AddBridge(bridge)
	if err != nil {
		t.Fatal(err)
	}

	segments := tl.SegmentByBridges()
	if len(segments) != 2 {
		t.Fatalf("SegmentByBridges returned %d segments, want 2", len(segments))
	}
	for _, seg := range segments {
		if len(seg.Intervals()) != 1 {
			t.Errorf("segment has %d intervals, want 1", len(seg.Intervals()))
		}
	}
}

// TestBuilderAutoBridgeSpacing is S6: the first interval gets an
// auto-generated bridge at its own start, and the second (Δ=3600s past the
// first bridge, >= the 1800s spacing) gets one at the midpoint of the two
// intervals' starts.
func TestBuilderAutoBridgeSpacing(t *testing.T) {
	b := NewBuilder("tl", temporal.Instant{}, Options{Unit: temporal.Second}, true, 1800)
	if err := b.AddInterval(mustIv(t, "i1", "2025-01-01T10:00:00Z", "2025-01-01T11:00:00Z")); err != nil {
		t.Fatal(err)
	}
	if err := b.AddInterval(mustIv(t, "i2", "2025-01-01T11:00:00Z", "2025-01-01T12:00:00Z")); err != nil {
		t.Fatal(err)
	}

	bridges := b.Timeline().GetBridges()
	if len(bridges) != 2 {
		t.Fatalf("GetBridges = %d bridges, want 2", len(bridges))
	}
	for _, br := range bridges {
		if br.Type != bridgemarker.AutoGenerated {
			t.Errorf("bridge %q has type %v, want AutoGenerated", br.ID, br.Type)
		}
	}
	pos1, _ := bridges[0].Position()
	if !pos1.Equal(mustInstant(t, "2025-01-01T10:00:00Z")) {
		t.Errorf("auto_bridge_1 at %s, want 10:00:00Z", pos1)
	}
	pos2, _ := bridges[1].Position()
	if !pos2.Equal(mustInstant(t, "2025-01-01T10:30:00Z")) {
		t.Errorf("auto_bridge_2 at %s, want 10:30:00Z", pos2)
	}
}

func TestSolveReconstructsWallClockTimes(t *testing.T) {
	tl := New("tl", temporal.Instant{}, Options{Unit: temporal.Second})
	a := mustIv(t, "a", "2025-01-01T10:00:00Z", "2025-01-01T11:00:00Z")
	tl, err := tl.AddInterval(a)
	if err != nil {
		t.Fatal(err)
	}
	points, err := tl.Solve(context.Background(), nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	found := map[string]temporal.Instant{}
	for _, p := range points {
		found[p.Label] = p.At
	}
	startAt, ok := found["a_start"]
	if !ok {
		t.Fatal("expected a_start in solved points")
	}
	endAt, ok := found["a_end"]
	if !ok {
		t.Fatal("expected a_end in solved points")
	}
	if d := temporal.DurationSeconds(startAt, endAt); d < 3599 || d > 3601 {
		t.Errorf("reconstructed duration = %f, want ~3600", d)
	}

	reconstructed := tl.ReconstructIntervals(points)
	if len(reconstructed) != 1 || reconstructed[0].ID != "a" {
		t.Fatalf("ReconstructIntervals = %v, want one interval \"a\"", reconstructed)
	}
	if d := reconstructed[0].DurationSeconds(); d < 3599 || d > 3601 {
		t.Errorf("reconstructed interval duration = %f, want ~3600", d)
	}
}
