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

package interval

import (
	"testing"

	"github.com/tlachtli/chronos/temporal"
)

func mk(t *testing.T, id string, startSec, endSec float64) Interval {
	t.Helper()
	start := temporal.SecondsToInstant(startSec)
	end := temporal.SecondsToInstant(endSec)
	iv, err := New(id, start, end)
	if err != nil {
		t.Fatalf("New(%q): %v", id, err)
	}
	return iv
}

func TestAllenRelationTotality(t *testing.T) {
	// A representative pair for each of the 13 relations; the totality
	// property is that every well-formed pair lands in exactly one of
	// these 13 named cases (asserted individually below).
	cases := []struct {
		name string
		a, b Interval
		want AllenRelation
	}{
		{"before", mk(t, "a", 0, 1), mk(t, "b", 2, 3), Before},
		{"meets", mk(t, "a", 0, 1), mk(t, "b", 1, 2), Meets},
		{"overlaps", mk(t, "a", 0, 2), mk(t, "b", 1, 3), Overlaps_},
		{"finished_by", mk(t, "a", 0, 3), mk(t, "b", 1, 3), FinishedBy},
		{"contains", mk(t, "a", 0, 4), mk(t, "b", 1, 2), ContainsRel},
		{"starts", mk(t, "a", 0, 1), mk(t, "b", 0, 2), Starts},
		{"equals", mk(t, "a", 0, 2), mk(t, "b", 0, 2), Equals},
		{"started_by", mk(t, "a", 0, 2), mk(t, "b", 0, 1), StartedBy},
		{"during", mk(t, "a", 1, 2), mk(t, "b", 0, 4), During},
		{"finishes", mk(t, "a", 1, 3), mk(t, "b", 0, 3), Finishes},
		{"overlapped_by", mk(t, "a", 1, 3), mk(t, "b", 0, 2), OverlappedBy},
		{"met_by", mk(t, "a", 1, 2), mk(t, "b", 0, 1), MetBy},
		{"after", mk(t, "a", 2, 3), mk(t, "b", 0, 1), After},
	}
	seen := map[AllenRelation]bool{}
	for _, c := range cases {
		got := AllenRelationOf(c.a, c.b)
		if got != c.want {
			t.Errorf("%s: AllenRelationOf = %v, want %v", c.name, got, c.want)
		}
		seen[got] = true
	}
	if len(seen) != 13 {
		t.Errorf("only %d distinct relations observed, want 13", len(seen))
	}
}

func TestAllenInversion(t *testing.T) {
	pairs := []struct {
		a, b Interval
	}{
		{mk(t, "a", 0, 1), mk(t, "b", 2, 3)},
		{mk(t, "a", 0, 1), mk(t, "b", 1, 2)},
		{mk(t, "a", 0, 2), mk(t, "b", 1, 3)},
		{mk(t, "a", 0, 2), mk(t, "b", 0, 2)},
		{mk(t, "a", 1, 2), mk(t, "b", 0, 4)},
	}
	for _, p := range pairs {
		ab := AllenRelationOf(p.a, p.b)
		ba := AllenRelationOf(p.b, p.a)
		if ab.Inverse() != ba {
			t.Errorf("AllenRelationOf(a,b)=%v, AllenRelationOf(b,a)=%v, want inverse pair", ab, ba)
		}
	}
}

func TestOverlapsStrict(t *testing.T) {
	a := mk(t, "a", 0, 1)
	b := mk(t, "b", 1, 2)
	if Overlaps(a, b) {
		t.Error("touching intervals should not overlap under the strict definition")
	}
	c := mk(t, "c", 0, 2)
	d := mk(t, "d", 1, 3)
	if !Overlaps(c, d) {
		t.Error("genuinely overlapping intervals should overlap")
	}
}

func TestContainsHalfOpen(t *testing.T) {
	a := mk(t, "a", 0, 10)
	if !a.Contains(temporal.SecondsToInstant(0)) {
		t.Error("interval should contain its own start (half-open, inclusive start)")
	}
	if a.Contains(temporal.SecondsToInstant(10)) {
		t.Error("interval should not contain its own end (half-open, exclusive end)")
	}
}

func TestDurationInUnit(t *testing.T) {
	a := mk(t, "a", 0, 3600)
	if got := a.DurationInUnit(temporal.Hour); got != 1 {
		t.Errorf("DurationInUnit(hour) = %d, want 1", got)
	}
	if got := a.DurationInUnit(temporal.Second); got != 3600 {
		t.Errorf("DurationInUnit(second) = %d, want 3600", got)
	}
}

func TestToSTNPoints(t *testing.T) {
	iv := mk(t, "meeting", 0, 3600)
	start, end, dur := iv.ToSTNPoints(temporal.Second)
	if start != "meeting_start" || end != "meeting_end" || dur != 3600 {
		t.Errorf("ToSTNPoints = %q, %q, %d, want meeting_start, meeting_end, 3600", start, end, dur)
	}
}

func TestOpenEndedNotAdmissible(t *testing.T) {
	start := temporal.SecondsToInstant(0)
	iv := NewOpenEnded("floating", start)
	if !iv.IsOpenEndedOrFloating() {
		t.Error("open-ended interval should report as not yet STN-admissible")
	}
}
