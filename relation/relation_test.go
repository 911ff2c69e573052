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

package relation

import (
	"testing"

	"github.com/tlachtli/chronos/interval"
	"github.com/tlachtli/chronos/temporal"
)

func mk(t *testing.T, id string, startSec, endSec float64) interval.Interval {
	t.Helper()
	iv, err := interval.New(id, temporal.SecondsToInstant(startSec), temporal.SecondsToInstant(endSec))
	if err != nil {
		t.Fatalf("New(%q): %v", id, err)
	}
	return iv
}

func TestClassifyRelation(t *testing.T) {
	cases := []struct {
		name string
		a, b interval.Interval
		want Code
	}{
		{"before", mk(t, "a", 0, 1), mk(t, "b", 2, 3), PRECEDES},
		{"meets", mk(t, "a", 0, 1), mk(t, "b", 1, 2), ADJF},
		{"overlaps", mk(t, "a", 0, 2), mk(t, "b", 1, 3), OVERLAPF},
		{"finished_by", mk(t, "a", 0, 3), mk(t, "b", 1, 3), ENDEXTEND},
		{"contains", mk(t, "a", 0, 4), mk(t, "b", 1, 2), CONTAINS},
		{"starts", mk(t, "a", 0, 1), mk(t, "b", 0, 2), STARTALIGN},
		{"equals", mk(t, "a", 0, 2), mk(t, "b", 0, 2), EQ},
		{"started_by", mk(t, "a", 0, 2), mk(t, "b", 0, 1), STARTEXTEND},
		{"during", mk(t, "a", 1, 2), mk(t, "b", 0, 4), WITHIN},
		{"finishes", mk(t, "a", 1, 3), mk(t, "b", 0, 3), ENDALIGN},
		{"overlapped_by", mk(t, "a", 1, 3), mk(t, "b", 0, 2), OVERLAPB},
		{"met_by", mk(t, "a", 1, 2), mk(t, "b", 0, 1), ADJB},
		{"after", mk(t, "a", 2, 3), mk(t, "b", 0, 1), FOLLOWS},
	}
	for _, c := range cases {
		if got := ClassifyRelation(c.a, c.b); got != c.want {
			t.Errorf("%s: ClassifyRelation = %s, want %s", c.name, got, c.want)
		}
	}
}

func TestAllenToLanguageNeutralTotal(t *testing.T) {
	seen := map[Code]bool{}
	for r := interval.Before; r <= interval.After; r++ {
		seen[AllenToLanguageNeutral(r)] = true
	}
	if len(seen) != 13 {
		t.Errorf("mapping covers %d codes, want 13", len(seen))
	}
}

func TestAllenNameToRelationRoundTrip(t *testing.T) {
	names := []string{
		"equals", "meets", "met_by", "overlaps", "overlapped_by",
		"during", "contains", "starts", "started_by", "finishes",
		"finished_by", "before", "after",
	}
	for _, name := range names {
		r, ok := AllenNameToRelation(name)
		if !ok {
			t.Errorf("AllenNameToRelation(%q) not recognized", name)
			continue
		}
		if got := r.String(); got != name {
			t.Errorf("AllenNameToRelation(%q).String() = %q", name, got)
		}
	}
	if _, ok := AllenNameToRelation("simultaneous"); ok {
		t.Error("AllenNameToRelation accepted an unknown name")
	}
}

func TestRelationDescription(t *testing.T) {
	for _, code := range []Code{EQ, ADJF, ADJB, PRECEDES, FOLLOWS, OVERLAPF, OVERLAPB, WITHIN, CONTAINS, STARTALIGN, STARTEXTEND, ENDALIGN, ENDEXTEND} {
		if RelationDescription(code) == "unknown relation code" {
			t.Errorf("RelationDescription(%s) missing", code)
		}
	}
	if got := RelationDescription(Code("NOPE")); got != "unknown relation code" {
		t.Errorf("RelationDescription(NOPE) = %q", got)
	}
}
