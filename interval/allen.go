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

// AllenRelation is one of the 13 qualitative relations between two
// intervals.
type AllenRelation int

const (
	Before AllenRelation = iota
	Meets
	Overlaps_
	FinishedBy
	ContainsRel
	Starts
	Equals
	StartedBy
	During
	Finishes
	OverlappedBy
	MetBy
	After
)

func (r AllenRelation) String() string {
	switch r {
	case Before:
		return "before"
	case Meets:
		return "meets"
	case Overlaps_:
		return "overlaps"
	case FinishedBy:
		return "finished_by"
	case ContainsRel:
		return "contains"
	case Starts:
		return "starts"
	case Equals:
		return "equals"
	case StartedBy:
		return "started_by"
	case During:
		return "during"
	case Finishes:
		return "finishes"
	case OverlappedBy:
		return "overlapped_by"
	case MetBy:
		return "met_by"
	case After:
		return "after"
	default:
		return "unknown"
	}
}

// Inverse returns r's Allen inverse, e.g. before<->after, meets<->met_by,
// starts<->started_by, finishes<->finished_by, during<->contains,
// overlaps<->overlapped_by, equals<->equals.
func (r AllenRelation) Inverse() AllenRelation {
	switch r {
	case Before:
		return After
	case After:
		return Before
	case Meets:
		return MetBy
	case MetBy:
		return Meets
	case Starts:
		return StartedBy
	case StartedBy:
		return Starts
	case Finishes:
		return FinishedBy
	case FinishedBy:
		return Finishes
	case During:
		return ContainsRel
	case ContainsRel:
		return During
	case Overlaps_:
		return OverlappedBy
	case OverlappedBy:
		return Overlaps_
	default: // Equals
		return Equals
	}
}

// AllenRelationOf classifies a against b into exactly one of the 13 Allen
// relations, computed from the four pairwise endpoint comparisons
// (a.start vs b.start, a.start vs b.end, a.end vs b.start, a.end vs
// b.end). Both intervals must have concrete bounds.
func AllenRelationOf(a, b Interval) AllenRelation {
	as, ae := a.Start.Time(), a.End.Time()
	bs, be := b.Start.Time(), b.End.Time()

	switch {
	case ae.Before(bs):
		return Before
	case ae.Equal(bs):
		return Meets
	case as.Before(bs) && ae.After(bs) && ae.Before(be):
		return Overlaps_
	case as.Before(bs) && ae.Equal(be):
		return FinishedBy
	case as.Before(bs) && ae.After(be):
		return ContainsRel
	case as.Equal(bs) && ae.Before(be):
		return Starts
	case as.Equal(bs) && ae.Equal(be):
		return Equals
	case as.Equal(bs) && ae.After(be):
		return StartedBy
	case as.After(bs) && ae.Before(be):
		return During
	case as.After(bs) && ae.Equal(be):
		return Finishes
	case as.After(bs) && as.Before(be) && ae.After(be):
		return OverlappedBy
	case as.Equal(be):
		return MetBy
	case as.After(be):
		return After
	default:
		// Exhaustive by construction (totality property): every pair of
		// well-formed intervals falls into exactly one case above.
		return Equals
	}
}
