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

// Package relation classifies pairs of intervals into the 13 wire-stable,
// language-neutral relation codes the Bridge layer lowers into STN
// constraints. The constraint-lowering half lives in bridgelowering, kept
// as a separate package from the segmentation marker (bridgemarker)
// because the two concerns used to share a name and that was a source of
// confusion.
package relation

import "github.com/tlachtli/chronos/interval"

// Code is a wire-stable, language-neutral relation code.
type Code string

const (
	EQ          Code = "EQ"
	ADJF        Code = "ADJ_F"
	ADJB        Code = "ADJ_B"
	PRECEDES    Code = "PRECEDES"
	FOLLOWS     Code = "FOLLOWS"
	OVERLAPF    Code = "OVERLAP_F"
	OVERLAPB    Code = "OVERLAP_B"
	WITHIN      Code = "WITHIN"
	CONTAINS    Code = "CONTAINS"
	STARTALIGN  Code = "START_ALIGN"
	STARTEXTEND Code = "START_EXTEND"
	ENDALIGN    Code = "END_ALIGN"
	ENDEXTEND   Code = "END_EXTEND"
)

// allenToCode is the total mapping from the 13 Allen relations to the 13
// language-neutral codes.
var allenToCode = map[interval.AllenRelation]Code{
	interval.Equals:       EQ,
	interval.Meets:        ADJF,
	interval.MetBy:        ADJB,
	interval.Before:       PRECEDES,
	interval.After:        FOLLOWS,
	interval.Overlaps_:    OVERLAPF,
	interval.OverlappedBy: OVERLAPB,
	interval.During:       WITHIN,
	interval.ContainsRel:  CONTAINS,
	interval.Starts:       STARTALIGN,
	interval.StartedBy:    STARTEXTEND,
	interval.Finishes:     ENDALIGN,
	interval.FinishedBy:   ENDEXTEND,
}

// allenNameToRelation accepts the Allen names from the external interface
// (equals, meets, met_by, overlaps, overlapped_by, during, contains,
// starts, started_by, finishes, finished_by, before, after).
var allenNameToRelation = map[string]interval.AllenRelation{
	"equals":        interval.Equals,
	"meets":         interval.Meets,
	"met_by":        interval.MetBy,
	"overlaps":      interval.Overlaps_,
	"overlapped_by": interval.OverlappedBy,
	"during":        interval.During,
	"contains":      interval.ContainsRel,
	"starts":        interval.Starts,
	"started_by":    interval.StartedBy,
	"finishes":      interval.Finishes,
	"finished_by":   interval.FinishedBy,
	"before":        interval.Before,
	"after":         interval.After,
}

// descriptions gives a short human-readable description per code.
var descriptions = map[Code]string{
	EQ:          "the two intervals occupy exactly the same span",
	ADJF:        "the first interval ends exactly where the second begins",
	ADJB:        "the first interval begins exactly where the second ends",
	PRECEDES:    "the first interval ends before the second begins, with a gap",
	FOLLOWS:     "the first interval begins after the second ends, with a gap",
	OVERLAPF:    "the first interval overlaps the start of the second",
	OVERLAPB:    "the first interval overlaps the end of the second",
	WITHIN:      "the first interval is nested entirely inside the second",
	CONTAINS:    "the first interval entirely contains the second",
	STARTALIGN:  "the intervals share a start point, the first ends first",
	STARTEXTEND: "the intervals share a start point, the first extends past the second",
	ENDALIGN:    "the intervals share an end point, the first starts later",
	ENDEXTEND:   "the intervals share an end point, the first starts earlier",
}

// ClassifyRelation classifies a against b into one of the 13
// language-neutral codes.
func ClassifyRelation(a, b interval.Interval) Code {
	return AllenToLanguageNeutral(interval.AllenRelationOf(a, b))
}

// AllenToLanguageNeutral maps an Allen relation (however it was obtained)
// to its language-neutral code. The mapping is total over the 13 Allen
// relations.
func AllenToLanguageNeutral(r interval.AllenRelation) Code {
	if code, ok := allenToCode[r]; ok {
		return code
	}
	return EQ
}

// AllenNameToRelation resolves one of the external-interface Allen names
// (e.g. "met_by") to the corresponding AllenRelation. The ok result is
// false for unrecognized names.
func AllenNameToRelation(name string) (interval.AllenRelation, bool) {
	r, ok := allenNameToRelation[name]
	return r, ok
}

// RelationDescription returns a short human-readable description of code.
func RelationDescription(code Code) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return "unknown relation code"
}
