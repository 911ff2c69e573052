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
	"fmt"
	"sort"

	"github.com/tlachtli/chronos/bridgemarker"
	"github.com/tlachtli/chronos/interval"
	"github.com/tlachtli/chronos/stn"
	"github.com/tlachtli/chronos/temporal"
)

// defaultBoundsWindow is the fallback span used by GetTimelineBounds when a
// timeline has no concrete intervals to derive bounds from.
const defaultBoundsWindow = 24 * 3600 // seconds; one day

// TimeRange is a half-open [Start, End) span between two consecutive
// segmentation boundaries (the timeline's own bounds, and every resolved
// bridge position in between). BridgeBefore is the bridge position that
// opened this range, or nil for the first range.
type TimeRange struct {
	Start, End   temporal.Instant
	BridgeBefore *temporal.Instant
}

// GetTimelineBounds returns the earliest interval start and latest interval
// end across t's concrete intervals. Open-ended and floating-duration
// intervals are ignored, since they have no concrete bound to contribute.
// If t has no concrete intervals at all, it falls back to a default
// one-day window anchored at t's base time.
func (t *Timeline) GetTimelineBounds() (start, end temporal.Instant) {
	var have bool
	for _, iv := range t.network.GetIntervals() {
		if iv.IsOpenEndedOrFloating() {
			continue
		}
		if !have || iv.Start.Before(start) {
			start = *iv.Start
		}
		if !have || end.Before(*iv.End) {
			end = *iv.End
		}
		have = true
	}
	if !have {
		start = t.baseTime
		end = temporal.AddSeconds(start, defaultBoundsWindow)
	}
	return start, end
}

// CreateTimeRanges pairs the timeline's own bounds with every resolved
// bridge position, sorted, into consecutive half-open ranges. Unresolved
// semantic bridges (no Position) are skipped: they have no position to cut
// at.
func (t *Timeline) CreateTimeRanges() []TimeRange {
	start, end := t.GetTimelineBounds()

	var positions []temporal.Instant
	for _, b := range t.GetBridges() {
		if pos, ok := b.Position(); ok {
			positions = append(positions, pos)
		}
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].Before(positions[j]) })

	boundaries := make([]temporal.Instant, 0, len(positions)+2)
	boundaries = append(boundaries, start)
	boundaries = append(boundaries, positions...)
	boundaries = append(boundaries, end)

	ranges := make([]TimeRange, 0, len(boundaries)-1)
	for i := 0; i < len(boundaries)-1; i++ {
		r := TimeRange{Start: boundaries[i], End: boundaries[i+1]}
		if i > 0 {
			before := boundaries[i]
			r.BridgeBefore = &before
		}
		ranges = append(ranges, r)
	}
	return ranges
}

// IntervalInRange reports whether iv overlaps r: iv.Start < r.End &&
// r.Start < iv.End. Open-ended and floating-duration intervals never
// overlap any range.
func IntervalInRange(iv interval.Interval, r TimeRange) bool {
	if iv.IsOpenEndedOrFloating() {
		return false
	}
	return iv.Start.Before(r.End) && r.Start.Before(*iv.End)
}

// CreateSegment builds the Timeline for range r, numbered n: every interval
// of t that overlaps r, an empty bridge set, and a fresh STN (not a copy of
// t's). Its Metadata carries segment, segment_start, segment_end, and
// bridge_before, per the segmentation contract.
func (t *Timeline) CreateSegment(n int, r TimeRange) *Timeline {
	seg := &Timeline{
		ID:      fmt.Sprintf("%s_segment_%d", t.ID, n),
		bridges: map[string]bridgemarker.Bridge{},
		network: stn.New(stn.Options{
			Unit:          t.network.Unit,
			LOD:           t.network.LODLevel,
			MaxTimepoints: t.network.MaxTimepoints,
		}),
		baseTime: r.Start,
		Metadata: map[string]any{
			"segment":       n,
			"segment_start": r.Start,
			"segment_end":   r.End,
		},
	}
	if r.BridgeBefore != nil {
		seg.Metadata["bridge_before"] = *r.BridgeBefore
	} else {
		seg.Metadata["bridge_before"] = nil
	}
	for _, iv := range t.network.GetIntervals() {
		if !IntervalInRange(iv, r) {
			continue
		}
		// Already validated and admitted by t; re-admission into the fresh
		// segment STN cannot fail for the reasons AddInterval checks.
		_ = seg.network.AddInterval(iv)
	}
	return seg
}

// ValidateSegments drops every segment with no intervals: segmentation is a
// read-only projection, and an empty range carries no information worth
// keeping.
func ValidateSegments(segments []*Timeline) []*Timeline {
	out := make([]*Timeline, 0, len(segments))
	for _, seg := range segments {
		if len(seg.network.GetIntervals()) > 0 {
			out = append(out, seg)
		}
	}
	return out
}

// SegmentByBridges partitions t into one Timeline per range between
// consecutive bridge positions (and t's own bounds), dropping ranges with
// no intervals. An interval spanning a bridge point is not split: it
// appears, independently, in every segment whose range overlaps it.
func (t *Timeline) SegmentByBridges() []*Timeline {
	ranges := t.CreateTimeRanges()
	segments := make([]*Timeline, 0, len(ranges))
	for i, r := range ranges {
		segments = append(segments, t.CreateSegment(i+1, r))
	}
	return ValidateSegments(segments)
}
