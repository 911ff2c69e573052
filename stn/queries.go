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

package stn

import (
	"sort"
	"strconv"

	"github.com/tlachtli/chronos/interval"
	"github.com/tlachtli/chronos/temporal"
)

// GetOverlappingIntervals returns every mirrored interval overlapping
// [start, end), using the augmented interval tree rather than a linear
// scan over the intervals map.
func (s *STN) GetOverlappingIntervals(start, end temporal.Instant) []interval.Interval {
	var out []interval.Interval
	s.tree.QueryRange(start.Time().UnixMicro(), end.Time().UnixMicro(), func(iv interval.Interval) {
		out = append(out, iv)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(*out[j].Start) })
	return out
}

// CheckIntervalConflicts reports every already-mirrored interval that
// overlaps the candidate [newStart, newEnd) span, using the strict
// (touching-does-not-overlap) definition. Candidates come from the
// augmented interval tree rather than a scan over the intervals map.
func (s *STN) CheckIntervalConflicts(newStart, newEnd temporal.Instant) ([]interval.Interval, error) {
	candidate, err := interval.New("~candidate", newStart, newEnd)
	if err != nil {
		return nil, err
	}
	var conflicts []interval.Interval
	s.tree.QueryRange(newStart.Time().UnixMicro(), newEnd.Time().UnixMicro(), func(iv interval.Interval) {
		if interval.Overlaps(candidate, iv) {
			conflicts = append(conflicts, iv)
		}
	})
	sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].Start.Before(*conflicts[j].Start) })
	return conflicts, nil
}

// FindFreeSlots scans [windowStart, windowEnd) for gaps at least duration
// long that do not overlap any mirrored interval, returning each gap as an
// Interval with a synthetic id.
func (s *STN) FindFreeSlots(duration float64, windowStart, windowEnd temporal.Instant) []interval.Interval {
	busy := s.GetOverlappingIntervals(windowStart, windowEnd)

	var slots []interval.Interval
	cursor := windowStart
	slotIdx := 0
	consider := func(gapStart, gapEnd temporal.Instant) {
		if temporal.DurationSeconds(gapStart, gapEnd) < duration {
			return
		}
		slotEnd := temporal.AddSeconds(gapStart, duration)
		iv, err := interval.New(freeSlotID(slotIdx), gapStart, slotEnd)
		if err != nil {
			return
		}
		slots = append(slots, iv)
		slotIdx++
	}

	for _, iv := range busy {
		if iv.Start.After(cursor) {
			consider(cursor, *iv.Start)
		}
		if iv.End.After(cursor) {
			cursor = *iv.End
		}
	}
	if cursor.Before(windowEnd) {
		consider(cursor, windowEnd)
	}
	return slots
}

func freeSlotID(i int) string {
	return "~free_" + strconv.Itoa(i)
}

// FindNextAvailableSlot returns the earliest free slot of the given
// duration starting no earlier than earliest, searching forward from
// earliest in consecutive windows whose length starts at eight times
// duration (one hour if duration is not positive) and doubles each step.
func (s *STN) FindNextAvailableSlot(duration float64, earliest temporal.Instant) (interval.Interval, bool) {
	window := duration * 8
	if window <= 0 {
		window = 3600
	}
	cursor := earliest
	for attempt := 0; attempt < 64; attempt++ {
		windowEnd := temporal.AddSeconds(cursor, window)
		slots := s.FindFreeSlots(duration, cursor, windowEnd)
		if len(slots) > 0 {
			return slots[0], true
		}
		cursor = windowEnd
		window *= 2
	}
	return interval.Interval{}, false
}
