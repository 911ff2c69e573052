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
	"time"

	"github.com/tlachtli/chronos/interval"
	"github.com/tlachtli/chronos/stn"
	"github.com/tlachtli/chronos/temporal"
)

// SolvedPoint is one time point's reconstructed wall-clock instant.
type SolvedPoint struct {
	Label string
	At    temporal.Instant
}

// Solve runs solver (nil selects the default Floyd-Warshall reference
// solver) over a copy of the backing network, leaving t itself unchanged,
// and reconstructs each point's absolute instant by adding its solved
// offset to the Timeline's base time: whatever the Timeline was
// constructed with, or the earliest mirrored interval's start truncated
// to the minute if the caller passed the zero Instant. Solved offsets
// are ticks (unit count x LOD resolution), so the conversion back to
// seconds divides the resolution out first.
func (t *Timeline) Solve(ctx context.Context, solver stn.Solver) ([]SolvedPoint, error) {
	base := t.baseTime
	if base.IsZero() {
		base = t.earliestIntervalStart()
	}
	network := t.network.Clone()
	if err := network.Solve(ctx, solver); err != nil {
		return nil, err
	}
	unitSeconds := float64(network.Unit.Micros()) / 1e6
	resolution := float64(network.LODLevel.Resolution())
	out := make([]SolvedPoint, 0, len(network.SolvedTimes))
	for label, offset := range network.SolvedTimes {
		out = append(out, SolvedPoint{
			Label: label,
			At:    temporal.AddSeconds(base, float64(offset)/resolution*unitSeconds),
		})
	}
	return out, nil
}

// earliestIntervalStart returns the earliest mirrored interval's start
// time, truncated to the minute, for use as the fallback base time when
// the Timeline was constructed with the zero Instant.
func (t *Timeline) earliestIntervalStart() temporal.Instant {
	var earliest temporal.Instant
	first := true
	for _, iv := range t.network.GetIntervals() {
		if iv.Start == nil {
			continue
		}
		if first || iv.Start.Before(earliest) {
			earliest = *iv.Start
			first = false
		}
	}
	return earliest.Truncate(time.Minute)
}

// ReconstructIntervals replaces every mirrored interval's Start/End with
// the wall-clock instants solved in points, keyed by "{id}_start" and
// "{id}_end". An interval missing either solved point (e.g. it was never
// admitted to this solve) is omitted.
func (t *Timeline) ReconstructIntervals(points []SolvedPoint) []interval.Interval {
	byLabel := make(map[string]temporal.Instant, len(points))
	for _, p := range points {
		byLabel[p.Label] = p.At
	}
	out := make([]interval.Interval, 0, len(t.network.GetIntervals()))
	for _, iv := range t.network.GetIntervals() {
		startAt, sok := byLabel[iv.ID+"_start"]
		endAt, eok := byLabel[iv.ID+"_end"]
		if !sok || !eok {
			continue
		}
		next := iv
		next.Start = &startAt
		next.End = &endAt
		out = append(out, next)
	}
	return out
}
