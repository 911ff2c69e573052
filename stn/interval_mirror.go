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
	"fmt"

	"github.com/tlachtli/chronos/bridgelowering"
	"github.com/tlachtli/chronos/chronoerr"
	"github.com/tlachtli/chronos/interval"
)

// startLabel and endLabel are the two time points an interval contributes
// to the STN point set.
func startLabel(id string) string { return fmt.Sprintf("%s_start", id) }
func endLabel(id string) string   { return fmt.Sprintf("%s_end", id) }

// pointLabel resolves a bridgelowering.PointRef (produced by
// GenerateSTNConstraint(a=aID's interval, b=bID's interval)) to the
// concrete time-point label it names.
func pointLabel(aID, bID string, ref bridgelowering.PointRef) string {
	id := bID
	if ref.IsA {
		id = aID
	}
	if ref.Kind == bridgelowering.EndPoint {
		return endLabel(id)
	}
	return startLabel(id)
}

// AddInterval mirrors iv into the STN: it contributes exactly two time
// points (start and end) and one duration constraint between them, in
// ticks at the STN's LOD resolution. Mirroring never derives constraints
// against other intervals; relations between intervals are a separate,
// caller-declared step (AddIntervalRelation or a raw AddConstraint). iv
// must have both bounds resolved; open-ended or floating-duration
// intervals are not STN-admissible (InvalidIntervalSpec).
func (s *STN) AddInterval(iv interval.Interval) error {
	if iv.IsOpenEndedOrFloating() {
		return chronoerr.New(chronoerr.InvalidIntervalSpec, "interval %q is not STN-admissible: open-ended or floating duration", iv.ID)
	}
	if _, exists := s.intervals[iv.ID]; exists {
		return chronoerr.New(chronoerr.DuplicateID, "interval %q already present in STN", iv.ID)
	}
	if err := bridgelowering.ValidateIntervalDuration(iv, s.Unit); err != nil {
		return err
	}

	sl, el, dur := iv.ToSTNPoints(s.Unit)
	if err := s.AddTimePoint(sl); err != nil {
		return err
	}
	if err := s.AddTimePoint(el); err != nil {
		return err
	}

	ticks := dur * s.LODLevel.Resolution()
	if err := s.AddConstraint(sl, el, bridgelowering.Bound{Lo: ticks, Hi: ticks}); err != nil {
		return err
	}

	s.intervals[iv.ID] = iv
	s.tree.Insert(iv)
	s.Consistent = Unknown
	return nil
}

// AddIntervalRelation classifies the Allen relation between two mirrored
// intervals and adds the lowered pairwise constraint between the
// endpoints it binds. This is the explicit second step after mirroring:
// AddInterval records only each interval's own duration, so until a
// relation is declared here the two intervals are unconstrained relative
// to each other.
func (s *STN) AddIntervalRelation(aID, bID string) error {
	a, ok := s.intervals[aID]
	if !ok {
		return chronoerr.New(chronoerr.InvalidIntervalSpec, "interval %q not present in STN", aID)
	}
	b, ok := s.intervals[bID]
	if !ok {
		return chronoerr.New(chronoerr.InvalidIntervalSpec, "interval %q not present in STN", bID)
	}
	from, to, bound, err := bridgelowering.GenerateSTNConstraint(a, b, s.Unit, s.LODLevel.Resolution())
	if err != nil {
		return err
	}
	return s.AddConstraint(pointLabel(aID, bID, from), pointLabel(aID, bID, to), bound)
}

// UpdateInterval replaces the interval stored under iv.ID (which must
// already be present). Implemented as remove-then-add rather than an
// in-place constraint patch, so the same validation runs for both paths.
// Like RemoveInterval, this drops any previously declared relations
// touching the interval's points; callers re-declare the ones that still
// apply.
func (s *STN) UpdateInterval(iv interval.Interval) error {
	if _, exists := s.intervals[iv.ID]; !exists {
		return chronoerr.New(chronoerr.InvalidIntervalSpec, "interval %q not present in STN", iv.ID)
	}
	if err := s.RemoveInterval(iv.ID); err != nil {
		return err
	}
	return s.AddInterval(iv)
}

// RemoveInterval removes the interval with the given id, along with its
// two time points and every constraint touching either of them: removal is
// total, not a tombstone, so a stale constraint can never silently survive
// and reattach to a later interval reusing the same id.
func (s *STN) RemoveInterval(id string) error {
	if _, exists := s.intervals[id]; !exists {
		return chronoerr.New(chronoerr.InvalidIntervalSpec, "interval %q not present in STN", id)
	}
	sl, el := startLabel(id), endLabel(id)
	delete(s.TimePoints, sl)
	delete(s.TimePoints, el)
	for e := range s.constraints {
		if e.From == sl || e.From == el || e.To == sl || e.To == el {
			delete(s.constraints, e)
		}
	}
	delete(s.intervals, id)
	s.tree.Remove(id)
	s.Consistent = Unknown
	return nil
}

// GetInterval returns the interval stored under id.
func (s *STN) GetInterval(id string) (interval.Interval, bool) {
	iv, ok := s.intervals[id]
	return iv, ok
}

// GetIntervals returns every interval currently mirrored into the STN, in
// no particular order.
func (s *STN) GetIntervals() []interval.Interval {
	out := make([]interval.Interval, 0, len(s.intervals))
	for _, iv := range s.intervals {
		out = append(out, iv)
	}
	return out
}
