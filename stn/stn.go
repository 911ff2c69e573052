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

// Package stn implements the Simple Temporal Network: a set of time
// points connected by integer distance-bound pairs, plus the mirrored
// interval index that lets a Timeline answer overlap and free-slot
// queries without delegating to the external solver.
package stn

import (
	"fmt"

	"bitbucket.org/creachadair/stringset"
	"github.com/tlachtli/chronos/bridgelowering"
	"github.com/tlachtli/chronos/chronoerr"
	"github.com/tlachtli/chronos/interval"
	"github.com/tlachtli/chronos/temporal"
)

// Consistency is the STN's tri-state satisfiability flag: it is Unknown
// until a solve attempt has been made, or until AddConstraint intersects
// a bound down to an empty range (which marks it Inconsistent).
type Consistency int

const (
	Unknown Consistency = iota
	Consistent
	Inconsistent
)

// Edge is the ordered pair of time-point labels a constraint applies
// between.
type Edge struct {
	From, To string
}

// Options configures a new STN.
type Options struct {
	Unit                temporal.TimeUnit
	LOD                 temporal.LOD
	MaxTimepoints       int // 0 means unbounded
	ConstantWorkEnabled bool
}

// STN is the time-point set plus constraint matrix described in the data
// model. Zero value is not usable; construct with New.
type STN struct {
	TimePoints  stringset.Set
	constraints map[Edge]bridgelowering.Bound
	Consistent  Consistency

	Unit          temporal.TimeUnit
	LODLevel      temporal.LOD
	MaxTimepoints int

	constantWorkEnabled bool
	dummyCount          int

	// intervals mirrors the intervals added via AddInterval, keyed by id,
	// so that GetOverlappingIntervals/FindFreeSlots/CheckIntervalConflicts
	// can be answered without rescanning the raw point/constraint maps.
	intervals map[string]interval.Interval
	tree      *intervalTree

	// SolvedTimes holds label -> integer offset (in Unit at LODLevel
	// resolution) once Solve has succeeded. Nil until then.
	SolvedTimes map[string]int64

	// Segments is the derived partition of the point set produced by the
	// most recent Timeline segmentation over this STN, if any.
	Segments [][]string
}

const dummyPrefix = "~dummy_"

// New constructs an empty STN. When opts.ConstantWorkEnabled is set, the
// point set is eagerly padded with opts.MaxTimepoints dummy points, each
// carrying a self-loop (-1, 1) constraint, so the solver's work profile is
// independent of how many real intervals are later added.
func New(opts Options) *STN {
	if opts.MaxTimepoints == 0 {
		opts.MaxTimepoints = 1 << 20 // effectively unbounded sentinel
	}
	if opts.LOD == 0 {
		opts.LOD = temporal.DefaultLOD
	}
	s := &STN{
		TimePoints:          stringset.New(),
		constraints:         map[Edge]bridgelowering.Bound{},
		Consistent:          Unknown,
		Unit:                opts.Unit,
		LODLevel:            opts.LOD,
		MaxTimepoints:       opts.MaxTimepoints,
		constantWorkEnabled: opts.ConstantWorkEnabled,
		intervals:           map[string]interval.Interval{},
		tree:                newIntervalTree(),
	}
	if opts.ConstantWorkEnabled {
		for i := 0; i < opts.MaxTimepoints; i++ {
			label := fmt.Sprintf("%s%d", dummyPrefix, i)
			s.TimePoints.Add(label)
			s.constraints[Edge{label, label}] = bridgelowering.Bound{Lo: -1, Hi: 1}
		}
		s.dummyCount = opts.MaxTimepoints
	}
	return s
}

// realPointCount returns how many non-dummy points are currently present.
func (s *STN) realPointCount() int {
	return len(s.TimePoints) - s.dummyCount
}

// AddTimePoint adds label to the point set. Refuses to exceed
// MaxTimepoints (counting only real, non-dummy points) with
// TimepointsExhausted.
func (s *STN) AddTimePoint(label string) error {
	if s.TimePoints.Contains(label) {
		return nil
	}
	if s.realPointCount() >= s.MaxTimepoints {
		return chronoerr.New(chronoerr.TimepointsExhausted, "STN is capped at %d real time points", s.MaxTimepoints)
	}
	s.TimePoints.Add(label)
	return nil
}

// AddConstraint adds (or tightens) the bound pair between from and to. If
// a constraint already exists for this ordered pair, the new one is
// intersected with it (max of los, min of his); an empty resulting
// interval (lo > hi) marks the STN Inconsistent rather than erroring, so
// that a caller building up a batch of constraints can keep going and
// inspect Consistent afterward.
func (s *STN) AddConstraint(from, to string, bound bridgelowering.Bound) error {
	if !s.TimePoints.Contains(from) {
		return chronoerr.New(chronoerr.InvalidIntervalSpec, "unknown time point %q", from)
	}
	if !s.TimePoints.Contains(to) {
		return chronoerr.New(chronoerr.InvalidIntervalSpec, "unknown time point %q", to)
	}
	e := Edge{from, to}
	merged := bound
	if existing, ok := s.constraints[e]; ok {
		merged = intersect(existing, bound)
	}
	s.constraints[e] = merged
	if merged.Lo > merged.Hi {
		s.Consistent = Inconsistent
	}
	return nil
}

// Constraint returns the current bound pair for (from, to), if any.
func (s *STN) Constraint(from, to string) (bridgelowering.Bound, bool) {
	b, ok := s.constraints[Edge{from, to}]
	return b, ok
}

// Constraints returns a copy of the full constraint map, for tests and
// for rescale/convert to iterate over.
func (s *STN) Constraints() map[Edge]bridgelowering.Bound {
	out := make(map[Edge]bridgelowering.Bound, len(s.constraints))
	for k, v := range s.constraints {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy of s: every map is independently allocated, so
// mutating the copy never affects s. Used by timeline.Timeline to provide
// functional (copy-on-write) update semantics over its backing network.
func (s *STN) Clone() *STN {
	out := &STN{
		TimePoints:          stringset.New(),
		constraints:         make(map[Edge]bridgelowering.Bound, len(s.constraints)),
		Consistent:          s.Consistent,
		Unit:                s.Unit,
		LODLevel:            s.LODLevel,
		MaxTimepoints:       s.MaxTimepoints,
		constantWorkEnabled: s.constantWorkEnabled,
		dummyCount:          s.dummyCount,
		intervals:           make(map[string]interval.Interval, len(s.intervals)),
		tree:                newIntervalTree(),
	}
	for k := range s.TimePoints {
		out.TimePoints.Add(k)
	}
	for k, v := range s.constraints {
		out.constraints[k] = v
	}
	for k, v := range s.intervals {
		out.intervals[k] = v
		out.tree.Insert(v)
	}
	if s.SolvedTimes != nil {
		out.SolvedTimes = make(map[string]int64, len(s.SolvedTimes))
		for k, v := range s.SolvedTimes {
			out.SolvedTimes[k] = v
		}
	}
	if s.Segments != nil {
		out.Segments = append([][]string(nil), s.Segments...)
	}
	return out
}

func intersect(a, b bridgelowering.Bound) bridgelowering.Bound {
	lo := a.Lo
	if b.Lo > lo {
		lo = b.Lo
	}
	hi := a.Hi
	if b.Hi < hi {
		hi = b.Hi
	}
	return bridgelowering.Bound{Lo: lo, Hi: hi}
}
