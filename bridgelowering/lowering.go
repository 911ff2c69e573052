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

// Package bridgelowering lowers a qualitative Allen relation between two
// intervals into numeric STN distance-bound pairs. It is deliberately a
// separate package from bridgemarker (the Bridge segmentation marker),
// since the two concerns used to share a name and that was a standing
// source of confusion.
package bridgelowering

import (
	"go.uber.org/multierr"

	"github.com/tlachtli/chronos/chronoerr"
	"github.com/tlachtli/chronos/interval"
	"github.com/tlachtli/chronos/relation"
	"github.com/tlachtli/chronos/temporal"
)

// Bound is an STN distance-bound pair (lo, hi), interpreted in a given
// time unit at a given LOD resolution: lo <= t(to) - t(from) <= hi.
type Bound struct {
	Lo, Hi int64
}

// PointKind identifies which of an interval's two time points a
// constraint endpoint refers to.
type PointKind int

const (
	StartPoint PointKind = iota
	EndPoint
)

// PointRef names one endpoint of a lowered constraint: the Kind point of
// whichever of the two intervals passed to GenerateSTNConstraint IsA
// identifies (true means a, false means b).
type PointRef struct {
	IsA  bool
	Kind PointKind
}

// microRange is the (-1, 1) bound substituted wherever a fixed equality
// would otherwise produce a zero-width bound, which the downstream solver
// treats as ill-posed.
var microRange = Bound{Lo: -1, Hi: 1}

// ValidateIntervalDuration computes a's duration in unit and classifies
// it: < 1 unit is a ZeroDurationViolation, < 0 is a NegativeDuration
// (endpoint ordering violated), otherwise nil.
func ValidateIntervalDuration(a interval.Interval, unit temporal.TimeUnit) error {
	if a.IsOpenEndedOrFloating() {
		return chronoerr.New(chronoerr.InvalidIntervalSpec, "interval %q has no concrete bounds", a.ID)
	}
	d := a.DurationInUnit(unit)
	if d < 0 {
		return chronoerr.New(chronoerr.NegativeDuration, "interval %q has negative duration in %v", a.ID, unit)
	}
	if d < 1 {
		return chronoerr.New(chronoerr.ZeroDurationViolation, "interval %q has zero duration in %v", a.ID, unit)
	}
	return nil
}

// FilterValidIntervals returns the subset of ivs that pass
// ValidateIntervalDuration, preserving order. It never errors; callers
// that need per-interval diagnostics should call ValidateIntervalDuration
// themselves.
func FilterValidIntervals(ivs []interval.Interval, unit temporal.TimeUnit) []interval.Interval {
	var out []interval.Interval
	for _, iv := range ivs {
		if ValidateIntervalDuration(iv, unit) == nil {
			out = append(out, iv)
		}
	}
	return out
}

// ValidateIntervalsBatch validates every interval in ivs, accumulating
// every failure (rather than stopping at the first) via multierr, the way
// the engine's seminaive evaluator accumulates per-rule errors.
func ValidateIntervalsBatch(ivs []interval.Interval, unit temporal.TimeUnit) error {
	var errs error
	for _, iv := range ivs {
		if err := ValidateIntervalDuration(iv, unit); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// GenerateSTNConstraint lowers the Allen relation between a and b into an
// STN bound pair, along with the pair of time points (from, to) the bound
// applies between: from and to each name one endpoint of a or b, and the
// bound means lo <= t(to) - t(from) <= hi. Bounds are in ticks of unit at
// the given LOD resolution (tick = unit count x resolution); micro-ranges
// stay one tick wide on each side regardless of resolution. Both
// intervals must have positive duration in the unit; otherwise this
// reports the ValidateIntervalDuration failure.
func GenerateSTNConstraint(a, b interval.Interval, unit temporal.TimeUnit, resolution int64) (from, to PointRef, bound Bound, err error) {
	if err := ValidateIntervalDuration(a, unit); err != nil {
		return PointRef{}, PointRef{}, Bound{}, err
	}
	if err := ValidateIntervalDuration(b, unit); err != nil {
		return PointRef{}, PointRef{}, Bound{}, err
	}
	if resolution < 1 {
		resolution = 1
	}

	aStart := PointRef{IsA: true, Kind: StartPoint}
	aEnd := PointRef{IsA: true, Kind: EndPoint}
	bStart := PointRef{IsA: false, Kind: StartPoint}
	bEnd := PointRef{IsA: false, Kind: EndPoint}

	code := relation.ClassifyRelation(a, b)
	switch code {
	case relation.EQ, relation.STARTALIGN, relation.STARTEXTEND:
		return aStart, bStart, microRange, nil

	case relation.ADJF:
		return aEnd, bStart, microRange, nil

	case relation.ADJB:
		return aStart, bEnd, microRange, nil

	case relation.ENDALIGN, relation.ENDEXTEND:
		return aEnd, bEnd, microRange, nil

	case relation.PRECEDES:
		gap := gapUnits(*a.End, *b.Start, unit) * resolution
		lo := gap - 1
		if lo < 0 {
			lo = 0
		}
		return aEnd, bStart, Bound{Lo: lo, Hi: gap + 1}, nil

	case relation.FOLLOWS:
		gap := gapUnits(*b.End, *a.Start, unit) * resolution
		hi := -gap + 1
		if hi < 1 {
			hi = 1
		}
		return aStart, bEnd, Bound{Lo: -gap - 1, Hi: hi}, nil

	case relation.OVERLAPF:
		// a.start < b.start < a.end < b.end; d is how far a extends past
		// b's start, so the bound applies from b.start to a.end.
		d := overlapUnits(a, b, unit) * resolution
		if d == 0 {
			return bStart, aEnd, microRange, nil
		}
		lo := d - 1
		if lo < 0 {
			lo = 0
		}
		return bStart, aEnd, Bound{Lo: lo, Hi: d + 1}, nil

	case relation.OVERLAPB:
		// mirror of OVERLAPF with a and b swapped: bound applies from
		// b.end to a.start.
		d := overlapUnits(b, a, unit) * resolution
		if d == 0 {
			return bEnd, aStart, microRange, nil
		}
		lo := d - 1
		if lo < 0 {
			lo = 0
		}
		return bEnd, aStart, negatedSwap(Bound{Lo: lo, Hi: d + 1}), nil

	case relation.WITHIN:
		// a nested inside b: so is a's start offset from b's start, eo is
		// a's own duration. Folding eo into Hi keeps the bound's width
		// nonzero without reaching for the generic micro-range.
		so := gapUnits(*b.Start, *a.Start, unit) * resolution
		eo := a.DurationInUnit(unit) * resolution
		return bStart, aStart, Bound{Lo: so, Hi: so + eo}, nil

	case relation.CONTAINS:
		so := gapUnits(*a.Start, *b.Start, unit) * resolution
		eo := b.DurationInUnit(unit) * resolution
		return aStart, bStart, Bound{Lo: so, Hi: so + eo}, nil

	default:
		return aStart, bStart, microRange, nil
	}
}

// gapUnits returns the signed distance from -> to in unit, truncated
// toward zero like Interval.DurationInUnit.
func gapUnits(from, to temporal.Instant, unit temporal.TimeUnit) int64 {
	micros := to.Time().UnixMicro() - from.Time().UnixMicro()
	return micros / unit.Micros()
}

// overlapUnits returns the duration, in unit, that a and b overlap (0 if
// they do not overlap or merely touch).
func overlapUnits(a, b interval.Interval, unit temporal.TimeUnit) int64 {
	start := a.Start.Time()
	if b.Start.Time().After(start) {
		start = b.Start.Time()
	}
	end := a.End.Time()
	if b.End.Time().Before(end) {
		end = b.End.Time()
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start).Microseconds() / unit.Micros()
}

// negatedSwap produces the bound for the inverse relation (OVERLAP_B from
// OVERLAP_F): swap and negate.
func negatedSwap(b Bound) Bound {
	return Bound{Lo: -b.Hi, Hi: -b.Lo}
}
