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

// Package interval implements the named temporal extent that is the unit
// of scheduling work: a start/end pair of Instants, an optional attached
// agent/entity, and the Allen-relation classification between two
// intervals.
package interval

import (
	"time"

	"github.com/tlachtli/chronos/chronoerr"
	"github.com/tlachtli/chronos/participant"
	"github.com/tlachtli/chronos/temporal"
)

// Metadata is the free-form bag an Interval carries, with the keys the
// core actually reasons about (open-endedness, floating duration, the
// originating ISO-8601 duration string, a "fixed schedule" flag) typed
// explicitly, and everything else left in Extra exactly as supplied.
type Metadata struct {
	OpenEndedStart   bool
	OpenEndedEnd     bool
	FloatingDuration bool
	ISO8601Duration  string
	FixedSchedule    bool
	Extra            map[string]any
}

// Interval is a named temporal extent. Start and End are nil only to
// express an open-ended or floating-duration interval; such an interval
// cannot yet be admitted to an STN (see stn.AddInterval).
type Interval struct {
	ID    string
	Start *temporal.Instant
	End   *temporal.Instant

	// Agent and Entity are non-owning references: the referenced
	// Participant's lifetime is independent of this Interval's.
	Agent  *participant.Participant
	Entity *participant.Participant

	Metadata Metadata
}

// New builds a closed Interval from two concrete Instants. It enforces
// start <= end (non-strict: see temporal.ValidateTimeOrder for the
// stricter contract used elsewhere).
func New(id string, start, end temporal.Instant, opts ...Option) (Interval, error) {
	if end.Before(start) {
		return Interval{}, chronoerr.New(chronoerr.TimeOrderError, "interval %q: start must be before or equal to end", id)
	}
	iv := Interval{ID: id, Start: &start, End: &end}
	for _, opt := range opts {
		opt(&iv)
	}
	return iv, nil
}

// Option configures optional Interval fields at construction time.
type Option func(*Interval)

// WithAgent attaches an acting participant reference.
func WithAgent(p *participant.Participant) Option {
	return func(iv *Interval) { iv.Agent = p }
}

// WithEntity attaches an acted-upon participant reference.
func WithEntity(p *participant.Participant) Option {
	return func(iv *Interval) { iv.Entity = p }
}

// WithMetadata attaches interval metadata.
func WithMetadata(m Metadata) Option {
	return func(iv *Interval) { iv.Metadata = m }
}

// NewFromISO8601 builds a closed Interval from two ISO-8601 instant
// strings (see temporal.Parse for the accepted forms).
func NewFromISO8601(id, startISO, endISO string, opts ...Option) (Interval, error) {
	start, err := temporal.Parse(startISO)
	if err != nil {
		return Interval{}, chronoerr.New(chronoerr.InvalidIntervalSpec, "interval %q: bad start: %v", id, err)
	}
	end, err := temporal.Parse(endISO)
	if err != nil {
		return Interval{}, chronoerr.New(chronoerr.InvalidIntervalSpec, "interval %q: bad end: %v", id, err)
	}
	return New(id, start, end, opts...)
}

// NewOpenStarted builds an interval with only an end bound: it is open at
// the start, and is not admissible to an STN until resolved.
func NewOpenStarted(id string, end temporal.Instant, opts ...Option) Interval {
	iv := Interval{ID: id, End: &end, Metadata: Metadata{OpenEndedStart: true}}
	for _, opt := range opts {
		opt(&iv)
	}
	return iv
}

// NewOpenEnded builds an interval with only a start bound: it is open at
// the end, and is not admissible to an STN until resolved.
func NewOpenEnded(id string, start temporal.Instant, opts ...Option) Interval {
	iv := Interval{ID: id, Start: &start, Metadata: Metadata{OpenEndedEnd: true}}
	for _, opt := range opts {
		opt(&iv)
	}
	return iv
}

// NewFloatingDuration builds an interval with neither bound resolved, only
// an ISO-8601 duration string (e.g. "PT1H30M"). It is not admissible to an
// STN until anchored to a concrete start or end.
func NewFloatingDuration(id, iso8601Duration string, opts ...Option) Interval {
	iv := Interval{ID: id, Metadata: Metadata{FloatingDuration: true, ISO8601Duration: iso8601Duration}}
	for _, opt := range opts {
		opt(&iv)
	}
	return iv
}

// IsOpenEndedOrFloating reports whether iv is missing either bound and so
// cannot yet be admitted to an STN.
func (iv Interval) IsOpenEndedOrFloating() bool {
	return iv.Start == nil || iv.End == nil
}

// DurationMs returns the interval's duration in milliseconds. Panics if
// either bound is nil; callers should check IsOpenEndedOrFloating first.
func (iv Interval) DurationMs() int64 {
	return iv.End.Time().UnixMilli() - iv.Start.Time().UnixMilli()
}

// DurationSeconds returns the interval's duration in fractional seconds.
func (iv Interval) DurationSeconds() float64 {
	return temporal.DurationSeconds(*iv.Start, *iv.End)
}

// DurationInUnit returns the interval's duration as an integer count of
// the given unit, truncating any fractional remainder.
func (iv Interval) DurationInUnit(unit temporal.TimeUnit) int64 {
	micros := iv.End.Time().UnixMicro() - iv.Start.Time().UnixMicro()
	return micros / unit.Micros()
}

// ToSTNPoints returns the two time-point labels iv contributes to an STN
// ("{id}_start" and "{id}_end") together with its duration in the given
// unit. These labels are the contract the Timeline mirror and the solver
// read-off both key on.
func (iv Interval) ToSTNPoints(unit temporal.TimeUnit) (start, end string, duration int64) {
	return iv.ID + "_start", iv.ID + "_end", iv.DurationInUnit(unit)
}

// Contains reports whether t falls within iv using half-open semantics:
// start <= t < end.
func (iv Interval) Contains(t temporal.Instant) bool {
	if iv.IsOpenEndedOrFloating() {
		return false
	}
	return !t.Before(*iv.Start) && t.Before(*iv.End)
}

// Overlaps reports whether a and b overlap, using the strict
// definition (touching intervals do not overlap): a.start < b.end &&
// b.start < a.end.
func Overlaps(a, b Interval) bool {
	if a.IsOpenEndedOrFloating() || b.IsOpenEndedOrFloating() {
		return false
	}
	return a.Start.Before(*b.End) && b.Start.Before(*a.End)
}

// durationToTime returns anchor advanced by d, for resolving an
// ISO8601Duration against an anchor instant; kept here (rather than in
// temporal) because only floating-duration Intervals need it. Nothing in
// the module calls it.
func durationToTime(anchor temporal.Instant, d time.Duration) temporal.Instant {
	return temporal.AddSeconds(anchor, d.Seconds())
}
