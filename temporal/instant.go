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

package temporal

import (
	"errors"
	"fmt"
	"time"
)

// ErrNaiveTime is returned when an Instant is constructed from a wall-clock
// value that carries no explicit zone information.
var ErrNaiveTime = errors.New("temporal: cannot construct an Instant from a naive local time without a zone")

// Instant is a timezoned wall-clock point with at least microsecond
// precision. Two Instants in different zones compare by their underlying
// absolute time, so comparisons respect timezone without requiring callers
// to normalize first.
type Instant struct {
	t time.Time
}

// FromTime wraps a time.Time as an Instant, truncating to microsecond
// precision. A value carrying the ambient time.Local zone is refused as
// naive: time.Local is whatever machine the process happens to be running
// on, not a zone anyone named, so accepting it would let wall-clock math
// silently differ across machines. Callers who mean the machine-local
// zone say so by name, via FromComponents(..., "Local") or
// SetTimezone("Local").
func FromTime(t time.Time) (Instant, error) {
	if t.Location() == time.Local {
		return Instant{}, ErrNaiveTime
	}
	return fromTimeUnchecked(t), nil
}

// fromTimeUnchecked wraps t without the naive-zone check, for call sites
// whose zone is already known to be explicit: an existing Instant's own
// time, a location the caller resolved through ParseTimezone, or a time
// parsed by Parse from a string that carries its own zone.
func fromTimeUnchecked(t time.Time) Instant {
	return Instant{t: t.Round(time.Microsecond)}
}

// FromComponents builds an Instant from calendar fields in the named zone.
// tz follows ParseTimezone's accepted forms; an empty tz uses the default
// timezone (UTC unless changed via SetTimezone), which still counts as an
// explicit, named zone rather than a naive one.
func FromComponents(year int, month time.Month, day, hour, min, sec, nsec int, tz string) (Instant, error) {
	var loc *time.Location
	var err error
	if tz == "" {
		loc = DefaultTimezone()
	} else {
		loc, err = ParseTimezone(tz)
		if err != nil {
			return Instant{}, fmt.Errorf("temporal: %w", err)
		}
	}
	// loc was named explicitly (or is the configured default), so the
	// naive-zone check does not apply even when it resolves to time.Local.
	return fromTimeUnchecked(time.Date(year, month, day, hour, min, sec, nsec, loc)), nil
}

// Parse parses an ISO-8601 instant string of the form
// "YYYY-MM-DDTHH:MM:SS[.ffffff]Z" or with a numeric UTC offset. A string
// without zone information (naive local time, e.g. "2025-01-01T10:00:00")
// is refused.
func Parse(s string) (Instant, error) {
	layouts := []string{time.RFC3339Nano, time.RFC3339}
	var firstErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			// Both layouts require a zone in the string. time.Parse
			// reports an offset that matches the machine's zone as
			// time.Local, which FromTime would wrongly refuse as naive.
			return fromTimeUnchecked(t), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return Instant{}, fmt.Errorf("temporal: %w: %q is not a zoned ISO-8601 instant: %v", ErrNaiveTime, s, firstErr)
}

// Time returns the underlying time.Time.
func (i Instant) Time() time.Time { return i.t }

// IsZero reports whether this is the zero Instant (no construction path
// produces this other than the zero value of the struct).
func (i Instant) IsZero() bool { return i.t.IsZero() }

// Before reports whether i occurs strictly before o, in absolute time
// (correct across differing zones).
func (i Instant) Before(o Instant) bool { return i.t.Before(o.t) }

// After reports whether i occurs strictly after o.
func (i Instant) After(o Instant) bool { return i.t.After(o.t) }

// Equal reports whether i and o denote the same absolute instant,
// regardless of zone.
func (i Instant) Equal(o Instant) bool { return i.t.Equal(o.t) }

// String formats the instant as RFC3339 with nanosecond precision.
func (i Instant) String() string { return i.t.Format(time.RFC3339Nano) }

// Truncate returns a copy of i truncated to the given duration, e.g.
// i.Truncate(time.Minute) zeroes out sub-minute components.
func (i Instant) Truncate(d time.Duration) Instant {
	return Instant{t: i.t.Truncate(d)}
}
