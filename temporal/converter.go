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
	"math"
	"time"

	"github.com/tlachtli/chronos/chronoerr"
)

// SecondsToInstant converts Unix-epoch-relative seconds into an Instant,
// rounded to microsecond precision.
func SecondsToInstant(seconds float64) Instant {
	nanos := int64(math.Round(seconds * 1e9))
	return fromTimeUnchecked(time.Unix(0, nanos).UTC())
}

// InstantToSeconds returns the microsecond-precision difference from the
// Unix epoch, in fractional seconds.
func InstantToSeconds(i Instant) float64 {
	return float64(i.t.UnixMicro()) / 1e6
}

// AddSeconds returns i advanced by seconds (may be negative), at
// microsecond precision.
func AddSeconds(i Instant, seconds float64) Instant {
	// i's own zone was vetted at construction, so re-wrapping the shifted
	// time must not re-run the naive-zone check (an Instant legitimately
	// carrying time.Local via an explicit "Local" would be refused).
	micros := int64(math.Round(seconds * 1e6))
	return fromTimeUnchecked(i.t.Add(time.Duration(micros) * time.Microsecond))
}

// DurationSeconds returns b-a in fractional seconds.
func DurationSeconds(a, b Instant) float64 {
	return float64(b.t.UnixMicro()-a.t.UnixMicro()) / 1e6
}

// MsToSeconds converts integer milliseconds to fractional seconds.
func MsToSeconds(ms int64) float64 {
	return float64(ms) / 1000.0
}

// SecondsToMs converts fractional seconds to rounded integer milliseconds.
func SecondsToMs(seconds float64) int64 {
	return int64(math.Round(seconds * 1000))
}

// ValidateTimeOrder enforces start < end strictly. Note the asymmetry with
// Interval, which admits start == end: ValidateTimeOrder is the stricter
// general-purpose check used by code (e.g. STN constraint generation) that
// cannot tolerate a zero-width gap; Interval's own invariant is the laxer,
// data-model-level one.
func ValidateTimeOrder(start, end Instant) error {
	if !start.Before(end) {
		return chronoerr.New(chronoerr.TimeOrderError, "start must be before end")
	}
	return nil
}

// SafeSecondsToInstant is the non-panicking form; seconds is always valid
// as a float64, so this never fails, but the (ok, value) shape is kept for
// symmetry with the other Safe* operations and for callers that want a
// uniform error-returning interface.
func SafeSecondsToInstant(seconds float64) (Instant, error) {
	return SecondsToInstant(seconds), nil
}

// SafeValidateTimeOrder reports the ordering check as (ok, error);
// ValidateTimeOrder already returns an error rather than raising, so this
// simply forwards.
func SafeValidateTimeOrder(start, end Instant) (bool, error) {
	if err := ValidateTimeOrder(start, end); err != nil {
		return false, err
	}
	return true, nil
}
