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

import "fmt"

// TimeUnit is the unit an STN's integer bounds are expressed in.
type TimeUnit int

const (
	// Second is the default time unit.
	Second TimeUnit = iota
	Microsecond
	Millisecond
	Minute
	Hour
	Day
)

// microsPerUnit gives the microsecond factor for each TimeUnit, matching
// the conversion table in the interface contract (µs:1, ms:1e3, s:1e6,
// min:6e7, h:3.6e9, day:8.64e10).
var microsPerUnit = map[TimeUnit]int64{
	Microsecond: 1,
	Millisecond: 1_000,
	Second:      1_000_000,
	Minute:      60_000_000,
	Hour:        3_600_000_000,
	Day:         86_400_000_000,
}

// String returns the canonical lowercase name of the unit.
func (u TimeUnit) String() string {
	switch u {
	case Microsecond:
		return "microsecond"
	case Millisecond:
		return "millisecond"
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// Micros returns the number of microseconds in one unit of u.
func (u TimeUnit) Micros() int64 {
	m, ok := microsPerUnit[u]
	if !ok {
		return microsPerUnit[Second]
	}
	return m
}

// LOD (level of detail) scales real durations into integer STN ticks,
// trading precision for solver input size.
type LOD int

// The zero LOD value is reserved to mean "unspecified", so a caller who
// left it unset can be given DefaultLOD instead of silently getting
// UltraHigh.
const (
	UltraHigh LOD = iota + 1
	High
	Medium
	Low
	VeryLow
)

// lodResolution gives each LOD level's resolution multiplier.
var lodResolution = map[LOD]int64{
	UltraHigh: 1,
	High:      10,
	Medium:    100,
	Low:       1000,
	VeryLow:   10000,
}

// Resolution returns the resolution multiplier for l; tick = raw_unit_value * resolution.
func (l LOD) Resolution() int64 {
	r, ok := lodResolution[l]
	if !ok {
		return lodResolution[Medium]
	}
	return r
}

// String returns the canonical lowercase name of the LOD level.
func (l LOD) String() string {
	switch l {
	case UltraHigh:
		return "ultra_high"
	case High:
		return "high"
	case Medium:
		return "medium"
	case Low:
		return "low"
	case VeryLow:
		return "very_low"
	default:
		return fmt.Sprintf("lod(%d)", int(l))
	}
}

// DefaultUnit is the unit an STN uses when none is configured.
const DefaultUnit = Second

// DefaultLOD is the resolution level an STN uses when none is configured.
const DefaultLOD = Medium
