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

import "github.com/tlachtli/chronos/temporal"

// RescaleLOD changes the STN's level of detail in place. Every bound
// widens: Lo rounds down and Hi rounds up, so a network consistent at the
// finer LOD stays consistent at the coarser one.
func (s *STN) RescaleLOD(newLOD temporal.LOD) {
	oldRes := s.LODLevel.Resolution()
	newRes := newLOD.Resolution()
	if oldRes == newRes {
		s.LODLevel = newLOD
		return
	}
	// tick = raw_unit_value * resolution, so converting a tick already
	// scaled by oldRes to one scaled by newRes means dividing by
	// oldRes/newRes (equivalently multiplying by newRes/oldRes).
	factor := float64(oldRes) / float64(newRes)
	for e, b := range s.constraints {
		s.constraints[e] = widen(b, factor)
	}
	s.LODLevel = newLOD
	s.Consistent = Unknown
}

// widen rescales b by factor, rounding the lower bound down (toward
// -infinity) and the upper bound up (toward +infinity), so the resulting
// range is never narrower than the true rescaled range.
func widen(b Bound, factor float64) Bound {
	lo := floorDiv(float64(b.Lo), factor)
	hi := ceilDiv(float64(b.Hi), factor)
	return Bound{Lo: lo, Hi: hi}
}

func floorDiv(v, factor float64) int64 {
	q := v / factor
	f := int64(q)
	if q < 0 && float64(f) != q {
		f--
	}
	return f
}

func ceilDiv(v, factor float64) int64 {
	q := v / factor
	c := int64(q)
	if q > 0 && float64(c) != q {
		c++
	}
	return c
}

// ConvertUnits changes the STN's time unit in place, rescaling every
// constraint bound by the ratio of micros-per-unit between the old and
// new units. As with RescaleLOD, Lo rounds down and Hi rounds up to stay
// conservative.
func (s *STN) ConvertUnits(newUnit temporal.TimeUnit) {
	if newUnit == s.Unit {
		return
	}
	factor := float64(s.Unit.Micros()) / float64(newUnit.Micros())
	for e, b := range s.constraints {
		s.constraints[e] = widen(b, 1/factor)
	}
	s.Unit = newUnit
	s.Consistent = Unknown
}
