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

// ConstantWorkEnabled reports whether this STN was built with a
// pre-allocated dummy point pool (see New), so solver wall-clock time is
// independent of how many real intervals have been added so far.
func (s *STN) ConstantWorkEnabled() bool {
	return s.constantWorkEnabled
}

// DummyPoolSize returns how many dummy points were pre-allocated.
func (s *STN) DummyPoolSize() int {
	return s.dummyCount
}

// DummyPoolRemaining returns how many real time points can still be added
// before TimepointsExhausted fires.
func (s *STN) DummyPoolRemaining() int {
	remaining := s.MaxTimepoints - s.realPointCount()
	if remaining < 0 {
		return 0
	}
	return remaining
}
