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

package main

import "github.com/tlachtli/chronos/temporal"

// timelineZeroBase returns the unset base time, letting Timeline.Solve
// default to the earliest mirrored interval's start, truncated to the
// minute.
func timelineZeroBase() temporal.Instant {
	return temporal.Instant{}
}

func parseInstantArg(s string) (temporal.Instant, error) {
	return temporal.Parse(s)
}
