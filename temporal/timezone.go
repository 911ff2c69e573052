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

// Package temporal holds the pure, timezone-aware time primitives the rest
// of the engine builds on: Instant, TimeUnit, and level-of-detail (LOD)
// resolution.
package temporal

import (
	"strings"
	"sync"
	"time"
)

// defaultTimezone is the zone used when a caller does not name one
// explicitly. Defaults to UTC. Change it with SetTimezone.
var (
	defaultTimezone   = time.UTC
	defaultTimezoneMu sync.RWMutex
)

// timezoneAbbreviations maps common non-IANA abbreviations to IANA zone
// names so callers can write "PST" instead of "America/Los_Angeles".
var timezoneAbbreviations = map[string]string{
	"EST":  "America/New_York",
	"EDT":  "America/New_York",
	"CST":  "America/Chicago",
	"CDT":  "America/Chicago",
	"MST":  "America/Denver",
	"MDT":  "America/Denver",
	"PST":  "America/Los_Angeles",
	"PDT":  "America/Los_Angeles",
	"AKST": "America/Anchorage",
	"AKDT": "America/Anchorage",
	"HST":  "Pacific/Honolulu",
	"GMT":  "Europe/London",
	"BST":  "Europe/London",
	"CET":  "Europe/Paris",
	"CEST": "Europe/Paris",
	"EET":  "Europe/Helsinki",
	"EEST": "Europe/Helsinki",
	"JST":  "Asia/Tokyo",
	"KST":  "Asia/Seoul",
	"IST":  "Asia/Kolkata",
	"AEST": "Australia/Sydney",
	"AEDT": "Australia/Sydney",
	"AWST": "Australia/Perth",
}

// SetTimezone sets the default timezone used by FromComponents when no
// explicit zone is passed. Accepts IANA names ("UTC",
// "America/New_York"), common abbreviations ("PST"), or "Local".
func SetTimezone(tz string) error {
	loc, err := ParseTimezone(tz)
	if err != nil {
		return err
	}
	defaultTimezoneMu.Lock()
	defaultTimezone = loc
	defaultTimezoneMu.Unlock()
	return nil
}

// DefaultTimezone returns the currently configured default timezone.
func DefaultTimezone() *time.Location {
	defaultTimezoneMu.RLock()
	defer defaultTimezoneMu.RUnlock()
	return defaultTimezone
}

// ParseTimezone resolves a timezone name to a *time.Location, accepting
// IANA names, common abbreviations, "UTC", and "Local".
func ParseTimezone(tz string) (*time.Location, error) {
	switch strings.ToLower(tz) {
	case "utc", "":
		return time.UTC, nil
	case "local":
		return time.Local, nil
	}
	if ianaName, ok := timezoneAbbreviations[strings.ToUpper(tz)]; ok {
		return time.LoadLocation(ianaName)
	}
	return time.LoadLocation(tz)
}
