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

// Binary chronosctl is an interactive shell over a single Timeline, for
// exploring interval scheduling and segmentation from a terminal.
package main

import (
	"flag"
	"io"
	"os"

	log "github.com/golang/glog"

	"github.com/tlachtli/chronos/temporal"
	"github.com/tlachtli/chronos/timeline"
)

var (
	unit = flag.String("unit", "second", "time unit for the STN: second, millisecond, microsecond, minute, hour, day")
	lod  = flag.String("lod", "medium", "LOD resolution: ultra_high, high, medium, low, very_low")
	exec = flag.String("exec", "", "if non-empty, runs a single command and exits instead of starting the REPL")
	out  = flag.String("out", "", "if non-empty, write command output to this file instead of stdout")
)

func main() {
	flag.Parse()

	writer := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Exit(err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Exit(err)
			}
		}()
		writer = f
	}

	u, ok := parseUnit(*unit)
	if !ok {
		log.Exitf("unknown -unit %q", *unit)
	}
	l, ok := parseLOD(*lod)
	if !ok {
		log.Exitf("unknown -lod %q", *lod)
	}

	sh := newShell(writer, timeline.Options{Unit: u, LOD: l})

	if *exec != "" {
		if err := sh.runLine(*exec); err != nil {
			log.Exitf("error running %q: %v", *exec, err)
		}
		return
	}
	if err := sh.loop(); err != nil && err != io.EOF {
		log.Exit(err)
	}
}

func parseUnit(s string) (temporal.TimeUnit, bool) {
	switch s {
	case "second":
		return temporal.Second, true
	case "millisecond":
		return temporal.Millisecond, true
	case "microsecond":
		return temporal.Microsecond, true
	case "minute":
		return temporal.Minute, true
	case "hour":
		return temporal.Hour, true
	case "day":
		return temporal.Day, true
	default:
		return 0, false
	}
}

func parseLOD(s string) (temporal.LOD, bool) {
	switch s {
	case "ultra_high":
		return temporal.UltraHigh, true
	case "high":
		return temporal.High, true
	case "medium":
		return temporal.Medium, true
	case "low":
		return temporal.Low, true
	case "very_low":
		return temporal.VeryLow, true
	default:
		return 0, false
	}
}
