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

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/tlachtli/chronos/interval"
	"github.com/tlachtli/chronos/timeline"
)

const prompt = "chronos> "

// shell is an interactive session over a single Timeline, rebuilt on every
// mutating command (AddInterval etc. return a new Timeline rather than
// mutating in place).
type shell struct {
	out io.Writer
	tl  *timeline.Timeline
}

func newShell(out io.Writer, opts timeline.Options) *shell {
	return &shell{out: out, tl: timeline.New("default", timelineZeroBase(), opts)}
}

func (s *shell) loop() error {
	for {
		rl, err := readline.New(prompt)
		if err != nil {
			return err
		}
		line, err := rl.Readline()
		if err != nil {
			return err
		}
		readline.AddHistory(line)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "::quit" || line == "::exit" {
			return io.EOF
		}
		if err := s.runLine(line); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

// runLine dispatches one ::command line. Supported commands:
//
//	::add-interval <id> <start-iso> <end-iso>
//	::remove-interval <id>
//	::solve
//	::segments
//	::conflicts <start-iso> <end-iso>
func (s *shell) runLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "::add-interval":
		if len(fields) != 4 {
			return fmt.Errorf("usage: ::add-interval <id> <start-iso> <end-iso>")
		}
		iv, err := interval.NewFromISO8601(fields[1], fields[2], fields[3])
		if err != nil {
			return err
		}
		next, err := s.tl.AddInterval(iv)
		if err != nil {
			return err
		}
		s.tl = next
		fmt.Fprintf(s.out, "added %s\n", fields[1])
		return nil

	case "::remove-interval":
		if len(fields) != 2 {
			return fmt.Errorf("usage: ::remove-interval <id>")
		}
		next, err := s.tl.RemoveInterval(fields[1])
		if err != nil {
			return err
		}
		s.tl = next
		fmt.Fprintf(s.out, "removed %s\n", fields[1])
		return nil

	case "::solve":
		points, err := s.tl.Solve(context.Background(), nil)
		if err != nil {
			return err
		}
		for _, p := range points {
			fmt.Fprintf(s.out, "%s\t%s\n", p.Label, p.At)
		}
		return nil

	case "::segments":
		for _, seg := range s.tl.SegmentByBridges() {
			var ids []string
			for _, iv := range seg.Intervals() {
				ids = append(ids, iv.ID)
			}
			fmt.Fprintf(s.out, "segment %v [%v, %v): %s\n", seg.Metadata["segment"], seg.Metadata["segment_start"], seg.Metadata["segment_end"], strings.Join(ids, ", "))
		}
		return nil

	case "::conflicts":
		if len(fields) != 3 {
			return fmt.Errorf("usage: ::conflicts <start-iso> <end-iso>")
		}
		start, err := parseInstantArg(fields[1])
		if err != nil {
			return err
		}
		end, err := parseInstantArg(fields[2])
		if err != nil {
			return err
		}
		conflicts, err := s.tl.Network().CheckIntervalConflicts(start, end)
		if err != nil {
			return err
		}
		for _, iv := range conflicts {
			fmt.Fprintf(s.out, "%s\n", iv.ID)
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}
