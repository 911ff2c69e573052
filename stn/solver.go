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

import (
	"context"
	"time"

	"github.com/tlachtli/chronos/bridgelowering"
	"github.com/tlachtli/chronos/chronoerr"
)

// Solver is the pluggable backend that turns a constraint snapshot into
// either a consistent assignment of offsets or a report that none exists.
// The STN ships a single in-memory Floyd-Warshall reference
// implementation (FloydWarshallSolver); a pluggable interface is kept
// anyway so a future incremental or distributed solver can be substituted
// without touching the STN's public surface.
type Solver interface {
	// Solve takes the full point set and constraint snapshot and returns
	// one feasible offset per point, relative to an arbitrary zero point
	// chosen by the solver. Returns Unsatisfiable if no assignment
	// satisfies every constraint, or SolverTimeout if ctx is cancelled
	// first.
	Solve(ctx context.Context, points []string, constraints map[Edge]Bound) (map[string]int64, error)
}

// Bound is a re-export of bridgelowering.Bound under the stn package's own
// name, since Solver implementations should not need to import
// bridgelowering just to see the bound shape.
type Bound = bridgelowering.Bound

// DefaultSolveTimeout is the timeout applied to Solve when ctx carries no
// deadline of its own.
const DefaultSolveTimeout = 5 * time.Second

// Solve runs solver (or the default FloydWarshallSolver if nil) over the
// current point and constraint set, recording the result in s.SolvedTimes
// and s.Consistent. If ctx has no deadline, DefaultSolveTimeout is applied
// so a hung or pathological solver cannot block its caller forever; on
// expiry Solve returns SolverTimeout and leaves s unchanged aside from the
// attempt itself.
func (s *STN) Solve(ctx context.Context, solver Solver) error {
	if solver == nil {
		solver = FloydWarshallSolver{}
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultSolveTimeout)
		defer cancel()
	}
	points := make([]string, 0, len(s.TimePoints))
	for p := range s.TimePoints {
		points = append(points, p)
	}
	cs := make(map[Edge]Bound, len(s.constraints))
	for e, b := range s.constraints {
		cs[e] = Bound{Lo: b.Lo, Hi: b.Hi}
	}
	times, err := solver.Solve(ctx, points, cs)
	if err != nil {
		if chronoerr.Is(err, chronoerr.Unsatisfiable) {
			s.Consistent = Inconsistent
		}
		return err
	}
	s.SolvedTimes = times
	s.Consistent = Consistent
	return nil
}
