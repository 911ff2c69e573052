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

	"github.com/tlachtli/chronos/chronoerr"
)

// FloydWarshallSolver is the reference Solver: it builds the full
// all-pairs shortest-path distance graph (one node per time point plus an
// implicit zero point) and reads off a feasible offset per point from the
// shortest path from zero. This is the textbook STN consistency check:
// the network is consistent iff the distance graph has no negative cycle,
// which the same all-pairs pass detects as a negative self-distance.
type FloydWarshallSolver struct{}

const infDistance = int64(1) << 40

// Solve implements Solver.
func (FloydWarshallSolver) Solve(ctx context.Context, points []string, constraints map[Edge]Bound) (map[string]int64, error) {
	// A synthetic zero point is prepended as the reference origin every
	// offset is read off relative to.
	const zero = "~zero"
	idx := map[string]int{zero: 0}
	for _, p := range points {
		if _, ok := idx[p]; !ok {
			idx[p] = len(idx)
		}
	}
	n := len(idx)
	dist := make([][]int64, n)
	for i := range dist {
		dist[i] = make([]int64, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = infDistance
			}
		}
	}
	for e, b := range constraints {
		fi, fj := idx[e.From], idx[e.To]
		if b.Hi < dist[fi][fj] {
			dist[fi][fj] = b.Hi
		}
		if -b.Lo < dist[fj][fi] {
			dist[fj][fi] = -b.Lo
		}
	}
	// The zero point gets a single reference edge to every real point
	// (dist[0][pi] <= 0), the standard single-source reduction used to
	// read off a feasible assignment. It is one-directional: adding the
	// reverse edge too would force every point back to exactly zero and
	// manufacture a negative cycle out of any network with real slack.
	for _, p := range points {
		pi := idx[p]
		if pi != 0 && dist[0][pi] > 0 {
			dist[0][pi] = 0
		}
	}

	for k := 0; k < n; k++ {
		select {
		case <-ctx.Done():
			return nil, chronoerr.New(chronoerr.SolverTimeout, "solver cancelled during Floyd-Warshall pass")
		default:
		}
		dk := dist[k]
		for i := 0; i < n; i++ {
			dik := dist[i][k]
			if dik >= infDistance {
				continue
			}
			di := dist[i]
			for j := 0; j < n; j++ {
				if v := dik + dk[j]; v < di[j] {
					di[j] = v
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return nil, chronoerr.New(chronoerr.Unsatisfiable, "STN has a negative cycle: constraints are mutually inconsistent")
		}
	}

	// Reading off dist[0][p] (not the reverse) is what makes this a valid
	// assignment: zero's only edges are outgoing, so the shortest path to
	// each point folds in every real constraint that can pull it earlier,
	// and the result is consistent by the same argument that makes the
	// all-pairs pass itself correct.
	offsets := make(map[string]int64, len(points))
	for _, p := range points {
		offsets[p] = dist[0][idx[p]]
	}
	return offsets, nil
}
