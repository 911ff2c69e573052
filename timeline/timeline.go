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

// Package timeline implements the composite that owns a set of intervals,
// bridge markers, and the STN mirroring their constraints, plus the
// segmentation of that set along its bridge markers.
package timeline

import (
	"sort"

	"github.com/tlachtli/chronos/bridgelowering"
	"github.com/tlachtli/chronos/bridgemarker"
	"github.com/tlachtli/chronos/chronoerr"
	"github.com/tlachtli/chronos/interval"
	"github.com/tlachtli/chronos/stn"
	"github.com/tlachtli/chronos/temporal"
)

// Timeline is a named collection of intervals and bridge markers, backed
// by an STN that mirrors every admissible interval's constraints.
//
// Every mutating method returns a new *Timeline rather than mutating the
// receiver in place, matching the functional update semantics assigned to
// Timeline in the concurrency model: two goroutines holding the same
// *Timeline never race, because neither can change what the other sees.
type Timeline struct {
	ID       string
	bridges  map[string]bridgemarker.Bridge
	network  *stn.STN
	baseTime temporal.Instant

	// Metadata is a free-form bag carried alongside the timeline itself
	// (distinct from any one interval's own metadata). SegmentByBridges
	// populates it with segment/segment_start/segment_end/bridge_before on
	// the Timelines it produces.
	Metadata map[string]any
}

// Options configures a new Timeline's backing STN.
type Options struct {
	Unit          temporal.TimeUnit
	LOD           temporal.LOD
	MaxTimepoints int
}

// New constructs an empty Timeline. baseTime anchors the STN's zero offset
// to a concrete wall-clock instant, so Solve can report absolute instants
// rather than bare integer offsets. Pass the zero Instant to have Solve
// fall back to the earliest start among the timeline's own intervals,
// truncated to the minute.
func New(id string, baseTime temporal.Instant, opts Options) *Timeline {
	return &Timeline{
		ID:       id,
		bridges:  map[string]bridgemarker.Bridge{},
		network:  stn.New(stn.Options{Unit: opts.Unit, LOD: opts.LOD, MaxTimepoints: opts.MaxTimepoints}),
		baseTime: baseTime,
		Metadata: map[string]any{},
	}
}

// Intervals returns every interval currently mirrored into t's network, in
// no particular order.
func (t *Timeline) Intervals() []interval.Interval {
	return t.network.GetIntervals()
}

// clone makes a shallow copy of t suitable as the receiver of the next
// mutation; the STN itself is deep-copied since it owns mutable maps.
func (t *Timeline) clone() *Timeline {
	out := &Timeline{
		ID:       t.ID,
		bridges:  make(map[string]bridgemarker.Bridge, len(t.bridges)),
		network:  t.network.Clone(),
		baseTime: t.baseTime,
		Metadata: make(map[string]any, len(t.Metadata)),
	}
	for k, v := range t.bridges {
		out.bridges[k] = v
	}
	for k, v := range t.Metadata {
		out.Metadata[k] = v
	}
	return out
}

// AddInterval returns a new Timeline with iv mirrored into the network.
func (t *Timeline) AddInterval(iv interval.Interval) (*Timeline, error) {
	out := t.clone()
	if err := out.network.AddInterval(iv); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateInterval returns a new Timeline with the interval stored under
// iv.ID replaced.
func (t *Timeline) UpdateInterval(iv interval.Interval) (*Timeline, error) {
	out := t.clone()
	if err := out.network.UpdateInterval(iv); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveInterval returns a new Timeline with the interval id removed.
func (t *Timeline) RemoveInterval(id string) (*Timeline, error) {
	out := t.clone()
	if err := out.network.RemoveInterval(id); err != nil {
		return nil, err
	}
	return out, nil
}

// GetInterval looks up an interval by id.
func (t *Timeline) GetInterval(id string) (interval.Interval, bool) {
	return t.network.GetInterval(id)
}

// AddIntervals returns a new Timeline with every interval in ivs mirrored
// in, in order. The whole batch is validated up front, reporting every
// ill-posed interval at once rather than only the first; a failure leaves
// the receiver's value untouched.
func (t *Timeline) AddIntervals(ivs []interval.Interval) (*Timeline, error) {
	if err := bridgelowering.ValidateIntervalsBatch(ivs, t.network.Unit); err != nil {
		return nil, err
	}
	out := t.clone()
	for _, iv := range ivs {
		if err := out.network.AddInterval(iv); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// AddRelation lowers the Allen relation between two mirrored intervals
// into a pairwise STN constraint. Mirroring an interval records only its
// own duration constraint, so two intervals stay mutually unconstrained
// until the relation between them is declared here (or supplied raw via
// AddConstraint).
func (t *Timeline) AddRelation(aID, bID string) (*Timeline, error) {
	out := t.clone()
	if err := out.network.AddIntervalRelation(aID, bID); err != nil {
		return nil, err
	}
	return out, nil
}

// AddConstraint passes an explicit STN constraint straight through to the
// backing network, for callers that need to express something the Allen
// relation lowering does not cover.
func (t *Timeline) AddConstraint(from, to string, bound bridgelowering.Bound) (*Timeline, error) {
	out := t.clone()
	if err := out.network.AddConstraint(from, to, stn.Bound{Lo: bound.Lo, Hi: bound.Hi}); err != nil {
		return nil, err
	}
	return out, nil
}

// Network exposes the backing STN for read-only queries (overlap, free
// slot, conflict checks) that don't belong on Timeline itself.
func (t *Timeline) Network() *stn.STN {
	return t.network
}

// boundaryCollision reports the id of the first interval whose start or end
// exactly matches pos, if any.
func (t *Timeline) boundaryCollision(pos temporal.Instant) (string, bool) {
	for _, iv := range t.network.GetIntervals() {
		if iv.Start != nil && iv.Start.Equal(pos) {
			return iv.ID, true
		}
		if iv.End != nil && iv.End.Equal(pos) {
			return iv.ID, true
		}
	}
	return "", false
}

// AddBridge returns a new Timeline with b inserted. Refuses a duplicate
// id, a bridge whose resolved position (absolute, or computed for a
// semantic bridge) exactly collides with another bridge's resolved
// position, and one that coincides with an existing
// interval's start or end boundary (BoundaryConflict in both cases), since
// a marker sitting exactly on another cut point makes "the segment
// starting here" ambiguous.
func (t *Timeline) AddBridge(b bridgemarker.Bridge) (*Timeline, error) {
	if _, exists := t.bridges[b.ID]; exists {
		return nil, chronoerr.New(chronoerr.DuplicateID, "bridge %q already present", b.ID)
	}
	if pos, ok := b.Position(); ok {
		for _, existing := range t.bridges {
			if epos, ok := existing.Position(); ok && epos.Equal(pos) {
				return nil, chronoerr.New(chronoerr.BoundaryConflict, "bridge %q collides with %q at %s", b.ID, existing.ID, pos)
			}
		}
		if ivID, ok := t.boundaryCollision(pos); ok {
			return nil, chronoerr.New(chronoerr.BoundaryConflict, "bridge %q collides with interval %q's boundary at %s", b.ID, ivID, pos)
		}
	}
	out := t.clone()
	out.bridges[b.ID] = b
	return out, nil
}

// UpdateBridge returns a new Timeline with the bridge stored under
// b.ID replaced, applying the same collision checks as AddBridge.
func (t *Timeline) UpdateBridge(b bridgemarker.Bridge) (*Timeline, error) {
	if _, exists := t.bridges[b.ID]; !exists {
		return nil, chronoerr.New(chronoerr.InvalidIntervalSpec, "bridge %q not present", b.ID)
	}
	if pos, ok := b.Position(); ok {
		for _, existing := range t.bridges {
			if existing.ID == b.ID {
				continue
			}
			if epos, ok := existing.Position(); ok && epos.Equal(pos) {
				return nil, chronoerr.New(chronoerr.BoundaryConflict, "bridge %q collides with %q at %s", b.ID, existing.ID, pos)
			}
		}
		if ivID, ok := t.boundaryCollision(pos); ok {
			return nil, chronoerr.New(chronoerr.BoundaryConflict, "bridge %q collides with interval %q's boundary at %s", b.ID, ivID, pos)
		}
	}
	out := t.clone()
	out.bridges[b.ID] = b
	return out, nil
}

// RemoveBridge returns a new Timeline with the bridge id removed.
func (t *Timeline) RemoveBridge(id string) (*Timeline, error) {
	if _, exists := t.bridges[id]; !exists {
		return nil, chronoerr.New(chronoerr.InvalidIntervalSpec, "bridge %q not present", id)
	}
	out := t.clone()
	delete(out.bridges, id)
	return out, nil
}

// GetBridge looks up a bridge by id.
func (t *Timeline) GetBridge(id string) (bridgemarker.Bridge, bool) {
	b, ok := t.bridges[id]
	return b, ok
}

// GetBridges returns every bridge, sorted by resolved position (unresolved
// semantic bridges sort last, in id order).
func (t *Timeline) GetBridges() []bridgemarker.Bridge {
	out := make([]bridgemarker.Bridge, 0, len(t.bridges))
	for _, b := range t.bridges {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		pi, oki := out[i].Position()
		pj, okj := out[j].Position()
		if oki && okj {
			return pi.Before(pj)
		}
		if oki != okj {
			return oki
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// BridgePositions returns the resolved instant of every resolved bridge,
// keyed by id.
func (t *Timeline) BridgePositions() map[string]temporal.Instant {
	out := map[string]temporal.Instant{}
	for id, b := range t.bridges {
		if pos, ok := b.Position(); ok {
			out[id] = pos
		}
	}
	return out
}

// BridgesInRange returns every bridge whose resolved position falls in
// [start, end).
func (t *Timeline) BridgesInRange(start, end temporal.Instant) []bridgemarker.Bridge {
	var out []bridgemarker.Bridge
	for _, b := range t.GetBridges() {
		pos, ok := b.Position()
		if !ok {
			continue
		}
		if !pos.Before(start) && pos.Before(end) {
			out = append(out, b)
		}
	}
	return out
}
