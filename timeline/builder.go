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

package timeline

import (
	"fmt"
	"sort"

	"github.com/tlachtli/chronos/bridgemarker"
	"github.com/tlachtli/chronos/interval"
	"github.com/tlachtli/chronos/temporal"
)

// Builder is a stateful helper around Timeline that auto-inserts
// AutoGenerated bridge markers as intervals are added, instead of
// requiring the caller to place every chapter mark by hand. With
// auto-bridging enabled: the first interval added gets a bridge at its own
// start; after that, any added interval whose start falls at least
// BridgeSpacing seconds past the position of the last bridge inserted gets
// a new bridge at the midpoint between that position and the new
// interval's start.
type Builder struct {
	tl            *Timeline
	autoBridges   bool
	bridgeSpacing float64 // seconds; only consulted when autoBridges is set
	bridgeType    bridgemarker.Type

	lastBridgeTime temporal.Instant
	haveBridge     bool
	bridgeCount    int
}

// NewBuilder starts a Builder wrapping a fresh Timeline with the given id
// and base time. bridgeSpacing is in seconds and is only consulted when
// autoBridges is true.
func NewBuilder(id string, baseTime temporal.Instant, opts Options, autoBridges bool, bridgeSpacing float64) *Builder {
	return &Builder{
		tl:            New(id, baseTime, opts),
		autoBridges:   autoBridges,
		bridgeSpacing: bridgeSpacing,
		bridgeType:    bridgemarker.AutoGenerated,
	}
}

// Timeline returns the Builder's current Timeline.
func (b *Builder) Timeline() *Timeline { return b.tl }

// AddInterval mirrors iv into the Timeline and, if auto-bridging is
// enabled and iv has concrete bounds, applies the spacing rule described
// above. The bridge (when one is due) is placed before iv is mirrored in,
// so it is checked against the boundaries of intervals already on the
// Timeline rather than against iv's own start — the very point it is
// anchored to.
func (b *Builder) AddInterval(iv interval.Interval) error {
	if b.autoBridges && !iv.IsOpenEndedOrFloating() {
		b.maybeInsertBridge(*iv.Start)
	}
	next, err := b.tl.AddInterval(iv)
	if err != nil {
		return err
	}
	b.tl = next
	return nil
}

// AddIntervals sorts ivs by start time first, then adds them one at a time
// via AddInterval, so the spacing rule applies cumulatively in start order
// regardless of the order the caller supplied them in.
func (b *Builder) AddIntervals(ivs []interval.Interval) error {
	sorted := append([]interval.Interval(nil), ivs...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start == nil || sorted[j].Start == nil {
			return sorted[j].Start != nil
		}
		return sorted[i].Start.Before(*sorted[j].Start)
	})
	for _, iv := range sorted {
		if err := b.AddInterval(iv); err != nil {
			return err
		}
	}
	return nil
}

// maybeInsertBridge applies the spacing rule for an interval starting at
// start: the first interval ever seen always gets a bridge at its own
// start; subsequent intervals only get one once they fall at least
// bridgeSpacing seconds past the last bridge's position, at the midpoint
// between that position and start.
func (b *Builder) maybeInsertBridge(start temporal.Instant) {
	if !b.haveBridge {
		b.insertBridgeAt(start)
		return
	}
	if temporal.DurationSeconds(b.lastBridgeTime, start) < b.bridgeSpacing {
		return
	}
	b.insertBridgeAt(midpoint(b.lastBridgeTime, start))
}

func (b *Builder) insertBridgeAt(at temporal.Instant) {
	b.bridgeCount++
	bridge := bridgemarker.NewAbsolute(fmt.Sprintf("auto_bridge_%d", b.bridgeCount), b.bridgeType, at)
	if next, err := b.tl.AddBridge(bridge); err == nil {
		b.tl = next
	}
	b.lastBridgeTime = at
	b.haveBridge = true
}

// midpoint returns the instant halfway between a and b.
func midpoint(a, b temporal.Instant) temporal.Instant {
	return temporal.AddSeconds(a, temporal.DurationSeconds(a, b)/2)
}
