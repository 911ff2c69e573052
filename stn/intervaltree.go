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

import "github.com/tlachtli/chronos/interval"

// intervalTree is an augmented AVL tree keyed by interval start time, each
// node carrying the maximum end time in its subtree so that overlap and
// free-slot queries run in O(log n + k) rather than a full scan. Adapted
// from the fact store's temporal interval index (grounded on
// factstore.IntervalTree), re-keyed to our own interval.Interval.
type intervalTree struct {
	root *treeNode
	size int
}

type treeNode struct {
	iv     interval.Interval
	maxEnd int64
	height int
	left   *treeNode
	right  *treeNode
}

func newIntervalTree() *intervalTree {
	return &intervalTree{}
}

func startMicros(iv interval.Interval) int64 { return iv.Start.Time().UnixMicro() }
func endMicros(iv interval.Interval) int64    { return iv.End.Time().UnixMicro() }

func (t *intervalTree) Insert(iv interval.Interval) {
	t.root = t.insert(t.root, iv)
	t.size++
}

func (t *intervalTree) insert(node *treeNode, iv interval.Interval) *treeNode {
	if node == nil {
		return &treeNode{iv: iv, maxEnd: endMicros(iv), height: 1}
	}
	if startMicros(iv) < startMicros(node.iv) {
		node.left = t.insert(node.left, iv)
	} else {
		node.right = t.insert(node.right, iv)
	}
	return t.rebalance(node)
}

// Remove deletes every node whose interval ID matches id and rebuilds the
// tree. Removal is rare relative to queries, so a rebuild keeps this
// simple without an AVL deletion implementation.
func (t *intervalTree) Remove(id string) {
	var kept []interval.Interval
	t.All(func(iv interval.Interval) {
		if iv.ID != id {
			kept = append(kept, iv)
		}
	})
	t.root = nil
	t.size = 0
	for _, iv := range kept {
		t.Insert(iv)
	}
}

// QueryRange calls fn for every interval overlapping [start, end) (half
// open, consistent with Interval.Contains).
func (t *intervalTree) QueryRange(start, end int64, fn func(interval.Interval)) {
	t.queryRange(t.root, start, end, fn)
}

func (t *intervalTree) queryRange(node *treeNode, start, end int64, fn func(interval.Interval)) {
	if node == nil || node.maxEnd <= start {
		return
	}
	t.queryRange(node.left, start, end, fn)
	nodeStart := startMicros(node.iv)
	nodeEnd := endMicros(node.iv)
	if nodeStart < end && start < nodeEnd {
		fn(node.iv)
	}
	if nodeStart < end {
		t.queryRange(node.right, start, end, fn)
	}
}

// All calls fn for every interval in ascending start-time order.
func (t *intervalTree) All(fn func(interval.Interval)) {
	t.inOrder(t.root, fn)
}

func (t *intervalTree) inOrder(node *treeNode, fn func(interval.Interval)) {
	if node == nil {
		return
	}
	t.inOrder(node.left, fn)
	fn(node.iv)
	t.inOrder(node.right, fn)
}

func (t *intervalTree) Size() int { return t.size }

func height(n *treeNode) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight(n *treeNode) {
	l, r := height(n.left), height(n.right)
	if l > r {
		n.height = 1 + l
	} else {
		n.height = 1 + r
	}
}

func balanceFactor(n *treeNode) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func updateMaxEnd(n *treeNode) {
	n.maxEnd = endMicros(n.iv)
	if n.left != nil && n.left.maxEnd > n.maxEnd {
		n.maxEnd = n.left.maxEnd
	}
	if n.right != nil && n.right.maxEnd > n.maxEnd {
		n.maxEnd = n.right.maxEnd
	}
}

func (t *intervalTree) rotateRight(y *treeNode) *treeNode {
	x := y.left
	z := x.right
	x.right = y
	y.left = z
	updateHeight(y)
	updateMaxEnd(y)
	updateHeight(x)
	updateMaxEnd(x)
	return x
}

func (t *intervalTree) rotateLeft(x *treeNode) *treeNode {
	y := x.right
	z := y.left
	y.left = x
	x.right = z
	updateHeight(x)
	updateMaxEnd(x)
	updateHeight(y)
	updateMaxEnd(y)
	return y
}

func (t *intervalTree) rebalance(node *treeNode) *treeNode {
	updateHeight(node)
	updateMaxEnd(node)
	balance := balanceFactor(node)
	if balance > 1 {
		if balanceFactor(node.left) < 0 {
			node.left = t.rotateLeft(node.left)
		}
		return t.rotateRight(node)
	}
	if balance < -1 {
		if balanceFactor(node.right) > 0 {
			node.right = t.rotateRight(node.right)
		}
		return t.rotateLeft(node)
	}
	return node
}
