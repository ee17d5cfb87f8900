// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"math/rand"
)

const (
	// staticDepth is the size of the static array to use for keeping track
	// of the parent stack during treap operations.  Since a treap has a
	// very high probability that the tree height is logarithmic, it is
	// exceedingly unlikely that the parent stack will ever exceed this size
	// even for extremely large numbers of items.
	staticDepth = 128
)

// Key is the set of types usable as treap keys.  Keys must be totally
// ordered by < and support + so the subtree sum aggregate is defined.  Integer
// sums wrap around on overflow.  Floating point keys must not be NaN.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// PrioritySource provides the random priorities assigned to new nodes.
// *rand.Rand from math/rand satisfies it, which allows callers to seed the
// source for reproducible tree shapes.
type PrioritySource interface {
	Uint64() uint64
}

// globalSource draws priorities from the math/rand package-level source.
type globalSource struct{}

// Uint64 returns a pseudo-random priority.
func (globalSource) Uint64() uint64 {
	return rand.Uint64()
}

// Node represents a node in the treap.  Besides the key and value it caches
// the number of nodes and the sum of the keys of the subtree rooted at it.
type Node[K Key, V any] struct {
	value    V
	key      K
	child    [2]*Node[K, V] // [left, right]
	priority uint64
	size     int
	sum      K
}

// newNode returns a new node from the given key, value, and priority.  The
// node is not initially linked to any others.
func newNode[K Key, V any](key K, value V, priority uint64) *Node[K, V] {
	return &Node[K, V]{
		value:    value,
		key:      key,
		priority: priority,
		size:     1,
		sum:      key,
	}
}

// Key returns the ordering key of the node.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the value stored in the node.
func (n *Node[K, V]) Value() V {
	return n.value
}

// Priority returns the heap priority of the node.
func (n *Node[K, V]) Priority() uint64 {
	return n.priority
}

// Size returns the cached number of nodes in the subtree rooted at n.
func (n *Node[K, V]) Size() int {
	return n.size
}

// Sum returns the cached sum of the keys in the subtree rooted at n.
func (n *Node[K, V]) Sum() K {
	return n.sum
}

// Child returns the left (0) or right (1) child of the node, or nil.
func (n *Node[K, V]) Child(dir int) *Node[K, V] {
	return n.child[dir]
}

// update recomputes the size and sum aggregates from the node's key and the
// current aggregates of its children.  It must be called whenever the children
// of the node change.
func (n *Node[K, V]) update() *Node[K, V] {
	n.size = 1 + size(n.child[0]) + size(n.child[1])
	n.sum = n.key + sum(n.child[0]) + sum(n.child[1])
	return n
}

// size returns the number of nodes in the subtree rooted at n, and zero when
// there is no subtree.
func size[K Key, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// sum returns the sum of the keys in the subtree rooted at n, and zero when
// there is no subtree.
func sum[K Key, V any](n *Node[K, V]) K {
	if n == nil {
		return 0
	}
	return n.sum
}

// direction returns the index of the child of a node with nodeKey that a
// different key belongs under.  This is the only comparison used to descend
// the tree.
func direction[K Key](nodeKey, key K) int {
	if nodeKey < key {
		return 1
	}
	return 0
}

// rotate performs a single rotation of the subtree rooted at root and returns
// the new subtree root.  A dir of 0 is a left rotation, which lifts the right
// child, and a dir of 1 is a right rotation, which lifts the left child.
//
//	      root                 s
//	     /    \               / \
//	    x      s     ->    root  z
//	          / \          /  \
//	         y   z        x    y
//
// (dir = 0 shown.)  The old root is updated before the new one since the new
// root's aggregates depend on it.
func rotate[K Key, V any](root *Node[K, V], dir int) *Node[K, V] {
	s := root.child[1-dir]
	root.child[1-dir] = s.child[dir]
	s.child[dir] = root
	root.update()
	return s.update()
}

// parentStack represents a stack of parent treap nodes that are used during
// iteration and mutation.  It consists of a static array for holding the
// parents and a dynamic overflow slice.  It is extremely unlikely the overflow
// will ever be hit during normal operation, however, since a treap's height is
// probabilistic, the overflow case needs to be handled properly.  This approach
// is used because it is much more efficient for the majority case than
// dynamically allocating heap space every time the treap is walked.
type parentStack[K Key, V any] struct {
	index    int
	items    [staticDepth]*Node[K, V]
	overflow []*Node[K, V]
}

// Len returns the current number of items in the stack.
func (s *parentStack[K, V]) Len() int {
	return s.index
}

// At returns the item n number of items from the top of the stack, where 0 is
// the topmost item, without removing it.  It returns nil if n exceeds the
// number of items on the stack.
func (s *parentStack[K, V]) At(n int) *Node[K, V] {
	index := s.index - n - 1
	if index < 0 {
		return nil
	}

	if index < staticDepth {
		return s.items[index]
	}

	return s.overflow[index-staticDepth]
}

// Pop removes the top item from the stack.  It returns nil if the stack is
// empty.
func (s *parentStack[K, V]) Pop() *Node[K, V] {
	if s.index == 0 {
		return nil
	}

	s.index--
	if s.index < staticDepth {
		node := s.items[s.index]
		s.items[s.index] = nil
		return node
	}

	node := s.overflow[s.index-staticDepth]
	s.overflow[s.index-staticDepth] = nil
	return node
}

// Push pushes the passed item onto the top of the stack.
func (s *parentStack[K, V]) Push(node *Node[K, V]) {
	if s.index < staticDepth {
		s.items[s.index] = node
		s.index++
		return
	}

	// This approach is used over append because reslicing the slice to pop
	// the item causes the compiler to make unneeded allocations.  Also,
	// since the max number of items is related to the tree depth which
	// requires exponentially more items to increase, only increase the cap
	// one item at a time.
	index := s.index - staticDepth
	if index+1 > cap(s.overflow) {
		overflow := make([]*Node[K, V], index+1)
		copy(overflow, s.overflow)
		s.overflow = overflow
	}
	s.overflow[index] = node
	s.index++
}
