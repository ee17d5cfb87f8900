// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

// Iterator walks the items of a treap in ascending key order, optionally
// limited to a range of keys.
//
// The treap must not be mutated while an iterator over it is in use.
type Iterator[K Key, V any] struct {
	pending parentStack[K, V] // Nodes still to be visited, smallest on top
	node    *Node[K, V]       // The node the iterator is positioned at
	limit   *K                // Exclusive upper bound, if any
	done    bool
}

// pushLeft pushes node and its chain of left descendants, skipping every
// subtree whose keys are all below start.
func (iter *Iterator[K, V]) pushLeft(node *Node[K, V], start *K) {
	for node != nil {
		if start != nil && node.key < *start {
			node = node.child[1]
			continue
		}
		iter.pending.Push(node)
		node = node.child[0]
	}
}

// Next advances the iterator to the next item and returns false once the
// items of the range are exhausted.  The first call positions the iterator at
// the first item of the range.
func (iter *Iterator[K, V]) Next() bool {
	if iter.done {
		return false
	}

	node := iter.pending.Pop()
	if node == nil || (iter.limit != nil && node.key >= *iter.limit) {
		iter.node = nil
		iter.pending = parentStack[K, V]{}
		iter.done = true
		return false
	}

	// Everything in the right subtree follows the node and precedes the
	// remaining pending nodes.
	iter.pushLeft(node.child[1], nil)
	iter.node = node
	return true
}

// Key returns the key of the current item or the zero key when the iterator is
// not positioned at an item.
func (iter *Iterator[K, V]) Key() K {
	if iter.node == nil {
		return 0
	}
	return iter.node.key
}

// Value returns the current item or the zero value when the iterator is not
// positioned at an item.
func (iter *Iterator[K, V]) Value() V {
	if iter.node == nil {
		var zero V
		return zero
	}
	return iter.node.value
}

// Iterator returns an iterator over the items with keys in [start, limit).
// Either bound may be nil to leave that side of the range open.  The iterator
// is not positioned at an item until Next is called:
//
//	for iter := t.Iterator(nil, nil); iter.Next(); {
//		fmt.Println(iter.Key(), iter.Value())
//	}
func (t *Treap[K, V]) Iterator(start, limit *K) *Iterator[K, V] {
	iter := &Iterator[K, V]{limit: limit}
	iter.pushLeft(t.root, start)
	return iter
}
