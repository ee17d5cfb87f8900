// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

// KeyFunc derives the ordering key of a value.  It may fail for values that
// have no key, in which case the error is returned unchanged by the treap
// operation that needed the key.
type KeyFunc[K Key, V any] func(V) (K, error)

// EqualFunc reports whether two stored values are the same element.
type EqualFunc[V any] func(a, b V) bool

// Treap represents a treap data structure which is used to hold values
// ordered by a key derived from each value using a combination of binary
// search tree and max-heap semantics.  It is a self-organizing and randomized
// data structure that doesn't require complex operations to maintain balance.
// Search, insert, and delete operations are all expected O(log n).
//
// Every node caches the size and key sum of its subtree, so Len, Sum, Select
// and Rank never need a full traversal.
//
// A Treap is not safe for concurrent access.
type Treap[K Key, V any] struct {
	root   *Node[K, V]
	keyOf  KeyFunc[K, V]
	equal  EqualFunc[V]
	source PrioritySource
}

// New returns a new empty treap that derives keys with keyOf and compares
// values with equal.  A nil equal treats values with the same key as equal.
// Priorities are drawn from the math/rand package-level source.
func New[K Key, V any](keyOf KeyFunc[K, V], equal EqualFunc[V]) *Treap[K, V] {
	return NewWithSource(keyOf, equal, nil)
}

// NewWithSource returns a new empty treap like New that draws node priorities
// from the passed source.  A nil source uses the math/rand package-level
// source.
func NewWithSource[K Key, V any](keyOf KeyFunc[K, V], equal EqualFunc[V],
	source PrioritySource) *Treap[K, V] {

	if source == nil {
		source = globalSource{}
	}
	return &Treap[K, V]{keyOf: keyOf, equal: equal, source: source}
}

// Root returns the root node of the treap or nil when it is empty.
func (t *Treap[K, V]) Root() *Node[K, V] {
	return t.root
}

// Len returns the number of items stored in the treap.
func (t *Treap[K, V]) Len() int {
	return size(t.root)
}

// Sum returns the sum of the keys of all items stored in the treap.
func (t *Treap[K, V]) Sum() K {
	return sum(t.root)
}

// get returns the treap node that contains the passed key.  It will return nil
// when the key does not exist.
func (t *Treap[K, V]) get(key K) *Node[K, V] {
	for node := t.root; node != nil; {
		if node.key == key {
			return node
		}
		node = node.child[direction(node.key, key)]
	}
	return nil
}

// Has returns whether or not the passed key exists.
func (t *Treap[K, V]) Has(key K) bool {
	return t.get(key) != nil
}

// Get returns the value stored under the passed key and whether it exists.
func (t *Treap[K, V]) Get(key K) (V, bool) {
	if node := t.get(key); node != nil {
		return node.value, true
	}
	var zero V
	return zero, false
}

// Find derives the key of value and returns whether the node holding that key
// stores a value equal to it.
func (t *Treap[K, V]) Find(value V) (bool, error) {
	key, err := t.keyOf(value)
	if err != nil {
		return false, err
	}
	node := t.get(key)
	if node == nil {
		return false, nil
	}
	if t.equal == nil {
		return true, nil
	}
	return t.equal(node.value, value), nil
}

// relinkGrandparent relinks the node into the treap after it has been rotated
// or spliced by changing the passed grandparent's child pointer, depending on
// where the old parent was, to point at the passed node.  Otherwise, when there
// is no grandparent, it means the node is now the root of the tree, so update
// it accordingly.
func (t *Treap[K, V]) relinkGrandparent(node, parent, grandparent *Node[K, V]) {
	// The node is now the root of the tree when there is no grandparent.
	if grandparent == nil {
		t.root = node
		return
	}

	// Relink the grandparent's left or right pointer based on which side
	// the old parent was.
	if grandparent.child[0] == parent {
		grandparent.child[0] = node
	} else {
		grandparent.child[1] = node
	}
}

// Insert derives the key of value and inserts it.  It returns false without
// modifying the treap when the key already exists, so the first value
// inserted under a key is kept.
func (t *Treap[K, V]) Insert(value V) (bool, error) {
	key, err := t.keyOf(value)
	if err != nil {
		return false, err
	}
	return t.insert(key, value), nil
}

// insert links a new node for key into the treap and rotates it up until the
// max-heap is restored.
func (t *Treap[K, V]) insert(key K, value V) bool {
	// The node is the root of the tree if there isn't already one.
	if t.root == nil {
		t.root = newNode(key, value, t.source.Uint64())
		return true
	}

	// Find the binary tree insertion point and construct a list of parents
	// while doing so.  An existing key is left untouched.
	var parents parentStack[K, V]
	var dir int
	for node := t.root; node != nil; node = node.child[dir] {
		if node.key == key {
			return false
		}
		parents.Push(node)
		dir = direction(node.key, key)
	}

	// Link the new node into the binary tree in the correct position.
	node := newNode(key, value, t.source.Uint64())
	parents.At(0).child[dir] = node

	// Walk back up to the root.  While the node outranks its parent it is
	// rotated above it, otherwise the parent's aggregates are refreshed
	// and the walk continues from the parent.
	for parents.Len() > 0 {
		parent := parents.Pop()
		if node.priority <= parent.priority {
			parent.update()
			node = parent
			continue
		}

		// Perform a right rotation if the node is on the left side or
		// a left rotation if the node is on the right side.
		side := 0
		if parent.child[1] == node {
			side = 1
		}
		rotate(parent, 1-side)
		t.relinkGrandparent(node, parent, parents.At(0))
	}

	return true
}

// Erase derives the key of value and removes the item stored under it.  It
// returns whether an item was removed.
func (t *Treap[K, V]) Erase(value V) (bool, error) {
	key, err := t.keyOf(value)
	if err != nil {
		return false, err
	}
	return t.EraseKey(key), nil
}

// EraseKey removes the item stored under the passed key if it exists and
// returns whether it did.
func (t *Treap[K, V]) EraseKey(key K) bool {
	// Find the node for the key along with its parents.  There is nothing
	// to do if the key does not exist.
	var parents parentStack[K, V]
	node := t.root
	for node != nil && node.key != key {
		parents.Push(node)
		node = node.child[direction(node.key, key)]
	}
	if node == nil {
		return false
	}

	// While the node has two children, rotate the child with the higher
	// priority above it.  The lifted child becomes the node's new parent.
	for node.child[0] != nil && node.child[1] != nil {
		up := 0
		if node.child[0].priority < node.child[1].priority {
			up = 1
		}
		child := rotate(node, 1-up)
		t.relinkGrandparent(child, node, parents.At(0))
		parents.Push(child)
	}

	// Splice the node out by linking its only child, if any, in its place.
	child := node.child[0]
	if child == nil {
		child = node.child[1]
	}
	t.relinkGrandparent(child, node, parents.At(0))
	node.child = [2]*Node[K, V]{}

	// Every ancestor lost a node.
	for parents.Len() > 0 {
		parents.Pop().update()
	}
	return true
}

// Items returns every stored value exactly once in depth-first order.  The
// order is an artifact of the tree shape: it is neither sorted nor stable
// across treaps holding the same items.  Use ForEach for key order.
func (t *Treap[K, V]) Items() []V {
	if t.root == nil {
		return nil
	}

	items := make([]V, 0, t.root.size)
	var stack parentStack[K, V]
	stack.Push(t.root)
	for stack.Len() > 0 {
		node := stack.Pop()
		items = append(items, node.value)
		for _, c := range node.child {
			if c != nil {
				stack.Push(c)
			}
		}
	}
	return items
}

// ForEach invokes the passed function with every key/value pair in the treap
// in ascending key order.  Iteration stops when the function returns false.
func (t *Treap[K, V]) ForEach(fn func(k K, v V) bool) {
	for iter := t.Iterator(nil, nil); iter.Next(); {
		if !fn(iter.Key(), iter.Value()) {
			return
		}
	}
}

// Select returns the value with the idx-th smallest key, counting from zero.
// It returns false when idx is out of range.
func (t *Treap[K, V]) Select(idx int) (V, bool) {
	var zero V
	if idx < 0 || idx >= size(t.root) {
		return zero, false
	}

	node := t.root
	for node != nil {
		leftSize := size(node.child[0])
		switch {
		case idx < leftSize:
			node = node.child[0]
		case idx == leftSize:
			return node.value, true
		default:
			idx -= leftSize + 1
			node = node.child[1]
		}
	}
	return zero, false
}

// Rank returns the number of stored keys that are less than the passed key.
func (t *Treap[K, V]) Rank(key K) int {
	var rank int
	for node := t.root; node != nil; {
		if node.key < key {
			rank += size(node.child[0]) + 1
			node = node.child[1]
			continue
		}
		node = node.child[0]
	}
	return rank
}

// Reset efficiently removes all items in the treap.
func (t *Treap[K, V]) Reset() {
	t.root = nil
}
