// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package set

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/SakanoYuito/report-set/treap"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// KeyHasher maps the canonical encoding of an element to the key the element
// is ordered by in the underlying treap.
type KeyHasher func(enc []byte) uint64

// HashKey is the default KeyHasher.  It returns the first eight bytes of the
// SHA-256 hash of the encoding interpreted as a little-endian uint64.
func HashKey(enc []byte) uint64 {
	hash := chainhash.HashH(enc)
	return binary.LittleEndian.Uint64(hash[:8])
}

// options houses the configurable parameters shared by a set and every set
// derived from it.
type options struct {
	source treap.PrioritySource
	hasher KeyHasher
}

// Option configures a set.
type Option func(*options)

// WithPrioritySource draws the node priorities of the set, and of all sets
// derived from it, from source.  A seeded *rand.Rand makes the traversal order
// of the sets reproducible.
func WithPrioritySource(source treap.PrioritySource) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithKeyHasher derives element keys from their encodings with hasher.  It
// takes precedence over a codec that implements Keyer.
func WithKeyHasher(hasher KeyHasher) Option {
	return func(o *options) {
		o.hasher = hasher
	}
}

// entry is the value stored in the treap of a set: an element together with
// its canonical encoding.
type entry[T any] struct {
	value T
	enc   []byte
}

// Set is a finite set of elements of type T backed by a treap.  Membership is
// decided by the canonical encoding the codec produces, so two elements are the
// same member exactly when their encodings are equal.
//
// The operations that combine sets expect every operand to use the same codec.
// A Set is not safe for concurrent access.
type Set[T any] struct {
	codec Codec[T]
	opts  options
	key   func(e entry[T]) uint64
	tree  *treap.Treap[uint64, entry[T]]

	// keyer is set when the tree is ordered by the natural order of the
	// elements.
	keyer Keyer[T]
}

// newSet returns an empty set using codec and the already applied options.
func newSet[T any](codec Codec[T], opts options) *Set[T] {
	s := &Set[T]{codec: codec, opts: opts}

	// Keys come from an explicit hasher first, then from the codec itself
	// when it knows how to order its elements, and finally from a hash of
	// the encoding.
	switch keyer, ok := codec.(Keyer[T]); {
	case opts.hasher != nil:
		hasher := opts.hasher
		s.key = func(e entry[T]) uint64 { return hasher(e.enc) }
	case ok:
		s.keyer = keyer
		s.key = func(e entry[T]) uint64 { return keyer.Key(e.value) }
	default:
		s.key = func(e entry[T]) uint64 { return HashKey(e.enc) }
	}

	keyOf := func(e entry[T]) (uint64, error) {
		return s.key(e), nil
	}
	equal := func(a, b entry[T]) bool {
		return bytes.Equal(a.enc, b.enc)
	}
	s.tree = treap.NewWithSource(keyOf, equal, opts.source)
	return s
}

// New returns an empty set whose elements are encoded with codec.
func New[T any](codec Codec[T], opts ...Option) *Set[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return newSet(codec, o)
}

// FromSlice returns a set holding the passed values.  Values are inserted in
// order and later duplicates are absorbed.
func FromSlice[T any](codec Codec[T], values []T, opts ...Option) (*Set[T], error) {
	s := New(codec, opts...)
	for _, v := range values {
		if err := s.Insert(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// derive returns an empty set of another element type that shares the options
// of s.
func derive[T, U any](s *Set[T], codec Codec[U]) *Set[U] {
	return newSet(codec, s.opts)
}

// newEntry encodes v.
func (s *Set[T]) newEntry(v T) (entry[T], error) {
	var buf bytes.Buffer
	if err := s.codec.Encode(&buf, v); err != nil {
		str := fmt.Sprintf("unable to derive key for value of type %T", v)
		return entry[T]{}, makeError(ErrKeyDerivation, str, err)
	}
	return entry[T]{value: v, enc: buf.Bytes()}, nil
}

// insertEntry adds e unless an equal element is already present.  A different
// element stored under the same key is reported as a collision.
func (s *Set[T]) insertEntry(e entry[T]) error {
	key := s.key(e)
	if stored, ok := s.tree.Get(key); ok {
		if bytes.Equal(stored.enc, e.enc) {
			return nil
		}

		str := fmt.Sprintf("value %s collides with %s under key %016x",
			s.codec.Format(e.value), s.codec.Format(stored.value), key)
		log.Warnf("Rejecting %s", str)
		return makeError(ErrKeyCollision, str, nil)
	}

	// The key function of the tree never fails.
	_, _ = s.tree.Insert(e)
	return nil
}

// containsEntry returns whether an element with the encoding of e is present.
func (s *Set[T]) containsEntry(e entry[T]) bool {
	stored, ok := s.tree.Get(s.key(e))
	return ok && bytes.Equal(stored.enc, e.enc)
}

// eraseEntry removes the element with the encoding of e if it is present.
func (s *Set[T]) eraseEntry(e entry[T]) {
	if s.containsEntry(e) {
		s.tree.EraseKey(s.key(e))
	}
}

// entries returns the stored entries in traversal order.
func (s *Set[T]) entries() []entry[T] {
	return s.tree.Items()
}

// Insert adds v to the set.  Inserting an element that is already present
// leaves the set unchanged.
func (s *Set[T]) Insert(v T) error {
	e, err := s.newEntry(v)
	if err != nil {
		return err
	}
	return s.insertEntry(e)
}

// Erase removes v from the set.  Erasing an element that is not present leaves
// the set unchanged.
func (s *Set[T]) Erase(v T) error {
	e, err := s.newEntry(v)
	if err != nil {
		return err
	}
	s.eraseEntry(e)
	return nil
}

// Contains returns whether v is an element of the set.
func (s *Set[T]) Contains(v T) (bool, error) {
	e, err := s.newEntry(v)
	if err != nil {
		return false, err
	}
	return s.containsEntry(e), nil
}

// Items returns every element of the set exactly once.  The order follows the
// shape of the underlying tree and is not meaningful.
func (s *Set[T]) Items() []T {
	entries := s.entries()
	items := make([]T, 0, len(entries))
	for _, e := range entries {
		items = append(items, e.value)
	}
	return items
}

// Sorted returns every element of the set in ascending key order.  With a codec
// that implements Keyer this is the natural order of the elements.
func (s *Set[T]) Sorted() []T {
	items := make([]T, 0, s.tree.Len())
	for iter := s.tree.Iterator(nil, nil); iter.Next(); {
		items = append(items, iter.Value().value)
	}
	return items
}

// Range returns the elements v with lo <= v < hi in ascending order.  It is
// only defined for sets ordered by the natural order of their elements, that
// is sets whose codec implements Keyer and that were not given a KeyHasher.
func (s *Set[T]) Range(lo, hi T) ([]T, error) {
	if s.keyer == nil {
		str := fmt.Sprintf("range over a set of %T that is not ordered "+
			"by its elements", lo)
		return nil, makeError(ErrInvalidOperand, str, nil)
	}

	start, limit := s.keyer.Key(lo), s.keyer.Key(hi)
	var items []T
	for iter := s.tree.Iterator(&start, &limit); iter.Next(); {
		items = append(items, iter.Value().value)
	}
	return items, nil
}

// At returns the element at index i of Sorted and whether i is in range.
func (s *Set[T]) At(i int) (T, bool) {
	e, ok := s.tree.Select(i)
	return e.value, ok
}

// Rank returns the number of elements that precede v in Sorted order, which
// is the index of v in Sorted when it is an element of the set.
func (s *Set[T]) Rank(v T) (int, error) {
	e, err := s.newEntry(v)
	if err != nil {
		return 0, err
	}
	return s.tree.Rank(s.key(e)), nil
}

// Order returns the number of elements in the set.
func (s *Set[T]) Order() int {
	return s.tree.Len()
}

// Codec returns the codec the elements of the set are encoded with.
func (s *Set[T]) Codec() Codec[T] {
	return s.codec
}

// Copy returns an independent set holding the same elements.
func (s *Set[T]) Copy() *Set[T] {
	c := newSet(s.codec, s.opts)
	for _, e := range s.entries() {
		_, _ = c.tree.Insert(e)
	}
	return c
}

// String returns the elements of the set as {e1, e2, ...} in Items order.
func (s *Set[T]) String() string {
	entries := s.entries()
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, s.codec.Format(e.value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// SortedString returns the elements of the set as {e1, e2, ...} in Sorted
// order.  Elements that are themselves sets, or contain sets, are rendered in
// Sorted order as well.
func (s *Set[T]) SortedString() string {
	parts := make([]string, 0, s.tree.Len())
	for iter := s.tree.Iterator(nil, nil); iter.Next(); {
		parts = append(parts, formatSorted(s.codec, iter.Value().value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
