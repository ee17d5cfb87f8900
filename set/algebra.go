// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package set

import (
	"fmt"
)

// MaxPowerSetOrder is the largest order of a set whose power set can be built.
// The power set of a set of order n has 2^n elements.
const MaxPowerSetOrder = 20

// Union returns a new set holding the elements that are in s or in o.
func (s *Set[T]) Union(o *Set[T]) (*Set[T], error) {
	res := s.Copy()
	for _, e := range o.entries() {
		if err := res.insertEntry(e); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Difference returns a new set holding the elements of s that are not in o.
func (s *Set[T]) Difference(o *Set[T]) *Set[T] {
	res := s.Copy()
	for _, e := range o.entries() {
		res.eraseEntry(e)
	}
	return res
}

// Intersection returns a new set holding the elements that are in both s and
// o.  It is computed as s - (s - o).
func (s *Set[T]) Intersection(o *Set[T]) *Set[T] {
	return s.Difference(s.Difference(o))
}

// DirectSum returns the disjoint sum of a and b.  Every element of a is tagged
// with index 0 and every element of b with index 1, so the order of the result
// is the sum of the orders of the operands.
func DirectSum[T any](a, b *Set[T]) (*Set[Tagged[T]], error) {
	return DirectSumN(a, b)
}

// DirectSumN returns the disjoint sum of the passed sets.  Every element is
// tagged with the position of the set it came from.  The resulting set shares
// the options of the first set.
func DirectSumN[T any](sets ...*Set[T]) (*Set[Tagged[T]], error) {
	if len(sets) == 0 {
		return nil, makeError(ErrInvalidOperand, "direct sum of no sets", nil)
	}

	codec := TaggedCodec[T]{Value: sets[0].codec}
	res := derive[T, Tagged[T]](sets[0], codec)
	for i, s := range sets {
		for _, v := range s.Items() {
			if err := res.Insert(Tagged[T]{Value: v, Index: i}); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

// Product returns the Cartesian product of a and b as a set of pairs.  The
// resulting set shares the options of a.
func Product[A, B any](a *Set[A], b *Set[B]) (*Set[Pair[A, B]], error) {
	codec := PairCodec[A, B]{First: a.codec, Second: b.codec}
	res := derive[A, Pair[A, B]](a, codec)

	bItems := b.Items()
	for _, first := range a.Items() {
		for _, second := range bItems {
			p := Pair[A, B]{First: first, Second: second}
			if err := res.Insert(p); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

// ProductN returns the Cartesian product of the passed sets as a set of tuples
// whose i-th member comes from the i-th set.  The operands are folded left to
// right, so the product with an empty set is empty.  The resulting set shares
// the options of the first set.
func ProductN[T any](sets ...*Set[T]) (*Set[Tuple[T]], error) {
	if len(sets) == 0 {
		return nil, makeError(ErrInvalidOperand, "product of no sets", nil)
	}

	tuples := []Tuple[T]{{}}
	for _, s := range sets {
		items := s.Items()
		next := make([]Tuple[T], 0, len(tuples)*len(items))
		for _, prefix := range tuples {
			for _, v := range items {
				tuple := make(Tuple[T], len(prefix), len(prefix)+1)
				copy(tuple, prefix)
				next = append(next, append(tuple, v))
			}
		}
		tuples = next
	}

	codec := TupleCodec[T]{Elem: sets[0].codec}
	res := derive[T, Tuple[T]](sets[0], codec)
	for _, tuple := range tuples {
		if err := res.Insert(tuple); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// PowerSet returns the set of all subsets of s, written 2 ** s.  The base must
// be 2.  Every subset is selected by one bitmask over the elements of s, so
// the result has 2^n elements for a set of order n and the power set of the
// empty set holds only the empty set.
//
// The subsets are elements of the result and must not be modified.
func PowerSet[T any](base int, s *Set[T]) (*Set[*Set[T]], error) {
	if base != 2 {
		str := fmt.Sprintf("power set base must be 2, got %d", base)
		return nil, makeError(ErrInvalidOperand, str, nil)
	}
	n := s.Order()
	if n > MaxPowerSetOrder {
		str := fmt.Sprintf("power set of a set of order %d exceeds the "+
			"maximum order of %d", n, MaxPowerSetOrder)
		return nil, makeError(ErrTooLarge, str, nil)
	}

	log.Debugf("Building power set of %d subsets for a set of order %d",
		1<<n, n)

	entries := s.entries()
	res := derive[T, *Set[T]](s, SetCodec[T]{})
	for mask := 0; mask < 1<<n; mask++ {
		subset := newSet(s.codec, s.opts)
		for i, e := range entries {
			if mask&(1<<i) != 0 {
				_, _ = subset.tree.Insert(e)
			}
		}
		if err := res.Insert(subset); err != nil {
			return nil, err
		}
	}
	return res, nil
}
