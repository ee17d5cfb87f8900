// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package set

// IsSubset returns whether every element of s is in o, written s <= o.
func (s *Set[T]) IsSubset(o *Set[T]) bool {
	if s.Order() > o.Order() {
		return false
	}
	for _, e := range s.entries() {
		if !o.containsEntry(e) {
			return false
		}
	}
	return true
}

// IsSuperset returns whether every element of o is in s, written s >= o.
func (s *Set[T]) IsSuperset(o *Set[T]) bool {
	return o.IsSubset(s)
}

// Equal returns whether s and o hold the same elements.
func (s *Set[T]) Equal(o *Set[T]) bool {
	return s.IsSubset(o) && s.IsSuperset(o)
}

// NotEqual returns whether s and o differ in at least one element.
func (s *Set[T]) NotEqual(o *Set[T]) bool {
	return !s.Equal(o)
}

// IsProperSubset returns whether s is a subset of o and not equal to it,
// written s < o.
func (s *Set[T]) IsProperSubset(o *Set[T]) bool {
	return s.IsSubset(o) && s.NotEqual(o)
}

// IsProperSuperset returns whether s is a superset of o and not equal to it,
// written s > o.
func (s *Set[T]) IsProperSuperset(o *Set[T]) bool {
	return s.IsSuperset(o) && s.NotEqual(o)
}
