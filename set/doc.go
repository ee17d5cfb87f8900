// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package set implements finite sets of arbitrary elements on top of a treap,
together with the usual set algebra: union, difference, intersection, disjoint
sum, Cartesian product and power set, as well as subset and equality tests.

# Elements and Codecs

A set does not compare elements with ==.  Instead every set is created with a
Codec that writes a canonical byte encoding of each element, and two elements
are the same member exactly when their encodings are equal.  The encodings are
built from the variable length integer and byte slice formats of the wire
package, which makes them self-delimiting, so codecs compose: PairCodec,
TaggedCodec and TupleCodec encode the results of products and sums, and
SetCodec encodes a set independent of the shape of its tree so that sets can be
elements of sets.

The treap orders elements by a uint64 key.  The key is derived, in order of
precedence, by the KeyHasher passed with WithKeyHasher, by the codec when it
implements Keyer (IntCodec does, so integer sets are ordered numerically), or
by hashing the encoding with HashKey.  Two different elements that derive the
same key can not both be stored; the second one is rejected with an Error whose
code is ErrKeyCollision.

# Errors

Errors returned by this package are of type Error and carry an ErrorCode, so
they can be inspected with errors.Is:

	_, err := set.PowerSet(3, s)
	if errors.Is(err, set.ErrInvalidOperand) {
		// Only 2 ** s is defined.
	}

# Concurrency

Sets are not safe for concurrent access, and a set that has been inserted into
another set, such as a subset returned as part of a power set, must not be
modified.
*/
package set
