// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package treap implements a treap data structure that is used to hold values
ordered by a numeric key derived from each value using a combination of binary
search tree and heap semantics.  It is a self-organizing and randomized data
structure that doesn't require complex operations to maintain balance.  Search,
insert, and delete operations are all expected O(log n).

Every node is augmented with the size and the key sum of the subtree rooted at
it.  The aggregates are refreshed bottom-up after every rotation or splice, so
the item count, the key sum and the order statistics Select and Rank are all
answered without a full traversal.

Node priorities come from an injectable PrioritySource.  Passing a seeded
*rand.Rand makes the shape of a treap, and thus the order returned by Items,
reproducible.

Mutations walk the tree with an explicit parent stack instead of recursion, so
an unlucky sequence of priorities can make the tree deep but can not exhaust
the goroutine stack.

A treap is not safe for concurrent access without careful use of locking by the
caller, and it must not be mutated while an Iterator over it is in use.
*/
package treap
