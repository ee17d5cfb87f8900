// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package set

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/btcsuite/btcd/wire"
)

// encodingVersion is the protocol version passed to the wire variable length
// encoders.  The variable length formats do not depend on it.
const encodingVersion = 0

// Codec describes how the elements of a set are turned into a canonical byte
// encoding and how they are rendered.  Two elements are the same set member
// exactly when their encodings are equal, so Encode must be deterministic and
// injective.  Encodings must also be self-delimiting so that concatenating them
// stays injective, which is what the composite codecs rely on.
type Codec[T any] interface {
	// Encode writes the canonical encoding of v to w.
	Encode(w io.Writer, v T) error

	// Format returns the human readable form of v.
	Format(v T) string
}

// Keyer is implemented by codecs that can map elements directly to an
// ordering key.  Sets built with such a codec order their tree by the natural
// order of the elements instead of by a hash of their encoding.  Key must be
// injective, otherwise distinct elements collide.
type Keyer[T any] interface {
	Key(v T) uint64
}

// SortedFormatter is implemented by codecs whose elements hold sets.  Its
// FormatSorted renders those nested sets in Sorted order instead of Items
// order.
type SortedFormatter[T any] interface {
	FormatSorted(v T) string
}

// formatSorted returns the human readable form of v with any nested sets in
// Sorted order.
func formatSorted[T any](c Codec[T], v T) string {
	if f, ok := c.(SortedFormatter[T]); ok {
		return f.FormatSorted(v)
	}
	return c.Format(v)
}

// Integer is the set of integer types supported by IntCodec.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntCodec encodes integers as wire variable length integers.
type IntCodec[T Integer] struct{}

// Encode writes v as a variable length integer.
func (IntCodec[T]) Encode(w io.Writer, v T) error {
	return wire.WriteVarInt(w, encodingVersion, uint64(v))
}

// Format returns the decimal form of v.
func (IntCodec[T]) Format(v T) string {
	return fmt.Sprint(v)
}

// Key maps v to a key that preserves the order of the integer type.  Signed
// values have their sign bit flipped so negative numbers sort first.
func (IntCodec[T]) Key(v T) uint64 {
	if ^T(0) < 0 {
		return uint64(v) ^ (1 << 63)
	}
	return uint64(v)
}

// StringCodec encodes strings as wire variable length strings.
type StringCodec struct{}

// Encode writes s as a variable length string.
func (StringCodec) Encode(w io.Writer, s string) error {
	return wire.WriteVarString(w, encodingVersion, s)
}

// Format returns s unchanged.
func (StringCodec) Format(s string) string {
	return s
}

// TextCodec encodes any value by its textual form.  Values whose MarshalText
// fails can not be stored in or looked up in a set.
type TextCodec[T encoding.TextMarshaler] struct{}

// Encode writes the text of v as variable length bytes.
func (TextCodec[T]) Encode(w io.Writer, v T) error {
	text, err := v.MarshalText()
	if err != nil {
		return err
	}
	return wire.WriteVarBytes(w, encodingVersion, text)
}

// Format returns the text of v, or a placeholder when it has none.
func (TextCodec[T]) Format(v T) string {
	text, err := v.MarshalText()
	if err != nil {
		return "<invalid>"
	}
	return string(text)
}

// Pair is an ordered pair, the element type of a binary Cartesian product.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairCodec encodes a pair as the encoding of its first member followed by
// the encoding of its second member.
type PairCodec[A, B any] struct {
	First  Codec[A]
	Second Codec[B]
}

// Encode writes both members of p in order.
func (c PairCodec[A, B]) Encode(w io.Writer, p Pair[A, B]) error {
	if err := c.First.Encode(w, p.First); err != nil {
		return err
	}
	return c.Second.Encode(w, p.Second)
}

// Format returns p as (first, second).
func (c PairCodec[A, B]) Format(p Pair[A, B]) string {
	return "(" + c.First.Format(p.First) + ", " + c.Second.Format(p.Second) + ")"
}

// FormatSorted returns p like Format with nested sets in Sorted order.
func (c PairCodec[A, B]) FormatSorted(p Pair[A, B]) string {
	return "(" + formatSorted(c.First, p.First) + ", " +
		formatSorted(c.Second, p.Second) + ")"
}

// Tagged is an element of a disjoint sum: a value together with the index of
// the operand it came from.
type Tagged[T any] struct {
	Value T
	Index int
}

// TaggedCodec encodes a tagged value as the encoding of the value followed by
// the index as a variable length integer.
type TaggedCodec[T any] struct {
	Value Codec[T]
}

// Encode writes the value and then the index of v.
func (c TaggedCodec[T]) Encode(w io.Writer, v Tagged[T]) error {
	if v.Index < 0 {
		return fmt.Errorf("negative operand index %d", v.Index)
	}
	if err := c.Value.Encode(w, v.Value); err != nil {
		return err
	}
	return wire.WriteVarInt(w, encodingVersion, uint64(v.Index))
}

// Format returns v as (value, index).
func (c TaggedCodec[T]) Format(v Tagged[T]) string {
	return fmt.Sprintf("(%s, %d)", c.Value.Format(v.Value), v.Index)
}

// FormatSorted returns v like Format with nested sets in Sorted order.
func (c TaggedCodec[T]) FormatSorted(v Tagged[T]) string {
	return fmt.Sprintf("(%s, %d)", formatSorted(c.Value, v.Value), v.Index)
}

// Tuple is an ordered sequence, the element type of an n-ary Cartesian
// product.
type Tuple[T any] []T

// TupleCodec encodes a tuple as its length followed by the encoding of each
// member.
type TupleCodec[T any] struct {
	Elem Codec[T]
}

// Encode writes the length and members of tuple.
func (c TupleCodec[T]) Encode(w io.Writer, tuple Tuple[T]) error {
	if err := wire.WriteVarInt(w, encodingVersion, uint64(len(tuple))); err != nil {
		return err
	}
	for _, v := range tuple {
		if err := c.Elem.Encode(w, v); err != nil {
			return err
		}
	}
	return nil
}

// Format returns tuple as (m1, m2, ...).
func (c TupleCodec[T]) Format(tuple Tuple[T]) string {
	return c.format(tuple, c.Elem.Format)
}

// FormatSorted returns tuple like Format with nested sets in Sorted order.
func (c TupleCodec[T]) FormatSorted(tuple Tuple[T]) string {
	return c.format(tuple, func(v T) string {
		return formatSorted(c.Elem, v)
	})
}

// format renders every member of tuple with formatElem.
func (c TupleCodec[T]) format(tuple Tuple[T], formatElem func(T) string) string {
	parts := make([]string, 0, len(tuple))
	for _, v := range tuple {
		parts = append(parts, formatElem(v))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// errNilSet is the underlying error when a nil set is used as an element.
var errNilSet = errors.New("nil set")

// SetCodec encodes a set so that it can itself be an element of a set, as in a
// power set.  The encoding is the number of elements followed by the element
// encodings in ascending byte order, so it only depends on the members of the
// set and not on the shape of its tree.
//
// A set must not be modified after it has been inserted into another set.
type SetCodec[T any] struct{}

// Encode writes the canonical encoding of s.
func (SetCodec[T]) Encode(w io.Writer, s *Set[T]) error {
	if s == nil {
		return errNilSet
	}

	entries := s.tree.Items()
	encs := make([][]byte, 0, len(entries))
	for _, e := range entries {
		encs = append(encs, e.enc)
	}
	sort.Slice(encs, func(i, j int) bool {
		return bytes.Compare(encs[i], encs[j]) < 0
	})

	if err := wire.WriteVarInt(w, encodingVersion, uint64(len(encs))); err != nil {
		return err
	}
	for _, enc := range encs {
		if err := wire.WriteVarBytes(w, encodingVersion, enc); err != nil {
			return err
		}
	}
	return nil
}

// Format returns the string form of s.
func (SetCodec[T]) Format(s *Set[T]) string {
	if s == nil {
		return "<nil>"
	}
	return s.String()
}

// FormatSorted returns the string form of s with its elements in Sorted order.
func (SetCodec[T]) FormatSorted(s *Set[T]) string {
	if s == nil {
		return "<nil>"
	}
	return s.SortedString()
}
