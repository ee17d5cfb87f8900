// Copyright (c) 2014 Conformal Systems LLC.
// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package set

import (
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInvalidOperand indicates an operand an operation is not defined
	// for, such as a power set base other than 2 or a variadic operation
	// invoked without any sets.
	ErrInvalidOperand ErrorCode = iota

	// ErrKeyDerivation indicates that a value could not be encoded, and
	// therefore has no key to be stored or looked up under.
	ErrKeyDerivation

	// ErrKeyCollision indicates that a value derived the same key as a
	// different value already in the set.
	ErrKeyCollision

	// ErrTooLarge indicates that the result of an operation would have too
	// many elements to enumerate.
	ErrTooLarge

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidOperand: "ErrInvalidOperand",
	ErrKeyDerivation:  "ErrKeyDerivation",
	ErrKeyCollision:   "ErrKeyCollision",
	ErrTooLarge:       "ErrTooLarge",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error satisfies the error interface so an ErrorCode can be used as the
// target of errors.Is.
func (e ErrorCode) Error() string {
	return e.String()
}

// Error provides a single type for errors that can happen during set
// operations.  The caller can use errors.Is with an ErrorCode, or a type
// assertion and the ErrorCode field, to ascertain the specific reason for the
// failure.
//
// The Err field is set to the underlying error, such as the one returned by a
// Codec, when there is one.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
	Err         error     // Underlying error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

// Unwrap returns the underlying error, if any.
func (e Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the ErrorCode of e.
func (e Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.ErrorCode
}

// makeError creates an Error given a set of arguments.
func makeError(c ErrorCode, desc string, err error) Error {
	return Error{ErrorCode: c, Description: desc, Err: err}
}
