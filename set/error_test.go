// Copyright (c) 2014 Conformal Systems LLC.
// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package set

import (
	"errors"
	"io"
	"testing"
)

// TestErrorCodeStringer tests the stringized output for the ErrorCode type.
func TestErrorCodeStringer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   ErrorCode
		want string
	}{
		{ErrInvalidOperand, "ErrInvalidOperand"},
		{ErrKeyDerivation, "ErrKeyDerivation"},
		{ErrKeyCollision, "ErrKeyCollision"},
		{ErrTooLarge, "ErrTooLarge"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	// Detect additional error codes that don't have the stringer added.
	if len(tests)-1 != int(numErrorCodes) {
		t.Errorf("It appears an error code was added without adding an " +
			"associated stringer test")
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   Error
		want string
	}{
		{Error{Description: "power set base must be 2, got 3"},
			"power set base must be 2, got 3",
		},
		{Error{Description: "human-readable error"},
			"human-readable error",
		},
		{Error{Description: "unable to derive key", Err: io.EOF},
			"unable to derive key: EOF",
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("Error #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestErrorIs ensures errors can be matched against their code and unwrapped
// to the underlying error.
func TestErrorIs(t *testing.T) {
	t.Parallel()

	err := error(makeError(ErrKeyDerivation, "unable to derive key", io.EOF))
	if !errors.Is(err, ErrKeyDerivation) {
		t.Errorf("errors.Is(%v, %v): got false, want true", err,
			ErrKeyDerivation)
	}
	if errors.Is(err, ErrKeyCollision) {
		t.Errorf("errors.Is(%v, %v): got true, want false", err,
			ErrKeyCollision)
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("errors.Is(%v, %v): got false, want true", err, io.EOF)
	}

	var serr Error
	if !errors.As(err, &serr) {
		t.Fatalf("errors.As: got false, want true")
	}
	if serr.ErrorCode != ErrKeyDerivation {
		t.Errorf("ErrorCode: got %v, want %v", serr.ErrorCode,
			ErrKeyDerivation)
	}
}
