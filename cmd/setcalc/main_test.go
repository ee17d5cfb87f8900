// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
)

// runCommand parses args with a fresh parser and default options and returns
// what the invoked command printed.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	*cfg = config{DebugLevel: defaultLogLevel}
	powerSetCfg = powerSetCmd{}
	productCfg = productCmd{}

	var buf bytes.Buffer
	stdout = &buf
	_, err := newParser("setcalc").ParseArgs(args)
	return buf.String(), err
}

// TestEval ensures the eval command prints the result of every operation.
func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--sorted", "eval", "union", "2,0", "1,2"}, "{0, 1, 2}\n"},
		{[]string{"--sorted", "eval", "intersection", "0,1,2", "1,2,5"}, "{1, 2}\n"},
		{[]string{"--sorted", "eval", "difference", "0,1,2", "1"}, "{0, 2}\n"},
		{[]string{"--sorted", "eval", "difference", "0,1,2", "0,1,2"}, "{}\n"},
		{[]string{"eval", "subset", "0,1,2", "0,1,2,3"}, "true\n"},
		{[]string{"eval", "subset", "0,1,2", "0,1"}, "false\n"},
		{[]string{"eval", "superset", "0,1,2", "0,1"}, "true\n"},
		{[]string{"eval", "equal", "2,1,0", "0,1,2"}, "true\n"},
		{[]string{"eval", "contains", "0,1,2", "2"}, "true\n"},
		{[]string{"eval", "contains", "0,1,2", "4"}, "false\n"},
		{[]string{"--sorted", "eval", "--", "union", "-3,7", ""}, "{-3, 7}\n"},
		{[]string{"eval", "at", "9,3,5", "0"}, "3\n"},
		{[]string{"eval", "at", "9,3,5", "2"}, "9\n"},
		{[]string{"eval", "rank", "9,3,5", "5"}, "1\n"},
		{[]string{"eval", "rank", "9,3,5", "100"}, "3\n"},
		{[]string{"eval", "range", "9,3,5,7,1", "3", "9"}, "{3, 5, 7}\n"},
		{[]string{"eval", "range", "9,3,5", "6", "7"}, "{}\n"},
		{[]string{"eval", "--", "range", "-4,-2,0,2", "-3", "1"}, "{-2, 0}\n"},
	}

	for i, test := range tests {
		got, err := runCommand(t, test.args...)
		if err != nil {
			t.Errorf("#%d %v: unexpected error: %v", i, test.args, err)
			continue
		}
		if got != test.want {
			t.Errorf("#%d %v: got %q, want %q", i, test.args, got,
				test.want)
		}
	}
}

// TestEvalOrders ensures the sum and product operations print sets of the
// expected order.
func TestEvalOrders(t *testing.T) {
	got, err := runCommand(t, "--seed=5", "eval", "sum", "0,1,2", "0,1")
	if err != nil {
		t.Fatalf("sum: unexpected error: %v", err)
	}
	if n := strings.Count(got, "("); n != 5 {
		t.Errorf("sum: got %d elements in %q, want 5", n, got)
	}

	got, err = runCommand(t, "eval", "product", "0,1,2", "0,1,2")
	if err != nil {
		t.Fatalf("product: unexpected error: %v", err)
	}
	if n := strings.Count(got, "("); n != 9 {
		t.Errorf("product: got %d elements in %q, want 9", n, got)
	}
}

// TestCommandErrors ensures invalid invocations are rejected.
func TestCommandErrors(t *testing.T) {
	tests := [][]string{
		{"eval", "union", "0,1"},
		{"eval", "nope", "0,1", "1"},
		{"eval", "union", "0,x", "1"},
		{"eval", "contains", "0,1", "x"},
		{"eval", "at", "0,1", "2"},
		{"eval", "at", "0,1"},
		{"eval", "range", "0,1", "0"},
		{"eval", "range", "0,1", "0", "x"},
		{"powerset"},
		{"product", "0,1"},
		{"--debuglevel=loud", "demo"},
	}

	for _, args := range tests {
		if _, err := runCommand(t, args...); err == nil {
			t.Errorf("%v: got nil error", args)
		}
	}
}

// TestPowerSetAndProduct ensures the counting variants of the powerset and
// product commands report the expected cardinalities.
func TestPowerSetAndProduct(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"powerset", "--count", "0,1,2"}, "8\n"},
		{[]string{"powerset", "--count", ""}, "1\n"},
		{[]string{"product", "--count", "0,1,2", "0,1", "5"}, "6\n"},
		{[]string{"product", "--count", "0,1,2", ""}, "0\n"},
	}

	for _, test := range tests {
		got, err := runCommand(t, test.args...)
		if err != nil {
			t.Errorf("%v: unexpected error: %v", test.args, err)
			continue
		}
		if got != test.want {
			t.Errorf("%v: got %q, want %q", test.args, got, test.want)
		}
	}
}

// TestPowerSetOutput ensures the power set is printed as a set of sets.
func TestPowerSetOutput(t *testing.T) {
	got, err := runCommand(t, "powerset", "7")
	if err != nil {
		t.Fatalf("powerset: unexpected error: %v", err)
	}

	// The order of the subsets follows their hashes.
	if got != "{{}, {7}}\n" && got != "{{7}, {}}\n" {
		t.Errorf("got %q, want the subsets {} and {7}", got)
	}
}

// TestSortedNestedOutput ensures the sorted option orders the elements of
// nested sets as well as the outer set.
func TestSortedNestedOutput(t *testing.T) {
	for seed := 1; seed <= 8; seed++ {
		seedArg := "--seed=" + strconv.Itoa(seed)
		got, err := runCommand(t, "--sorted", seedArg, "powerset",
			"2,0,1")
		if err != nil {
			t.Fatalf("powerset: unexpected error: %v", err)
		}
		for _, want := range []string{"{0, 1}", "{0, 2}", "{1, 2}",
			"{0, 1, 2}"} {

			if !strings.Contains(got, want) {
				t.Errorf("%s: output missing %q: %s", seedArg, want,
					got)
			}
		}

		// In a sorted subset 0 can only come first and 2 only last.
		if strings.Contains(got, ", 0") || strings.Contains(got, "2, ") {
			t.Errorf("%s: unsorted subset in %s", seedArg, got)
		}
	}
}

// TestDemo ensures the demo prints the results on {0, 1, 2}.
func TestDemo(t *testing.T) {
	got, err := runCommand(t, "--sorted", "--seed=1", "demo")
	if err != nil {
		t.Fatalf("demo: unexpected error: %v", err)
	}

	for _, want := range []string{
		"A = {0, 1, 2}\n",
		"order(A) = 3\n",
		"2 in A: true\n",
		"4 in A: false\n",
		"A <= {0, 1, 2, 3}: true\n",
		"A <= {0, 1}: false\n",
		"A - A = {}\n",
		"A[1] = 1\n",
		"A & [1, 3) = {1, 2}\n",
		"(order 6)\n",
		"(order 8)\n",
		"(order 9)\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("demo output missing %q:\n%s", want, got)
		}
	}
}

// TestVersion ensures the version command reports the version.
func TestVersion(t *testing.T) {
	got, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version: unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "setcalc version 0.1.0-pre+dev ") {
		t.Errorf("got %q", got)
	}
}

// TestParseSet ensures sets are parsed from comma separated integers.
func TestParseSet(t *testing.T) {
	*cfg = config{DebugLevel: defaultLogLevel}

	s, err := parseSet(" 3, 1,,2,3 ")
	if err != nil {
		t.Fatalf("parseSet: unexpected error: %v", err)
	}
	got := s.Sorted()
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if _, err := parseSet("1,two"); err == nil {
		t.Errorf("parseSet(1,two): got nil error")
	}
}
