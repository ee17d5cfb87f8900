// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/SakanoYuito/report-set/set"
)

// demoCmd defines the configuration options for the demo command.
type demoCmd struct{}

var (
	// demoCfg defines the configuration options for the command.
	demoCfg = demoCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *demoCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	sets, err := parseSets([]string{"0,1,2", "0,1,2,3", "0,1"})
	if err != nil {
		return err
	}
	a, superset, subset := sets[0], sets[1], sets[2]
	log.Debugf("Running demo on A = %v", a)

	fmt.Fprintf(stdout, "A = %s\n", formatSet(a))
	fmt.Fprintf(stdout, "order(A) = %d\n", a.Order())
	for _, v := range []int{2, 4} {
		ok, err := a.Contains(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%d in A: %v\n", v, ok)
	}
	if v, ok := a.At(1); ok {
		fmt.Fprintf(stdout, "A[1] = %d\n", v)
	}
	between, err := a.Range(1, 3)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "A & [1, 3) = %s\n", formatElements(intCodec, between))
	fmt.Fprintf(stdout, "A <= %s: %v\n", formatSet(superset),
		a.IsSubset(superset))
	fmt.Fprintf(stdout, "A <= %s: %v\n", formatSet(subset),
		a.IsSubset(subset))
	fmt.Fprintf(stdout, "A - A = %s\n", formatSet(a.Difference(a)))

	union, err := a.Union(subset)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "A | %s = %s\n", formatSet(subset), formatSet(union))
	fmt.Fprintf(stdout, "A & %s = %s\n", formatSet(subset),
		formatSet(a.Intersection(subset)))

	sum, err := set.DirectSum(a, a)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "A + A = %s (order %d)\n", formatSet(sum),
		sum.Order())

	power, err := set.PowerSet(2, a)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "2 ** A = %s (order %d)\n", formatSet(power),
		power.Order())

	pairs, err := set.Product(a, a)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "A * A = %s (order %d)\n", formatSet(pairs),
		pairs.Order())
	return nil
}
