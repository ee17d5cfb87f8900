// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SakanoYuito/report-set/set"
)

// evalCmd defines the configuration options for the eval command.
type evalCmd struct{}

var (
	// evalCfg defines the configuration options for the command.
	evalCfg = evalCmd{}
)

// binaryOps maps the operations that take two sets and print a boolean to
// their implementation.
var binaryOps = map[string]func(a, b *set.Set[int]) bool{
	"subset":   (*set.Set[int]).IsSubset,
	"superset": (*set.Set[int]).IsSuperset,
	"equal":    (*set.Set[int]).Equal,
}

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *evalCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 2 {
		return errors.New("required operation and set parameters not " +
			"specified")
	}
	op := strings.ToLower(args[0])

	a, err := parseSet(args[1])
	if err != nil {
		return err
	}

	// These operations take elements or an index rather than a second
	// set.
	switch op {
	case "contains":
		if len(args) != 3 {
			return errors.New("contains requires a set and an element")
		}
		v, err := parseElement(args[2])
		if err != nil {
			return err
		}
		ok, err := a.Contains(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, ok)
		return nil

	case "at":
		if len(args) != 3 {
			return errors.New("at requires a set and an index")
		}
		i, err := parseElement(args[2])
		if err != nil {
			return err
		}
		v, ok := a.At(i)
		if !ok {
			return fmt.Errorf("index %d out of range for a set of "+
				"order %d", i, a.Order())
		}
		fmt.Fprintln(stdout, v)
		return nil

	case "rank":
		if len(args) != 3 {
			return errors.New("rank requires a set and an element")
		}
		v, err := parseElement(args[2])
		if err != nil {
			return err
		}
		rank, err := a.Rank(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, rank)
		return nil

	case "range":
		if len(args) != 4 {
			return errors.New("range requires a set and two bounds")
		}
		lo, err := parseElement(args[2])
		if err != nil {
			return err
		}
		hi, err := parseElement(args[3])
		if err != nil {
			return err
		}
		items, err := a.Range(lo, hi)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, formatElements(intCodec, items))
		return nil
	}

	if len(args) != 3 {
		return fmt.Errorf("%s requires exactly two sets", op)
	}
	b, err := parseSet(args[2])
	if err != nil {
		return err
	}
	log.Debugf("Evaluating %s on %v and %v", op, a, b)

	if fn, ok := binaryOps[op]; ok {
		fmt.Fprintln(stdout, fn(a, b))
		return nil
	}

	var result string
	switch op {
	case "union":
		union, err := a.Union(b)
		if err != nil {
			return err
		}
		result = formatSet(union)

	case "intersection":
		result = formatSet(a.Intersection(b))

	case "difference":
		result = formatSet(a.Difference(b))

	case "sum":
		sum, err := set.DirectSum(a, b)
		if err != nil {
			return err
		}
		result = formatSet(sum)

	case "product":
		pairs, err := set.Product(a, b)
		if err != nil {
			return err
		}
		result = formatSet(pairs)

	default:
		return fmt.Errorf("unknown operation %q", op)
	}

	fmt.Fprintln(stdout, result)
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *evalCmd) Usage() string {
	return "<union|intersection|difference|sum|product|subset|superset|" +
		"equal|contains|at|rank|range> <set> <set|element|index> [element]"
}
