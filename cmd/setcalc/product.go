// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/SakanoYuito/report-set/set"
)

// productCmd defines the configuration options for the product command.
type productCmd struct {
	Count bool `long:"count" description:"Only print the number of tuples"`
}

var (
	// productCfg defines the configuration options for the command.
	productCfg = productCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *productCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 2 {
		return errors.New("at least two set parameters are required")
	}
	sets, err := parseSets(args)
	if err != nil {
		return err
	}

	tuples, err := set.ProductN(sets...)
	if err != nil {
		return err
	}
	log.Debugf("Product of %d sets has %d tuples", len(sets), tuples.Order())
	if cmd.Count {
		fmt.Fprintln(stdout, tuples.Order())
		return nil
	}
	fmt.Fprintln(stdout, formatSet(tuples))
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *productCmd) Usage() string {
	return "<set> <set> [<set>...]"
}
