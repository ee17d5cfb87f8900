// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/SakanoYuito/report-set/set"
)

// powerSetCmd defines the configuration options for the powerset command.
type powerSetCmd struct {
	Count bool `long:"count" description:"Only print the number of subsets"`
}

var (
	// powerSetCfg defines the configuration options for the command.
	powerSetCfg = powerSetCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *powerSetCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) != 1 {
		return errors.New("required set parameter not specified")
	}
	s, err := parseSet(args[0])
	if err != nil {
		return err
	}

	power, err := set.PowerSet(2, s)
	if err != nil {
		return err
	}
	if cmd.Count {
		fmt.Fprintln(stdout, power.Order())
		return nil
	}
	fmt.Fprintln(stdout, formatSet(power))
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *powerSetCmd) Usage() string {
	return "<set>"
}
