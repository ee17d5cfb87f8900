// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	setlog "github.com/SakanoYuito/report-set/internal/log"
	flags "github.com/jessevdk/go-flags"
)

var (
	log = setlog.CalcLog

	// stdout is where commands write their results.
	stdout io.Writer = os.Stdout
)

// newParser returns the command line parser with the global options and all
// commands registered.
func newParser(appName string) *flags.Parser {
	parserFlags := flags.Options(flags.HelpFlag | flags.PassDoubleDash)
	parser := flags.NewNamedParser(appName, parserFlags)
	parser.AddGroup("Global Options", "", cfg)
	parser.AddCommand("demo",
		"Run the set algebra on {0, 1, 2}",
		"Run every set operation on A = {0, 1, 2} and print the results.",
		&demoCfg)
	parser.AddCommand("eval",
		"Evaluate a set operation",
		"Evaluate one of union, intersection, difference, sum, product, "+
			"subset, superset, equal or contains on sets written as "+
			"comma separated integers such as 0,1,2.", &evalCfg)
	parser.AddCommand("powerset",
		"Print the power set of a set", "", &powerSetCfg)
	parser.AddCommand("product",
		"Print the Cartesian product of two or more sets", "",
		&productCfg)
	parser.AddCommand("version", "Display version information and exit",
		"", &versionCfg)
	return parser
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	defer os.Stdout.Sync()
	defer setlog.Close()

	// Setup the parser options and commands.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	parser := newParser(appName)

	// Parse command line and invoke the Execute function for the specified
	// command.
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		} else {
			log.Error(err)
		}

		return err
	}

	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
