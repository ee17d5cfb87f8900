// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2026 The report-set developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"

	setlog "github.com/SakanoYuito/report-set/internal/log"
	"github.com/SakanoYuito/report-set/set"
)

const (
	defaultLogLevel    = "info"
	defaultLogFilename = "setcalc.log"
)

var (
	// Default global config.
	cfg = &config{
		DebugLevel: defaultLogLevel,
	}

	// intCodec is the codec of every set read from the command line.
	intCodec = set.IntCodec[int]{}
)

// config defines the global configuration options.
type config struct {
	Seed       int64  `long:"seed" description:"Seed the node priorities so the order of unsorted output is reproducible (0 uses a random seed)"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	LogDir     string `long:"logdir" description:"Directory to write a rotated log file to in addition to standard output"`
	Sorted     bool   `long:"sorted" description:"Print the elements of sets in ascending key order"`
}

// setupGlobalConfig examine the global configuration options for any conditions
// which are invalid as well as performs any addition setup necessary after the
// initial parse.
func setupGlobalConfig() error {
	if err := setlog.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return err
	}

	if cfg.LogDir != "" && setlog.LogRotator == nil {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := setlog.InitLogRotator(logFile); err != nil {
			return err
		}
	}

	return nil
}

// setOptions returns the options every set created by a command is built with.
func setOptions() []set.Option {
	if cfg.Seed == 0 {
		return nil
	}
	source := rand.New(rand.NewSource(cfg.Seed))
	return []set.Option{set.WithPrioritySource(source)}
}

// parseSet parses a set written as comma separated integers.  Blank fields are
// skipped, so an empty argument is the empty set.
func parseSet(arg string) (*set.Set[int], error) {
	var values []int
	for _, field := range strings.Split(arg, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid set element %q in %q", field,
				arg)
		}
		values = append(values, v)
	}
	return set.FromSlice[int](intCodec, values, setOptions()...)
}

// parseElement parses a single set element or index.
func parseElement(arg string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid element %q", arg)
	}
	return v, nil
}

// parseSets parses every argument with parseSet.
func parseSets(args []string) ([]*set.Set[int], error) {
	sets := make([]*set.Set[int], 0, len(args))
	for _, arg := range args {
		s, err := parseSet(arg)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, nil
}

// formatSet returns the string form of s.  When the sorted option is set the
// elements of s, and of any set nested in them, are in ascending key order.
func formatSet[T any](s *set.Set[T]) string {
	if cfg.Sorted {
		return s.SortedString()
	}
	return s.String()
}

// formatElements returns items as {e1, e2, ...} in the order given.
func formatElements[T any](codec set.Codec[T], items []T) string {
	parts := make([]string, 0, len(items))
	for _, v := range items {
		parts = append(parts, codec.Format(v))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
