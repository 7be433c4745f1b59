// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
)

// verbosityFlag adapts the V level to pflag.Value.
type verbosityFlag struct{}

func (verbosityFlag) String() string { return strconv.Itoa(int(logging.verbosity.Load())) }
func (verbosityFlag) Type() string   { return "int" }
func (verbosityFlag) Set(value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return errors.Wrap(err, "parsing verbosity")
	}
	SetVerbosity(v)
	return nil
}

// noColorFlag adapts the --no-color setting to pflag.Value.
type noColorFlag struct{}

func (noColorFlag) String() string   { return strconv.FormatBool(logging.noColor.Load()) }
func (noColorFlag) Type() string     { return "bool" }
func (noColorFlag) IsBoolFlag() bool { return true }
func (noColorFlag) Set(value string) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	logging.noColor.Store(v)
	return nil
}

// AddFlags registers the logging flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.Var(verbosityFlag{}, "verbosity", "log level for V logs")
	fs.Var(&logging.threshold, "log-threshold",
		"logs at or above this severity are written to stderr")
	f := fs.VarPF(noColorFlag{}, "no-color", "", "disable standard error log colorization")
	f.NoOptDefVal = "true"
}
