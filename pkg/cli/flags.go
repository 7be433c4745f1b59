// Copyright 2015 The Cockroach Authors.
// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"os"
	"time"

	"github.com/cockroachdb/faultsort/pkg/cli/cliflags"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envVarFlags records, per flag set, the flags that can be set from the
// environment.
var envVarFlags = map[*pflag.FlagSet][]cliflags.FlagInfo{}

func registerEnvVar(f *pflag.FlagSet, info cliflags.FlagInfo) {
	if info.EnvVar != "" {
		envVarFlags[f] = append(envVarFlags[f], info)
	}
}

func stringFlag(f *pflag.FlagSet, valPtr *string, info cliflags.FlagInfo) {
	f.StringVarP(valPtr, info.Name, info.Shorthand, *valPtr, info.Usage())
	registerEnvVar(f, info)
}

func intFlag(f *pflag.FlagSet, valPtr *int, info cliflags.FlagInfo) {
	f.IntVarP(valPtr, info.Name, info.Shorthand, *valPtr, info.Usage())
	registerEnvVar(f, info)
}

func int32Flag(f *pflag.FlagSet, valPtr *int32, info cliflags.FlagInfo) {
	f.Int32VarP(valPtr, info.Name, info.Shorthand, *valPtr, info.Usage())
	registerEnvVar(f, info)
}

func uint64Flag(f *pflag.FlagSet, valPtr *uint64, info cliflags.FlagInfo) {
	f.Uint64VarP(valPtr, info.Name, info.Shorthand, *valPtr, info.Usage())
	registerEnvVar(f, info)
}

func float64Flag(f *pflag.FlagSet, valPtr *float64, info cliflags.FlagInfo) {
	f.Float64VarP(valPtr, info.Name, info.Shorthand, *valPtr, info.Usage())
	registerEnvVar(f, info)
}

func durationFlag(f *pflag.FlagSet, valPtr *time.Duration, info cliflags.FlagInfo) {
	f.DurationVarP(valPtr, info.Name, info.Shorthand, *valPtr, info.Usage())
	registerEnvVar(f, info)
}

func boolFlag(f *pflag.FlagSet, valPtr *bool, info cliflags.FlagInfo) {
	f.BoolVarP(valPtr, info.Name, info.Shorthand, *valPtr, info.Usage())
	registerEnvVar(f, info)
}

// processEnvVarDefaults sets the flags of cmd that were not given on the
// command line from their environment variables. Such flags then count as
// explicitly set.
func processEnvVarDefaults(cmd *cobra.Command) error {
	f := cmd.Flags()
	for _, info := range envVarFlags[f] {
		if f.Changed(info.Name) {
			continue
		}
		v, ok := os.LookupEnv(info.EnvVar)
		if !ok {
			continue
		}
		if err := f.Set(info.Name, v); err != nil {
			return flagError("setting --%s from %s: %v", info.Name, info.EnvVar, err)
		}
	}
	return nil
}

func init() {
	setGenContextDefaults()
	setSortContextDefaults()
	setSearchContextDefaults()
	setSortOnlyContextDefaults()

	{
		f := genCmd.Flags()
		stringFlag(f, &genCtx.output, cliflags.Output)
		intFlag(f, &genCtx.count, cliflags.Count)
		uint64Flag(f, &genCtx.seed, cliflags.Seed)
	}

	{
		f := sortCmd.Flags()
		cfg := &sortCtx.cfg
		stringFlag(f, &cfg.InputFile, cliflags.Input)
		stringFlag(f, &cfg.OutputFile, cliflags.Output)
		float64Flag(f, &cfg.PrimaryFailureProbability, cliflags.PrimaryFailureProbability)
		float64Flag(f, &cfg.BackupFailureProbability, cliflags.BackupFailureProbability)
		durationFlag(f, &cfg.TimeLimit, cliflags.TimeLimit)
		uint64Flag(f, &cfg.Seed, cliflags.Seed)
		stringFlag(f, &sortCtx.configFile, cliflags.Config)
		boolFlag(f, &sortCtx.report, cliflags.Report)
	}

	{
		f := searchCmd.Flags()
		int32Flag(f, &searchCtx.target, cliflags.Target)
		stringFlag(f, &searchCtx.input, cliflags.Input)
		intFlag(f, &searchCtx.rangeN, cliflags.Range)
	}

	{
		f := sortOnlyCmd.Flags()
		stringFlag(f, &sortOnlyCtx.input, cliflags.Input)
		stringFlag(f, &sortOnlyCtx.output, cliflags.Output)
		float64Flag(f, &sortOnlyCtx.failureProbability, cliflags.FailureProbability)
		uint64Flag(f, &sortOnlyCtx.seed, cliflags.Seed)
	}
}

// requireFlags returns a flag error naming the first of names that was not
// set on the command line or through the environment.
func requireFlags(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			return flagError("--%s is required", name)
		}
	}
	return nil
}
