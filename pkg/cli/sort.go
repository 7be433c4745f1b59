// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"fmt"

	"github.com/cockroachdb/faultsort/pkg/cli/cliflags"
	"github.com/cockroachdb/faultsort/pkg/datasorter"
	"github.com/cockroachdb/faultsort/pkg/recovery"
	"github.com/cockroachdb/faultsort/pkg/util/humanizeutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var sortCmd = &cobra.Command{
	Use:   "sort --input <file> --output <file> [flags]",
	Short: "sort a file of integers with recovery blocks",
	Long: `
Sort the integers of --input and write them to --output. A heap sort
primary runs first; if it fails, times out, or produces output that is not
in ascending order, an insertion sort backup takes over. Both run on
simulated unreliable memory with their own failure probabilities.

A --config YAML file may supply any of the settings; flags given on the
command line take precedence.
`,
	Args: checkNoArgs,
	RunE: runSort,
}

// sortFlagOverrides copies the setting behind each flag from src to dst.
var sortFlagOverrides = map[string]func(dst, src *datasorter.Config){
	cliflags.Input.Name:  func(dst, src *datasorter.Config) { dst.InputFile = src.InputFile },
	cliflags.Output.Name: func(dst, src *datasorter.Config) { dst.OutputFile = src.OutputFile },
	cliflags.PrimaryFailureProbability.Name: func(dst, src *datasorter.Config) {
		dst.PrimaryFailureProbability = src.PrimaryFailureProbability
	},
	cliflags.BackupFailureProbability.Name: func(dst, src *datasorter.Config) {
		dst.BackupFailureProbability = src.BackupFailureProbability
	},
	cliflags.TimeLimit.Name: func(dst, src *datasorter.Config) { dst.TimeLimit = src.TimeLimit },
	cliflags.Seed.Name:      func(dst, src *datasorter.Config) { dst.Seed = src.Seed },
}

// sortConfig returns the configuration of the 'sort' command: the --config
// file, if any, overlaid with the flags that were set explicitly.
func sortConfig(cmd *cobra.Command) (datasorter.Config, error) {
	if sortCtx.configFile == "" {
		return sortCtx.cfg, nil
	}
	var cfg datasorter.Config
	if err := datasorter.LoadConfig(cliFs, sortCtx.configFile, &cfg); err != nil {
		return datasorter.Config{}, err
	}
	for name, override := range sortFlagOverrides {
		if cmd.Flags().Changed(name) {
			override(&cfg, &sortCtx.cfg)
		}
	}
	return cfg, nil
}

func runSort(cmd *cobra.Command, _ []string) error {
	cfg, err := sortConfig(cmd)
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	res, err := datasorter.Run(cmd.Context(), cliFs, cfg, recovery.NewMetrics(reg))

	out := cmd.OutOrStdout()
	if sortCtx.report {
		if rerr := renderReport(out, reg); rerr != nil && err == nil {
			err = rerr
		}
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "sorted %s values with %s\n", humanizeutil.Count(uint64(res.Count)), res.Variant)
	return nil
}
