// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"fmt"

	"github.com/cockroachdb/faultsort/pkg/numfile"
	"github.com/cockroachdb/faultsort/pkg/util/humanizeutil"
	"github.com/cockroachdb/faultsort/pkg/util/log"
	"github.com/cockroachdb/faultsort/pkg/util/randutil"
	"github.com/spf13/cobra"
)

var genCmd = &cobra.Command{
	Use:   "gen --output <file> --count <n>",
	Short: "generate a file of random integers",
	Long: `
Write --count integers drawn uniformly from the whole int32 range to
--output, one per line.
`,
	Args: checkNoArgs,
	RunE: runGen,
}

func runGen(cmd *cobra.Command, _ []string) error {
	if err := requireFlags(cmd, "output", "count"); err != nil {
		return err
	}
	if genCtx.count < 0 {
		return flagError("--count must not be negative, got %d", genCtx.count)
	}
	seed := genCtx.seed
	if seed == 0 {
		seed = randutil.NewPseudoSeed()
	}
	log.Infof(cmd.Context(), "generating with seed %d", seed)

	vals, err := numfile.Generate(randutil.NewSeededRand(seed), genCtx.count)
	if err != nil {
		return err
	}
	if err := numfile.WriteInts(cliFs, genCtx.output, vals); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s values to %s (seed %d)\n",
		humanizeutil.Count(uint64(len(vals))), genCtx.output, seed)
	return nil
}
