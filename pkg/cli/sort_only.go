// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/faultsort/pkg/faultsort"
	"github.com/cockroachdb/faultsort/pkg/numfile"
	"github.com/cockroachdb/faultsort/pkg/util/humanizeutil"
	"github.com/cockroachdb/faultsort/pkg/util/log"
	"github.com/cockroachdb/faultsort/pkg/util/memfault"
	"github.com/cockroachdb/faultsort/pkg/util/randutil"
	"github.com/spf13/cobra"
)

var sortOnlyCmd = &cobra.Command{
	Use:   "sort-only --input <file> --output <file> --failure-probability <p>",
	Short: "insertion sort on unreliable memory, without recovery",
	Long: `
Sort the integers of --input with the fault-injecting insertion sort and
write them to --output. There is no recovery: the first simulated failure
aborts the command and nothing is written.
`,
	Args: checkNoArgs,
	RunE: runSortOnly,
}

func runSortOnly(cmd *cobra.Command, _ []string) error {
	if err := requireFlags(cmd, "input", "output"); err != nil {
		return err
	}
	ctx := cmd.Context()
	buf, err := numfile.ReadInts(cliFs, sortOnlyCtx.input)
	if err != nil {
		return err
	}

	var opts []memfault.Option
	if seed := sortOnlyCtx.seed; seed != 0 {
		opts = append(opts, memfault.WithSource(randutil.NewSeededRand(seed)))
	}
	a, err := memfault.NewAccessor(buf, sortOnlyCtx.failureProbability, opts...)
	if err != nil {
		return errors.Mark(err, faultsort.ErrInvalidInput)
	}
	out := cmd.OutOrStdout()
	if err := faultsort.InsertionSort(a); err != nil {
		fmt.Fprintf(out, "aborted after %s accesses\n", humanizeutil.Count(uint64(a.AccessCount())))
		return err
	}
	log.VEventf(ctx, 1, "sorted %d values", len(buf))
	if err := numfile.WriteInts(cliFs, sortOnlyCtx.output, buf); err != nil {
		return err
	}
	fmt.Fprintf(out, "sorted %s values with %s accesses\n",
		humanizeutil.Count(uint64(len(buf))), humanizeutil.Count(uint64(a.AccessCount())))
	return nil
}
