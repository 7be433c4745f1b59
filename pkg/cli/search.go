// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/faultsort/pkg/faultsort"
	"github.com/cockroachdb/faultsort/pkg/numfile"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search --target <value> [--input <file> | --range <n>]",
	Short: "binary search a sorted buffer",
	Long: `
Search for --target in the integers of --input, which must be sorted in
ascending order, or in the buffer 0, 1, ..., n-1 given by --range. Prints the
index the search settles on: the position of the target when present, and
otherwise the position of the nearest element above it, or the last element.
`,
	Args: checkNoArgs,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, _ []string) error {
	if err := requireFlags(cmd, "target"); err != nil {
		return err
	}
	fromFile := cmd.Flags().Changed("input")
	if fromFile && cmd.Flags().Changed("range") {
		return flagError("--input and --range are mutually exclusive")
	}

	var buf []int32
	if fromFile {
		var err error
		if buf, err = numfile.ReadInts(cliFs, searchCtx.input); err != nil {
			return err
		}
		if !slices.IsSorted(buf) {
			return errors.Mark(
				errors.Newf("%s is not sorted in ascending order", searchCtx.input),
				faultsort.ErrInvalidInput)
		}
	} else {
		if searchCtx.rangeN < 0 {
			return flagError("--range must not be negative, got %d", searchCtx.rangeN)
		}
		buf = make([]int32, searchCtx.rangeN)
		for i := range buf {
			buf[i] = int32(i)
		}
	}

	idx, err := faultsort.Search(buf, searchCtx.target)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d\n", idx)
	return nil
}
