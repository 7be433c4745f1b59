// Copyright 2015 The Cockroach Authors.
// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/faultsort/pkg/cli/clierror"
	"github.com/cockroachdb/faultsort/pkg/cli/exit"
	"github.com/cockroachdb/faultsort/pkg/datasorter"
	"github.com/cockroachdb/faultsort/pkg/faultsort"
	"github.com/cockroachdb/faultsort/pkg/recovery"
	"github.com/cockroachdb/faultsort/pkg/util/log"
	"github.com/cockroachdb/faultsort/pkg/util/memfault"
	"github.com/spf13/cobra"
)

// Proxy to allow overrides in tests.
var stderr = os.Stderr

// Main is the entry point for the faultsort binary.
func Main() {
	if err := Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		exit.WithCode(exitCodeFor(err))
	}
	exit.WithCode(exit.Success())
}

// Run executes the command line args.
func Run(ctx context.Context, args []string) error {
	initCLIDefaults()
	faultsortCmd.SetArgs(args)
	return faultsortCmd.ExecuteContext(ctx)
}

// exitCodeFor maps err to the code the process exits with.
func exitCodeFor(err error) exit.Code {
	if code, ok := clierror.ExitCode(err); ok {
		return code
	}
	switch {
	case errors.Is(err, recovery.ErrAllVariantsFailed):
		return exit.AllVariantsFailed()
	case memfault.IsFault(err):
		return exit.SimulatedFault()
	case errors.IsAny(err, faultsort.ErrInvalidInput, datasorter.ErrInvalidConfig):
		return exit.InvalidInput()
	}
	return exit.UnspecifiedError()
}

var faultsortCmd = &cobra.Command{
	Use:   "faultsort [command] (flags)",
	Short: "sorting and searching on simulated unreliable memory",
	Long: `
Sort and search integer data while every memory access may fail. The 'sort'
command masks those failures with recovery blocks: a heap sort primary
backed by an insertion sort, each checked by an acceptance test and guarded
by a watchdog.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.EnableCommandSorting = false

	faultsortCmd.AddCommand(
		genCmd,
		sortCmd,
		searchCmd,
		sortOnlyCmd,
	)

	faultsortCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierror.NewError(err, exit.CommandLineFlagError())
	})
	log.AddFlags(faultsortCmd.PersistentFlags())
	faultsortCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return processEnvVarDefaults(cmd)
	}
}

// checkNoArgs rejects positional arguments with a flag error.
func checkNoArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return clierror.NewError(err, exit.CommandLineFlagError())
	}
	return nil
}

// flagError returns a command-line error with the given message.
func flagError(format string, args ...interface{}) error {
	return clierror.NewError(errors.Newf(format, args...), exit.CommandLineFlagError())
}
