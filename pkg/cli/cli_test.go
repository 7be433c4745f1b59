// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/faultsort/pkg/cli/exit"
	"github.com/cockroachdb/faultsort/pkg/numfile"
	"github.com/cockroachdb/faultsort/pkg/util/leaktest"
	"github.com/cockroachdb/faultsort/pkg/util/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// useMemFs points the commands at a fresh in-memory file system for the
// duration of the test.
func useMemFs(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()
	prev := cliFs
	cliFs = fs
	t.Cleanup(func() { cliFs = prev })
	return fs
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	faultsortCmd.SetOut(&out)
	defer faultsortCmd.SetOut(nil)
	err := Run(context.Background(), args)
	return out.String(), err
}

func writeInts(t *testing.T, fs afero.Fs, path string, vals ...int32) {
	t.Helper()
	require.NoError(t, numfile.WriteInts(fs, path, vals))
}

func descending(n int) []int32 {
	vals := make([]int32, n)
	for i := range vals {
		vals[i] = int32(n - i)
	}
	return vals
}

func requireExitCode(t *testing.T, expected exit.Code, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, expected, exitCodeFor(err), "%+v", err)
}

func TestGen(t *testing.T) {
	defer leaktest.AfterTest(t)()
	defer log.Scope(t).Close(t)
	fs := useMemFs(t)

	out, err := runCLI(t, "gen", "--output", "a", "--count", "1000", "--seed", "42")
	require.NoError(t, err)
	require.Equal(t, "wrote 1,000 values to a (seed 42)\n", out)

	_, err = runCLI(t, "gen", "-o", "b", "-n", "1000", "--seed", "42")
	require.NoError(t, err)

	a, err := numfile.ReadInts(fs, "a")
	require.NoError(t, err)
	b, err := numfile.ReadInts(fs, "b")
	require.NoError(t, err)
	require.Len(t, a, 1000)
	require.Equal(t, a, b)

	out, err = runCLI(t, "gen", "--output", "c", "--count", "0")
	require.NoError(t, err)
	require.Regexp(t, `^wrote 0 values to c \(seed \d+\)\n$`, out)
}

func TestFlagErrors(t *testing.T) {
	defer leaktest.AfterTest(t)()
	defer log.Scope(t).Close(t)
	useMemFs(t)

	testCases := [][]string{
		{"gen", "--output", "a"},
		{"gen", "--count", "3"},
		{"gen", "--output", "a", "--count", "-1"},
		{"gen", "--output", "a", "--count", "3", "extra"},
		{"gen", "--bogus"},
		{"sort", "--time-limit", "soon"},
		{"search"},
		{"search", "--target", "1", "--input", "f", "--range", "3"},
		{"search", "--target", "1", "--range", "-1"},
		{"search", "--target", "4294967296"},
		{"sort-only", "--input", "f"},
	}
	for _, args := range testCases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := runCLI(t, args...)
			requireExitCode(t, exit.CommandLineFlagError(), err)
		})
	}
}

func TestSort(t *testing.T) {
	defer leaktest.AfterTest(t)()
	defer log.Scope(t).Close(t)
	fs := useMemFs(t)
	writeInts(t, fs, "in", 5, -3, 9, 0, 2, 2, -8, 7)

	out, err := runCLI(t, "sort", "--input", "in", "--output", "out",
		"--primary-failure-probability", "0", "--backup-failure-probability", "0",
		"--seed", "1", "--time-limit", "10s", "--report")
	require.NoError(t, err)
	require.Contains(t, out, "sorted 8 values with heap sort\n")
	require.Regexp(t, `\|\s+attempts_total\s+\|\s+heap sort\s+\|\s+\|\s+1\s+\|`, out)
	require.Regexp(t, `\|\s+successes_total\s+\|\s+heap sort\s+\|\s+\|\s+1\s+\|`, out)
	require.Regexp(t, `\|\s+duration_seconds\s+\|\s+heap sort\s+\|\s+\|\s+1 in `, out)
	require.NotContains(t, out, "insertion sort |")

	sorted, err := numfile.ReadInts(fs, "out")
	require.NoError(t, err)
	require.Equal(t, []int32{-8, -3, 0, 2, 2, 5, 7, 9}, sorted)
}

// With a failure probability of 1 every access faults with probability one
// half, so sorting 64 values without a fault is not a realistic outcome.
func TestSortAllVariantsFail(t *testing.T) {
	defer leaktest.AfterTest(t)()
	defer log.Scope(t).Close(t)
	fs := useMemFs(t)
	writeInts(t, fs, "in", descending(64)...)

	out, err := runCLI(t, "sort", "--input", "in", "--output", "out",
		"--primary-failure-probability", "1", "--backup-failure-probability", "1",
		"--report")
	requireExitCode(t, exit.AllVariantsFailed(), err)
	require.Regexp(t, `\|\s+failures_total\s+\|\s+heap sort\s+\|\s+error\s+\|\s+1\s+\|`, out)
	require.Regexp(t, `\|\s+failures_total\s+\|\s+insertion sort\s+\|\s+error\s+\|\s+1\s+\|`, out)

	exists, err := afero.Exists(fs, "out")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestSortConfigFile(t *testing.T) {
	defer leaktest.AfterTest(t)()
	defer log.Scope(t).Close(t)
	fs := useMemFs(t)
	writeInts(t, fs, "in", descending(64)...)
	require.NoError(t, afero.WriteFile(fs, "sort.yaml", []byte(`
input_file: in
output_file: out
primary_failure_probability: 1
backup_failure_probability: 0
time_limit: 10s
seed: 3
`), 0644))

	// The primary all but certainly faults on its way through 64 values.
	out, err := runCLI(t, "sort", "--config", "sort.yaml")
	require.NoError(t, err)
	require.Equal(t, "sorted 64 values with insertion sort\n", out)

	// An explicit flag takes precedence over the file.
	out, err = runCLI(t, "sort", "--config", "sort.yaml", "--primary-failure-probability", "0")
	require.NoError(t, err)
	require.Equal(t, "sorted 64 values with heap sort\n", out)

	sorted, err := numfile.ReadInts(fs, "out")
	require.NoError(t, err)
	require.Len(t, sorted, 64)
	require.EqualValues(t, 1, sorted[0])
	require.EqualValues(t, 64, sorted[63])
}

func TestSortInvalidInput(t *testing.T) {
	defer leaktest.AfterTest(t)()
	defer log.Scope(t).Close(t)
	fs := useMemFs(t)
	writeInts(t, fs, "in", 2, 1)
	require.NoError(t, afero.WriteFile(fs, "partial.yaml", []byte("input_file: in\n"), 0644))

	testCases := [][]string{
		{"sort", "--input", "in", "--output", "out", "--primary-failure-probability", "1.5"},
		{"sort", "--input", "in", "--output", "out", "--time-limit", "-1s"},
		{"sort", "--config", "partial.yaml"},
		{"sort-only", "--input", "in", "--output", "out", "--failure-probability", "-0.1"},
	}
	for _, args := range testCases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := runCLI(t, args...)
			requireExitCode(t, exit.InvalidInput(), err)
		})
	}
}

func TestSearch(t *testing.T) {
	defer leaktest.AfterTest(t)()
	defer log.Scope(t).Close(t)
	fs := useMemFs(t)
	writeInts(t, fs, "sorted", 1, 3, 5, 7, 9)
	writeInts(t, fs, "unsorted", 3, 1, 2)

	testCases := []struct {
		args     []string
		expected string
	}{
		{[]string{"--target", "500"}, "500\n"},
		{[]string{"--target", "0"}, "0\n"},
		{[]string{"--target", "999"}, "999\n"},
		{[]string{"--target", "5000"}, "999\n"},
		{[]string{"--target", "7", "--range", "10"}, "7\n"},
		{[]string{"--target", "7", "--input", "sorted"}, "3\n"},
		{[]string{"-t", "6", "-i", "sorted"}, "3\n"},
	}
	for _, tc := range testCases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, err := runCLI(t, append([]string{"search"}, tc.args...)...)
			require.NoError(t, err)
			require.Equal(t, tc.expected, out)
		})
	}

	_, err := runCLI(t, "search", "--target", "1", "--range", "0")
	requireExitCode(t, exit.InvalidInput(), err)
	require.ErrorContains(t, err, "cannot search an empty buffer")

	_, err = runCLI(t, "search", "--target", "1", "--input", "unsorted")
	requireExitCode(t, exit.InvalidInput(), err)
	require.ErrorContains(t, err, "unsorted is not sorted")

	_, err = runCLI(t, "search", "--target", "1", "--input", "missing")
	requireExitCode(t, exit.UnspecifiedError(), err)
}

func TestSortOnly(t *testing.T) {
	defer leaktest.AfterTest(t)()
	defer log.Scope(t).Close(t)
	fs := useMemFs(t)
	writeInts(t, fs, "in", 3, 1, 2)
	writeInts(t, fs, "long", descending(64)...)

	out, err := runCLI(t, "sort-only", "--input", "in", "--output", "out", "--seed", "9")
	require.NoError(t, err)
	require.Regexp(t, `^sorted 3 values with \d+ accesses\n$`, out)
	sorted, err := numfile.ReadInts(fs, "out")
	require.NoError(t, err)
	require.Equal(t, []int32{1, 2, 3}, sorted)

	out, err = runCLI(t, "sort-only", "--input", "long", "--output", "long-out",
		"--failure-probability", "1")
	requireExitCode(t, exit.SimulatedFault(), err)
	require.Regexp(t, `^aborted after \d+ accesses\n$`, out)
	require.ErrorContains(t, err, "random simulated failure event")
	exists, err := afero.Exists(fs, "long-out")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestEnvVarDefaults(t *testing.T) {
	defer leaktest.AfterTest(t)()
	defer log.Scope(t).Close(t)
	fs := useMemFs(t)
	writeInts(t, fs, "in", 2, 1)

	t.Setenv("FAULTSORT_FAILURE_PROBABILITY", "2")
	_, err := runCLI(t, "sort-only", "--input", "in", "--output", "out")
	requireExitCode(t, exit.InvalidInput(), err)

	// The command line wins over the environment.
	_, err = runCLI(t, "sort-only", "--input", "in", "--output", "out",
		"--failure-probability", "0", "--seed", "1")
	require.NoError(t, err)

	t.Setenv("FAULTSORT_FAILURE_PROBABILITY", "lots")
	_, err = runCLI(t, "sort-only", "--input", "in", "--output", "out")
	requireExitCode(t, exit.CommandLineFlagError(), err)
}

func TestExitCodeFor(t *testing.T) {
	defer leaktest.AfterTest(t)()

	require.Equal(t, exit.UnspecifiedError(), exitCodeFor(errors.New("boom")))
	require.Equal(t, exit.UnspecifiedError(), exitCodeFor(fmt.Errorf("wrapped: %w", errors.New("boom"))))
	require.Equal(t, 4, exitCodeFor(flagError("bad")).Int())
}

func TestHelpListsCommands(t *testing.T) {
	defer leaktest.AfterTest(t)()

	out, err := runCLI(t, "--help")
	require.NoError(t, err)
	for _, cmd := range []string{"gen", "sort", "search", "sort-only"} {
		require.Regexp(t, regexp.MustCompile(`(?m)^\s+`+regexp.QuoteMeta(cmd)+`\s`), out)
	}
}
