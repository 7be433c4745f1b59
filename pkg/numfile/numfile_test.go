// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package numfile

import (
	"math"
	"testing"

	"github.com/cockroachdb/faultsort/pkg/testutils"
	"github.com/cockroachdb/faultsort/pkg/util/leaktest"
	"github.com/cockroachdb/faultsort/pkg/util/randutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestReadInts(t *testing.T) {
	defer leaktest.AfterTest(t)()

	testCases := []struct {
		name     string
		contents string
		expected []int32
		err      string
	}{
		{name: "empty", contents: "", expected: nil},
		{name: "single", contents: "42\n", expected: []int32{42}},
		{name: "no trailing newline", contents: "1\n2", expected: []int32{1, 2}},
		{name: "blank lines", contents: "\n3\n  \n\t-4 \n\n", expected: []int32{3, -4}},
		{
			name:     "extremes",
			contents: "2147483647\n-2147483648\n",
			expected: []int32{math.MaxInt32, math.MinInt32},
		},
		{name: "overflow", contents: "1\n2147483648\n", err: `in:2: .*value out of range`},
		{name: "garbage", contents: "1\n2\nthree\n", err: `in:3: .*invalid syntax`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "in", []byte(tc.contents), 0644))
			vals, err := ReadInts(fs, "in")
			if tc.err != "" {
				require.True(t, testutils.IsError(err, tc.err), "expected %q, got %v", tc.err, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, vals)
		})
	}
}

func TestReadIntsMissingFile(t *testing.T) {
	defer leaktest.AfterTest(t)()

	_, err := ReadInts(afero.NewMemMapFs(), "missing")
	require.True(t, testutils.IsError(err, "opening missing"), "%v", err)
}

func TestWriteInts(t *testing.T) {
	defer leaktest.AfterTest(t)()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "out", []byte("stale contents that are longer\n"), 0644))
	require.NoError(t, WriteInts(fs, "out", []int32{3, -1, math.MinInt32}))

	b, err := afero.ReadFile(fs, "out")
	require.NoError(t, err)
	require.Equal(t, "3\n-1\n-2147483648\n", string(b))

	require.NoError(t, WriteInts(fs, "empty", nil))
	b, err = afero.ReadFile(fs, "empty")
	require.NoError(t, err)
	require.Empty(t, b)
}

func TestGenerateRoundTrip(t *testing.T) {
	defer leaktest.AfterTest(t)()

	rng, _ := randutil.NewTestRand(t)
	vals, err := Generate(rng, 1000)
	require.NoError(t, err)
	require.Len(t, vals, 1000)

	var negative bool
	for _, v := range vals {
		negative = negative || v < 0
	}
	require.True(t, negative, "expected values from the whole int32 range")

	fs := afero.NewMemMapFs()
	require.NoError(t, WriteInts(fs, "data", vals))
	read, err := ReadInts(fs, "data")
	require.NoError(t, err)
	require.Equal(t, vals, read)
}

func TestGenerateRejectsNegative(t *testing.T) {
	defer leaktest.AfterTest(t)()

	rng, _ := randutil.NewTestRand(t)
	_, err := Generate(rng, -1)
	require.ErrorContains(t, err, "negative number (-1)")

	vals, err := Generate(rng, 0)
	require.NoError(t, err)
	require.Empty(t, vals)
}
