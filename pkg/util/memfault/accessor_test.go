// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package memfault

import (
	"context"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestNewAccessorValidatesProbability(t *testing.T) {
	for _, p := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		_, err := NewAccessor(nil, p)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrInvalidProbability), "%v", err)
	}
	for _, p := range []float64{0, 0.5, 1} {
		a, err := NewAccessor(nil, p)
		require.NoError(t, err)
		require.Equal(t, p, a.FailureProbability())
	}
}

func TestHazardWindow(t *testing.T) {
	testCases := []struct {
		name      string
		prob      float64
		r         float64
		accesses  int
		faultedAt uint64 // 0 means no fault
	}{
		{"lower half never faults", 1, 0.49, 1000, 0},
		{"zero probability", 0, 0.75, 1000, 0},
		// The window is closed: with no hazard at all, exactly 0.5 still faults.
		{"zero probability at window edge", 0, 0.5, 10, 1},
		{"hazard grows with count", 0.1, 0.75, 10, 3},
		{"hazard includes current access", 0.125, 0.75, 10, 2},
		{"upper bound beyond one", 1, 0.999999, 10, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]int32, 1)
			a, err := NewAccessor(buf, tc.prob, WithSource(Constant(tc.r)))
			require.NoError(t, err)
			for i := 0; i < tc.accesses; i++ {
				_, err = a.Get(0)
				if err != nil {
					break
				}
			}
			if tc.faultedAt == 0 {
				require.NoError(t, err)
				require.Equal(t, uint64(tc.accesses), a.AccessCount())
				return
			}
			require.True(t, IsFault(err), "expected fault, got %v", err)
			var fe *FaultError
			require.True(t, errors.As(err, &fe))
			require.Equal(t, tc.faultedAt, fe.Access)
			require.Equal(t, tc.faultedAt, a.AccessCount())
		})
	}
}

func TestFaultedSetDoesNotWrite(t *testing.T) {
	buf := []int32{7}
	a, err := NewAccessor(buf, 1, WithSource(FaultAt(1)))
	require.NoError(t, err)

	err = a.Set(0, 42)
	require.True(t, IsFault(err))
	require.Equal(t, []int32{7}, buf)
	require.Equal(t, uint64(1), a.AccessCount())
	require.Contains(t, err.Error(), "random simulated failure event: set of index 0")
}

func TestSwap(t *testing.T) {
	t.Run("four accesses", func(t *testing.T) {
		buf := []int32{1, 2}
		a, err := NewAccessor(buf, 0, WithSource(Constant(0)))
		require.NoError(t, err)
		require.NoError(t, a.Swap(1, 0))
		require.Equal(t, []int32{2, 1}, buf)
		require.Equal(t, uint64(4), a.AccessCount())
	})

	// A fault on the last write leaves the first write in place.
	t.Run("half swapped", func(t *testing.T) {
		buf := []int32{1, 2}
		a, err := NewAccessor(buf, 1, WithSource(FaultAt(4)))
		require.NoError(t, err)
		err = a.Swap(1, 0)
		require.True(t, IsFault(err))
		require.Equal(t, []int32{1, 1}, buf)
		require.Equal(t, uint64(4), a.AccessCount())
	})

	t.Run("fault on read leaves buffer alone", func(t *testing.T) {
		buf := []int32{1, 2}
		a, err := NewAccessor(buf, 1, WithSource(FaultAt(2)))
		require.NoError(t, err)
		require.True(t, IsFault(a.Swap(1, 0)))
		require.Equal(t, []int32{1, 2}, buf)
	})
}

func TestWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	buf := []int32{1, 2, 3}
	a, err := NewAccessor(buf, 0, WithSource(Constant(0)), WithContext(ctx))
	require.NoError(t, err)

	v, err := a.Get(2)
	require.NoError(t, err)
	require.Equal(t, int32(3), v)

	cancel()
	err = a.Set(0, 9)
	require.True(t, errors.Is(err, context.Canceled), "%v", err)
	require.False(t, IsFault(err))
	require.Equal(t, []int32{1, 2, 3}, buf)
	require.Equal(t, uint64(2), a.AccessCount())
}

func TestAccessorsAreIndependent(t *testing.T) {
	buf := []int32{1}
	a, err := NewAccessor(buf, 0.1, WithSource(Constant(0.75)))
	require.NoError(t, err)
	b, err := NewAccessor(buf, 0.1, WithSource(Constant(0.75)))
	require.NoError(t, err)

	_, err = a.Get(0)
	require.NoError(t, err)
	_, err = a.Get(0)
	require.NoError(t, err)
	// b has its own counter, so its first access sees a hazard of 0.1.
	_, err = b.Get(0)
	require.NoError(t, err)
	require.Equal(t, uint64(2), a.AccessCount())
	require.Equal(t, uint64(1), b.AccessCount())
}
