// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package randutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeededRandIsDeterministic(t *testing.T) {
	a, b := NewSeededRand(7), NewSeededRand(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
	require.NotEqual(t, NewSeededRand(7).Uint64(), NewSeededRand(8).Uint64())
}

func TestNewTestRandHonorsEnv(t *testing.T) {
	t.Setenv(seedEnvVar, "12345")
	rng, seed := NewTestRand(t)
	require.Equal(t, uint64(12345), seed)
	require.Equal(t, NewSeededRand(12345).Float64(), rng.Float64())
}
