// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package randutil

import (
	"math/rand/v2"
	"os"
	"strconv"
	"testing"
)

// seedEnvVar overrides the seed used by NewTestRand so that a failing
// randomized test can be replayed.
const seedEnvVar = "FAULTSORT_RANDOM_SEED"

// NewPseudoSeed returns a random seed.
func NewPseudoSeed() uint64 {
	return rand.Uint64()
}

// NewPseudoRand returns an instance of *rand.Rand seeded with a fresh seed,
// together with the seed so that it can be logged.
func NewPseudoRand() (*rand.Rand, uint64) {
	seed := NewPseudoSeed()
	return NewSeededRand(seed), seed
}

// NewSeededRand returns a deterministic *rand.Rand. A zero seed is a valid
// seed; callers that treat zero as "unset" must check before calling.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewTestRand returns a *rand.Rand for use in tests. The seed comes from
// FAULTSORT_RANDOM_SEED when set and is logged through t either way.
func NewTestRand(t testing.TB) (*rand.Rand, uint64) {
	t.Helper()
	seed := NewPseudoSeed()
	if s, ok := os.LookupEnv(seedEnvVar); ok {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			t.Fatalf("could not parse %s=%q: %v", seedEnvVar, s, err)
		}
		seed = v
	}
	t.Logf("random seed: %d", seed)
	return NewSeededRand(seed), seed
}
