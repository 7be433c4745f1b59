// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package memfault

// Constant returns a Source that always yields v. Constant(0) never faults;
// Constant(0.75) faults on the first access whose hazard reaches 0.25.
func Constant(v float64) Source {
	return constantSource(v)
}

type constantSource float64

func (c constantSource) Float64() float64 { return float64(c) }

// Script returns a Source that yields vals in order and then 0 forever. It
// is meant for tests that need a fault on one particular access.
func Script(vals ...float64) Source {
	return &scriptSource{vals: vals}
}

type scriptSource struct {
	vals []float64
	pos  int
}

func (s *scriptSource) Float64() float64 {
	if s.pos >= len(s.vals) {
		return 0
	}
	v := s.vals[s.pos]
	s.pos++
	return v
}

// FaultAt returns a Source that faults exactly on the nth access (1-based),
// given a non-zero failure probability high enough that the hazard at that
// access is at least 0.49.
func FaultAt(n int) Source {
	vals := make([]float64, n)
	vals[n-1] = 0.99
	return Script(vals...)
}
