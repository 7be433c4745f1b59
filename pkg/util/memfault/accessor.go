// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package memfault simulates unreliable memory. An Accessor mediates every
// read and write of an int32 buffer and, with a likelihood that grows with
// the number of accesses performed, fails the access instead of carrying it
// out.
package memfault

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/cockroachdb/errors"
)

// Source is a uniformly distributed random source over [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Option configures an Accessor.
type Option func(*Accessor)

// WithSource makes the Accessor draw from src instead of a freshly seeded
// generator. Tests use it to make fault timing reproducible.
func WithSource(src Source) Option {
	return func(a *Accessor) {
		if src != nil {
			a.src = src
		}
	}
}

// WithContext makes every access fail once ctx is done. This lets a caller
// preempt an algorithm that is driven entirely through the Accessor.
func WithContext(ctx context.Context) Option {
	return func(a *Accessor) {
		a.ctx = ctx
	}
}

// Accessor is the call-scoped context for a single sort or search: the
// buffer, the failure probability, the access counter and the random source.
// An Accessor is not safe for concurrent use; separate calls must use
// separate Accessors.
type Accessor struct {
	buf   []int32
	prob  float64
	count uint64
	src   Source
	ctx   context.Context
}

// NewAccessor wraps buf. The failure probability must lie in [0, 1].
func NewAccessor(buf []int32, failureProbability float64, opts ...Option) (*Accessor, error) {
	if math.IsNaN(failureProbability) || failureProbability < 0 || failureProbability > 1 {
		return nil, errors.Mark(
			errors.Newf("failure probability %v needs to be between 0 and 1", failureProbability),
			ErrInvalidProbability)
	}
	a := &Accessor{buf: buf, prob: failureProbability}
	for _, opt := range opts {
		opt(a)
	}
	if a.src == nil {
		a.src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return a, nil
}

// Len returns the length of the buffer. It is not an access.
func (a *Accessor) Len() int {
	return len(a.buf)
}

// AccessCount returns the number of accesses performed so far, including
// those that faulted.
func (a *Accessor) AccessCount() uint64 {
	return a.count
}

// FailureProbability returns the hazard multiplier the Accessor was built
// with.
func (a *Accessor) FailureProbability() float64 {
	return a.prob
}

// Get reads the element at index i.
func (a *Accessor) Get(i int) (int32, error) {
	if err := a.check(OpGet, i); err != nil {
		return 0, err
	}
	return a.buf[i], nil
}

// Set writes v at index i. A faulted Set leaves the element untouched.
func (a *Accessor) Set(i int, v int32) error {
	if err := a.check(OpSet, i); err != nil {
		return err
	}
	a.buf[i] = v
	return nil
}

// Swap exchanges the elements at i and j through the Accessor:
// get(i), get(j), set(i), set(j). A swap is therefore four accesses, and a
// fault on either set leaves the buffer half-swapped.
func (a *Accessor) Swap(i, j int) error {
	tmp, err := a.Get(i)
	if err != nil {
		return err
	}
	vj, err := a.Get(j)
	if err != nil {
		return err
	}
	if err := a.Set(i, vj); err != nil {
		return err
	}
	return a.Set(j, tmp)
}

// SwapUnchecked exchanges the elements at i and j without counting or
// checking the accesses.
func (a *Accessor) SwapUnchecked(i, j int) {
	a.buf[i], a.buf[j] = a.buf[j], a.buf[i]
}

// check accounts for one access and decides whether it fails. The counter is
// bumped first so that the hazard includes the access being checked.
func (a *Accessor) check(op Op, i int) error {
	a.count++
	if a.ctx != nil {
		if err := a.ctx.Err(); err != nil {
			return errors.Wrapf(err, "%s of index %d interrupted", op, i)
		}
	}
	hazard := float64(a.count) * a.prob
	// The window is anchored at 0.5 and is deliberately left unclamped: once
	// the hazard reaches 0.5 the whole upper half of the range faults.
	r := a.src.Float64()
	if r >= 0.5 && r <= 0.5+hazard {
		return errors.WithStack(&FaultError{Op: op, Index: i, Access: a.count, Hazard: hazard})
	}
	return nil
}
