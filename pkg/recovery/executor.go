// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package recovery implements a recovery blocks executive. A primary variant
// and any number of backups compute the same result independently; they are
// tried in order until one returns, within the time limit, a result that
// passes the acceptance test.
package recovery

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/faultsort/pkg/util/log"
	"github.com/cockroachdb/faultsort/pkg/util/timeutil"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

// Variant is one independent implementation of the computation.
type Variant[T any] interface {
	Name() string
	// Run computes the result. It should return promptly once ctx is done.
	Run(ctx context.Context) (T, error)
}

type variantFunc[T any] struct {
	name string
	fn   func(context.Context) (T, error)
}

func (v variantFunc[T]) Name() string { return v.name }
func (v variantFunc[T]) Run(ctx context.Context) (T, error) { return v.fn(ctx) }

// VariantFunc adapts fn into a Variant.
func VariantFunc[T any](name string, fn func(context.Context) (T, error)) Variant[T] {
	return variantFunc[T]{name: name, fn: fn}
}

// AcceptanceTest decides whether a variant's result is usable. A nil
// AcceptanceTest accepts every result.
type AcceptanceTest[T any] func(T) bool

// Executor runs the recovery blocks.
type Executor[T any] struct {
	timeLimit time.Duration
	accept    AcceptanceTest[T]
	variants  []Variant[T]
	metrics   *Metrics
}

// NewExecutor returns an Executor that tries primary first and then each of
// the backups. A zero timeLimit disables the watchdog.
func NewExecutor[T any](
	timeLimit time.Duration, accept AcceptanceTest[T], primary Variant[T], backups ...Variant[T],
) (*Executor[T], error) {
	if timeLimit < 0 {
		return nil, errors.Newf("time limit %s must not be negative", timeLimit)
	}
	if primary == nil {
		return nil, errors.New("a primary variant is required")
	}
	variants := make([]Variant[T], 0, 1+len(backups))
	variants = append(variants, primary)
	for i, b := range backups {
		if b == nil {
			return nil, errors.Newf("backup variant %d is nil", i)
		}
		variants = append(variants, b)
	}
	return &Executor[T]{timeLimit: timeLimit, accept: accept, variants: variants}, nil
}

// WithMetrics makes the Executor record its attempts in m.
func (e *Executor[T]) WithMetrics(m *Metrics) *Executor[T] {
	e.metrics = m
	return e
}

// Execute returns the first acceptable result. If every variant fails, the
// error is marked with ErrAllVariantsFailed and carries each
// *VariantFailureError as a secondary error.
func (e *Executor[T]) Execute(ctx context.Context) (T, error) {
	var zero T
	var failures error
	for _, v := range e.variants {
		if err := ctx.Err(); err != nil {
			return zero, errors.Wrap(err, "recovery blocks interrupted")
		}
		vctx := logtags.AddTag(ctx, "variant", v.Name())
		res, failure, err := e.attempt(vctx, v)
		if err != nil {
			return zero, err
		}
		if failure == nil {
			log.Infof(vctx, "result accepted")
			return res, nil
		}
		log.Warningf(vctx, "%v", failure)
		failures = errors.CombineErrors(failures, failure)
	}
	err := errors.Mark(
		errors.Newf("all %d variants failed to produce an acceptable result", redact.Safe(len(e.variants))),
		ErrAllVariantsFailed)
	return zero, errors.WithSecondaryError(err, failures)
}

type outcome[T any] struct {
	res      T
	err      error
	panicked bool
}

// attempt runs a single variant under the watchdog. It returns a non-nil
// error only when ctx itself is done; variant failures are reported through
// the *VariantFailureError.
func (e *Executor[T]) attempt(ctx context.Context, v Variant[T]) (T, *VariantFailureError, error) {
	var zero T
	name := v.Name()
	log.VEventf(ctx, 2, "starting variant")
	e.metrics.started(name)
	start := timeutil.Now()

	vctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered so that a variant abandoned by the watchdog can still finish.
	done := make(chan outcome[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = errors.Newf("%v", r)
				}
				done <- outcome[T]{err: errors.WithStack(err), panicked: true}
			}
		}()
		res, err := v.Run(vctx)
		done <- outcome[T]{res: res, err: err}
	}()

	var timer timeutil.Timer
	defer timer.Stop()
	if e.timeLimit > 0 {
		timer.Reset(e.timeLimit)
	}

	var failure *VariantFailureError
	var res T
	select {
	case out := <-done:
		switch {
		case out.panicked:
			failure = &VariantFailureError{Variant: name, Reason: ReasonPanic, Cause: out.err}
		case out.err != nil:
			failure = &VariantFailureError{Variant: name, Reason: ReasonError, Cause: out.err}
		case e.accept != nil && !e.accept(out.res):
			failure = &VariantFailureError{Variant: name, Reason: ReasonRejected}
		default:
			res = out.res
		}
	case <-timer.C:
		timer.Read = true
		cancel()
		failure = &VariantFailureError{
			Variant: name,
			Reason:  ReasonTimedOut,
			Cause:   errors.Newf("exceeded time limit of %s", e.timeLimit),
		}
	case <-ctx.Done():
		return zero, nil, errors.Wrapf(ctx.Err(), "variant %s interrupted", redact.Safe(name))
	}

	e.metrics.finished(name, timeutil.Since(start), failure)
	if failure != nil {
		return zero, failure, nil
	}
	return res, nil, nil
}
