// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package faultsort implements sorting and searching over int32 buffers
// whose memory is simulated to be unreliable. The sorts route every read and
// write through a memfault.Accessor and abort on the first simulated fault,
// leaving the buffer in whatever partial state it reached.
package faultsort

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/faultsort/pkg/util/memfault"
)

// ErrInvalidInput marks errors caused by structurally invalid calls. These
// are deterministic and never leave the buffer modified.
var ErrInvalidInput = errors.New("invalid input")

// SwapMode selects how InsertionSortWith moves elements.
type SwapMode int

const (
	// SwapRouted moves elements through the accessor, so that every swap is
	// four accesses that may each fault.
	SwapRouted SwapMode = iota
	// SwapDirect exchanges elements without going through the accessor, as
	// the earliest native prototypes did. Only comparisons may fault. It is
	// kept for compatibility testing.
	SwapDirect
)

// Sort sorts buf in ascending order with a fresh accessor using the given
// failure probability. On a simulated fault the buffer is left partially
// sorted and the fault is returned.
func Sort(buf []int32, failureProbability float64, opts ...memfault.Option) error {
	a, err := memfault.NewAccessor(buf, failureProbability, opts...)
	if err != nil {
		return errors.Mark(err, ErrInvalidInput)
	}
	return InsertionSort(a)
}

// InsertionSort sorts the accessor's buffer in place, routing all
// comparisons and element movements through the accessor.
func InsertionSort(a *memfault.Accessor) error {
	return InsertionSortWith(a, SwapRouted)
}

// InsertionSortWith is InsertionSort with a choice of swap strategy.
//
// The outer loop walks end from n down to 0 inclusive. Passes with end < 2
// do nothing, and later passes only re-verify what earlier passes sorted;
// the access counts depend on this shape, so it is kept.
func InsertionSortWith(a *memfault.Accessor, mode SwapMode) error {
	n := a.Len()
	for end := n; end >= 0; end-- {
		for i := 0; i < end-1; i++ {
			index := i
			for j := index + 1; j > 0; j-- {
				less, err := lessAt(a, j, index)
				if err != nil {
					return err
				}
				if !less {
					break
				}
				if err := swap(a, mode, j, index); err != nil {
					return err
				}
				index--
			}
		}
	}
	return nil
}

// lessAt reports whether element j is smaller than element i. The right
// operand is read second.
func lessAt(a *memfault.Accessor, j, i int) (bool, error) {
	vj, err := a.Get(j)
	if err != nil {
		return false, err
	}
	vi, err := a.Get(i)
	if err != nil {
		return false, err
	}
	return vj < vi, nil
}

func swap(a *memfault.Accessor, mode SwapMode, j, i int) error {
	switch mode {
	case SwapRouted:
		return a.Swap(j, i)
	case SwapDirect:
		a.SwapUnchecked(j, i)
		return nil
	default:
		return errors.AssertionFailedf("unknown swap mode %d", mode)
	}
}
