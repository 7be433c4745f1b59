// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package faultsort

import "github.com/cockroachdb/errors"

// Search looks for target in buf, which must be sorted in ascending order.
//
// Search reads buf directly: searches are not subject to simulated faults.
//
// The result is the index of target if it is present. Otherwise it is the
// index at which the search narrowed down to a single element, which is the
// position of the first element greater than target, or the last index if
// there is none. There is no "not found" result; callers that need one must
// compare buf[i] with target themselves. An empty buf is invalid input.
func Search(buf []int32, target int32) (int, error) {
	if len(buf) == 0 {
		return 0, errors.Mark(errors.New("cannot search an empty buffer"), ErrInvalidInput)
	}
	left, right := 0, len(buf)-1
	return search(buf, target, left, left+(right-left)/2, right), nil
}

func search(buf []int32, target int32, left, mid, right int) int {
	if right == left {
		return right
	}
	switch v := buf[mid]; {
	case v == target:
		return mid
	case v > target:
		right = mid
		return search(buf, target, left, left+(right-left)/2, right)
	default:
		// mid is known to be too small. Stepping past it guarantees that the
		// range shrinks even when right == left+1.
		left = mid + 1
		return search(buf, target, left, left+(right-left)/2, right)
	}
}
