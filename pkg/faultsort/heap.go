// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package faultsort

import "github.com/cockroachdb/faultsort/pkg/util/memfault"

// HeapSort sorts the accessor's buffer in ascending order using a max-heap.
// Like InsertionSort, every element read and write goes through the
// accessor and the first fault aborts the sort.
func HeapSort(a *memfault.Accessor) error {
	n := a.Len()
	for root := n/2 - 1; root >= 0; root-- {
		if err := siftDown(a, root, n-1); err != nil {
			return err
		}
	}
	for last := n - 1; last > 0; last-- {
		if err := a.Swap(0, last); err != nil {
			return err
		}
		if err := siftDown(a, 0, last-1); err != nil {
			return err
		}
	}
	return nil
}

// siftDown restores the heap property for the subtree at root, considering
// only indexes up to and including end.
func siftDown(a *memfault.Accessor, root, end int) error {
	for {
		child := 2*root + 1
		if child > end {
			return nil
		}
		if right := child + 1; right <= end {
			less, err := lessAt(a, child, right)
			if err != nil {
				return err
			}
			if less {
				child = right
			}
		}
		less, err := lessAt(a, root, child)
		if err != nil {
			return err
		}
		if !less {
			return nil
		}
		if err := a.Swap(child, root); err != nil {
			return err
		}
		root = child
	}
}
