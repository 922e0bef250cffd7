// SPDX-License-Identifier: MIT

// Package heap provides a generic binary heap (priority queue) ordered by a
// caller-supplied comparator.
//
// The heap keeps its greatest element on top: with the default cmp.Less
// ordering Pop returns values in descending order. Pass a reversed
// comparator to NewFunc for a min-heap.
//
//	h := heap.From([]int{2, 1, 6, 3, 9})
//	for !h.IsEmpty() {
//	    v, _ := h.Pop() // 9, 6, 3, 2, 1
//	}
//
// Complexity:
//
//   - Push, Pop: O(log n)
//   - Peek, Len: O(1)
//   - From:      O(n) bottom-up heapify
//
// A Heap is not safe for concurrent use.
package heap
