// SPDX-License-Identifier: MIT

package heap

import (
	"cmp"
	"iter"
)

// Heap is a binary heap stored in a slice. For every node i its children
// 2i+1 and 2i+2 are not greater than it under less.
type Heap[T any] struct {
	data []T
	less func(a, b T) bool
}

// New returns an empty heap of ordered values; Pop yields the largest first.
func New[T cmp.Ordered](opts ...Option) *Heap[T] {
	return NewFunc(cmp.Less[T], opts...)
}

// NewFunc returns an empty heap ordered by less. A nil less panics with ErrNilLess.
func NewFunc[T any](less func(a, b T) bool, opts ...Option) *Heap[T] {
	if less == nil {
		panic(ErrNilLess.Error())
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Heap[T]{data: make([]T, 0, o.Capacity), less: less}
}

// From builds a heap of ordered values in place over data. The heap takes
// ownership of data; the caller must not use the slice afterwards.
func From[T cmp.Ordered](data []T) *Heap[T] {
	return FromFunc(data, cmp.Less[T])
}

// FromFunc builds a heap over data ordered by less, taking ownership of data.
func FromFunc[T any](data []T, less func(a, b T) bool) *Heap[T] {
	if less == nil {
		panic(ErrNilLess.Error())
	}
	h := &Heap[T]{data: data, less: less}
	h.init()

	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return len(h.data) }

// IsEmpty reports whether the heap has no elements.
func (h *Heap[T]) IsEmpty() bool { return len(h.data) == 0 }

// Push adds v to the heap.
func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.up(len(h.data) - 1)
}

// Pop removes and returns the greatest element, or false if the heap is empty.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	n := len(h.data) - 1
	if n < 0 {
		return zero, false
	}
	top := h.data[0]
	h.data[0] = h.data[n]
	h.data[n] = zero // drop the reference held by the backing array
	h.data = h.data[:n]
	h.down(0)

	return top, true
}

// Peek returns the greatest element without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}

	return h.data[0], true
}

// All walks the elements in heap (array) order, which is not sorted order.
// The heap must not be modified during the walk.
func (h *Heap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range h.data {
			if !yield(v) {
				return
			}
		}
	}
}

// init heapifies data bottom-up, starting at the last internal node.
func (h *Heap[T]) init() {
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
}

func (h *Heap[T]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.less(h.data[i], h.data[j]) {
			break
		}
		h.data[i], h.data[j] = h.data[j], h.data[i]
		j = i
	}
}

func (h *Heap[T]) down(i int) {
	n := len(h.data)
	for {
		l := 2*i + 1
		if l >= n {
			break
		}
		j := l // left child
		if r := l + 1; r < n && h.less(h.data[l], h.data[r]) {
			j = r // right child
		}
		if !h.less(h.data[i], h.data[j]) {
			break
		}
		h.data[i], h.data[j] = h.data[j], h.data[i]
		i = j
	}
}
