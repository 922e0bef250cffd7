// SPDX-License-Identifier: MIT

package heap

import "errors"

// Sentinel errors. Both signal programmer errors and are raised by panics.
var (
	// ErrNilLess indicates a nil comparator was passed to NewFunc or FromFunc.
	ErrNilLess = errors.New("heap: less function is nil")

	// ErrBadCapacity indicates WithCapacity received a negative value.
	ErrBadCapacity = errors.New("heap: capacity must be non-negative")
)

// Options configures a new Heap.
//
// Capacity – initial capacity of the backing slice. Must be ≥ 0. Default 0.
type Options struct {
	Capacity int
}

// Option represents a functional option for configuring a Heap.
type Option func(*Options)

// WithCapacity preallocates room for n elements.
// Negative values panic with ErrBadCapacity.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// DefaultOptions returns the Options used when no option is given.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}
