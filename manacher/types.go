// SPDX-License-Identifier: MIT

package manacher

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors. Query preconditions panic with values wrapping these,
// so a recovered panic can be matched with errors.Is.
var (
	// ErrIndexOutOfRange indicates a center or range bound outside the indexed sequence.
	ErrIndexOutOfRange = errors.New("manacher: index out of range")

	// ErrNotAdjacent indicates EvenLongestAt was called with indices that are not si, si+1.
	ErrNotAdjacent = errors.New("manacher: even center indices must be adjacent")

	// ErrNilEqual indicates NewFunc was called without an equality function.
	ErrNilEqual = errors.New("manacher: equality function is nil")

	// ErrBadConcurrency indicates WithConcurrency received a value below 1.
	ErrBadConcurrency = errors.New("manacher: concurrency must be at least 1")
)

// Range is a half-open interval [Lo, Hi) in original sequence coordinates.
type Range struct {
	Lo int // first index, inclusive
	Hi int // last index, exclusive
}

// Len returns the number of elements covered by r.
func (r Range) Len() int { return r.Hi - r.Lo }

// String formats r as "[lo,hi)".
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Lo, r.Hi) }

// BatchOptions configures BuildAll.
//
// Concurrency – maximum number of indexes built at the same time.
//
//	Must be ≥ 1. Default is runtime.GOMAXPROCS(0).
type BatchOptions struct {
	Concurrency int
}

// BatchOption represents a functional option for configuring BuildAll.
type BatchOption func(*BatchOptions)

// WithConcurrency caps the number of sequences indexed in parallel.
// Values below 1 panic with ErrBadConcurrency.
func WithConcurrency(n int) BatchOption {
	return func(o *BatchOptions) {
		if n < 1 {
			panic(ErrBadConcurrency.Error())
		}
		o.Concurrency = n
	}
}

// DefaultBatchOptions returns the BatchOptions used when no option is given.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// outOfRange builds the panic value for a failed bounds precondition.
func outOfRange(what string, i, n int) error {
	return fmt.Errorf("%w: %s %d, sequence length %d", ErrIndexOutOfRange, what, i, n)
}
