// SPDX-License-Identifier: MIT

package manacher

// Manacher radius table
//
// Description:
//
//	For every position ti of the transformed view "#s0#s1#...#" the table
//	stores radius[ti], the largest d such that the window [ti-d, ti+d] is
//	mirror-symmetric. Because separators pad both ends of every window,
//	radius[ti] is also the length, in original elements, of the maximal
//	palindrome of s centered at ti.
//
// Algorithm Outline:
//  1. radius[0] = 0; center = right = 0 describe the window reaching
//     farthest to the right seen so far.
//  2. For i = 1..2n:
//     off = 1                                  if i ≥ right
//     off = min(radius[2·center−i], right−i)+1 otherwise (mirror reuse)
//     while i±off in bounds and view[i+off] == view[i−off]: off++
//     radius[i] = off−1
//     if i+radius[i] > right: center, right = i, i+radius[i]
//
// Complexity:
//
//	Time   = O(n): right only grows and never exceeds 2n, and every
//	         successful probe beyond the seeded offset advances it.
//	Memory = O(n) for the 2n+1 radii.

// Index is an immutable palindrome index over a sequence.
// It does not retain the sequence it was built from.
type Index struct {
	n      int   // source length
	radius []int // radius[ti] for ti in [0, 2n+1)
	maxLen int   // max(radius)
}

// New indexes s using the == operator on its elements.
//
// Example:
//
//	idx := New([]byte("abracadabra"))
//	idx.MaxLen() // 3
func New[T comparable](s []T) *Index {
	return build(view[T]{s: s, eq: func(a, b T) bool { return a == b }})
}

// NewFunc indexes s using eq to compare elements. eq must be an
// equivalence relation; a nil eq panics with ErrNilEqual.
func NewFunc[T any](s []T, eq func(a, b T) bool) *Index {
	if eq == nil {
		panic(ErrNilEqual.Error())
	}

	return build(view[T]{s: s, eq: eq})
}

// NewString indexes the runes of s. Ranges reported by the index are
// rune offsets, not byte offsets.
func NewString(s string) *Index {
	return New([]rune(s))
}

// build runs the single left-to-right pass over the transformed view.
func build[T any](v view[T]) *Index {
	tLen := v.len()
	radius := make([]int, tLen) // radius[0] stays 0
	center, right := 0, 0
	best := 0

	for i := 1; i < tLen; i++ {
		off := 1
		if i < right {
			// The mirror window certifies min(radius[mirror], right-i)
			// offsets already; probe only past them.
			off = min(radius[2*center-i], right-i) + 1
		}
		for i-off >= 0 && i+off < tLen && v.isEqual(i+off, i-off) {
			off++
		}
		radius[i] = off - 1

		if i+radius[i] > right {
			center, right = i, i+radius[i]
		}
		if radius[i] > best {
			best = radius[i]
		}
	}

	return &Index{n: len(v.s), radius: radius, maxLen: best}
}
