// SPDX-License-Identifier: MIT

package manacher

import "iter"

// OfLen returns every palindromic window of exactly length elements, one
// per center whose maximal palindrome is at least that long and has the
// same parity. Windows come in order of center, hence of non-decreasing
// start. length ≤ 0 yields nothing.
//
// The sequence is lazy and restartable: each range over it walks the
// radius table from the beginning and holds no shared state.
func (x *Index) OfLen(length int) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		if length <= 0 {
			return
		}
		for ti, rad := range x.radius {
			if rad < length || rad%2 != length%2 {
				continue
			}
			// ti-length has even parity here, so the window starts on an
			// element boundary.
			lo := (ti - length) / 2
			if !yield(Range{Lo: lo, Hi: lo + length}) {
				return
			}
		}
	}
}

// OfMax is OfLen(MaxLen()): every longest palindromic window.
func (x *Index) OfMax() iter.Seq[Range] {
	return x.OfLen(x.maxLen)
}

// Longest returns the leftmost longest palindromic window, or false if the
// indexed sequence is empty.
func (x *Index) Longest() (Range, bool) {
	for r := range x.OfMax() {
		return r, true
	}

	return Range{}, false
}
