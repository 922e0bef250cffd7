// SPDX-License-Identifier: MIT

package manacher

import (
	"fmt"
	"slices"
)

// Len returns the length of the indexed sequence.
func (x *Index) Len() int { return x.n }

// Radii returns a copy of the radius table (length 2n+1).
func (x *Index) Radii() []int { return slices.Clone(x.radius) }

// MaxLen returns the length of the longest palindromic substring,
// or 0 for an empty sequence.
func (x *Index) MaxLen() int { return x.maxLen }

// OddLongestAt returns the maximal palindrome centered on element si.
// Its length is always odd. Panics if si is outside [0, Len()).
//
//	#a#b# si #b#a#   radius 5 → [si-2, si+3)
func (x *Index) OddLongestAt(si int) Range {
	if si < 0 || si >= x.n {
		panic(outOfRange("center", si, x.n))
	}
	rad := x.radius[toTransformed(si)] / 2

	return Range{Lo: si - rad, Hi: si + rad + 1}
}

// EvenLongestAt returns the maximal palindrome centered on the gap between
// si and next, which must equal si+1. Its length is always even and may be
// zero. next must lie in [0, Len()); si = -1 is accepted and yields [0,0).
func (x *Index) EvenLongestAt(si, next int) Range {
	if next != si+1 {
		panic(fmt.Errorf("%w: got %d and %d", ErrNotAdjacent, si, next))
	}
	if next < 0 || next >= x.n {
		panic(outOfRange("center", next, x.n))
	}
	rad := x.radius[toTransformed(si)+1] / 2

	return Range{Lo: next - rad, Hi: next + rad}
}

// IsPalindrome reports whether the half-open range [l, r) reads the same
// in both directions. Empty ranges (l >= r) are palindromes. For l < r the
// bounds must satisfy 0 ≤ l and r ≤ Len(), otherwise IsPalindrome panics.
//
// The test is a single table lookup: [l, r) is a palindrome iff the
// maximal palindrome at the same center is at least as long.
func (x *Index) IsPalindrome(l, r int) bool {
	if l >= r {
		return true
	}
	if l < 0 {
		panic(outOfRange("range start", l, x.n))
	}
	if r > x.n {
		panic(outOfRange("range end", r, x.n))
	}

	size := r - l
	var longest Range
	if size%2 == 0 {
		mid := l + size/2 - 1
		longest = x.EvenLongestAt(mid, mid+1)
	} else {
		longest = x.OddLongestAt(l + size/2)
	}

	return longest.Len() >= size
}
