// SPDX-License-Identifier: MIT

// Package manacher builds a linear-time exact-palindrome index over an
// immutable sequence and answers palindrome queries against it.
//
// 🚀 What is it?
//
//	Manacher's algorithm computes, for every center of a sequence, the
//	radius of the maximal palindrome around that center. Centers are both
//	the elements themselves (odd-length palindromes) and the gaps between
//	them (even-length palindromes). The index is built once in O(n) and
//	then answers:
//	  • MaxLen                      — length of the longest palindrome
//	  • OddLongestAt/EvenLongestAt  — maximal palindrome at a given center
//	  • IsPalindrome(l, r)          — O(1) test for any half-open range
//	  • OfLen/OfMax                 — lazy enumeration of windows of a length
//
// ✨ Key features:
//   - works for any element type: New (comparable), NewFunc (custom equality),
//     NewString (runes, so multi-byte alphabets report character ranges)
//   - the interleaved "#a#b#c#" view is virtual; only the radius table is stored
//   - enumeration is an iter.Seq: restartable, O(1) memory per walk
//   - BuildAll indexes many independent sequences in parallel
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqkit/manacher"
//
//	idx := manacher.NewString("bananas")
//	fmt.Println(idx.MaxLen())           // 5
//	fmt.Println(idx.IsPalindrome(1, 4)) // true  ("ana")
//	for r := range idx.OfMax() {
//	    fmt.Println(r)                  // [1,6)
//	}
//
// Contracts:
//
//	An Index never fails to build. Queries with out-of-range centers are
//	programmer errors and panic with an error wrapping ErrIndexOutOfRange
//	(or ErrNotAdjacent). Once built, an Index is read-only and may be
//	queried from any number of goroutines.
//
// Performance:
//
//   - Build:  O(n) time, O(n) memory (2n+1 ints)
//   - Query:  O(1), enumeration O(n) per full walk
package manacher
