// SPDX-License-Identifier: MIT

package manacher_test

import (
	"slices"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqkit/manacher"
)

// ------------------------------------------------------------------------
// 1. Fixed scenarios.
// ------------------------------------------------------------------------

func TestIndex_Bananas(t *testing.T) {
	s := []byte("bananas")
	idx := manacher.New(s)

	require.Equal(t, 5, idx.MaxLen())
	require.Equal(t, []manacher.Range{{Lo: 1, Hi: 6}}, slices.Collect(idx.OfMax()))
	assert.False(t, idx.IsPalindrome(0, 2), `"ba" is not a palindrome`)
	assert.True(t, idx.IsPalindrome(1, 4), `"ana" is a palindrome`)
	requireMatchesNaive(t, s, idx)
}

func TestIndex_Abracadabra(t *testing.T) {
	s := []byte("abracadabra")
	idx := manacher.New(s)

	require.Equal(t, 3, idx.MaxLen())
	want := []manacher.Range{{Lo: 3, Hi: 6}, {Lo: 5, Hi: 8}}
	if diff := cmp.Diff(want, slices.Collect(idx.OfMax())); diff != "" {
		t.Fatalf("OfMax mismatch (-want +got):\n%s", diff)
	}
	requireMatchesNaive(t, s, idx)
}

func TestIndex_MultiByteAlphabet(t *testing.T) {
	text := "上海自来水来自海上A中山诸罗茶罗诸山中B山东落花生花落东山C花莲喷水池水喷莲花"
	idx := manacher.NewString(text)

	require.Equal(t, 39, idx.Len(), "ranges are counted in runes")
	require.Equal(t, 9, idx.MaxLen())
	want := []manacher.Range{{Lo: 0, Hi: 9}, {Lo: 10, Hi: 19}, {Lo: 20, Hi: 29}, {Lo: 30, Hi: 39}}
	if diff := cmp.Diff(want, slices.Collect(idx.OfMax())); diff != "" {
		t.Fatalf("OfMax mismatch (-want +got):\n%s", diff)
	}
	requireMatchesNaive(t, []rune(text), idx)
}

func TestIndex_Empty(t *testing.T) {
	idx := manacher.New([]byte{})

	assert.Equal(t, 0, idx.Len())
	assert.Equal(t, 0, idx.MaxLen())
	assert.Equal(t, []int{0}, idx.Radii())
	assert.Empty(t, slices.Collect(idx.OfMax()))
	assert.True(t, idx.IsPalindrome(0, 0), "empty range is a palindrome")

	_, ok := idx.Longest()
	assert.False(t, ok)

	requirePanicsWith(t, manacher.ErrIndexOutOfRange, func() { idx.OddLongestAt(0) })
	requirePanicsWith(t, manacher.ErrIndexOutOfRange, func() { idx.EvenLongestAt(-1, 0) })
}

func TestIndex_NilSlice(t *testing.T) {
	idx := manacher.New[int](nil)
	assert.Equal(t, []int{0}, idx.Radii())
	assert.Equal(t, 0, idx.MaxLen())
}

func TestIndex_SingleElement(t *testing.T) {
	idx := manacher.New([]byte("x"))

	assert.Equal(t, []int{0, 1, 0}, idx.Radii())
	assert.Equal(t, 1, idx.MaxLen())
	assert.Equal(t, manacher.Range{Lo: 0, Hi: 1}, idx.OddLongestAt(0))
	assert.Equal(t, manacher.Range{Lo: 0, Hi: 0}, idx.EvenLongestAt(-1, 0))
	assert.Equal(t, []manacher.Range{{Lo: 0, Hi: 1}}, slices.Collect(idx.OfMax()))
}

func TestIndex_RadiiAreCopies(t *testing.T) {
	idx := manacher.New([]byte("aba"))
	r := idx.Radii()
	r[3] = 99

	assert.Equal(t, []int{0, 1, 0, 3, 0, 1, 0}, idx.Radii(), "index must not share its table")
}

func TestIndex_DoesNotRetainInput(t *testing.T) {
	s := []byte("abba")
	idx := manacher.New(s)
	copy(s, "abcd")

	assert.True(t, idx.IsPalindrome(0, 4), "answers reflect the sequence at build time")
	assert.Equal(t, 4, idx.MaxLen())
}

// ------------------------------------------------------------------------
// 2. Center lookups and range tests.
// ------------------------------------------------------------------------

func TestIndex_CenterLookups(t *testing.T) {
	idx := manacher.NewString("xabbaycdc")

	assert.Equal(t, manacher.Range{Lo: 1, Hi: 5}, idx.EvenLongestAt(2, 3), "abba")
	assert.Equal(t, manacher.Range{Lo: 4, Hi: 4}, idx.EvenLongestAt(3, 4), "no even palindrome between b and a")
	assert.Equal(t, manacher.Range{Lo: 6, Hi: 9}, idx.OddLongestAt(7), "cdc")
	assert.Equal(t, manacher.Range{Lo: 0, Hi: 1}, idx.OddLongestAt(0))

	r, ok := idx.Longest()
	require.True(t, ok)
	assert.Equal(t, manacher.Range{Lo: 1, Hi: 5}, r)
	assert.Equal(t, "[1,5)", r.String())
	assert.Equal(t, 4, r.Len())
}

func TestIndex_PreconditionPanics(t *testing.T) {
	idx := manacher.New([]byte("abc"))

	requirePanicsWith(t, manacher.ErrIndexOutOfRange, func() { idx.OddLongestAt(-1) })
	requirePanicsWith(t, manacher.ErrIndexOutOfRange, func() { idx.OddLongestAt(3) })
	requirePanicsWith(t, manacher.ErrIndexOutOfRange, func() { idx.EvenLongestAt(2, 3) })
	requirePanicsWith(t, manacher.ErrNotAdjacent, func() { idx.EvenLongestAt(0, 2) })
	requirePanicsWith(t, manacher.ErrIndexOutOfRange, func() { idx.IsPalindrome(-1, 2) })
	requirePanicsWith(t, manacher.ErrIndexOutOfRange, func() { idx.IsPalindrome(1, 4) })

	assert.True(t, idx.IsPalindrome(5, 1), "inverted range is empty, never checked")
}

// ------------------------------------------------------------------------
// 3. Custom equality.
// ------------------------------------------------------------------------

func TestNewFunc_CaseInsensitive(t *testing.T) {
	s := []rune("xRaceCar")
	fold := func(a, b rune) bool { return unicode.ToLower(a) == unicode.ToLower(b) }

	idx := manacher.NewFunc(s, fold)
	assert.Equal(t, 7, idx.MaxLen())
	assert.True(t, idx.IsPalindrome(1, 8))

	strict := manacher.New(s)
	assert.Equal(t, 1, strict.MaxLen())
}

func TestNewFunc_StructElements(t *testing.T) {
	type note struct {
		pitch string
		beats float64
	}
	// Compare by pitch only; duration differences do not matter.
	tune := []note{{"C", 1}, {"E", 0.5}, {"G", 2}, {"E", 1}, {"C", 0.25}}
	idx := manacher.NewFunc(tune, func(a, b note) bool { return a.pitch == b.pitch })

	assert.Equal(t, 5, idx.MaxLen())
	assert.Equal(t, manacher.Range{Lo: 0, Hi: 5}, idx.OddLongestAt(2))
}

func TestNewFunc_NilEqualPanics(t *testing.T) {
	assert.PanicsWithValue(t, manacher.ErrNilEqual.Error(), func() {
		manacher.NewFunc([]int{1, 2, 1}, nil)
	})
}

// ------------------------------------------------------------------------
// Helpers.
// ------------------------------------------------------------------------

// requirePanicsWith runs f and requires it to panic with an error matching target.
func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		require.ErrorIs(t, err, target)
	}()
	f()
}

// naivePalindrome compares s[l+d] with s[r-1-d] for every d.
func naivePalindrome[T comparable](s []T, l, r int) bool {
	for i, j := l, r-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}

	return true
}

// naiveMaxLen is the longest substring equal to its own reverse.
func naiveMaxLen[T comparable](s []T) int {
	best := 0
	for l := 0; l < len(s); l++ {
		for r := l + best + 1; r <= len(s); r++ {
			if naivePalindrome(s, l, r) {
				best = r - l
			}
		}
	}

	return best
}

// naiveOfLen lists every palindromic window of the given length, by start.
func naiveOfLen[T comparable](s []T, length int) []manacher.Range {
	var out []manacher.Range
	for l := 0; length > 0 && l+length <= len(s); l++ {
		if naivePalindrome(s, l, l+length) {
			out = append(out, manacher.Range{Lo: l, Hi: l + length})
		}
	}

	return out
}

// requireMatchesNaive checks IsPalindrome against brute force for all 0 ≤ l ≤ r ≤ n.
func requireMatchesNaive[T comparable](t *testing.T, s []T, idx *manacher.Index) {
	t.Helper()
	for l := 0; l <= len(s); l++ {
		for r := l; r <= len(s); r++ {
			if want := naivePalindrome(s, l, r); idx.IsPalindrome(l, r) != want {
				t.Fatalf("IsPalindrome(%d, %d) on %v = %v, want %v", l, r, s, !want, want)
			}
		}
	}
}
