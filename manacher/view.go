// SPDX-License-Identifier: MIT

package manacher

// token is one position of the transformed view: either a virtual
// separator or a reference to an element of the source.
type token[T any] struct {
	sep bool
	val T
}

// view reinterprets s as the length-(2n+1) sequence "#s0#s1#...#".
// Even transformed indices are separators, odd index ti is s[(ti-1)/2].
// Nothing is copied; the view only maps coordinates.
type view[T any] struct {
	s  []T
	eq func(a, b T) bool
}

// len returns the transformed length 2n+1.
func (v view[T]) len() int { return 2*len(v.s) + 1 }

// get returns the token at transformed index ti.
func (v view[T]) get(ti int) token[T] {
	if ti < 0 || ti >= v.len() {
		panic(outOfRange("transformed index", ti, len(v.s)))
	}
	if ti%2 == 0 {
		return token[T]{sep: true}
	}

	return token[T]{val: v.s[toSource(ti)]}
}

// isEqual reports whether the tokens at ti and tj are equal. Separators
// equal each other and never equal an element.
func (v view[T]) isEqual(ti, tj int) bool {
	a, b := v.get(ti), v.get(tj)
	if a.sep || b.sep {
		return a.sep == b.sep
	}

	return v.eq(a.val, b.val)
}

// toSource maps an odd transformed index to its source index.
func toSource(ti int) int { return (ti - 1) / 2 }

// toTransformed maps a source index to its transformed index.
func toTransformed(si int) int { return 2*si + 1 }
