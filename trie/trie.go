// SPDX-License-Identifier: MIT

package trie

import (
	"iter"
	"sync"
)

// node is one trie vertex; children are keyed by the next token.
type node[K comparable, U any] struct {
	children map[K]*node[K, U]
	value    U
}

func newNode[K comparable, U any]() *node[K, U] {
	return &node[K, U]{children: make(map[K]*node[K, U])}
}

// Trie is a prefix tree from token sequences of K to values of U.
type Trie[K comparable, U any] struct {
	mu    sync.RWMutex
	root  *node[K, U]
	nodes int // excluding the root
}

// New returns an empty trie.
func New[K comparable, U any]() *Trie[K, U] {
	return &Trie[K, U]{root: newNode[K, U]()}
}

// Insert stores v at the node reached by path, creating missing nodes.
// An empty path stores v at the root.
func (t *Trie[K, U]) Insert(path iter.Seq[K], v U) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := t.root
	for k := range path {
		n = t.childOrInsert(n, k)
	}
	n.value = v
}

// Get returns the value at the node reached by path. ok is false if the
// path leaves the tree.
func (t *Trie[K, U]) Get(path iter.Seq[K]) (v U, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := t.root
	for k := range path {
		if n = n.children[k]; n == nil {
			return v, false
		}
	}

	return n.value, true
}

// Nodes returns the number of nodes below the root.
func (t *Trie[K, U]) Nodes() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.nodes
}

// Cursor returns a cursor positioned at the root.
func (t *Trie[K, U]) Cursor() *Cursor[K, U] {
	return &Cursor[K, U]{t: t, n: t.root}
}

// childOrInsert returns n's child for k, creating it if needed. Caller holds t.mu.
func (t *Trie[K, U]) childOrInsert(n *node[K, U], k K) *node[K, U] {
	c, ok := n.children[k]
	if !ok {
		c = newNode[K, U]()
		n.children[k] = c
		t.nodes++
	}

	return c
}

// Runes adapts a string to a rune path.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}
