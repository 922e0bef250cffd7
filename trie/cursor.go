// SPDX-License-Identifier: MIT

package trie

// Cursor points at one node of a Trie and walks downward one token at a
// time. Cursors stay valid while the trie grows; nodes are never removed.
type Cursor[K comparable, U any] struct {
	t *Trie[K, U]
	n *node[K, U]
}

// Child returns a cursor at the child reached by k, or false if there is none.
func (c *Cursor[K, U]) Child(k K) (*Cursor[K, U], bool) {
	c.t.mu.RLock()
	defer c.t.mu.RUnlock()

	n, ok := c.n.children[k]
	if !ok {
		return nil, false
	}

	return &Cursor[K, U]{t: c.t, n: n}, true
}

// ChildOrInsert returns a cursor at the child reached by k, creating it
// with a zero value if it does not exist.
func (c *Cursor[K, U]) ChildOrInsert(k K) *Cursor[K, U] {
	c.t.mu.Lock()
	defer c.t.mu.Unlock()

	return &Cursor[K, U]{t: c.t, n: c.t.childOrInsert(c.n, k)}
}

// Value returns the value stored at the cursor's node.
func (c *Cursor[K, U]) Value() U {
	c.t.mu.RLock()
	defer c.t.mu.RUnlock()

	return c.n.value
}

// SetValue replaces the value stored at the cursor's node.
func (c *Cursor[K, U]) SetValue(v U) {
	c.t.mu.Lock()
	defer c.t.mu.Unlock()

	c.n.value = v
}

// Len returns the number of children of the cursor's node.
func (c *Cursor[K, U]) Len() int {
	c.t.mu.RLock()
	defer c.t.mu.RUnlock()

	return len(c.n.children)
}
