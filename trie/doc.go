// SPDX-License-Identifier: MIT

// Package trie implements a generic prefix tree keyed by sequences of
// comparable tokens (runes, bytes, words, IDs...).
//
// Every node, not only the ones reached by Insert, carries a value of type
// U; nodes created on the way to an inserted path hold U's zero value. A
// lookup therefore distinguishes "path leaves the tree" (ok == false) from
// "path exists but was never assigned" (zero value, ok == true).
//
// All methods, including those of Cursor, are safe for concurrent use. The
// path iterators passed to Insert and Get are consumed under the trie's
// lock and must not call back into the same trie.
package trie
