// Package seqkit is a small collection of generic sequence algorithms and
// containers.
//
// 🚀 What is seqkit?
//
//	A pure-Go, generics-first library that brings together:
//		• manacher/ — linear-time exact-palindrome index: longest palindrome,
//		              O(1) range tests, lazy window enumeration
//		• heap/     — binary heap (priority queue) with a custom comparator
//		• trie/     — prefix tree keyed by any comparable token type
//
// The packages are independent of each other; import only what you need.
//
// Quick example:
//
//	idx := manacher.NewString("abracadabra")
//	idx.MaxLen()           // 3
//	idx.IsPalindrome(3, 6) // true ("aca")
//
// See examples/ for a program combining all three packages.
//
//	go get github.com/katalvlaran/seqkit
package seqkit
