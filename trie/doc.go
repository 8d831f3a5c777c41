// Package trie implements a common-prefix search index over dictionary
// surface forms, keyed by codepoint (rune), not byte.
//
// What:
//
//   - Index stores (surface form, term.ID) pairs and answers
//     CommonPrefixSearch(suffix): every stored key that is a prefix of
//     suffix, together with every term.ID registered under that key.
//
// Why a trie, and why per-node ID slices:
//
//   - A character trie makes common-prefix enumeration a single walk
//     down the tree bounded by len(suffix) rather than a scan of every
//     dictionary entry.
//   - IPADIC legitimately contains duplicate surface forms (the same
//     word spelled one way with two different part-of-speech/cost
//     entries). Each trie node therefore holds a slice of term.ID
//     values, not a single value — a map-backed "last write wins" index
//     would silently drop every duplicate but the most recent.
//
// Determinism:
//
//	CommonPrefixSearch(s) is a pure function of s and the sequence of
//	Insert calls; it does not depend on Go map iteration order because
//	children are addressed by rune value, not iterated, during lookup.
//
// Complexity:
//
//   - Insert: O(k) where k = codepoint length of the surface form.
//   - CommonPrefixSearch(s): O(k) where k = codepoint length of s,
//     plus O(m) to copy out the m matches found along the walk.
package trie
