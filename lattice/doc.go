// Package lattice defines the word lattice a tokenization pass builds
// before running the Viterbi solver over it.
//
// What:
//
//   - Node is a tagged variant over three kinds: Bos, Eos, Term. Only
//     Term nodes carry a meaningful TermID; Bos/Eos carry neither
//     emission nor connection cost by definition.
//   - Lattice owns a single growable slice of Node values for one
//     tokenization call. It is not safe for concurrent mutation, but
//     callers never need concurrent mutation: each Tokenize call owns a
//     private Lattice.
//   - Length is fixed at construction (New's argument), the input's true
//     codepoint length. It does not grow as nodes are added, so a
//     dictionary scan that finds no match for a trailing codepoint still
//     leaves a gap before Eos rather than quietly relocating Eos to the
//     last matched position.
//
// Why index-based predecessors, not pointers:
//
//	The Viterbi solver's best-predecessor back-reference is an index into
//	this same slice, not a pointer into a separately heap-allocated Node.
//	This keeps reconstruction a flat array walk and avoids any lifetime
//	question about predecessor references outliving the Lattice that owns
//	them.
//
// Determinism:
//
//	NodesStartingAt/NodesEndingAt return nodes in insertion order; the
//	Viterbi solver's tie-breaking ("first encountered wins") follows
//	directly from that order.
//
// Complexity:
//
//   - AddNode: O(1) amortized.
//   - NodesStartingAt / NodesEndingAt: O(1) amortized per returned node,
//     backed by per-position index buckets.
package lattice
