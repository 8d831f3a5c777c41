// Package tokenizer is the driver that turns raw input text into a
// sequence of Tokens: it scans input for dictionary matches, builds the
// lattice.Lattice those matches describe, and delegates to viterbi.Solve
// for the minimum-cost segmentation.
//
// What: Tokenize(dict, input) builds one lattice per call and returns
// the Bos/Eos-stripped path as a []Token, each carrying the resolved
// surface form, codepoint span, and part of speech.
//
// Why: the lattice and Viterbi packages operate on codepoint positions
// and term ids; Tokenize is the only place that owns the input's rune
// slice and is responsible for mapping dict.PrefixSearch results back
// onto lattice.Node spans.
//
// Determinism: scanning proceeds left to right over input's codepoints;
// at each position, dict.PrefixSearch results are inserted into the
// lattice in the order the trie enumerates them. Combined with
// viterbi.Solve's deterministic tie-breaking, two calls with the same
// dict and input produce byte-identical output.
//
// Complexity: O(n * k) to build the lattice, where n is input's
// codepoint length and k is the average number of prefix matches per
// position, plus viterbi.Solve's cost to relax it.
//
// Optional optimization (not implemented, consistent with scope): a
// position with no node starting there and no node ending there can
// never contribute to a Bos->Eos path and could be skipped outright
// during both scanning and relaxation. Left undone here, as in the
// source this package was distilled from.
package tokenizer
