package viterbi

import "errors"

// ErrNoPath indicates Viterbi could not reach Eos from Bos. This happens
// when some codepoint in the input had no matching dictionary prefix at
// its position and the lattice consequently contains a gap no node
// bridges.
var ErrNoPath = errors.New("viterbi: no path from BOS to EOS")
