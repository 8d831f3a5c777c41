// Package kotoba segments Japanese text into dictionary terms by
// building a word lattice from a prebuilt term dictionary and selecting
// the minimum-cost path under a bigram connection-cost model — the
// segmentation half of a MeCab/IPADIC-style analyzer.
//
// The module is organized as one directory per concern, each with its
// own doc.go:
//
//	term/       — term entries and the append-only term table
//	connmatrix/ — dense bigram connection-cost matrix
//	trie/       — rune-keyed common-prefix search over surface forms
//	dictionary/ — aggregates term+trie+connmatrix, loads from disk
//	lattice/    — positional node container (BOS/EOS/TERM)
//	viterbi/    — minimum-cost BOS->EOS path solver
//	tokenizer/  — scans input, builds a lattice, delegates to viterbi
//	cmd/kotoba/ — CLI driver
//
// Typical use:
//
//	dict, err := dictionary.Load([]string{"ipadic.csv"}, "matrix.def")
//	tokens, err := tokenizer.Tokenize(dict, "東京都に行く")
package kotoba
