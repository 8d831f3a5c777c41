package tokenizer

import (
	"fmt"

	"github.com/morisaki/kotoba/dictionary"
	"github.com/morisaki/kotoba/lattice"
	"github.com/morisaki/kotoba/viterbi"
)

// Tokenize segments input into the minimum-cost sequence of dictionary
// terms under dict's connection-cost model. Empty input returns an empty
// token slice and a nil error: Bos connects directly to Eos at cost 0,
// there is simply nothing between them.
//
// Stage 1 (scan): for every codepoint position in input, query
// dict.PrefixSearch and insert one lattice.Node per match found.
// Stage 2 (solve): delegate to viterbi.Solve for the Bos->Eos path,
// anchored at input's true codepoint length so that any unmatched
// trailing codepoint leaves a gap rather than a silently short path.
// Stage 3 (resolve): drop the Bos/Eos sentinels and resolve each
// remaining node's term.Entry into a Token.
func Tokenize(dict *dictionary.Dictionary, input string) ([]Token, error) {
	runes := []rune(input)

	lat := lattice.New(len(runes))
	for i := range runes {
		suffix := string(runes[i:])
		for _, m := range dict.PrefixSearch(suffix) {
			runeLen := len([]rune(m.Surface))
			lat.AddNode(lattice.NewTerm(i, runeLen, m.ID))
		}
	}

	path, err := viterbi.Solve(lat, dict)
	if err != nil {
		return nil, fmt.Errorf("tokenizer: %w", err)
	}

	tokens := make([]Token, 0, len(path))
	for _, n := range path {
		if n.Kind != lattice.Term {
			continue
		}
		entry, err := dict.Term(n.TermID)
		if err != nil {
			return nil, fmt.Errorf("tokenizer: %w", err)
		}
		tokens = append(tokens, newToken(entry.Surface, n, entry))
	}

	return tokens, nil
}
