package tokenizer

import (
	"github.com/morisaki/kotoba/lattice"
	"github.com/morisaki/kotoba/term"
)

// Token is one segment of a tokenized input: a resolved view of a
// lattice.Node that no longer needs the originating Dictionary or
// Lattice to be read. Start and End are codepoint offsets into the
// input that produced it, matching lattice.Node's convention.
type Token struct {
	surface     string
	start       int
	end         int
	pos         term.PartOfSpeech
	subdivision string
}

// Surface returns the token's surface form as it appeared in the input.
func (t Token) Surface() string { return t.surface }

// Start returns the token's starting codepoint offset, inclusive.
func (t Token) Start() int { return t.start }

// End returns the token's ending codepoint offset, exclusive.
func (t Token) End() int { return t.end }

// POS returns the token's major part-of-speech classification.
func (t Token) POS() term.PartOfSpeech { return t.pos }

// Subdivision returns the token's dictionary subdivision label (IPADIC's
// finer-grained part-of-speech category), verbatim from the source CSV.
func (t Token) Subdivision() string { return t.subdivision }

func newToken(surface string, n lattice.Node, entry term.Entry) Token {
	return Token{
		surface:     surface,
		start:       n.Start,
		end:         n.End,
		pos:         entry.POS,
		subdivision: entry.Subdivision,
	}
}
