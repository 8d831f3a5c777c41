package term

import "errors"

// Sentinel errors for the term package.
var (
	// ErrUnknownTermID indicates a lookup with an ID outside the table's range.
	ErrUnknownTermID = errors.New("term: unknown term id")

	// ErrEmptySurface indicates an Entry was appended with an empty surface form.
	ErrEmptySurface = errors.New("term: surface form is empty")
)

// PartOfSpeech is the closed set of coarse grammatical categories a term
// entry's 品詞 (part_of_speech_major) column maps onto.
type PartOfSpeech int

const (
	// UNKNOWN is the catch-all for any part_of_speech_major value outside
	// the six recognized IPADIC categories.
	UNKNOWN PartOfSpeech = iota
	NOUN
	ADJ
	VERB
	AUXVerb
	PARTICLE
	PUNC
)

// String renders the PartOfSpeech using its English mnemonic, for logging
// and test failure messages.
func (p PartOfSpeech) String() string {
	switch p {
	case NOUN:
		return "NOUN"
	case ADJ:
		return "ADJ"
	case VERB:
		return "VERB"
	case AUXVerb:
		return "AUX_VERB"
	case PARTICLE:
		return "PARTICLE"
	case PUNC:
		return "PUNC"
	default:
		return "UNKNOWN"
	}
}

// ParsePOS maps an IPADIC part_of_speech_major column value onto the
// closed PartOfSpeech set. The mapping is bit-exact: any value other than
// the six recognized strings maps to UNKNOWN. This is the one place in the
// module that speaks the dictionary's native Japanese vocabulary.
func ParsePOS(major string) PartOfSpeech {
	switch major {
	case "名詞":
		return NOUN
	case "形容詞":
		return ADJ
	case "動詞":
		return VERB
	case "助動詞":
		return AUXVerb
	case "助詞":
		return PARTICLE
	case "記号":
		return PUNC
	default:
		return UNKNOWN
	}
}

// ID identifies an Entry within a Table by its insertion index. IDs are
// stable for the life of the process and never reused.
type ID int

// Entry is a single dictionary row.
//
// RuneLen is the codepoint length of Surface, precomputed at construction
// time so that lattice node spans (which use codepoint, not byte,
// offsets) never need to re-scan the surface form.
type Entry struct {
	Surface        string
	RuneLen        int
	LeftContextID  int
	RightContextID int
	EmissionCost   int64
	POS            PartOfSpeech
	Subdivision    string
}

// NewEntry builds an Entry from its columns, computing RuneLen from
// Surface. Callers that already parsed rows from the IPADIC CSV format
// should use this instead of constructing Entry by hand, so RuneLen can
// never drift out of sync with Surface.
func NewEntry(surface string, left, right int, cost int64, pos PartOfSpeech, subdivision string) Entry {
	return Entry{
		Surface:        surface,
		RuneLen:        len([]rune(surface)),
		LeftContextID:  left,
		RightContextID: right,
		EmissionCost:   cost,
		POS:            pos,
		Subdivision:    subdivision,
	}
}

// Table is an append-only, index-stable collection of Entry values.
//
// Invariant: every ID ever returned by Append refers to an existing Entry
// at the same index for the life of the Table.
type Table struct {
	entries []Entry
}

// NewTable returns an empty Table ready to accept Append calls.
func NewTable() *Table {
	return &Table{entries: make([]Entry, 0, 1024)}
}

// Append stores e and returns the ID future lookups must use to retrieve
// it. Complexity: O(1) amortized.
func (t *Table) Append(e Entry) (ID, error) {
	if e.Surface == "" {
		return 0, ErrEmptySurface
	}
	t.entries = append(t.entries, e)

	return ID(len(t.entries) - 1), nil
}

// Get returns the Entry stored at id, or ErrUnknownTermID if id is outside
// the table's current range. Complexity: O(1).
func (t *Table) Get(id ID) (Entry, error) {
	if id < 0 || int(id) >= len(t.entries) {
		return Entry{}, ErrUnknownTermID
	}

	return t.entries[id], nil
}

// Len returns the number of entries currently stored.
func (t *Table) Len() int {
	return len(t.entries)
}
