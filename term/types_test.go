package term_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/morisaki/kotoba/term"
)

func TestParsePOS(t *testing.T) {
	cases := []struct {
		major string
		want  term.PartOfSpeech
	}{
		{"名詞", term.NOUN},
		{"形容詞", term.ADJ},
		{"動詞", term.VERB},
		{"助動詞", term.AUXVerb},
		{"助詞", term.PARTICLE},
		{"記号", term.PUNC},
		{"感動詞", term.UNKNOWN},
		{"", term.UNKNOWN},
	}
	for _, c := range cases {
		require.Equal(t, c.want, term.ParsePOS(c.major), "major=%q", c.major)
	}
}

func TestNewEntryComputesRuneLen(t *testing.T) {
	e := term.NewEntry("東京", 1, 2, 10, term.NOUN, "固有名詞")
	require.Equal(t, 2, e.RuneLen, "東京 is two codepoints regardless of byte length")
	require.Equal(t, 6, len(e.Surface), "sanity: byte length differs from rune length")
}

func TestTableAppendAndGet(t *testing.T) {
	tbl := term.NewTable()
	id1, err := tbl.Append(term.NewEntry("猫", 1, 1, 10, term.NOUN, "一般"))
	require.NoError(t, err)
	id2, err := tbl.Append(term.NewEntry("が", 2, 2, 5, term.PARTICLE, "格助詞"))
	require.NoError(t, err)
	require.NotEqual(t, id1, id2)
	require.Equal(t, 2, tbl.Len())

	got, err := tbl.Get(id1)
	require.NoError(t, err)
	require.Equal(t, "猫", got.Surface)

	_, err = tbl.Get(term.ID(99))
	require.ErrorIs(t, err, term.ErrUnknownTermID)
}

func TestTableAppendRejectsEmptySurface(t *testing.T) {
	tbl := term.NewTable()
	_, err := tbl.Append(term.Entry{})
	require.ErrorIs(t, err, term.ErrEmptySurface)
}

func TestTableRetainsDuplicateSurfaceForms(t *testing.T) {
	tbl := term.NewTable()
	idA, err := tbl.Append(term.NewEntry("東", 1, 1, 100, term.NOUN, "一般"))
	require.NoError(t, err)
	idB, err := tbl.Append(term.NewEntry("東", 1, 1, 50, term.NOUN, "固有名詞"))
	require.NoError(t, err)
	require.NotEqual(t, idA, idB)

	entryA, err := tbl.Get(idA)
	require.NoError(t, err)
	entryB, err := tbl.Get(idB)
	require.NoError(t, err)
	require.Equal(t, entryA.Surface, entryB.Surface)
	require.NotEqual(t, entryA.EmissionCost, entryB.EmissionCost)
}
