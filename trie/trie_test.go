package trie_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/morisaki/kotoba/term"
	"github.com/morisaki/kotoba/trie"
)

func TestCommonPrefixSearchFindsAllPrefixes(t *testing.T) {
	idx := trie.New()
	idx.Insert("東", term.ID(0))
	idx.Insert("東京", term.ID(1))
	idx.Insert("東京都", term.ID(2))
	idx.Insert("大阪", term.ID(3))

	got := idx.CommonPrefixSearch("東京都に住む")
	require.Len(t, got, 3)

	surfaces := map[string]term.ID{}
	for _, m := range got {
		surfaces[m.Surface] = m.ID
	}
	require.Equal(t, term.ID(0), surfaces["東"])
	require.Equal(t, term.ID(1), surfaces["東京"])
	require.Equal(t, term.ID(2), surfaces["東京都"])
	require.NotContains(t, surfaces, "大阪")
}

func TestCommonPrefixSearchNoMatch(t *testing.T) {
	idx := trie.New()
	idx.Insert("猫", term.ID(0))

	require.Empty(t, idx.CommonPrefixSearch("犬"))
	require.Empty(t, idx.CommonPrefixSearch(""))
}

func TestCommonPrefixSearchRetainsDuplicateSurfaceForms(t *testing.T) {
	idx := trie.New()
	idx.Insert("東", term.ID(10))
	idx.Insert("東", term.ID(11))

	got := idx.CommonPrefixSearch("東京")
	require.Len(t, got, 2)
	ids := []term.ID{got[0].ID, got[1].ID}
	require.ElementsMatch(t, []term.ID{10, 11}, ids)
}
