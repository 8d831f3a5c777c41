package dictionary_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/morisaki/kotoba/connmatrix"
	"github.com/morisaki/kotoba/dictionary"
	"github.com/morisaki/kotoba/term"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func writeEUCJPFile(t *testing.T, dir, name, utf8Content string) string {
	t.Helper()
	encoded, _, err := transform.String(japanese.EUCJP.NewEncoder(), utf8Content)
	require.NoError(t, err)

	return writeFile(t, dir, name, encoded)
}

const sampleMatrix = "3 3\n1 1 10\n2 1 3\n"

func TestLoadDefaultsToEUCJP(t *testing.T) {
	dir := t.TempDir()
	termPath := writeEUCJPFile(t, dir, "terms.csv", "猫,1,1,10,名詞,一般\nが,2,2,5,助詞,格助詞\n")
	matrixPath := writeFile(t, dir, "matrix.def", sampleMatrix)

	dict, err := dictionary.Load([]string{termPath}, matrixPath)
	require.NoError(t, err)
	require.Equal(t, 2, dict.TermCount())

	matches := dict.PrefixSearch("猫が")
	require.Len(t, matches, 1)
	require.Equal(t, "猫", matches[0].Surface)

	entry, err := dict.Term(matches[0].ID)
	require.NoError(t, err)
	require.Equal(t, term.NOUN, entry.POS)
	require.Equal(t, int64(10), entry.EmissionCost)
}

func TestLoadWithUTF8TermEncoding(t *testing.T) {
	dir := t.TempDir()
	termPath := writeFile(t, dir, "terms.csv", "東,1,1,100,名詞,一般\n東京,1,1,20,名詞,固有名詞\n")
	matrixPath := writeFile(t, dir, "matrix.def", "2 2\n")

	dict, err := dictionary.Load([]string{termPath}, matrixPath, dictionary.WithTermEncoding(nil))
	require.NoError(t, err)
	require.Equal(t, 2, dict.TermCount())

	matches := dict.PrefixSearch("東京都に住む")
	require.Len(t, matches, 2)
}

func TestLoadConcatenatesMultipleTermFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.csv", "猫,1,1,10,名詞,一般\n")
	second := writeFile(t, dir, "b.csv", "犬,1,1,8,名詞,一般\n")
	matrixPath := writeFile(t, dir, "matrix.def", "2 2\n")

	dict, err := dictionary.Load([]string{first, second}, matrixPath, dictionary.WithTermEncoding(nil))
	require.NoError(t, err)
	require.Equal(t, 2, dict.TermCount())

	first0, err := dict.Term(0)
	require.NoError(t, err)
	require.Equal(t, "猫", first0.Surface)

	second0, err := dict.Term(1)
	require.NoError(t, err)
	require.Equal(t, "犬", second0.Surface)
}

func TestLoadRejectsShortTermRow(t *testing.T) {
	dir := t.TempDir()
	termPath := writeFile(t, dir, "bad.csv", "猫,1,1,10\n")
	matrixPath := writeFile(t, dir, "matrix.def", "2 2\n")

	_, err := dictionary.Load([]string{termPath}, matrixPath, dictionary.WithTermEncoding(nil))
	require.ErrorIs(t, err, dictionary.ErrMalformedTerm)
}

func TestLoadRejectsNonSquareMatrix(t *testing.T) {
	dir := t.TempDir()
	termPath := writeFile(t, dir, "terms.csv", "猫,1,1,10,名詞,一般\n")
	matrixPath := writeFile(t, dir, "matrix.def", "2 3\n")

	_, err := dictionary.Load([]string{termPath}, matrixPath, dictionary.WithTermEncoding(nil))
	require.ErrorIs(t, err, dictionary.ErrMalformedMatrix)
}

func TestLoadRejectsOutOfRangeMatrixTriple(t *testing.T) {
	dir := t.TempDir()
	termPath := writeFile(t, dir, "terms.csv", "猫,1,1,10,名詞,一般\n")
	matrixPath := writeFile(t, dir, "matrix.def", "2 2\n5 0 1\n")

	_, err := dictionary.Load([]string{termPath}, matrixPath, dictionary.WithTermEncoding(nil))
	require.ErrorIs(t, err, dictionary.ErrMalformedMatrix)
}

func TestConnectionCostDefaultsToZeroForOmittedCells(t *testing.T) {
	dir := t.TempDir()
	termPath := writeFile(t, dir, "terms.csv", "猫,1,1,10,名詞,一般\n")
	matrixPath := writeFile(t, dir, "matrix.def", sampleMatrix)

	dict, err := dictionary.Load([]string{termPath}, matrixPath, dictionary.WithTermEncoding(nil))
	require.NoError(t, err)

	cost, err := dict.ConnectionCost(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), cost)

	cost, err = dict.ConnectionCost(2, 1)
	require.NoError(t, err)
	require.Equal(t, int64(3), cost)

	_, err = dict.ConnectionCost(9, 0)
	require.ErrorIs(t, err, connmatrix.ErrOutOfRange)
}
