package dictionary

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/morisaki/kotoba/connmatrix"
	"github.com/morisaki/kotoba/term"
	"github.com/morisaki/kotoba/trie"
)

// Dictionary aggregates one term.Table, one trie.Index built from it, and
// one connmatrix.Matrix. It is built once by Load and is immutable and
// safe for concurrent use thereafter; there is no mutation API.
type Dictionary struct {
	terms  *term.Table
	index  *trie.Index
	matrix *connmatrix.Matrix
}

// Load reads one or more IPADIC-format term dictionary CSV files
// (comma-delimited, EUC-JP by default, only the first six columns
// consumed) and one whitespace-delimited connection matrix file, and
// returns a fully built, immutable Dictionary.
//
// termFiles are processed in the order supplied, and term ids are
// assigned in the order entries are appended, so loading the same files
// in the same order is fully reproducible.
//
// Stage 1: parse termFiles into a term.Table and build a trie.Index over
// every (surface form, term.ID) pair.
// Stage 2: parse matrixFile into a connmatrix.Matrix.
// Stage 3: return the assembled Dictionary.
func Load(termFiles []string, matrixFile string, opts ...LoadOption) (*Dictionary, error) {
	cfg := defaultLoadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	terms := term.NewTable()
	index := trie.New()
	for _, path := range termFiles {
		if err := loadTermFile(path, terms, index, &cfg); err != nil {
			return nil, fmt.Errorf("dictionary: load term file %q: %w", path, err)
		}
	}
	cfg.logger.Info("loaded term dictionary", zap.Int("terms", terms.Len()), zap.Int("files", len(termFiles)))

	matrix, err := loadMatrixFile(matrixFile, &cfg)
	if err != nil {
		return nil, fmt.Errorf("dictionary: load connection matrix %q: %w", matrixFile, err)
	}
	cfg.logger.Info("loaded connection matrix", zap.Int("size", matrix.Size()))

	return &Dictionary{terms: terms, index: index, matrix: matrix}, nil
}

// PrefixSearch returns every (surface form, term.ID) pair in the
// dictionary whose surface form is a prefix of suffix. Complexity: O(k)
// in the codepoint length of suffix, plus O(m) for the m matches found.
func (d *Dictionary) PrefixSearch(suffix string) []trie.Match {
	return d.index.CommonPrefixSearch(suffix)
}

// Term returns the entry stored under id, or term.ErrUnknownTermID if id
// is out of range. Complexity: O(1).
func (d *Dictionary) Term(id term.ID) (term.Entry, error) {
	return d.terms.Get(id)
}

// ConnectionCost returns the bigram transition cost for (left, right), or
// connmatrix.ErrOutOfRange if either index is >= the matrix side.
// Complexity: O(1).
func (d *Dictionary) ConnectionCost(left, right int) (int64, error) {
	return d.matrix.Cost(left, right)
}

// TermCount returns the number of entries in the underlying term table,
// mainly useful for logging and test assertions.
func (d *Dictionary) TermCount() int {
	return d.terms.Len()
}
