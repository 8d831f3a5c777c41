// Package dictionary aggregates a term.Table, a trie.Index built from it,
// and a connmatrix.Matrix into the single, immutable lookup surface the
// lattice and Viterbi solver depend on.
//
// What:
//
//   - Load(termFiles, matrixFile, opts...) is the one public entry point:
//     a single orchestrator that resolves functional options into an
//     immutable config, reads the IPADIC-format term CSVs and the
//     whitespace-delimited connection matrix file, and returns a
//     *Dictionary ready for concurrent use.
//   - Dictionary exposes only read operations after construction:
//     PrefixSearch, Term, ConnectionCost. There is no mutation API.
//
// Why:
//
//   - Dictionary load performs the module's only blocking file I/O and is
//     expected to run once, at startup. Modeling it as
//     a single constructor keeps that cost visible and auditable instead
//     of spread across ad-hoc package-level init() state.
//
// Concurrency:
//
//	Once Load returns, a *Dictionary has no mutable fields and may be
//	shared by reference across any number of concurrent Tokenize calls
//	without locking.
//
// Errors:
//
//   - ErrMalformedTerm   - a term row has fewer than six columns or a
//     non-integer numeric column.
//   - ErrMalformedMatrix - the matrix file's header is missing, non-square,
//     or a triple references an out-of-range context id.
//   - ErrLoad            - wraps an underlying I/O or decode failure.
package dictionary
