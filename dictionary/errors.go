package dictionary

import "errors"

// Sentinel errors returned by Load and the Dictionary read surface.
var (
	// ErrMalformedTerm indicates a term row had fewer than six columns or a
	// non-integer numeric column.
	ErrMalformedTerm = errors.New("dictionary: malformed term row")

	// ErrMalformedMatrix indicates the connection matrix header was
	// missing, non-square, or a triple referenced an out-of-range index.
	ErrMalformedMatrix = errors.New("dictionary: malformed connection matrix")

	// ErrLoad wraps an underlying I/O or decoding failure encountered while
	// reading a term file or the matrix file.
	ErrLoad = errors.New("dictionary: load failed")
)
