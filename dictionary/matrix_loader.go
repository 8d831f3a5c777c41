package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/transform"

	"github.com/morisaki/kotoba/connmatrix"
)

// loadMatrixFile parses a whitespace-delimited connection matrix file
// the first non-empty line is "N M" (N must equal M), and every
// remaining non-empty line is a "left right cost" triple. Cells never
// mentioned default to 0.
func loadMatrixFile(path string, cfg *loadConfig) (*connmatrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer f.Close()

	var r io.Reader = f
	if cfg.matrixEncoding != nil {
		r = transform.NewReader(f, cfg.matrixEncoding.NewDecoder())
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var matrix *connmatrix.Matrix
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if matrix == nil {
			m, err := parseMatrixHeader(fields)
			if err != nil {
				return nil, err
			}
			matrix = m
			continue
		}

		if err := applyMatrixTriple(matrix, fields); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	if matrix == nil {
		return nil, fmt.Errorf("%w: missing header line", ErrMalformedMatrix)
	}

	return matrix, nil
}

// parseMatrixHeader parses the mandatory "N M" header line and allocates
// the backing Matrix. Fails with ErrMalformedMatrix if N != M.
func parseMatrixHeader(fields []string) (*connmatrix.Matrix, error) {
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: header must have exactly 2 fields, got %d", ErrMalformedMatrix, len(fields))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: header N %q: %v", ErrMalformedMatrix, fields[0], err)
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: header M %q: %v", ErrMalformedMatrix, fields[1], err)
	}
	if n != m {
		return nil, fmt.Errorf("%w: N (%d) != M (%d)", ErrMalformedMatrix, n, m)
	}

	matrix, err := connmatrix.New(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMatrix, err)
	}

	return matrix, nil
}

// applyMatrixTriple parses a "left right cost" line and writes it into
// matrix, failing with ErrMalformedMatrix on a bad field count, a
// non-integer field, or an out-of-range index.
func applyMatrixTriple(matrix *connmatrix.Matrix, fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: expected 3 fields, got %d", ErrMalformedMatrix, len(fields))
	}
	left, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("%w: left id %q: %v", ErrMalformedMatrix, fields[0], err)
	}
	right, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("%w: right id %q: %v", ErrMalformedMatrix, fields[1], err)
	}
	cost, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: cost %q: %v", ErrMalformedMatrix, fields[2], err)
	}

	if err := matrix.Set(left, right, cost); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedMatrix, err)
	}

	return nil
}
