package dictionary

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/text/transform"

	"github.com/morisaki/kotoba/term"
	"github.com/morisaki/kotoba/trie"
)

// loadTermFile parses one IPADIC-format term CSV file and appends every
// row to terms, inserting the resulting (surface, term.ID) pair into
// index as it goes so the trie never lags behind the table.
//
// Columns consumed (positional): surface_form, left_context_id,
// right_context_id, emission_cost, part_of_speech_major,
// part_of_speech_subdivision. Any further columns are ignored.
func loadTermFile(path string, terms *term.Table, index *trie.Index, cfg *loadConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer f.Close()

	var r io.Reader = f
	if cfg.termEncoding != nil {
		r = transform.NewReader(f, cfg.termEncoding.NewDecoder())
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may carry trailing columns beyond the six we consume

	lineNo := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrLoad, err)
		}
		lineNo++

		entry, err := parseTermRow(row)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(row) > 6 && !cfg.tolerateExtra {
			cfg.logger.Warn("term row carries unconsumed trailing columns",
				zap.String("surface", entry.Surface), zap.Int("line", lineNo), zap.Int("columns", len(row)))
		}

		id, err := terms.Append(entry)
		if err != nil {
			return fmt.Errorf("line %d: %w: %v", lineNo, ErrMalformedTerm, err)
		}
		index.Insert(entry.Surface, id)
	}

	return nil
}

// parseTermRow converts one CSV record into a term.Entry, validating the
// six consumed columns. Returns ErrMalformedTerm on a short row or a
// non-integer numeric column.
func parseTermRow(row []string) (term.Entry, error) {
	if len(row) < 6 {
		return term.Entry{}, fmt.Errorf("%w: expected at least 6 columns, got %d", ErrMalformedTerm, len(row))
	}

	left, err := strconv.Atoi(row[1])
	if err != nil {
		return term.Entry{}, fmt.Errorf("%w: left_context_id %q: %v", ErrMalformedTerm, row[1], err)
	}
	right, err := strconv.Atoi(row[2])
	if err != nil {
		return term.Entry{}, fmt.Errorf("%w: right_context_id %q: %v", ErrMalformedTerm, row[2], err)
	}
	cost, err := strconv.ParseInt(row[3], 10, 64)
	if err != nil {
		return term.Entry{}, fmt.Errorf("%w: emission_cost %q: %v", ErrMalformedTerm, row[3], err)
	}

	pos := term.ParsePOS(row[4])

	return term.NewEntry(row[0], left, right, cost, pos, row[5]), nil
}
