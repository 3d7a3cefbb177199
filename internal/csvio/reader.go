// Package csvio reads the input URL list and writes the output record set.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

// Input file errors. Both are fatal to the whole run: no partial output
// file is produced when the input cannot be read.
var (
	ErrMissingURLColumn = errors.New("input file has no URL column")
	ErrEmptyInput       = errors.New("input file has no header row")
)

// urlColumn is the required input header name.
const urlColumn = "URL"

// ReadURLs reads the URL column from a CSV file with a header row. Rows
// too short to carry the cell are skipped; a missing file or missing
// column is an error.
func ReadURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	urlIdx := -1
	for i, name := range rows[0] {
		if name == urlColumn {
			urlIdx = i
			break
		}
	}

	if urlIdx < 0 {
		return nil, ErrMissingURLColumn
	}

	var urls []string
	for _, row := range rows[1:] {
		if urlIdx >= len(row) {
			continue
		}

		urls = append(urls, row[urlIdx])
	}

	return urls, nil
}
