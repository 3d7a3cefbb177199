package csvio

import (
	"encoding/csv"
	"fmt"
	"os"

	"prodsheet/internal/models"
)

// WriteRecords writes the record set to a CSV file, header first, one
// row per record in the order given.
func WriteRecords(path string, records []models.ProductRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(models.Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range records {
		if err := w.Write(r.Row()); err != nil {
			return fmt.Errorf("failed to write record for %s: %w", r.SourceURL, err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}

	return nil
}
