package csvio

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"prodsheet/internal/models"
)

func TestWriteRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	records := []models.ProductRecord{
		{
			SourceURL:       "https://site.example/wireless-mouse/dp/B0ABCXYZ12",
			ProductName:     "wireless mouse",
			ASIN:            "B0ABCXYZ12",
			OriginalPrice:   "1249.50",
			DiscountedPrice: "999.",
			Rating:          "4.3 out of 5 stars",
		},
		models.Unavailable("https://site.example/broken"),
	}

	if err := WriteRecords(path, records); err != nil {
		t.Fatalf("WriteRecords failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to reopen output: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read output back: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d rows", len(rows))
	}

	expectedHeader := []string{"URL", "Product Name", "ASIN", "Original Price", "Discounted Price", "Product Rating"}
	if !reflect.DeepEqual(rows[0], expectedHeader) {
		t.Errorf("Unexpected header: %v", rows[0])
	}

	if rows[1][2] != "B0ABCXYZ12" {
		t.Errorf("Expected ASIN cell B0ABCXYZ12, got %q", rows[1][2])
	}

	// Degraded row: URL preserved, ASIN empty, sentinels elsewhere.
	if rows[2][0] != "https://site.example/broken" {
		t.Errorf("Expected degraded row to keep its URL, got %q", rows[2][0])
	}

	if rows[2][2] != "" {
		t.Errorf("Expected empty ASIN cell on degraded row, got %q", rows[2][2])
	}

	for _, i := range []int{1, 3, 4, 5} {
		if rows[2][i] != models.NotAvailable {
			t.Errorf("Expected sentinel in degraded row column %d, got %q", i, rows[2][i])
		}
	}
}
