// Package models defines the data shapes shared between the scraper and the CSV sink.
package models

// NotAvailable marks a field whose extraction failed. Every record field
// except the ASIN carries either a real value or this sentinel, so the
// output table has a uniform shape regardless of extraction success.
const NotAvailable = "Not Available"

// ProductRecord is one output row. It is built once per input URL and
// never mutated afterwards.
type ProductRecord struct {
	SourceURL       string
	ProductName     string
	ASIN            string
	OriginalPrice   string
	DiscountedPrice string
	Rating          string
}

// Unavailable returns the degraded record emitted when fetching or
// extracting a URL failed entirely. The URL is preserved, the ASIN is
// absent and every other field carries the sentinel.
func Unavailable(url string) ProductRecord {
	return ProductRecord{
		SourceURL:       url,
		ProductName:     NotAvailable,
		ASIN:            "",
		OriginalPrice:   NotAvailable,
		DiscountedPrice: NotAvailable,
		Rating:          NotAvailable,
	}
}

// Header returns the output CSV header row.
func Header() []string {
	return []string{"URL", "Product Name", "ASIN", "Original Price", "Discounted Price", "Product Rating"}
}

// Row renders the record as a CSV row matching Header. An absent ASIN
// renders as an empty cell.
func (r ProductRecord) Row() []string {
	return []string{r.SourceURL, r.ProductName, r.ASIN, r.OriginalPrice, r.DiscountedPrice, r.Rating}
}
