package scraper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"prodsheet/internal/models"
	"prodsheet/internal/normalizer"
)

// Page selectors. The original price is the visually-hidden accessible
// rendering, distinct from the visible whole-number display.
const (
	originalPriceSelector   = "span.a-size-small.aok-offscreen"
	discountedPriceSelector = "span.a-price-whole"
	ratingSelector          = "span.a-icon-alt"
)

// ErrURLShape indicates the URL does not have the minimum path segments
// needed to derive a product name.
var ErrURLShape = errors.New("url has too few segments for name derivation")

// asinPattern matches the catalog identifier in the URL path.
var asinPattern = regexp.MustCompile(`/dp/([A-Z0-9]+)`)

// NameFunc derives a product name from a page URL. The name comes from
// the URL shape, not the page content, so site layout variants can swap
// the strategy without touching the extraction core.
type NameFunc func(url string) (string, error)

// SlashSegmentName returns a NameFunc that takes the segment at the
// given index of the URL split on slashes and replaces hyphens with
// spaces. For https://host/<product-slug>/dp/<asin> URLs, index 3 is
// the product slug.
func SlashSegmentName(index int) NameFunc {
	return func(url string) (string, error) {
		segments := strings.Split(url, "/")
		if index >= len(segments) {
			return "", fmt.Errorf("%w: %d segments, need index %d", ErrURLShape, len(segments), index)
		}

		return strings.ReplaceAll(segments[index], "-", " "), nil
	}
}

// Extractor turns page markup into a ProductRecord. It performs no
// network I/O and is a pure function of (markup, url).
type Extractor struct {
	prices *normalizer.Normalizer
	name   NameFunc
}

// NewExtractor creates an extractor with the default URL-shape strategy.
func NewExtractor() *Extractor {
	return NewExtractorWithNameFunc(SlashSegmentName(3))
}

// NewExtractorWithNameFunc creates an extractor with a custom product
// name strategy.
func NewExtractorWithNameFunc(name NameFunc) *Extractor {
	return &Extractor{
		prices: normalizer.New(),
		name:   name,
	}
}

// Extract produces a fully populated record for the page. A missing
// page element is the expected common case and yields the sentinel for
// that field; only a URL too short to name the product fails the whole
// extraction.
func (e *Extractor) Extract(markup, url string) (models.ProductRecord, error) {
	name, err := e.name(url)
	if err != nil {
		return models.ProductRecord{}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return models.ProductRecord{}, fmt.Errorf("failed to parse markup: %w", err)
	}

	record := models.ProductRecord{
		SourceURL:       url,
		ProductName:     name,
		ASIN:            extractASIN(url),
		OriginalPrice:   models.NotAvailable,
		DiscountedPrice: models.NotAvailable,
		Rating:          models.NotAvailable,
	}

	if sel := doc.Find(originalPriceSelector).First(); sel.Length() > 0 {
		record.OriginalPrice = e.prices.Normalize([]byte(strings.TrimSpace(sel.Text())))
	}

	if sel := doc.Find(discountedPriceSelector).First(); sel.Length() > 0 {
		// Kept as rendered, embedded formatting included; deliberately
		// not passed through the price normalizer.
		if text := strings.TrimSpace(sel.Text()); text != "" {
			record.DiscountedPrice = text
		}
	}

	if sel := doc.Find(ratingSelector).First(); sel.Length() > 0 {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			record.Rating = text
		}
	}

	return record, nil
}

// extractASIN pulls the catalog identifier from a /dp/<asin> path
// segment. Returns the empty string when the URL carries none.
func extractASIN(url string) string {
	match := asinPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}

	return match[1]
}
