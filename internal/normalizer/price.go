// Package normalizer converts raw price fragments into canonical digit strings.
package normalizer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"prodsheet/internal/models"
)

// digitPattern is the only shape a normalized price may take: digits
// with an optional decimal part, no separators, no currency symbol.
var digitPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// Normalizer parses the accessible-text rendering of a price. The page
// renders it as "<label>: <symbol><amount>" where the amount may carry
// comma thousands separators, e.g. "Price: $1,249.50".
type Normalizer struct{}

// New creates a price normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// Normalize extracts the amount from a raw price fragment. Anything
// that does not decode to the expected shape is an extraction failure
// and yields the sentinel; absence is a value here, never an error.
func (n *Normalizer) Normalize(raw []byte) string {
	if !utf8.Valid(raw) {
		return models.NotAvailable
	}

	text := string(raw)

	idx := strings.LastIndex(text, ":")
	if idx < 0 {
		return models.NotAvailable
	}

	amount := strings.TrimSpace(text[idx+1:])
	if amount == "" {
		return models.NotAvailable
	}

	// The first rune is the currency symbol.
	_, symbolLen := utf8.DecodeRuneInString(amount)
	amount = strings.ReplaceAll(amount[symbolLen:], ",", "")

	if !digitPattern.MatchString(amount) {
		return models.NotAvailable
	}

	return amount
}
