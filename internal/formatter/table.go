// Package formatter renders the post-run console summary.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"prodsheet/internal/models"
)

// maxCellWidth keeps long URLs and names from blowing up the table.
const maxCellWidth = 48

// SummaryTable renders the record set as an aligned text table. Widths
// are computed with runewidth so records with wide characters still
// line up.
func SummaryTable(records []models.ProductRecord) string {
	header := []string{"URL", "Name", "ASIN", "Original", "Discounted", "Rating"}

	rows := [][]string{header}
	for _, r := range records {
		rows = append(rows, []string{
			truncate(r.SourceURL),
			truncate(r.ProductName),
			r.ASIN,
			r.OriginalPrice,
			r.DiscountedPrice,
			truncate(r.Rating),
		})
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder

	writeRow := func(row []string) {
		sb.WriteString("|")

		for i, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
			sb.WriteString(" |")
		}

		sb.WriteString("\n")
	}

	writeRow(header)

	sb.WriteString("|")
	for _, w := range widths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", w))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")

	for _, row := range rows[1:] {
		writeRow(row)
	}

	return sb.String()
}

func truncate(s string) string {
	if runewidth.StringWidth(s) <= maxCellWidth {
		return s
	}

	return runewidth.Truncate(s, maxCellWidth, "...")
}
