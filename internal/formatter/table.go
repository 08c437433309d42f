// Package formatter renders record datasets as aligned text tables.
package formatter

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"recordconv/internal/records"
)

// minColumnWidth keeps the separator row at least three dashes wide.
const minColumnWidth = 3

// RenderTable renders up to limit records as an aligned table using the
// first record's keys as columns. A limit below 1 renders everything.
// Column widths use display width so wide characters line up.
func RenderTable(data records.Dataset, limit int) string {
	if len(data) == 0 {
		return "(empty dataset)\n"
	}

	if limit < 1 || limit > len(data) {
		limit = len(data)
	}

	header := data[0].Keys()

	// 1. Collect cell text
	rows := make([][]string, 0, limit+1)
	rows = append(rows, header)

	for _, record := range data[:limit] {
		row := make([]string, len(header))

		for i, name := range header {
			value, ok := record.Get(name)
			if !ok || value == nil {
				continue
			}

			row[i] = fmt.Sprint(value)
		}

		rows = append(rows, row)
	}

	// 2. Calculate max widths (using display width)
	colWidths := make([]int, len(header))

	for _, row := range rows {
		for i, cell := range row {
			width := runewidth.StringWidth(cell)
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	for i := range colWidths {
		if colWidths[i] < minColumnWidth {
			colWidths[i] = minColumnWidth
		}
	}

	// 3. Reconstruct lines, separator after the header
	var sb strings.Builder

	writeRow(&sb, rows[0], colWidths)
	writeSeparator(&sb, colWidths)

	for _, row := range rows[1:] {
		writeRow(&sb, row, colWidths)
	}

	if limit < len(data) {
		fmt.Fprintf(&sb, "(%d more record(s) not shown)\n", len(data)-limit)
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, row []string, colWidths []int) {
	sb.WriteString("|")

	for i, width := range colWidths {
		content := ""
		if i < len(row) {
			content = row[i]
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		padding := width - runewidth.StringWidth(content)
		if padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	sb.WriteString("\n")
}

func writeSeparator(sb *strings.Builder, colWidths []int) {
	sb.WriteString("|")

	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	sb.WriteString("\n")
}
