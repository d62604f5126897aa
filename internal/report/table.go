// Package report renders count results as text tables.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// gutter separates adjacent columns.
const gutter = "  "

// formatTable lays out the count table. The first column holds the file
// name and is left-aligned; every column after it is a count or goal label
// and is right-aligned so the digits line up.
func formatTable(headers []string, rows [][]string) []string {
	widths := columnWidths(headers, rows)
	if len(widths) == 0 {
		return nil
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths))
	}
	return lines
}

// columnWidths returns the widest cell of each column, header included.
func columnWidths(headers []string, rows [][]string) []int {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	measure := func(row []string) {
		for i, cell := range row {
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}
	return widths
}

// formatRow pads a row to widths. Short rows are filled with blank cells and
// trailing padding is dropped.
func formatRow(row []string, widths []int) string {
	cells := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		cells[i] = padCell(cell, width, i > 0)
	}
	return strings.TrimRight(strings.Join(cells, gutter), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	padding := width - displayWidth(value)
	if padding <= 0 {
		return value
	}
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

// displayWidth measures terminal cells, so wide file names stay aligned.
func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}

// truncate shortens a file name to at most width cells.
func truncate(value string, width int) string {
	if width <= 0 || displayWidth(value) <= width {
		return value
	}
	return runewidth.Truncate(value, width, "…")
}
