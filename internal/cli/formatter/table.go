package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colGap is the blank space between table columns.
const colGap = 2

// RenderTable renders an aligned table with a header separator line.
// Column widths are measured in display cells, so CJK text lines up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	widths := columnWidths(headers, rows)

	var b strings.Builder
	writeRow(&b, headers, widths, StyleHeader.Render)
	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	writeRow(&b, sep, widths, StyleDim.Render)
	for _, row := range rows {
		writeRow(&b, row, widths, nil)
	}
	return b.String()
}

// RenderEmpty renders the placeholder shown instead of a table with no rows.
func RenderEmpty(what string) string {
	return Dim("沒有" + what)
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}
	return widths
}

func writeRow(b *strings.Builder, cells []string, widths []int, style func(...string) string) {
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := max(w-lipgloss.Width(cell), 0)
		if style != nil {
			cell = style(cell)
		}
		b.WriteString(cell)
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}
	b.WriteString("\n")
}
