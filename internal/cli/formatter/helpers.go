package formatter

import (
	"slices"
	"strings"

	"github.com/alexanderramin/tenement/internal/listview"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := StyleHeader.Render(title) + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Dash renders an empty value as a dimmed "--".
func Dash(v string) string {
	if strings.TrimSpace(v) == "" {
		return Dim("--")
	}
	return v
}

// FormatCrumbs renders a filter breadcrumb trail: "全部房屋 › 地址: 100".
// A crumb equal to root is not repeated.
func FormatCrumbs(root listview.Crumb, crumbs []listview.Crumb) string {
	parts := []string{StyleBold.Render(root.Title)}
	for _, c := range crumbs {
		if c == root {
			continue
		}
		parts = append(parts, Dim(c.Title+": ")+StyleFg.Render(c.Value))
	}
	return strings.Join(parts, Dim(" › "))
}

// FormatRecord renders an edit record as a two-column field list. Names
// give the display order; names listed in invalid are marked red.
func FormatRecord(title string, names []string, values map[string]string, invalid []string) string {
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		v := Dash(values[name])
		label := Dim(name)
		if slices.Contains(invalid, name) {
			label = StyleRed.Render(name + " !")
			v = StyleRed.Render(values[name])
		}
		rows = append(rows, []string{label, v})
	}
	return RenderBox(title, strings.TrimRight(renderPairs(rows), "\n"))
}

func renderPairs(rows [][]string) string {
	var b strings.Builder
	widths := columnWidths([]string{"", ""}, rows)
	for _, row := range rows {
		writeRow(&b, row, widths, nil)
	}
	return b.String()
}
