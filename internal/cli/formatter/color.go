package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TenementStatusPill colors a tenement listing status.
func TenementStatusPill(status string) string {
	switch status {
	case "上架":
		return StyleGreen.Render("● " + status)
	case "已成交":
		return StyleYellow.Render("✔ " + status)
	case "下架":
		return StyleDim.Render("○ " + status)
	case "":
		return StyleDim.Render("--")
	default:
		return StyleFg.Render(status)
	}
}

// UserStatusPill colors an employment status.
func UserStatusPill(status string) string {
	switch status {
	case "在職中":
		return StyleGreen.Render("● " + status)
	case "已離職":
		return StyleDim.Render("✖ " + status)
	default:
		return StyleFg.Render(status)
	}
}

// Header renders a section header with the orange header style and an underline.
// The underline follows the display width so wide characters line up.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Success renders a confirmation line.
func Success(text string) string {
	return StyleGreen.Render("✔ " + text)
}

// Failure renders an alert line.
func Failure(text string) string {
	return StyleRed.Render("✖ " + text)
}

// ReadError is the placeholder a list or detail view shows while its last
// read failed.
const ReadError = "error..."
