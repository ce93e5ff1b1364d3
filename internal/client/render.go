package client

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	keyStyle   = lipgloss.NewStyle().Faint(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

type row struct {
	key   string
	value string
}

// renderTable draws rows as aligned "key  value" lines inside a box headed
// by title.
func renderTable(title string, rows []row) string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.key))
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(keyStyle.Render(r.key + strings.Repeat(" ", width-lipgloss.Width(r.key))))
		b.WriteString("  ")
		b.WriteString(r.value)
	}

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), boxStyle.Render(b.String())) + "\n"
}

// RenderError formats err for the terminal.
func RenderError(err error) string {
	return errorStyle.Render("error: "+err.Error()) + "\n"
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
