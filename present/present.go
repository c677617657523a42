// Package present holds stateless rendering helpers for application views:
// colored text, framed boxes, progress bars, tables and markdown. The runtime
// never calls them; models do, from View.
package present

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Colored renders text in the given foreground color ("#F952F9", "62", ...).
func Colored(text, color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}

// Bold renders text in bold.
func Bold(text string) string {
	return lipgloss.NewStyle().Bold(true).Render(text)
}

// Box frames body in a rounded border with an optional title line. Body is
// word-wrapped to fit width, which includes the border and padding.
func Box(title, body string, width int, borderColor string) string {
	inner := width - 4 // border and padding
	if inner < 1 {
		inner = 1
	}
	content := wordwrap.String(body, inner)
	if title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, Bold(title), "", content)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1).
		Width(width - 2).
		Render(content)
}

// ProgressBar renders a bar for percent in [0, 1]; values outside are
// clamped.
func ProgressBar(percent float64, width int) string {
	switch {
	case percent < 0:
		percent = 0
	case percent > 1:
		percent = 1
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(width))
	return bar.ViewAs(percent)
}

// Table renders rows under headers with a normal border.
func Table(headers []string, rows [][]string, borderColor string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}

// Truncate cuts s to width cells, ending it with an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// Markdown renders src for the terminal. style is a glamour standard style
// name such as "dark", "light" or "notty".
func Markdown(src string, width int, style string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(src)
}
