package main

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors and styles for the demo views.
type Theme struct {
	// Terminal7 color scheme
	Accent   string
	Border   string
	Text     string
	Warning  string
	Error    string
	Muted    string
	Selected string

	Title  lipgloss.Style
	Cursor lipgloss.Style
	Help   lipgloss.Style
}

// NewTheme creates and returns a new Theme with Terminal7 colors.
func NewTheme() *Theme {
	accent := "#F952F9"
	border := "#F4DB53"
	text := "#01FAFA"

	return &Theme{
		Accent:   accent,
		Border:   border,
		Text:     text,
		Warning:  "#F4DB53",
		Error:    "#F54545",
		Muted:    "240",
		Selected: "76",

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(accent)),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(text)).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}
