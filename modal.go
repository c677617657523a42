package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Modal is a bordered overlay with a title bar, used for help screens.
type Modal struct {
	Title string
	Lines []string
	Width int
	Style lipgloss.Style
}

// NewHelpModal lists key bindings, one "key  action" pair per line.
func NewHelpModal(title string, bindings [][2]string, width int) Modal {
	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, lipgloss.Width(b[0]))
	}
	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		lines = append(lines, b[0]+strings.Repeat(" ", keyWidth-lipgloss.Width(b[0]))+"  "+b[1])
	}
	return Modal{
		Title: title,
		Lines: lines,
		Width: width,
		Style: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(width),
	}
}

// View renders the modal
func (m Modal) View() string {
	title := lipgloss.NewStyle().
		Background(lipgloss.Color("62")).
		Foreground(lipgloss.Color("230")).
		Padding(0, 1).
		Width(m.Width). // inside the border
		Render(m.Title)

	body := lipgloss.NewStyle().
		Padding(1, 2).
		Width(m.Width).
		Render(strings.Join(m.Lines, "\n"))

	return m.Style.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}
