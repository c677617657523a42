package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/daonb/cove/present"
)

// StatusBar renders a one-line bar with left, middle and right sections
type StatusBar struct {
	Left   string
	Middle string
	Right  string
	Width  int
	Style  lipgloss.Style
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) StatusBar {
	return StatusBar{
		Width: width,
		Style: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#01FAFA")). // Terminal7 text color
			Padding(0, 1),
	}
}

// Set updates all three sections
func (s *StatusBar) Set(left, middle, right string) {
	s.Left = left
	s.Middle = middle
	s.Right = right
}

// View renders the status bar
func (s StatusBar) View() string {
	left, middle, right := s.Left, s.Middle, s.Right
	availableSpace := s.Width - 2 // Account for horizontal padding

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	middleWidth := lipgloss.Width(middle)

	if leftWidth+middleWidth+rightWidth > availableSpace {
		if leftWidth+rightWidth > availableSpace {
			// Truncate right section first
			maxRightWidth := availableSpace - leftWidth - 1
			if maxRightWidth > 0 {
				right = present.Truncate(right, maxRightWidth)
			} else {
				right = ""
			}
		}
		middle = "" // Remove middle section if still too long
	}

	leftWidth = lipgloss.Width(left)
	rightWidth = lipgloss.Width(right)
	middleWidth = lipgloss.Width(middle)

	var line string
	if middle != "" {
		total := leftWidth + middleWidth + rightWidth
		leftSpacing := (availableSpace - total) / 2
		rightSpacing := availableSpace - total - leftSpacing
		line = left + strings.Repeat(" ", leftSpacing) + middle + strings.Repeat(" ", rightSpacing) + right
	} else {
		spacing := availableSpace - leftWidth - rightWidth
		if spacing < 0 {
			spacing = 0
		}
		line = left + strings.Repeat(" ", spacing) + right
	}

	return s.Style.Render(line)
}
