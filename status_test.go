package main

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusBarLayout(t *testing.T) {
	s := NewStatusBar(40)
	s.Set("checklist", "tick 3", "1/3")

	out := s.View()

	assert.Equal(t, 40, lipgloss.Width(out))
	assert.Contains(t, out, "checklist")
	assert.Contains(t, out, "tick 3")
	assert.Contains(t, out, "1/3")
}

func TestStatusBarDropsMiddleWhenNarrow(t *testing.T) {
	s := NewStatusBar(20)
	s.Set("checklist", "a long middle section", "1/3")

	out := s.View()

	assert.NotContains(t, out, "middle")
	assert.Contains(t, out, "checklist")
	assert.Contains(t, out, "1/3")
}

func TestStatusBarTruncatesRight(t *testing.T) {
	s := NewStatusBar(16)
	s.Set("checklist", "", "selected everything")

	out := s.View()

	assert.Contains(t, out, "checklist")
	assert.Contains(t, out, "…")
	assert.LessOrEqual(t, lipgloss.Width(out), 16)
}
