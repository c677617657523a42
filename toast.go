package main

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Toast represents a single toast notification
type Toast struct {
	ID        int
	Message   string
	Type      string // info, success, warning, error
	Remaining time.Duration
}

// ToastManager manages toast notifications. Toasts age by the time passed to
// Advance rather than the wall clock, so a model that advances them on each
// tick stays deterministic.
type ToastManager struct {
	Toasts []Toast
	Style  lipgloss.Style
	theme  *Theme
	nextID int
}

// NewToastManager creates a new toast manager colored by theme
func NewToastManager(theme *Theme) ToastManager {
	return ToastManager{
		Toasts: make([]Toast, 0),
		theme:  theme,
		Style: lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1).
			MaxWidth(50),
	}
}

// AddToast adds a new toast notification and returns its ID
func (tm *ToastManager) AddToast(message, toastType string, timeout time.Duration) int {
	tm.nextID++
	tm.Toasts = append(tm.Toasts, Toast{
		ID:        tm.nextID,
		Message:   message,
		Type:      toastType,
		Remaining: timeout,
	})
	return tm.nextID
}

// RemoveToast removes a toast by ID
func (tm *ToastManager) RemoveToast(id int) {
	for i, toast := range tm.Toasts {
		if toast.ID == id {
			tm.Toasts = append(tm.Toasts[:i], tm.Toasts[i+1:]...)
			break
		}
	}
}

// Clear removes all existing toast notifications
func (tm *ToastManager) Clear() {
	tm.Toasts = nil
}

// Advance ages every toast by elapsed and drops the expired ones
func (tm *ToastManager) Advance(elapsed time.Duration) {
	active := tm.Toasts[:0]
	for _, toast := range tm.Toasts {
		toast.Remaining -= elapsed
		if toast.Remaining > 0 {
			active = append(active, toast)
		}
	}
	tm.Toasts = active
}

// View renders the most recent toast
func (tm ToastManager) View() string {
	if len(tm.Toasts) == 0 {
		return ""
	}

	toast := tm.Toasts[len(tm.Toasts)-1]

	style := tm.Style
	switch toast.Type {
	case "success":
		style = style.Background(lipgloss.Color(tm.theme.Selected))
	case "warning":
		style = style.Background(lipgloss.Color(tm.theme.Warning))
	case "error":
		style = style.Background(lipgloss.Color(tm.theme.Error))
	}
	return style.Render(toast.Message)
}
