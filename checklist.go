package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/daonb/cove/present"
	"github.com/daonb/cove/tui"
)

// ChecklistModel is a shopping list with a cursor and a checkbox per item.
type ChecklistModel struct {
	choices  []string
	cursor   int
	selected []bool

	tick         time.Duration
	ticks        int
	toastTimeout time.Duration
	toasts       ToastManager
	lastToast    int
	status       StatusBar
	help         Modal
	showHelp     bool
	theme        *Theme
}

// NewChecklistModel creates a checklist over choices that re-arms a timer
// every tick.
func NewChecklistModel(choices []string, tick, toastTimeout time.Duration) *ChecklistModel {
	theme := NewTheme()
	return &ChecklistModel{
		choices:      append([]string(nil), choices...),
		selected:     make([]bool, len(choices)),
		tick:         tick,
		toastTimeout: toastTimeout,
		toasts:       NewToastManager(theme),
		status:       NewStatusBar(60),
		help:         NewHelpModal("Keys", checklistBindings, 40),
		theme:        theme,
	}
}

func (m *ChecklistModel) Init() tui.Cmd {
	return tui.Tick(m.tick)
}

func (m *ChecklistModel) Update(msg tui.Msg) tui.Cmd {
	switch msg := msg.(type) {
	case tui.KeyMsg:
		if msg.Kind == tui.KeyRelease {
			return tui.None()
		}
		return m.handleKey(msg.Code)
	case tui.TickMsg:
		m.ticks++
		m.toasts.Advance(m.tick)
		return tui.Tick(m.tick)
	case tui.QuitMsg:
		return tui.Quit()
	}
	return tui.None()
}

var checklistBindings = [][2]string{
	{"up / k", "move up"},
	{"down / j", "move down"},
	{"enter / space", "toggle item"},
	{"?", "show or hide this help"},
	{"q / esc / ctrl+c", "quit"},
}

func (m *ChecklistModel) handleKey(code tui.KeyCode) tui.Cmd {
	if m.showHelp {
		switch code {
		case tui.Rune('q'), tui.Ctrl('c'):
			return tui.Quit()
		case tui.Rune('?'), tui.Key(tui.KeyEsc):
			m.showHelp = false
		}
		return tui.None()
	}

	switch code {
	case tui.Rune('?'):
		m.showHelp = true
		m.toasts.Clear()
	case tui.Rune('q'), tui.Key(tui.KeyEsc), tui.Ctrl('c'):
		return tui.Quit()
	case tui.Key(tui.KeyUp), tui.Rune('k'):
		if m.cursor > 0 {
			m.cursor--
		}
	case tui.Key(tui.KeyDown), tui.Rune('j'):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case tui.Key(tui.KeyEnter), tui.Key(tui.KeySpace):
		m.toggle()
	}
	return tui.None()
}

func (m *ChecklistModel) toggle() {
	if len(m.choices) == 0 {
		return
	}
	m.selected[m.cursor] = !m.selected[m.cursor]
	// A new toggle replaces the previous notice rather than stacking on it.
	m.toasts.RemoveToast(m.lastToast)
	if m.selected[m.cursor] {
		m.lastToast = m.toasts.AddToast("Added: "+m.choices[m.cursor], "success", m.toastTimeout)
	} else {
		m.lastToast = m.toasts.AddToast("Removed: "+m.choices[m.cursor], "info", m.toastTimeout)
	}
}

// Cursor returns the highlighted index.
func (m *ChecklistModel) Cursor() int {
	return m.cursor
}

// Selected returns a copy of the checkbox states.
func (m *ChecklistModel) Selected() []bool {
	return append([]bool(nil), m.selected...)
}

func (m *ChecklistModel) countSelected() int {
	n := 0
	for _, s := range m.selected {
		if s {
			n++
		}
	}
	return n
}

func (m *ChecklistModel) View() string {
	if m.showHelp {
		return m.help.View() + "\n"
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("What should we buy at the market?"))
	b.WriteString("\n\n")

	for i, choice := range m.choices {
		cursor := " "
		if m.cursor == i {
			cursor = m.theme.Cursor.Render(">")
		}
		checked := " "
		if m.selected[i] {
			checked = present.Colored("x", m.theme.Accent)
		}
		fmt.Fprintf(&b, "%s [%s] %s\n", cursor, checked, choice)
	}

	if len(m.choices) > 0 {
		b.WriteString("\n")
		b.WriteString(present.ProgressBar(float64(m.countSelected())/float64(len(m.choices)), 40))
		b.WriteString("\n")
	}

	status := m.status
	status.Set("checklist", fmt.Sprintf("tick %d", m.ticks), fmt.Sprintf("%d/%d", m.countSelected(), len(m.choices)))
	b.WriteString("\n")
	b.WriteString(status.View())
	b.WriteString("\n")

	if toast := m.toasts.View(); toast != "" {
		b.WriteString(toast)
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Help.Render("\nPress ? for help, q to quit."))
	b.WriteString("\n")
	return b.String()
}
