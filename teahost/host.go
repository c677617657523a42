// Package teahost runs a tui.Model under Bubble Tea. Commands and messages
// are translated both ways so the same model works on either engine.
package teahost

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daonb/cove/tui"
)

type tickMsg struct{}

type forcedTickMsg struct{}

type quitMsg struct{}

// Host adapts a tui.Model to tea.Model.
type Host struct {
	model      tui.Model
	forcedTick time.Duration
	quitting   bool
}

// Option configures a Host.
type Option func(*Host)

// WithForcedTick delivers a TickMsg every d regardless of scheduled timers,
// mirroring the native event loop.
func WithForcedTick(d time.Duration) Option {
	return func(h *Host) {
		h.forcedTick = d
	}
}

// Wrap hosts model.
func Wrap(model tui.Model, opts ...Option) *Host {
	h := &Host{model: model}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Model returns the hosted model.
func (h *Host) Model() tui.Model {
	return h.model
}

func (h *Host) Init() tea.Cmd {
	cmd := h.translate(h.model.Init())
	if h.forcedTick > 0 {
		return tea.Batch(cmd, h.nextForcedTick())
	}
	return cmd
}

func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if h.quitting {
		return h, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h, h.updateKeys(keysFromTea(msg))
	case tickMsg:
		return h, h.translate(h.model.Update(tui.TickMsg{}))
	case forcedTickMsg:
		if cmd := h.model.Update(tui.TickMsg{}); cmd != nil {
			if _, ok := cmd.(tui.QuitCmd); ok {
				return h, h.translate(cmd)
			}
		}
		return h, h.nextForcedTick()
	case quitMsg:
		h.model.Update(tui.QuitMsg{})
		h.quitting = true
		return h, tea.Quit
	}
	return h, nil
}

// updateKeys hands each event to the model in order and stops after the
// first one that quits, as the native loop would.
func (h *Host) updateKeys(events []tui.KeyEvent) tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range events {
		cmd := h.model.Update(tui.KeyMsg(ev))
		cmds = append(cmds, h.translate(cmd))
		if _, ok := cmd.(tui.QuitCmd); ok {
			break
		}
	}
	return tea.Batch(cmds...)
}

func (h *Host) View() string {
	return h.model.View()
}

func (h *Host) nextForcedTick() tea.Cmd {
	return tea.Tick(h.forcedTick, func(time.Time) tea.Msg { return forcedTickMsg{} })
}

func (h *Host) translate(cmd tui.Cmd) tea.Cmd {
	switch c := cmd.(type) {
	case tui.TickCmd:
		return tea.Tick(c.After, func(time.Time) tea.Msg { return tickMsg{} })
	case tui.QuitCmd:
		return func() tea.Msg { return quitMsg{} }
	default:
		return nil
	}
}
