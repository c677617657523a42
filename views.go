package main

import (
	"fmt"
	"strings"

	"github.com/daonb/cove/present"
	"github.com/daonb/cove/tui"
)

const aboutText = `# cove

A minimal Model-Update-View runtime for the terminal. A model keeps the
application state, updates it from key, tick and quit messages, and renders
it to text. The runtime owns the terminal: raw input, the alternate screen
and mouse capture are switched on when a program starts and always switched
off when it stops.

Every loop iteration drains one queued message, polls the keyboard briefly,
forces a tick every interval and repaints the whole screen.
`

var keyBindings = [][]string{
	{"checklist", "up / k, down / j", "move the cursor"},
	{"checklist", "enter / space", "toggle the item"},
	{"checklist", "?", "show or hide help"},
	{"checklist", "q / esc / ctrl+c", "quit"},
	{"counter", "up, down", "change the counter"},
	{"counter", "typing, enter", "edit and submit a command"},
	{"counter", "q / ctrl+c", "quit"},
	{"keys", "esc / ctrl+c", "quit"},
}

// RenderAbout renders the about page: a markdown description followed by the
// demo key bindings.
func RenderAbout(width int, style string) (string, error) {
	md, err := present.Markdown(aboutText, width, style)
	if err != nil {
		return "", err
	}
	theme := NewTheme()
	bindings := present.Table([]string{"Demo", "Keys", "Action"}, keyBindings, theme.Muted)
	box := present.Box("Key bindings", bindings, width, theme.Border)
	return strings.TrimRight(md, "\n") + "\n\n" + box + "\n", nil
}

// newDemoModel builds the demo named in the configuration.
func newDemoModel(cfg DemoConfig) (tui.Model, error) {
	switch cfg.Name {
	case "", "checklist":
		return NewChecklistModel(cfg.Items, cfg.TickInterval, cfg.ToastTimeout), nil
	case "counter":
		return NewCounterModel(cfg.TickInterval), nil
	default:
		return nil, fmt.Errorf("unknown demo: %s", cfg.Name)
	}
}
