package teahost

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daonb/cove/tui"
)

var namedKeys = map[tea.KeyType]tui.KeyType{
	tea.KeyEnter:     tui.KeyEnter,
	tea.KeyEsc:       tui.KeyEsc,
	tea.KeySpace:     tui.KeySpace,
	tea.KeyTab:       tui.KeyTab,
	tea.KeyShiftTab:  tui.KeyShiftTab,
	tea.KeyBackspace: tui.KeyBackspace,
	tea.KeyUp:        tui.KeyUp,
	tea.KeyDown:      tui.KeyDown,
	tea.KeyLeft:      tui.KeyLeft,
	tea.KeyRight:     tui.KeyRight,
	tea.KeyHome:      tui.KeyHome,
	tea.KeyEnd:       tui.KeyEnd,
	tea.KeyPgUp:      tui.KeyPgUp,
	tea.KeyPgDown:    tui.KeyPgDown,
	tea.KeyInsert:    tui.KeyInsert,
	tea.KeyDelete:    tui.KeyDelete,
	tea.KeyF1:        tui.KeyF1,
	tea.KeyF2:        tui.KeyF2,
	tea.KeyF3:        tui.KeyF3,
	tea.KeyF4:        tui.KeyF4,
	tea.KeyF5:        tui.KeyF5,
	tea.KeyF6:        tui.KeyF6,
	tea.KeyF7:        tui.KeyF7,
	tea.KeyF8:        tui.KeyF8,
	tea.KeyF9:        tui.KeyF9,
	tea.KeyF10:       tui.KeyF10,
	tea.KeyF11:       tui.KeyF11,
	tea.KeyF12:       tui.KeyF12,
}

// keysFromTea converts a Bubble Tea key into one event per key. A pasted or
// batched KeyRunes message yields one event for each rune. Bubble Tea only
// reports presses.
func keysFromTea(k tea.KeyMsg) []tui.KeyEvent {
	if k.Type == tea.KeyRunes {
		events := make([]tui.KeyEvent, 0, len(k.Runes))
		for _, r := range k.Runes {
			code := tui.Rune(r)
			code.Alt = k.Alt
			events = append(events, tui.KeyEvent{Code: code, Kind: tui.KeyPress})
		}
		return events
	}

	var code tui.KeyCode
	switch {
	case k.Type >= tea.KeyCtrlA && k.Type <= tea.KeyCtrlZ:
		if t, ok := namedKeys[k.Type]; ok {
			code = tui.Key(t)
		} else {
			code = tui.Ctrl(rune('a' + int(k.Type-tea.KeyCtrlA)))
		}
	default:
		t, ok := namedKeys[k.Type]
		if !ok {
			return nil
		}
		code = tui.Key(t)
	}
	code.Alt = k.Alt
	return []tui.KeyEvent{{Code: code, Kind: tui.KeyPress}}
}
