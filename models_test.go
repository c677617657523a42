package main

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daonb/cove/tui"
	"github.com/daonb/cove/tui/tuitest"
)

var shoppingList = []string{"Buy carrots", "Buy celery", "Buy kohlrabi"}

func TestChecklistInitSchedulesTick(t *testing.T) {
	m := NewChecklistModel(shoppingList, 250*time.Millisecond, time.Second)
	assert.Equal(t, tui.Tick(250*time.Millisecond), m.Init())
}

func TestChecklistCursorClamps(t *testing.T) {
	m := NewChecklistModel(shoppingList, time.Second, time.Second)

	m.Update(tui.Press(tui.Key(tui.KeyUp)))
	assert.Equal(t, 0, m.Cursor())

	for i := 0; i < 5; i++ {
		m.Update(tui.Press(tui.Rune('j')))
	}
	assert.Equal(t, 2, m.Cursor())

	m.Update(tui.Press(tui.Rune('k')))
	assert.Equal(t, 1, m.Cursor())
}

func TestChecklistDoubleToggle(t *testing.T) {
	m := NewChecklistModel(shoppingList, time.Second, time.Second)

	m.Update(tui.Press(tui.Key(tui.KeyDown)))
	m.Update(tui.Press(tui.Key(tui.KeyEnter)))
	assert.Equal(t, []bool{false, true, false}, m.Selected())
	assert.Contains(t, m.View(), "[x] Buy celery")

	m.Update(tui.Press(tui.Key(tui.KeySpace)))
	assert.Equal(t, []bool{false, false, false}, m.Selected())
	assert.Contains(t, m.View(), "[ ] Buy celery")
}

func TestChecklistIgnoresKeyRelease(t *testing.T) {
	m := NewChecklistModel(shoppingList, time.Second, time.Second)

	cmd := m.Update(tui.KeyMsg{Code: tui.Key(tui.KeyEnter), Kind: tui.KeyRelease})

	assert.Equal(t, tui.None(), cmd)
	assert.Equal(t, []bool{false, false, false}, m.Selected())
}

func TestChecklistEmpty(t *testing.T) {
	m := NewChecklistModel(nil, time.Second, time.Second)

	m.Update(tui.Press(tui.Key(tui.KeyDown)))
	m.Update(tui.Press(tui.Key(tui.KeyEnter)))

	assert.Equal(t, 0, m.Cursor())
	assert.Empty(t, m.Selected())
	assert.NotPanics(t, func() { _ = m.View() })
}

func TestChecklistQuitKeys(t *testing.T) {
	for _, code := range []tui.KeyCode{tui.Rune('q'), tui.Key(tui.KeyEsc), tui.Ctrl('c')} {
		m := NewChecklistModel(shoppingList, time.Second, time.Second)
		assert.Equal(t, tui.Quit(), m.Update(tui.Press(code)), code.String())
	}
	m := NewChecklistModel(shoppingList, time.Second, time.Second)
	assert.Equal(t, tui.Quit(), m.Update(tui.QuitMsg{}))
}

func TestChecklistTickRearmsAndExpiresToasts(t *testing.T) {
	m := NewChecklistModel(shoppingList, 100*time.Millisecond, 250*time.Millisecond)

	m.Update(tui.Press(tui.Key(tui.KeyEnter)))
	assert.Contains(t, m.View(), "Added: Buy carrots")

	for i := 0; i < 3; i++ {
		assert.Equal(t, tui.Tick(100*time.Millisecond), m.Update(tui.TickMsg{}))
	}
	assert.NotContains(t, m.View(), "Added: Buy carrots")
	assert.Contains(t, m.View(), "tick 3")
}

func TestChecklistHelp(t *testing.T) {
	m := NewChecklistModel(shoppingList, time.Second, time.Second)

	m.Update(tui.Press(tui.Rune('?')))
	view := m.View()
	assert.Contains(t, view, "toggle item")
	assert.NotContains(t, view, "Buy carrots")

	m.Update(tui.Press(tui.Key(tui.KeyDown)))
	assert.Equal(t, 0, m.Cursor())

	m.Update(tui.Press(tui.Key(tui.KeyEsc)))
	assert.Contains(t, m.View(), "Buy carrots")

	m.Update(tui.Press(tui.Rune('?')))
	assert.Equal(t, tui.Quit(), m.Update(tui.Press(tui.Ctrl('c'))))
}

func TestChecklistToggleReplacesToast(t *testing.T) {
	m := NewChecklistModel(shoppingList, time.Second, time.Minute)

	m.Update(tui.Press(tui.Key(tui.KeyEnter)))
	m.Update(tui.Press(tui.Key(tui.KeyEnter)))

	view := m.View()
	assert.Contains(t, view, "Removed: Buy carrots")
	assert.NotContains(t, view, "Added: Buy carrots")
	assert.Len(t, m.toasts.Toasts, 1)
}

func TestChecklistHelpClearsToasts(t *testing.T) {
	m := NewChecklistModel(shoppingList, time.Second, time.Minute)

	m.Update(tui.Press(tui.Key(tui.KeyEnter)))
	m.Update(tui.Press(tui.Rune('?')))
	m.Update(tui.Press(tui.Rune('?')))

	assert.Empty(t, m.toasts.Toasts)
	assert.NotContains(t, m.View(), "Added: Buy carrots")
}

func TestChecklistDeterministic(t *testing.T) {
	msgs := []tui.Msg{
		tui.Press(tui.Key(tui.KeyDown)),
		tui.Press(tui.Key(tui.KeyEnter)),
		tui.TickMsg{},
		tui.Press(tui.Rune('j')),
		tui.Press(tui.Key(tui.KeySpace)),
		tui.TickMsg{},
	}
	run := func() (string, []tui.Cmd) {
		m := NewChecklistModel(shoppingList, time.Second, time.Second)
		var cmds []tui.Cmd
		for _, msg := range msgs {
			cmds = append(cmds, m.Update(msg))
		}
		return m.View(), cmds
	}

	view1, cmds1 := run()
	view2, cmds2 := run()
	assert.Equal(t, view1, view2)
	assert.Equal(t, cmds1, cmds2)
}

func TestCounterUpUpDownQuit(t *testing.T) {
	m := NewCounterModel(time.Second)

	for _, code := range []tui.KeyCode{tui.Key(tui.KeyUp), tui.Key(tui.KeyUp), tui.Key(tui.KeyDown)} {
		assert.Equal(t, tui.None(), m.Update(tui.Press(code)))
	}
	assert.Equal(t, tui.Quit(), m.Update(tui.Press(tui.Rune('q'))))

	assert.Equal(t, 1, m.Counter())
	assert.Contains(t, m.View(), "Counter: 1")
}

func TestCounterInput(t *testing.T) {
	m := NewCounterModel(time.Second)

	for _, r := range "héllo" {
		m.Update(tui.Press(tui.Rune(r)))
	}
	m.Update(tui.Press(tui.Key(tui.KeySpace)))
	m.Update(tui.Press(tui.Rune('x')))
	m.Update(tui.Press(tui.Key(tui.KeyBackspace)))
	m.Update(tui.Press(tui.Key(tui.KeyBackspace)))
	assert.Contains(t, m.View(), "Input: héllo\n")

	m.Update(tui.Press(tui.Key(tui.KeyEnter)))
	view := m.View()
	assert.Contains(t, view, "Input: \n")
	assert.Contains(t, view, "Last command: héllo\n")

	m.Update(tui.Press(tui.Key(tui.KeyBackspace)))
	assert.Contains(t, m.View(), "Input: \n")
}

func TestCounterCtrlCQuits(t *testing.T) {
	m := NewCounterModel(time.Second)

	assert.Equal(t, tui.Quit(), m.Update(tui.Press(tui.Ctrl('c'))))
	assert.Equal(t, tui.None(), m.Update(tui.Press(tui.Ctrl('a'))))
	assert.Contains(t, m.View(), "Input: \n")
}

func TestCounterTick(t *testing.T) {
	m := NewCounterModel(50 * time.Millisecond)
	assert.Equal(t, tui.Tick(50*time.Millisecond), m.Init())
	assert.Equal(t, tui.Tick(50*time.Millisecond), m.Update(tui.TickMsg{}))
	assert.Equal(t, tui.Quit(), m.Update(tui.QuitMsg{}))
}

func TestKeyLogKeepsRecentEvents(t *testing.T) {
	m := NewKeyLogModel(2)

	m.Update(tui.Press(tui.Rune('a')))
	m.Update(tui.KeyMsg{Code: tui.Ctrl('x'), Kind: tui.KeyRepeat})
	m.Update(tui.KeyMsg{Code: tui.Key(tui.KeyF5), Kind: tui.KeyRelease})

	view := m.View()
	assert.NotContains(t, view, `"a"`)
	assert.Contains(t, view, `"ctrl+x"`)
	assert.Contains(t, view, `"f5"`)
	assert.Contains(t, view, "release")
	assert.Contains(t, view, "3")

	assert.Equal(t, tui.Quit(), m.Update(tui.Press(tui.Key(tui.KeyEsc))))
	assert.Equal(t, tui.Quit(), NewKeyLogModel(5).Update(tui.Press(tui.Ctrl('c'))))
}

func TestDemoRunsOnProgram(t *testing.T) {
	term := tuitest.New(
		tui.KeyEvent{Code: tui.Key(tui.KeyDown), Kind: tui.KeyPress},
		tui.KeyEvent{Code: tui.Key(tui.KeyEnter), Kind: tui.KeyPress},
		tui.KeyEvent{Code: tui.Rune('q'), Kind: tui.KeyPress},
	)
	model := NewChecklistModel(shoppingList, time.Hour, time.Hour)
	p := tui.NewProgram(model,
		tui.WithTerminal(term),
		tui.WithoutSignalHandler(),
		tui.WithPollInterval(time.Millisecond),
		tui.WithClock(clockwork.NewFakeClock()),
		tui.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	require.NoError(t, p.Run())

	assert.Equal(t, []bool{false, true, false}, model.Selected())
	assert.True(t, term.Standard())
	assert.True(t, strings.Contains(term.LastFrame(), "[x] Buy celery"))
}

func TestNewDemoModel(t *testing.T) {
	cfg := defaultConfig().Demo

	m, err := newDemoModel(cfg)
	require.NoError(t, err)
	assert.IsType(t, &ChecklistModel{}, m)

	cfg.Name = "counter"
	m, err = newDemoModel(cfg)
	require.NoError(t, err)
	assert.IsType(t, &CounterModel{}, m)

	cfg.Name = "tetris"
	_, err = newDemoModel(cfg)
	assert.ErrorContains(t, err, "unknown demo")
}
