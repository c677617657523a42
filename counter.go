package main

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/daonb/cove/present"
	"github.com/daonb/cove/tui"
)

// CounterModel counts with the arrow keys and collects typed commands.
type CounterModel struct {
	counter int
	input   string
	last    string
	tick    time.Duration
	ticks   int
	theme   *Theme
}

// NewCounterModel creates a counter that re-arms a timer every tick.
func NewCounterModel(tick time.Duration) *CounterModel {
	return &CounterModel{tick: tick, theme: NewTheme()}
}

func (m *CounterModel) Init() tui.Cmd {
	return tui.Tick(m.tick)
}

func (m *CounterModel) Update(msg tui.Msg) tui.Cmd {
	switch msg := msg.(type) {
	case tui.KeyMsg:
		if msg.Kind == tui.KeyRelease {
			return tui.None()
		}
		switch msg.Code.Type {
		case tui.KeyUp:
			m.counter++
		case tui.KeyDown:
			m.counter--
		case tui.KeyEnter:
			m.last = m.input
			m.input = ""
		case tui.KeyBackspace:
			if m.input != "" {
				_, size := utf8.DecodeLastRuneInString(m.input)
				m.input = m.input[:len(m.input)-size]
			}
		case tui.KeySpace:
			m.input += " "
		case tui.KeyRune:
			if msg.Code.Rune == 'q' && !msg.Code.Alt {
				return tui.Quit()
			}
			m.input += string(msg.Code.Rune)
		case tui.KeyCtrl:
			if msg.Code.Rune == 'c' {
				return tui.Quit()
			}
		}
	case tui.TickMsg:
		m.ticks++
		return tui.Tick(m.tick)
	case tui.QuitMsg:
		return tui.Quit()
	}
	return tui.None()
}

// Counter returns the current count.
func (m *CounterModel) Counter() int {
	return m.counter
}

func (m *CounterModel) View() string {
	return fmt.Sprintf("%s\nCounter: %s\nTicks: %d\nInput: %s\nLast command: %s\n\n%s\n",
		m.theme.Title.Render("Counter"),
		present.Colored(strconv.Itoa(m.counter), m.theme.Text),
		m.ticks,
		m.input,
		m.last,
		m.theme.Help.Render("Up/Down change the counter, type a command and press Enter, q or ctrl+c quits."),
	)
}
