package teahost

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daonb/cove/tui"
)

type mockModel struct {
	init  tui.Cmd
	n     int
	ticks int
	quits int
	keys  []string
}

func (m *mockModel) Init() tui.Cmd { return m.init }

func (m *mockModel) Update(msg tui.Msg) tui.Cmd {
	switch msg := msg.(type) {
	case tui.KeyMsg:
		m.keys = append(m.keys, msg.String())
		switch msg.Code {
		case tui.Key(tui.KeyUp):
			m.n++
		case tui.Key(tui.KeyDown):
			m.n--
		case tui.Rune('q'):
			return tui.Quit()
		}
	case tui.TickMsg:
		m.ticks++
	case tui.QuitMsg:
		m.quits++
	}
	return tui.None()
}

func (m *mockModel) View() string {
	return fmt.Sprintf("count=%d ticks=%d", m.n, m.ticks)
}

func TestHostRunsModelUnderBubbleTea(t *testing.T) {
	model := &mockModel{}
	tm := teatest.NewTestModel(t, Wrap(model), teatest.WithInitialTermSize(80, 24))

	tm.Send(tea.KeyMsg{Type: tea.KeyUp})
	tm.Send(tea.KeyMsg{Type: tea.KeyUp})
	tm.Send(tea.KeyMsg{Type: tea.KeyDown})

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return strings.Contains(string(bts), "count=1")
	}, teatest.WithCheckInterval(10*time.Millisecond), teatest.WithDuration(3*time.Second))

	tm.Type("q")

	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second))
	host, ok := final.(*Host)
	require.True(t, ok)
	got := host.Model().(*mockModel)
	assert.Equal(t, 1, got.n)
	assert.Equal(t, 1, got.quits)
	assert.Equal(t, []string{"up", "up", "down", "q"}, got.keys)
}

func TestHostScheduledTick(t *testing.T) {
	model := &mockModel{init: tui.Tick(10 * time.Millisecond)}
	tm := teatest.NewTestModel(t, Wrap(model), teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return strings.Contains(string(bts), "ticks=1")
	}, teatest.WithCheckInterval(10*time.Millisecond), teatest.WithDuration(3*time.Second))

	tm.Type("q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
	assert.Equal(t, 1, model.ticks)
}

func TestHostTranslate(t *testing.T) {
	h := Wrap(&mockModel{})

	assert.Nil(t, h.translate(nil))
	assert.Nil(t, h.translate(tui.None()))
	require.NotNil(t, h.translate(tui.Quit()))
	assert.Equal(t, quitMsg{}, h.translate(tui.Quit())())
	assert.NotNil(t, h.translate(tui.Tick(time.Millisecond)))
}

func TestHostIgnoresMessagesAfterQuit(t *testing.T) {
	model := &mockModel{}
	h := Wrap(model)

	_, cmd := h.Update(quitMsg{})
	require.NotNil(t, cmd)
	h.Update(tea.KeyMsg{Type: tea.KeyUp})

	assert.Equal(t, 0, model.n)
	assert.Equal(t, 1, model.quits)
}

func TestKeysFromTea(t *testing.T) {
	tests := []struct {
		name string
		in   tea.KeyMsg
		want string
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, "j"},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, "enter"},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, "tab"},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, "ctrl+c"},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, "alt+x"},
		{"f5", tea.KeyMsg{Type: tea.KeyF5}, "f5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := keysFromTea(tt.in)
			require.Len(t, events, 1)
			assert.Equal(t, tt.want, events[0].Code.String())
			assert.Equal(t, tui.KeyPress, events[0].Kind)
		})
	}

	assert.Empty(t, keysFromTea(tea.KeyMsg{Type: tea.KeyRunes}))
}

func TestKeysFromTeaSplitsRunes(t *testing.T) {
	events := keysFromTea(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("héy"), Paste: true})

	require.Len(t, events, 3)
	assert.Equal(t, tui.Rune('h'), events[0].Code)
	assert.Equal(t, tui.Rune('é'), events[1].Code)
	assert.Equal(t, tui.Rune('y'), events[2].Code)
}

func TestHostDeliversEveryPastedRune(t *testing.T) {
	model := &mockModel{}
	h := Wrap(model)

	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abqc")})

	assert.Equal(t, []string{"a", "b", "q"}, model.keys)
	assert.NotNil(t, cmd)
}
