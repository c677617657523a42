package main

import (
	"strconv"
	"strings"

	"github.com/daonb/cove/present"
	"github.com/daonb/cove/tui"
)

// KeyLogModel shows the most recent key events as the runtime decoded them.
type KeyLogModel struct {
	tui.NoInit

	limit   int
	seq     int
	entries [][]string
	theme   *Theme
}

// NewKeyLogModel keeps the last limit events.
func NewKeyLogModel(limit int) *KeyLogModel {
	if limit < 1 {
		limit = 1
	}
	return &KeyLogModel{limit: limit, theme: NewTheme()}
}

func (m *KeyLogModel) Update(msg tui.Msg) tui.Cmd {
	switch msg := msg.(type) {
	case tui.KeyMsg:
		m.seq++
		m.entries = append(m.entries, []string{
			strconv.Itoa(m.seq),
			strconv.Quote(msg.Code.String()),
			msg.Kind.String(),
		})
		if len(m.entries) > m.limit {
			m.entries = m.entries[len(m.entries)-m.limit:]
		}
		if msg.Code == tui.Key(tui.KeyEsc) || msg.Code == tui.Ctrl('c') {
			return tui.Quit()
		}
	case tui.QuitMsg:
		return tui.Quit()
	}
	return tui.None()
}

func (m *KeyLogModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Key events"))
	b.WriteString("\n\n")
	if len(m.entries) == 0 {
		b.WriteString("Press any key.\n")
	} else {
		b.WriteString(present.Table([]string{"#", "Key", "Kind"}, m.entries, m.theme.Muted))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Help.Render("\nPress esc or ctrl+c to quit."))
	b.WriteString("\n")
	return b.String()
}
