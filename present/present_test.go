package present

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColoredKeepsText(t *testing.T) {
	assert.Contains(t, Colored("hello", "#F952F9"), "hello")
	assert.Contains(t, Bold("hello"), "hello")
}

func TestBoxWrapsAndFrames(t *testing.T) {
	out := Box("Title", "one two three four five six seven", 16, "62")

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╯")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 16)
	}
}

func TestProgressBar(t *testing.T) {
	assert.Contains(t, ProgressBar(0.5, 30), "50%")
	assert.Contains(t, ProgressBar(2, 30), "100%")
	assert.Contains(t, ProgressBar(-1, 30), "0%")
}

func TestTable(t *testing.T) {
	out := Table([]string{"Key", "Action"}, [][]string{
		{"up", "move up"},
		{"q", "quit"},
	}, "240")

	assert.Contains(t, out, "Key")
	assert.Contains(t, out, "move up")
	assert.Contains(t, out, "quit")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hel…", Truncate("hello world", 4))
	assert.Equal(t, "", Truncate("hello", 0))
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown("# Keys\n\nPress **q** to quit.", 60, "notty")
	require.NoError(t, err)

	assert.Contains(t, out, "Keys")
	assert.Contains(t, out, "quit")
}
