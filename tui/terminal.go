package tui

import "time"

// Terminal is the exclusive terminal handle a Program drives. StdTerminal is
// the real implementation; tuitest.Terminal records calls for tests.
type Terminal interface {
	EnableRawMode() error
	DisableRawMode() error
	EnterAltScreen() error
	ExitAltScreen() error
	EnableMouse() error
	DisableMouse() error

	// PollKey waits at most timeout for a key event.
	PollKey(timeout time.Duration) (KeyEvent, bool, error)

	MoveHome() error
	Clear() error
	WriteString(s string) error
	Flush() error

	// Close releases the input reader. It does not restore terminal modes.
	Close() error
}
