package tui

import "time"

// Cmd is an effect requested by a Model. The set is closed: NoneCmd, TickCmd
// and QuitCmd. A nil Cmd is treated as NoneCmd.
type Cmd interface {
	cmd()
}

// NoneCmd requests nothing.
type NoneCmd struct{}

// TickCmd schedules one TickMsg no earlier than After from now.
type TickCmd struct {
	After time.Duration
}

// QuitCmd terminates the program.
type QuitCmd struct{}

func (NoneCmd) cmd() {}
func (TickCmd) cmd() {}
func (QuitCmd) cmd() {}

// None returns a command that does nothing.
func None() Cmd { return NoneCmd{} }

// Tick returns a command that delivers a TickMsg after d.
func Tick(d time.Duration) Cmd { return TickCmd{After: d} }

// Quit returns a command that stops the program.
func Quit() Cmd { return QuitCmd{} }

func isQuitCmd(c Cmd) bool {
	_, ok := c.(QuitCmd)
	return ok
}

func isQuitMsg(m Msg) bool {
	_, ok := m.(QuitMsg)
	return ok
}
