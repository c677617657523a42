package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	// DefaultPollInterval bounds each wait for keyboard input, about 60 fps.
	DefaultPollInterval = 16 * time.Millisecond

	// DefaultTickInterval is how often the loop forces a TickMsg.
	DefaultTickInterval = 100 * time.Millisecond
)

// ProgramOption configures a Program.
type ProgramOption func(*Program)

// WithTerminal makes the program drive t instead of the process terminal.
// The program takes ownership of t and closes it when Run returns.
func WithTerminal(t Terminal) ProgramOption {
	return func(p *Program) {
		p.term = t
	}
}

// WithPollInterval sets how long each iteration waits for input.
func WithPollInterval(d time.Duration) ProgramOption {
	return func(p *Program) {
		if d > 0 {
			p.pollInterval = d
		}
	}
}

// WithTickInterval sets the forced tick period.
func WithTickInterval(d time.Duration) ProgramOption {
	return func(p *Program) {
		if d > 0 {
			p.tickInterval = d
		}
	}
}

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c clockwork.Clock) ProgramOption {
	return func(p *Program) {
		p.clock = c
	}
}

// WithoutAltScreen renders on the primary screen.
func WithoutAltScreen() ProgramOption {
	return func(p *Program) {
		p.altScreen = false
	}
}

// WithoutMouse leaves mouse reporting off.
func WithoutMouse() ProgramOption {
	return func(p *Program) {
		p.mouse = false
	}
}

// WithoutSignalHandler stops the program from trapping SIGINT, SIGTERM and
// SIGHUP.
func WithoutSignalHandler() ProgramOption {
	return func(p *Program) {
		p.handleSignals = false
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) ProgramOption {
	return func(p *Program) {
		p.logger = l
	}
}

// WithContext stops the program when ctx is done.
func WithContext(ctx context.Context) ProgramOption {
	return func(p *Program) {
		p.ctx = ctx
	}
}
