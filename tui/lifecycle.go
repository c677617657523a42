package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// termGuard holds the terminal modes acquired for one run and gives them back
// exactly once.
type termGuard struct {
	term   Terminal
	logger *slog.Logger

	raw   bool
	alt   bool
	mouse bool

	once sync.Once
	err  error
}

// acquire switches the terminal into raw input, then the alternate screen,
// then mouse capture. If a step fails, the steps already taken are undone.
func acquire(t Terminal, altScreen, mouse bool, logger *slog.Logger) (*termGuard, error) {
	g := &termGuard{term: t, logger: logger}

	if err := t.EnableRawMode(); err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	g.raw = true

	if altScreen {
		if err := t.EnterAltScreen(); err != nil {
			return nil, errors.Join(fmt.Errorf("enter alternate screen: %w", err), g.release())
		}
		g.alt = true
	}

	if mouse {
		if err := t.EnableMouse(); err != nil {
			return nil, errors.Join(fmt.Errorf("enable mouse capture: %w", err), g.release())
		}
		g.mouse = true
	}

	if err := t.Flush(); err != nil {
		return nil, errors.Join(fmt.Errorf("flush terminal: %w", err), g.release())
	}

	logger.Debug("terminal.acquired", "alt_screen", altScreen, "mouse", mouse)
	return g, nil
}

// release undoes acquire in reverse order. Every step is attempted even if an
// earlier one fails. Safe to call more than once.
func (g *termGuard) release() error {
	g.once.Do(func() {
		var errs []error
		if g.mouse {
			if err := g.term.DisableMouse(); err != nil {
				errs = append(errs, fmt.Errorf("disable mouse capture: %w", err))
			}
		}
		if g.alt {
			if err := g.term.ExitAltScreen(); err != nil {
				errs = append(errs, fmt.Errorf("leave alternate screen: %w", err))
			}
		}
		if g.raw {
			if err := g.term.DisableRawMode(); err != nil {
				errs = append(errs, fmt.Errorf("disable raw mode: %w", err))
			}
		}
		if err := g.term.Flush(); err != nil {
			errs = append(errs, fmt.Errorf("flush terminal: %w", err))
		}
		g.err = errors.Join(errs...)
		g.logger.Debug("terminal.released", "error", g.err)
	})
	return g.err
}
