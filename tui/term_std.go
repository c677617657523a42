package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/cancelreader"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the input or output is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// StdTerminal drives a real terminal through a pair of files, normally
// os.Stdin and os.Stdout.
type StdTerminal struct {
	in  *os.File
	out *bufio.Writer
	env *termenv.Output

	state  *term.State
	reader cancelreader.CancelReader

	keys      chan KeyEvent
	errs      chan error
	done      chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
}

// NewStdTerminal opens the process terminal.
func NewStdTerminal() (*StdTerminal, error) {
	return NewTerminal(os.Stdin, os.Stdout)
}

// NewTerminal wraps in and out. Both must be terminals.
func NewTerminal(in, out *os.File) (*StdTerminal, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return nil, fmt.Errorf("input %s: %w", in.Name(), ErrNotTerminal)
	}
	if !term.IsTerminal(int(out.Fd())) {
		return nil, fmt.Errorf("output %s: %w", out.Name(), ErrNotTerminal)
	}

	reader, err := cancelreader.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("create input reader: %w", err)
	}

	w := bufio.NewWriter(out)
	return &StdTerminal{
		in:     in,
		out:    w,
		env:    termenv.NewOutput(w),
		reader: reader,
		keys:   make(chan KeyEvent, 64),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}, nil
}

func (t *StdTerminal) EnableRawMode() error {
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return err
	}
	t.state = state
	return nil
}

func (t *StdTerminal) DisableRawMode() error {
	if t.state == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.state); err != nil {
		return err
	}
	t.state = nil
	return nil
}

func (t *StdTerminal) EnterAltScreen() error {
	t.env.AltScreen()
	t.env.HideCursor()
	return nil
}

func (t *StdTerminal) ExitAltScreen() error {
	t.env.ShowCursor()
	t.env.ExitAltScreen()
	return nil
}

func (t *StdTerminal) EnableMouse() error {
	t.env.EnableMouseCellMotion()
	t.env.EnableMouseExtendedMode()
	return nil
}

func (t *StdTerminal) DisableMouse() error {
	t.env.DisableMouseExtendedMode()
	t.env.DisableMouseCellMotion()
	return nil
}

// PollKey returns the next decoded key, waiting at most timeout.
func (t *StdTerminal) PollKey(timeout time.Duration) (KeyEvent, bool, error) {
	t.startOnce.Do(func() { go t.readLoop() })

	select {
	case ev := <-t.keys:
		return ev, true, nil
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-t.keys:
		return ev, true, nil
	case err := <-t.errs:
		return KeyEvent{}, false, fmt.Errorf("read input: %w", err)
	case <-timer.C:
		return KeyEvent{}, false, nil
	}
}

func (t *StdTerminal) readLoop() {
	buf := make([]byte, 256)
	for {
		n, err := t.reader.Read(buf)
		if err != nil {
			if !errors.Is(err, cancelreader.ErrCanceled) {
				t.errs <- err
			}
			return
		}
		for _, ev := range ParseKeys(buf[:n]) {
			select {
			case t.keys <- ev:
			case <-t.done:
				return
			}
		}
	}
}

func (t *StdTerminal) MoveHome() error {
	t.env.MoveCursor(1, 1)
	return nil
}

func (t *StdTerminal) Clear() error {
	t.env.ClearScreen()
	return nil
}

func (t *StdTerminal) WriteString(s string) error {
	return writeCRLF(t.out, s)
}

// writeCRLF writes s with every LF turned into CRLF. Raw mode disables output
// post-processing, so a bare LF would not return the cursor to column one.
func writeCRLF(w io.StringWriter, s string) error {
	_, err := w.WriteString(strings.ReplaceAll(s, "\n", "\r\n"))
	return err
}

func (t *StdTerminal) Flush() error {
	return t.out.Flush()
}

// Close stops the input reader.
func (t *StdTerminal) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.done)
		t.reader.Cancel()
		err = t.reader.Close()
	})
	return err
}
