// Package tuitest provides an in-memory terminal for testing programs built
// on package tui.
package tuitest

import (
	"strings"
	"sync"
	"time"

	"github.com/daonb/cove/tui"
)

// Terminal records mode changes and rendered frames. Key events queued with
// Press are handed out one per PollKey call; when none are queued PollKey
// sleeps for its timeout and reports nothing.
type Terminal struct {
	mu sync.Mutex

	raw    bool
	alt    bool
	mouse  bool
	closed bool

	keys   []tui.KeyEvent
	ops    []string
	frames []string
	buf    strings.Builder

	failures map[string]error
}

// New returns a terminal with keys already queued.
func New(keys ...tui.KeyEvent) *Terminal {
	return &Terminal{
		keys:     keys,
		failures: make(map[string]error),
	}
}

// Press queues key events for later polls.
func (t *Terminal) Press(keys ...tui.KeyEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.keys = append(t.keys, keys...)
}

// Fail makes the named operation ("EnableRawMode", "PollKey", "Flush", ...)
// return err from now on.
func (t *Terminal) Fail(op string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures[op] = err
}

func (t *Terminal) record(op string) error {
	t.ops = append(t.ops, op)
	return t.failures[op]
}

func (t *Terminal) EnableRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record("EnableRawMode"); err != nil {
		return err
	}
	t.raw = true
	return nil
}

func (t *Terminal) DisableRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record("DisableRawMode"); err != nil {
		return err
	}
	t.raw = false
	return nil
}

func (t *Terminal) EnterAltScreen() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record("EnterAltScreen"); err != nil {
		return err
	}
	t.alt = true
	return nil
}

func (t *Terminal) ExitAltScreen() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record("ExitAltScreen"); err != nil {
		return err
	}
	t.alt = false
	return nil
}

func (t *Terminal) EnableMouse() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record("EnableMouse"); err != nil {
		return err
	}
	t.mouse = true
	return nil
}

func (t *Terminal) DisableMouse() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record("DisableMouse"); err != nil {
		return err
	}
	t.mouse = false
	return nil
}

func (t *Terminal) PollKey(timeout time.Duration) (tui.KeyEvent, bool, error) {
	t.mu.Lock()
	if err := t.failures["PollKey"]; err != nil {
		t.mu.Unlock()
		return tui.KeyEvent{}, false, err
	}
	if len(t.keys) > 0 {
		ev := t.keys[0]
		t.keys = t.keys[1:]
		t.mu.Unlock()
		return ev, true, nil
	}
	t.mu.Unlock()

	time.Sleep(timeout)
	return tui.KeyEvent{}, false, nil
}

func (t *Terminal) MoveHome() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.failures["MoveHome"]
}

func (t *Terminal) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf.Reset()
	return t.failures["Clear"]
}

func (t *Terminal) WriteString(s string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.failures["WriteString"]; err != nil {
		return err
	}
	t.buf.WriteString(s)
	return nil
}

func (t *Terminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.failures["Flush"]; err != nil {
		return err
	}
	if t.buf.Len() > 0 {
		t.frames = append(t.frames, t.buf.String())
		t.buf.Reset()
	}
	return nil
}

func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}

// Ops returns the mode-changing operations in call order.
func (t *Terminal) Ops() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.ops...)
}

// Frames returns every rendered frame.
func (t *Terminal) Frames() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.frames...)
}

// LastFrame returns the most recent frame, or "" if nothing was rendered.
func (t *Terminal) LastFrame() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.frames) == 0 {
		return ""
	}
	return t.frames[len(t.frames)-1]
}

// Standard reports whether the terminal is back in its normal state: raw
// mode off, primary screen, no mouse capture.
func (t *Terminal) Standard() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.raw && !t.alt && !t.mouse
}

// Raw reports whether raw mode is on.
func (t *Terminal) Raw() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.raw
}

// Closed reports whether Close was called.
func (t *Terminal) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

var _ tui.Terminal = (*Terminal)(nil)
