package tui

// Msg is an event delivered to a Model. The set is closed: KeyMsg, TickMsg
// and QuitMsg are the only implementations.
type Msg interface {
	msg()
}

// KeyMsg carries a single keyboard event.
type KeyMsg KeyEvent

// TickMsg is delivered when a scheduled timer fires and on every forced tick
// of the event loop.
type TickMsg struct{}

// QuitMsg asks the model to wind down. The loop terminates in the iteration
// that delivers it.
type QuitMsg struct{}

func (KeyMsg) msg()  {}
func (TickMsg) msg() {}
func (QuitMsg) msg() {}

// String returns the key name, e.g. "up", "ctrl+c" or "q".
func (k KeyMsg) String() string {
	return k.Code.String()
}

// Press builds a KeyMsg for a key press.
func Press(code KeyCode) KeyMsg {
	return KeyMsg{Code: code, Kind: KeyPress}
}
