package tui

// renderer repaints the whole screen on every call.
type renderer struct {
	term Terminal
}

func (r renderer) render(view string) error {
	if err := r.term.MoveHome(); err != nil {
		return err
	}
	if err := r.term.Clear(); err != nil {
		return err
	}
	if err := r.term.WriteString(view); err != nil {
		return err
	}
	return r.term.Flush()
}
