package tui

// Model is the contract between application state and the runtime.
//
// Init is called once before the first iteration. Update is called once per
// delivered message, mutates the model in place and must not block. View
// renders the current state and must not mutate it. None of them can fail:
// application errors belong in the model and surface through View.
type Model interface {
	Init() Cmd
	Update(Msg) Cmd
	View() string
}

// NoInit can be embedded by models that have nothing to do on start.
type NoInit struct{}

// Init returns None.
func (NoInit) Init() Cmd { return None() }
