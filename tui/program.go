package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
)

var (
	// ErrProgramUsed is returned by Run on a program that already ran.
	ErrProgramUsed = errors.New("program already ran")

	// ErrInterrupted is returned by Run when a signal stopped the program.
	ErrInterrupted = errors.New("program interrupted")
)

// Program runs a Model against a terminal. It owns both for the duration of
// Run and can only be run once.
type Program struct {
	model      Model
	term       Terminal
	queue      *queue
	dispatcher *Dispatcher
	clock      clockwork.Clock
	logger     *slog.Logger
	ctx        context.Context

	pollInterval  time.Duration
	tickInterval  time.Duration
	altScreen     bool
	mouse         bool
	handleSignals bool

	quitting    bool
	lastTick    time.Time
	ran         atomic.Bool
	interrupted atomic.Bool
}

// NewProgram takes ownership of model.
func NewProgram(model Model, opts ...ProgramOption) *Program {
	p := &Program{
		model:         model,
		queue:         newQueue(),
		clock:         clockwork.NewRealClock(),
		logger:        slog.Default(),
		ctx:           context.Background(),
		pollInterval:  DefaultPollInterval,
		tickInterval:  DefaultTickInterval,
		altScreen:     true,
		mouse:         true,
		handleSignals: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.dispatcher = newDispatcher(p.queue, p.clock, p.logger)
	return p
}

// Model returns the model the program drives. It must not be touched while
// Run is in progress.
func (p *Program) Model() Model {
	return p.model
}

// Run acquires the terminal, calls Init and loops until the model quits.
// The terminal is restored on every way out: quit, I/O error, context
// cancellation, signal or panic.
func (p *Program) Run() (err error) {
	if !p.ran.CompareAndSwap(false, true) {
		return ErrProgramUsed
	}

	if p.term == nil {
		t, err := NewStdTerminal()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		p.term = t
	}
	defer func() {
		if cerr := p.term.Close(); cerr != nil {
			p.logger.Warn("program.close_terminal", "error", cerr)
		}
	}()

	ctx, cancel := context.WithCancel(p.ctx)
	defer cancel()
	if p.handleSignals {
		p.trapSignals(ctx, cancel)
	}

	guard, err := acquire(p.term, p.altScreen, p.mouse, p.logger)
	if err != nil {
		return fmt.Errorf("acquire terminal: %w", err)
	}
	defer func() {
		p.dispatcher.Close()
		p.queue.close()

		r := recover()
		rerr := guard.release()
		if r != nil {
			p.logger.Error("program.panic", "panic", r)
			panic(r)
		}
		if rerr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", rerr)
		}
		p.logger.Info("program.stopped", "error", err)
	}()

	p.logger.Info("program.started")
	p.lastTick = p.clock.Now()
	p.dispatcher.Dispatch(p.model.Init())

	for {
		select {
		case <-ctx.Done():
			if p.interrupted.Load() {
				return ErrInterrupted
			}
			return ctx.Err()
		default:
		}

		if err := p.step(); err != nil {
			p.logger.Error("program.step", "error", err)
			return err
		}
		if p.quitting {
			return nil
		}
	}
}

// step runs one loop iteration: queued message, key input, forced tick,
// render. Once a quit is seen, input and the forced tick are skipped so no
// message reaches the model after QuitMsg.
func (p *Program) step() error {
	if msg, ok := p.queue.tryRecv(); ok {
		cmd := p.model.Update(msg)
		if isQuitMsg(msg) || isQuitCmd(cmd) {
			p.quitting = true
			p.logger.Debug("program.quitting")
		}
		p.dispatcher.Dispatch(cmd)
	}

	if !p.quitting {
		ev, ok, err := p.term.PollKey(p.pollInterval)
		if err != nil {
			return fmt.Errorf("poll input: %w", err)
		}
		if ok {
			p.dispatcher.Dispatch(p.model.Update(KeyMsg(ev)))
		}

		if p.clock.Since(p.lastTick) >= p.tickInterval {
			// Only a quit survives a forced tick; re-arming timers from here
			// would add a new timer chain every interval.
			if cmd := p.model.Update(TickMsg{}); isQuitCmd(cmd) {
				p.dispatcher.Dispatch(cmd)
			}
			p.lastTick = p.clock.Now()
		}
	}

	if err := (renderer{term: p.term}).render(p.model.View()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (p *Program) trapSignals(ctx context.Context, cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			p.logger.Warn("program.signal", "signal", sig.String())
			p.interrupted.Store(true)
			cancel()
		case <-ctx.Done():
		}
	}()
}
