package tui

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Dispatcher turns commands into deferred messages on the program queue.
//
// Timers scheduled by TickCmd cannot be cancelled by the model. The
// dispatcher keeps a handle for each one so that Close can stop whatever is
// still outstanding when the program shuts down.
type Dispatcher struct {
	queue  *queue
	clock  clockwork.Clock
	logger *slog.Logger

	mu     sync.Mutex
	timers map[uuid.UUID]clockwork.Timer
	closed bool
}

func newDispatcher(q *queue, clock clockwork.Clock, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		queue:  q,
		clock:  clock,
		logger: logger,
		timers: make(map[uuid.UUID]clockwork.Timer),
	}
}

// Dispatch acts on cmd. QuitCmd enqueues a QuitMsg before returning; TickCmd
// starts a timer that enqueues one TickMsg; None and nil do nothing.
func (d *Dispatcher) Dispatch(cmd Cmd) {
	switch c := cmd.(type) {
	case nil, NoneCmd:
	case QuitCmd:
		if !d.queue.send(QuitMsg{}) {
			d.logger.Debug("dispatch.quit_dropped")
		}
	case TickCmd:
		d.schedule(c.After)
	}
}

func (d *Dispatcher) schedule(after time.Duration) {
	id := uuid.New()

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.logger.Debug("dispatch.tick_after_close", "after", after)
		return
	}
	d.timers[id] = nil
	d.mu.Unlock()

	d.logger.Debug("dispatch.tick_scheduled", "id", id, "after", after)
	t := d.clock.AfterFunc(after, func() { d.fire(id) })

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		t.Stop()
		return
	}
	// The timer may already have fired and removed its entry.
	if _, ok := d.timers[id]; ok {
		d.timers[id] = t
	}
}

func (d *Dispatcher) fire(id uuid.UUID) {
	d.mu.Lock()
	delete(d.timers, id)
	d.mu.Unlock()

	if !d.queue.send(TickMsg{}) {
		d.logger.Debug("dispatch.tick_dropped", "id", id)
	}
}

// Pending returns the number of timers that have not fired yet.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}

// Close stops all outstanding timers. Commands dispatched afterwards are
// ignored.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true
	for id, t := range d.timers {
		if t != nil {
			t.Stop()
		}
		delete(d.timers, id)
	}
	d.logger.Debug("dispatch.closed")
}
