package tui

import "sync"

// queue is an unbounded multi-producer, single-consumer message queue.
// Sends after close are dropped.
type queue struct {
	mu     sync.Mutex
	msgs   []Msg
	closed bool
}

func newQueue() *queue {
	return &queue{msgs: make([]Msg, 0, 8)}
}

// send appends msg and reports whether it was accepted.
func (q *queue) send(msg Msg) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.msgs = append(q.msgs, msg)
	return true
}

// tryRecv pops the oldest message without blocking.
func (q *queue) tryRecv() (Msg, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.msgs) == 0 {
		return nil, false
	}
	msg := q.msgs[0]
	q.msgs[0] = nil
	q.msgs = q.msgs[1:]
	return msg, true
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.msgs)
}

// close tears down the receiving end and discards anything still queued.
func (q *queue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.msgs = nil
}
