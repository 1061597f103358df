package browse

import "sync"

// queue is an unbounded FIFO of loop events. push never blocks, so UI
// callbacks, timers and fetch goroutines can all post to it freely.
type queue struct {
	mu     sync.Mutex
	fns    []func()
	signal chan struct{}
}

func newQueue() *queue {
	return &queue{signal: make(chan struct{}, 1)}
}

func (q *queue) push(fn func()) {
	q.mu.Lock()
	q.fns = append(q.fns, fn)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *queue) drain() []func() {
	q.mu.Lock()
	defer q.mu.Unlock()
	fns := q.fns
	q.fns = nil
	return fns
}
