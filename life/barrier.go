package life

import "sync"

// Barrier lets n goroutines wait until every one of them has arrived.
// It resets itself after each trip, so the same barrier can be reused
// round after round.
type Barrier struct {
	n      int
	count  int
	phase  int
	mu     sync.Mutex
	cond   *sync.Cond
	onLast func()
}

// NewBarrier creates a barrier for n goroutines. n must be positive.
func NewBarrier(n int) *Barrier {
	return NewBarrierFunc(n, nil)
}

// NewBarrierFunc creates a barrier that additionally runs onLast, from the
// goroutine that completes each trip, before any waiter is released.
func NewBarrierFunc(n int, onLast func()) *Barrier {
	if n <= 0 {
		panic("life: barrier size must be positive")
	}
	b := &Barrier{n: n, onLast: onLast}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks until n goroutines have called Wait, then releases them all.
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.count++
	if b.count < b.n {
		// The phase counter guards against spurious wakeups and against
		// waiters from the next trip observing a stale broadcast.
		phase := b.phase
		for phase == b.phase {
			b.cond.Wait()
		}
		return
	}
	// Last to arrive: run the trip hook while everyone is still parked.
	if b.onLast != nil {
		b.onLast()
	}
	b.count = 0
	b.phase++
	b.cond.Broadcast()
}
