package life

import "sync"

// Counters are the per-generation statistics: cells alive after the
// transition, cells born (dead to live) and cells that died (live to dead).
type Counters struct {
	Live int
	Born int
	Died int
}

func (c *Counters) add(other Counters) {
	c.Live += other.Live
	c.Born += other.Born
	c.Died += other.Died
}

// FanIn combines per-worker partial counters into a shared total once per
// generation. The cycle is: every worker resets the shared total (all write
// the same zero, under the mutex), a barrier guarantees nobody accumulates
// until the reset is globally done, each worker adds its partial under the
// mutex, and a second barrier guarantees every contribution is in before
// anyone reads the total. The second barrier snapshots the total on its
// final arrival, so the value handed back to each worker cannot be clobbered
// by a fast worker already resetting for the next generation.
type FanIn struct {
	mu     sync.Mutex
	totals Counters
	snap   Counters
	reset  *Barrier
	done   *Barrier
}

// NewFanIn creates a reducer for n participating workers.
func NewFanIn(n int) *FanIn {
	f := &FanIn{}
	f.reset = NewBarrier(n)
	f.done = NewBarrierFunc(n, func() {
		f.mu.Lock()
		f.snap = f.totals
		f.mu.Unlock()
	})
	return f
}

// Reduce contributes one worker's local counters and returns the combined
// totals for the generation. Every worker must call Reduce exactly once per
// generation; it blocks until all have.
func (f *FanIn) Reduce(local Counters) Counters {
	f.mu.Lock()
	f.totals = Counters{}
	f.mu.Unlock()
	f.reset.Wait()

	f.mu.Lock()
	f.totals.add(local)
	f.mu.Unlock()
	f.done.Wait()

	return f.snap
}
