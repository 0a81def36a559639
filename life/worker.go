package life

import "fmt"

// worker is one member of the fixed pool. It owns a contiguous range of
// interior rows for the whole run and advances them one generation at a
// time, in lock step with the rest of the pool through the fan-in reducer.
type worker struct {
	index    int
	sim      *Simulation
	startRow int
	endRow   int
}

// run advances the worker's rows through every generation. Buffer roles
// alternate by generation parity: generation g reads buffer 1-(g mod 2) and
// writes buffer g mod 2, so generation 1 reads the seeded buffer 0. A worker
// with an empty row range (possible when the thread count exceeds the grid
// size) updates nothing but still joins both barrier phases, otherwise the
// rest of the pool would wait forever.
func (w *worker) run() error {
	p := w.sim.params
	for gen := 1; gen <= p.NumIters; gen++ {
		curr := w.sim.grids[gen%2]
		prev := w.sim.grids[1-gen%2]

		if w.index == 0 {
			fmt.Fprintf(w.sim.out, "Iteration %d...\n", gen)
		}

		var local Counters
		for i := w.startRow; i <= w.endRow; i++ {
			for j := 1; j <= p.GridSize; j++ {
				switch prev.LiveNeighbours(i, j) {
				case 2:
					// Stable neighbourhood, state carries over.
					curr.set(i, j, prev.At(i, j))
				case 3:
					if prev.At(i, j) == 0 {
						local.Born++
					}
					curr.set(i, j, 1)
				default:
					// Loneliness or overcrowding.
					if prev.At(i, j) == 1 {
						local.Died++
					}
					curr.set(i, j, 0)
				}
				local.Live += int(curr.At(i, j))
			}
		}

		totals := w.sim.stats.Reduce(local)

		if w.index == 0 {
			fmt.Fprintf(w.sim.out, "  Counters- living: %d, died: %d, born: %d\n",
				totals.Live, totals.Died, totals.Born)
		}
	}
	return nil
}
