package life

import (
	"fmt"
	"io"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// Params provides the details of one simulation run.
type Params struct {
	NumThreads int     // size of the worker pool
	GridSize   int     // interior side length N
	InitPct    float64 // probability a seeded cell starts live
	NumIters   int     // generations to advance
	Seed       int64   // seed for the initial random population
}

// Simulation is the shared context of one run: the generation pair, the
// statistics reducer and the run parameters. It is created once, handed to
// every worker, and never reshaped after Run starts.
type Simulation struct {
	params   Params
	grids    [2]*Grid
	stats    *FanIn
	out      io.Writer
	seedLive int
}

// NewSimulation allocates both generation buffers and seeds generation 0
// into buffer 0 from the params' random seed.
func NewSimulation(p Params) *Simulation {
	s := &Simulation{
		params: p,
		grids:  [2]*Grid{MakeGrid(p.GridSize), MakeGrid(p.GridSize)},
		stats:  NewFanIn(p.NumThreads),
	}
	rng := rand.New(rand.NewSource(p.Seed))
	s.seedLive = s.grids[0].seed(rng, p.InitPct)
	return s
}

// InitialLiveCells reports how many cells the seeding left live.
func (s *Simulation) InitialLiveCells() int {
	return s.seedLive
}

// Final returns the buffer holding the last completed generation. Before
// Run it is the seeded generation 0.
func (s *Simulation) Final() *Grid {
	return s.grids[s.params.NumIters%2]
}

// Run reports the initial population on out, then spawns the worker pool
// and blocks until every worker has advanced through all generations. Only
// worker 0 writes per-generation progress to out. A worker failure is
// returned annotated with the failing worker's index.
func (s *Simulation) Run(out io.Writer) error {
	s.out = out
	fmt.Fprintf(out, "Initial grid has %d live cells out of %d\n",
		s.seedLive, s.params.GridSize*s.params.GridSize)

	var g errgroup.Group
	for t := 0; t < s.params.NumThreads; t++ {
		w := &worker{index: t, sim: s}
		w.startRow, w.endRow = rowRange(t, s.params.NumThreads, s.params.GridSize)
		g.Go(func() error {
			if err := w.run(); err != nil {
				return fmt.Errorf("worker %d: %w", w.index, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Run seeds and runs a whole simulation, writing its report to out.
func Run(p Params, out io.Writer) error {
	return NewSimulation(p).Run(out)
}
