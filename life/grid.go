package life

import "math/rand"

// Grid holds one generation of cell states as a flat row-major buffer.
// The interior is [1..size]x[1..size]; row and column 0 and size+1 form a
// halo of permanently dead cells, so neighbour lookups at the edge need no
// special cases. Cell values are 0 (dead) or 1 (live).
type Grid struct {
	size  int
	cells []uint8
}

// MakeGrid allocates a zeroed grid for an interior of size x size cells.
func MakeGrid(size int) *Grid {
	stride := size + 2
	return &Grid{
		size:  size,
		cells: make([]uint8, stride*stride),
	}
}

// Size returns the interior side length.
func (g *Grid) Size() int {
	return g.size
}

// At returns the state of cell (i, j). Valid for 0 <= i, j <= size+1,
// so halo cells can be read like any other.
func (g *Grid) At(i, j int) uint8 {
	return g.cells[i*(g.size+2)+j]
}

func (g *Grid) set(i, j int, state uint8) {
	g.cells[i*(g.size+2)+j] = state
}

// LiveNeighbours sums the eight cells surrounding interior cell (i, j).
// Reads into the halo are fine since halo cells are always 0.
func (g *Grid) LiveNeighbours(i, j int) int {
	stride := g.size + 2
	above := (i-1)*stride + j
	here := i*stride + j
	below := (i+1)*stride + j
	return int(g.cells[above-1]) + int(g.cells[above]) + int(g.cells[above+1]) +
		int(g.cells[here-1]) + int(g.cells[here+1]) +
		int(g.cells[below-1]) + int(g.cells[below]) + int(g.cells[below+1])
}

// LiveCells counts the live cells in the interior.
func (g *Grid) LiveCells() int {
	count := 0
	for i := 1; i <= g.size; i++ {
		for j := 1; j <= g.size; j++ {
			count += int(g.At(i, j))
		}
	}
	return count
}

// seed populates the interior at random: each cell is live with probability
// pct. Values of pct at or below 0 leave the grid all dead, at or above 1
// all live. Returns the number of live cells placed.
func (g *Grid) seed(rng *rand.Rand, pct float64) int {
	count := 0
	for i := 1; i <= g.size; i++ {
		for j := 1; j <= g.size; j++ {
			if rng.Float64() < pct {
				g.set(i, j, 1)
				count++
			} else {
				g.set(i, j, 0)
			}
		}
	}
	return count
}
