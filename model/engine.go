package model

import "github.com/sheikhrachel/go-life/rules"

func newScratch(rows, cols int, pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(rows, cols)
	}
	return NewGrid(rows, cols)
}

// NextGeneration computes the following generation into a new grid.
//
// Every cell is evaluated against g as it is now; g itself is not modified.
// The result comes from pool when one is given.
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	next := newScratch(g.rows, g.cols, pool)

	for row := 1; row <= g.rows; row++ {
		for col := 1; col <= g.cols; col++ {
			idx := g.index(row, col)
			if rules.NextState(g.cells[idx] == Alive, g.liveNeighbors(idx)) {
				next.cells[idx] = Alive
			}
		}
	}

	return next
}

// Advance replaces the interior of g with its next generation.
// The border is left untouched.
func (g *Grid) Advance(pool *GridPool) {
	next := g.NextGeneration(pool)
	g.copyInterior(next)
	GridToPool(next, pool)
}
