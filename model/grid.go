package model

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Grid is a fixed-size world surrounded by a one-cell dead border.
//
// Callers address interior cells with 1-based coordinates, rows in [1, Rows()]
// and columns in [1, Cols()]. The border is never written after allocation, so
// every interior cell has eight neighbors inside the buffer and the ones on the
// border always read as dead.
type Grid struct {
	rows   int
	cols   int
	stride int
	cells  []Cell
}

// NewGrid allocates an all-dead grid with the given interior dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Reset(rows, cols)
	return g
}

// Rows returns the number of interior rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of interior columns
func (g *Grid) Cols() int {
	return g.cols
}

// Reset resizes the grid if needed and kills every cell
func (g *Grid) Reset(rows, cols int) {
	g.rows = rows
	g.cols = cols
	g.stride = cols + 2

	size := (rows + 2) * (cols + 2)
	if cap(g.cells) < size {
		g.cells = make([]Cell, size)
		return
	}
	g.cells = g.cells[:size]
	g.Clear()
}

// Clear sets every cell, border included, to dead
func (g *Grid) Clear() {
	clear(g.cells)
}

func (g *Grid) inside(row, col int) bool {
	return row >= 1 && row <= g.rows && col >= 1 && col <= g.cols
}

func (g *Grid) index(row, col int) int {
	return row*g.stride + col
}

// Set changes an interior cell. Coordinates outside the interior are ignored
// so the border stays dead.
func (g *Grid) Set(row, col int, c Cell) {
	if g.inside(row, col) {
		g.cells[g.index(row, col)] = c
	}
}

// Get returns the state of a cell; anything outside the interior is dead
func (g *Grid) Get(row, col int) Cell {
	if !g.inside(row, col) {
		return Dead
	}
	return g.cells[g.index(row, col)]
}

// IsAlive reports whether an interior cell is alive
func (g *Grid) IsAlive(row, col int) bool {
	return g.Get(row, col) == Alive
}

// CountLiveNeighbors counts live cells among the eight neighbors of an interior cell
func (g *Grid) CountLiveNeighbors(row, col int) (int, error) {
	if !g.inside(row, col) {
		return 0, &RangeError{Row: row, Col: col}
	}
	return g.liveNeighbors(g.index(row, col)), nil
}

// liveNeighbors sums the 3x3 block around idx minus the center.
// idx must address an interior cell.
func (g *Grid) liveNeighbors(idx int) int {
	above, below := idx-g.stride, idx+g.stride
	c := g.cells
	return int(c[above-1]) + int(c[above]) + int(c[above+1]) +
		int(c[idx-1]) + int(c[idx+1]) +
		int(c[below-1]) + int(c[below]) + int(c[below+1])
}

// CountLivingCells returns the total number of living interior cells
func (g *Grid) CountLivingCells() (count int) {
	for row := 1; row <= g.rows; row++ {
		for col := 1; col <= g.cols; col++ {
			if g.cells[g.index(row, col)] == Alive {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same dimensions and interior
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for row := 1; row <= g.rows; row++ {
		for col := 1; col <= g.cols; col++ {
			idx := g.index(row, col)
			if g.cells[idx] != other.cells[idx] {
				return false
			}
		}
	}
	return true
}

// copyInterior overwrites the interior of g with the interior of src.
// Both grids must share dimensions.
func (g *Grid) copyInterior(src *Grid) {
	for row := 1; row <= g.rows; row++ {
		start := g.index(row, 1)
		copy(g.cells[start:start+g.cols], src.cells[start:start+g.cols])
	}
}
