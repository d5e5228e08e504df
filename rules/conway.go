package rules

/*
NextState applies Conway's Game of Life rules to a single cell.

A live cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3,
and every other cell is dead in the next generation.
*/
func NextState(alive bool, neighbors int) bool {
	switch {
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case !alive && neighbors == 3:
		return true
	default:
		return false
	}
}
