package battleship

// CanPlace reports whether a straight run of length cells starting at
// start and moving along o stays on the grid and only covers empty cells.
func (g *Grid) CanPlace(start Coordinates, length int, o Orientation) bool {
	dRow, dCol := o.Delta()

	for i := 0; i < length; i++ {
		c := start.Step(i, dRow, dCol)
		// Both axes are checked on their own so a diagonal
		// leaving through a single edge is still rejected
		if !g.InBounds(c) {
			return false
		}
		if g.At(c) != CellStateEmpty {
			return false
		}
	}

	return true
}

// Place writes values along o starting at start. Validation runs before
// any write, so on false the grid is exactly as it was.
func (g *Grid) Place(start Coordinates, values []CellState, o Orientation) bool {
	if !g.CanPlace(start, len(values), o) {
		return false
	}

	dRow, dCol := o.Delta()
	for i, v := range values {
		g.set(start.Step(i, dRow, dCol), v)
	}

	return true
}

// Cells returns the coordinates a run of length cells would cover,
// without checking bounds.
func Cells(start Coordinates, length int, o Orientation) []Coordinates {
	dRow, dCol := o.Delta()

	cells := make([]Coordinates, 0, length)
	for i := 0; i < length; i++ {
		cells = append(cells, start.Step(i, dRow, dCol))
	}
	return cells
}
