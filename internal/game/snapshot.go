package game

// BoardView is a read-only copy of a board handed to displays.
type BoardView struct {
	Size      int
	Hidden    bool
	Cells     [][]CellState
	Vessels   int
	Destroyed int
}

// Snapshot copies the board state for rendering.
func (b *Board) Snapshot() BoardView {
	cells := make([][]CellState, b.size)
	for x := range b.grid {
		cells[x] = make([]CellState, b.size)
		copy(cells[x], b.grid[x])
	}
	return BoardView{
		Size:      b.size,
		Hidden:    b.hidden,
		Cells:     cells,
		Vessels:   len(b.vessels),
		Destroyed: b.destroyed,
	}
}

// Visible returns the state a viewer may see at c.
// Intact vessel cells on a hidden board read as empty.
func (v BoardView) Visible(c Coord) CellState {
	if c.X < 0 || c.X >= v.Size || c.Y < 0 || c.Y >= v.Size {
		return CellEmpty
	}
	s := v.Cells[c.X][c.Y]
	if v.Hidden && s == CellOccupied {
		return CellEmpty
	}
	return s
}

// Afloat returns the number of vessels not yet destroyed.
func (v BoardView) Afloat() int {
	return v.Vessels - v.Destroyed
}
