// Package game implements the sea battle rules: boards, vessels, random fleet
// placement, combatants and the turn-driven match controller.
// It has no terminal or storage dependencies; front ends talk to it through
// the Display and InputSource interfaces.
package game

import "fmt"

// Coord is a cell position on a board.
// X is the row and Y the column, both 0-based.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String returns the 0-based representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Label returns the 1-based "row col" form shown to players.
func (c Coord) Label() string {
	return fmt.Sprintf("%d %d", c.X+1, c.Y+1)
}

// neighborhood lists the offsets of a cell and its 8 surrounding cells.
var neighborhood = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
