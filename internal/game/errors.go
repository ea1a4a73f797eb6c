package game

import "errors"

// Targeting errors are recoverable: the combatant simply picks another cell.
var (
	// ErrOutOfBounds is returned when a shot lands outside the grid.
	ErrOutOfBounds = errors.New("target is outside the board")

	// ErrAlreadyTargeted is returned when a cell was shot before or is marked
	// around a destroyed vessel.
	ErrAlreadyTargeted = errors.New("cell was already targeted")
)

// ErrInvalidPlacement is returned by AddVessel when a vessel leaves the board,
// overlaps another vessel or touches one (diagonals included).
var ErrInvalidPlacement = errors.New("invalid vessel placement")

// ErrNoInput is returned when a match is set up without an input source for
// the player.
var ErrNoInput = errors.New("no input source for the player")
