package game

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// DefaultBoardSize is the edge length of a standard board.
const DefaultBoardSize = 6

// CellState is what a single grid cell currently shows.
type CellState uint8

const (
	CellEmpty    CellState = iota
	CellOccupied           // vessel, not hit yet
	CellMiss
	CellHit
	CellContour // marked around a destroyed vessel
)

// String returns the state name.
func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellOccupied:
		return "occupied"
	case CellMiss:
		return "miss"
	case CellHit:
		return "hit"
	case CellContour:
		return "contour"
	default:
		return "unknown"
	}
}

// Outcome is the result of a shot that landed on a legal cell.
type Outcome uint8

const (
	OutcomeMiss Outcome = iota
	OutcomeDamaged
	OutcomeDestroyed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "miss"
	case OutcomeDamaged:
		return "damaged"
	case OutcomeDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Shot describes a resolved shot.
type Shot struct {
	Target  Coord
	Outcome Outcome
	Vessel  *Vessel // nil on a miss
}

// Repeat reports whether the shooter moves again.
// Only a hit that leaves the vessel afloat earns another shot.
func (s Shot) Repeat() bool {
	return s.Outcome == OutcomeDamaged
}

// Board is one side's grid with its fleet.
//
// The busy set has two lives. While vessels are placed it holds occupied
// cells and their one-cell buffers; BeginCombatPhase empties it and from then
// on it holds every targeted cell plus the contours of destroyed vessels.
type Board struct {
	size      int
	hidden    bool
	destroyed int
	grid      [][]CellState
	busy      *swiss.Map[Coord, struct{}]
	vessels   []*Vessel
}

// NewBoard creates an empty size×size board.
func NewBoard(size int) *Board {
	grid := make([][]CellState, size)
	for x := range grid {
		grid[x] = make([]CellState, size)
	}
	return &Board{
		size: size,
		grid: grid,
		busy: swiss.NewMap[Coord, struct{}](uint32(size * size)),
	}
}

// Size returns the board edge length.
func (b *Board) Size() int {
	return b.size
}

// Hidden reports whether vessels are concealed from the viewer.
func (b *Board) Hidden() bool {
	return b.hidden
}

// SetHidden toggles vessel concealment for rendering.
func (b *Board) SetHidden(hidden bool) {
	b.hidden = hidden
}

// Destroyed returns the number of sunk vessels.
func (b *Board) Destroyed() int {
	return b.destroyed
}

// Vessels returns the placed vessels in placement order.
func (b *Board) Vessels() []*Vessel {
	return b.vessels
}

// Cell returns the state at c. Out-of-bounds cells read as empty.
func (b *Board) Cell(c Coord) CellState {
	if b.IsOutOfBounds(c) {
		return CellEmpty
	}
	return b.grid[c.X][c.Y]
}

// IsBusy reports whether c is reserved or already targeted.
func (b *Board) IsBusy(c Coord) bool {
	return b.busy.Has(c)
}

// IsOutOfBounds reports whether c lies outside the grid.
func (b *Board) IsOutOfBounds(c Coord) bool {
	return c.X < 0 || c.X >= b.size || c.Y < 0 || c.Y >= b.size
}

// MarkExclusionZone reserves every in-bounds cell of the vessel and its 8
// neighbors that is not busy yet. With paint set the reserved cells are also
// drawn as contour markers; the vessel's own cells keep their state.
func (b *Board) MarkExclusionZone(v *Vessel, paint bool) {
	for _, vc := range v.Coords() {
		for _, d := range neighborhood {
			cur := vc.Add(d[0], d[1])
			if b.IsOutOfBounds(cur) || b.busy.Has(cur) {
				continue
			}
			if paint && !v.IsHitBy(cur) {
				b.grid[cur.X][cur.Y] = CellContour
			}
			b.busy.Put(cur, struct{}{})
		}
	}
}

// AddVessel places v on the board and reserves its buffer zone.
// Returns ErrInvalidPlacement if any cell is outside the grid or busy.
func (b *Board) AddVessel(v *Vessel) error {
	coords := v.Coords()
	for _, c := range coords {
		if b.IsOutOfBounds(c) || b.busy.Has(c) {
			return fmt.Errorf("%w: %d-cell %s vessel at %s blocked at %s",
				ErrInvalidPlacement, v.Length, v.Orientation, v.Bow, c)
		}
	}
	for _, c := range coords {
		b.grid[c.X][c.Y] = CellOccupied
		b.busy.Put(c, struct{}{})
	}
	b.vessels = append(b.vessels, v)
	b.MarkExclusionZone(v, false)
	return nil
}

// BeginCombatPhase drops placement reservations so the busy set can track shots.
func (b *Board) BeginCombatPhase() {
	b.busy.Clear()
}

// ShootAt resolves a shot at c.
// Returns ErrOutOfBounds or ErrAlreadyTargeted without changing the board.
func (b *Board) ShootAt(c Coord) (Shot, error) {
	if b.IsOutOfBounds(c) {
		return Shot{}, fmt.Errorf("%w: %s", ErrOutOfBounds, c.Label())
	}
	if b.busy.Has(c) {
		return Shot{}, fmt.Errorf("%w: %s", ErrAlreadyTargeted, c.Label())
	}
	b.busy.Put(c, struct{}{})

	for _, v := range b.vessels {
		if !v.IsHitBy(c) {
			continue
		}
		v.hit()
		b.grid[c.X][c.Y] = CellHit
		if v.Sunk() {
			b.destroyed++
			b.MarkExclusionZone(v, true)
			return Shot{Target: c, Outcome: OutcomeDestroyed, Vessel: v}, nil
		}
		return Shot{Target: c, Outcome: OutcomeDamaged, Vessel: v}, nil
	}

	b.grid[c.X][c.Y] = CellMiss
	return Shot{Target: c, Outcome: OutcomeMiss}, nil
}

// IsDefeated reports whether every vessel on the board is sunk.
func (b *Board) IsDefeated() bool {
	return b.destroyed == len(b.vessels)
}
