package game

import (
	"errors"

	"github.com/charmbracelet/log"
)

// DefaultFleet lists the vessel lengths placed on every board, in order.
var DefaultFleet = []int{3, 2, 2, 1, 1, 1, 1}

// DefaultPlacementAttempts is how many random vessels are tried per fleet
// entry before a board attempt is abandoned.
const DefaultPlacementAttempts = 2000

// Generator builds boards with a randomly placed fleet.
// Placement is rejection sampling: random vessels are thrown at the board
// until one fits, a bounded number of times per vessel, and a board that gets
// stuck is discarded and rebuilt from scratch.
type Generator struct {
	Fleet    []int
	Size     int
	Attempts int

	rng    Random
	logger *log.Logger
}

// NewGenerator creates a generator for the default fleet.
// A nil logger discards output.
func NewGenerator(size, attempts int, rng Random, logger *log.Logger) *Generator {
	if attempts <= 0 {
		attempts = DefaultPlacementAttempts
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Generator{
		Fleet:    DefaultFleet,
		Size:     size,
		Attempts: attempts,
		rng:      rng,
		logger:   logger,
	}
}

// TryBoard makes one attempt at placing the whole fleet.
// Returns nil if some vessel could not be placed within the attempt budget.
func (g *Generator) TryBoard() *Board {
	board := NewBoard(g.Size)
	for _, length := range g.Fleet {
		if !g.place(board, length) {
			return nil
		}
	}
	board.BeginCombatPhase()
	return board
}

// place throws random vessels of the given length at the board.
func (g *Generator) place(board *Board, length int) bool {
	for range g.Attempts {
		// Bow is drawn from [0, size]; the extra row and column are rejected
		// by the bounds check.
		bow := C(g.rng.Intn(g.Size+1), g.rng.Intn(g.Size+1))
		v := NewVessel(bow, length, Orientation(g.rng.Intn(2)))

		err := board.AddVessel(v)
		if err == nil {
			return true
		}
		if !errors.Is(err, ErrInvalidPlacement) {
			return false
		}
	}
	g.logger.Debug("placement budget exhausted", "length", length, "placed", len(board.Vessels()))
	return false
}

// RandomBoard retries TryBoard until a board comes out.
func (g *Generator) RandomBoard() *Board {
	for attempt := 1; ; attempt++ {
		if board := g.TryBoard(); board != nil {
			if attempt > 1 {
				g.logger.Debug("board generated", "attempts", attempt)
			}
			return board
		}
	}
}
