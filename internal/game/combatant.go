package game

import (
	"context"
	"errors"
	"fmt"
)

// Chooser produces the next cell a combatant fires at.
type Chooser interface {
	ChooseTarget(ctx context.Context) (Coord, error)
}

// InputSource supplies coordinates typed or selected by a human.
// Implementations return well-formed coordinates only; bounds and repeat
// checks are left to the board.
type InputSource interface {
	RequestCoordinate(ctx context.Context) (Coord, error)
}

// AutomatedChooser fires at uniformly random cells with no memory of earlier
// shots. Repeats are rejected by the board and retried by the turn.
type AutomatedChooser struct {
	size int
	rng  Random
}

// NewAutomatedChooser creates a random chooser for a size×size board.
func NewAutomatedChooser(size int, rng Random) *AutomatedChooser {
	return &AutomatedChooser{size: size, rng: rng}
}

// ChooseTarget implements Chooser.
func (a *AutomatedChooser) ChooseTarget(ctx context.Context) (Coord, error) {
	if err := ctx.Err(); err != nil {
		return Coord{}, err
	}
	return C(a.rng.Intn(a.size), a.rng.Intn(a.size)), nil
}

// InteractiveChooser asks an InputSource for every target.
type InteractiveChooser struct {
	input InputSource
}

// NewInteractiveChooser wraps an input source.
func NewInteractiveChooser(input InputSource) *InteractiveChooser {
	return &InteractiveChooser{input: input}
}

// ChooseTarget implements Chooser.
func (i *InteractiveChooser) ChooseTarget(ctx context.Context) (Coord, error) {
	if i.input == nil {
		return Coord{}, ErrNoInput
	}
	return i.input.RequestCoordinate(ctx)
}

var (
	_ Chooser = (*AutomatedChooser)(nil)
	_ Chooser = (*InteractiveChooser)(nil)
)

// Combatant owns one board and fires at the opponent's.
type Combatant struct {
	Side   Side
	Own    *Board
	Target *Board

	chooser Chooser
	shots   int
}

// NewCombatant creates a combatant for side.
func NewCombatant(side Side, own, target *Board, chooser Chooser) *Combatant {
	return &Combatant{
		Side:    side,
		Own:     own,
		Target:  target,
		chooser: chooser,
	}
}

// Shots returns the number of shots that landed on legal cells.
func (c *Combatant) Shots() int {
	return c.shots
}

// TakeTurn fires one legal shot at the opponent's board.
// Out-of-bounds and repeated targets are reported to the display and a new
// target is requested; they never consume the turn. Returns whether the
// combatant shoots again. The error is non-nil only when the chooser fails,
// e.g. the context was cancelled or the input closed.
func (c *Combatant) TakeTurn(ctx context.Context, display Display) (bool, error) {
	for {
		target, err := c.chooser.ChooseTarget(ctx)
		if err != nil {
			return false, fmt.Errorf("%s: choose target: %w", c.Side, err)
		}
		display.Notify(Event{Kind: EventTargetChosen, Side: c.Side, Target: target})

		shot, err := c.Target.ShootAt(target)
		switch {
		case errors.Is(err, ErrOutOfBounds):
			display.Notify(Event{Kind: EventOutOfBounds, Side: c.Side, Target: target})
			continue
		case errors.Is(err, ErrAlreadyTargeted):
			display.Notify(Event{Kind: EventAlreadyTargeted, Side: c.Side, Target: target})
			continue
		case err != nil:
			return false, err
		}

		c.shots++
		display.Notify(shotEvent(c.Side, shot))
		return shot.Repeat(), nil
	}
}
