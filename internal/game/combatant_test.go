package game

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeTurnRetriesOutOfBounds(t *testing.T) {
	target := combatBoard(6, NewVessel(C(0, 0), 1, Horizontal))
	input := &scriptedInput{coords: []Coord{C(6, 0), C(-1, 3), C(4, 4)}}
	c := NewCombatant(SidePlayer, NewBoard(6), target, NewInteractiveChooser(input))
	display := &recordingDisplay{}

	repeat, err := c.TakeTurn(context.Background(), display)
	require.NoError(t, err)
	assert.False(t, repeat)
	assert.Equal(t, 1, c.Shots())
	assert.Equal(t, []EventKind{
		EventTargetChosen, EventOutOfBounds,
		EventTargetChosen, EventOutOfBounds,
		EventTargetChosen, EventMiss,
	}, display.kinds())
}

func TestTakeTurnRetriesAlreadyTargeted(t *testing.T) {
	target := combatBoard(6, NewVessel(C(2, 2), 2, Horizontal))
	_, err := target.ShootAt(C(5, 5))
	require.NoError(t, err)

	input := &scriptedInput{coords: []Coord{C(5, 5), C(2, 2)}}
	c := NewCombatant(SidePlayer, NewBoard(6), target, NewInteractiveChooser(input))
	display := &recordingDisplay{}

	repeat, err := c.TakeTurn(context.Background(), display)
	require.NoError(t, err)
	assert.True(t, repeat, "damaging hit earns another shot")

	last := display.events[len(display.events)-1]
	assert.Equal(t, EventDamaged, last.Kind)
	assert.Equal(t, C(2, 2), last.Target)
	assert.Equal(t, 2, last.Length)
	assert.Contains(t, display.kinds(), EventAlreadyTargeted)
}

func TestTakeTurnInputFailure(t *testing.T) {
	c := NewCombatant(SidePlayer, NewBoard(6), combatBoard(6), NewInteractiveChooser(&scriptedInput{}))

	_, err := c.TakeTurn(context.Background(), NopDisplay{})
	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 0, c.Shots())
}

func TestTakeTurnCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewCombatant(SideComputer, NewBoard(6), combatBoard(6), NewAutomatedChooser(6, NewRandom(1)))

	_, err := c.TakeTurn(ctx, NopDisplay{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAutomatedChooserStaysInBounds(t *testing.T) {
	chooser := NewAutomatedChooser(6, NewRandom(99))
	board := NewBoard(6)
	seen := make(map[Coord]bool)

	for range 2000 {
		c, err := chooser.ChooseTarget(context.Background())
		require.NoError(t, err)
		require.False(t, board.IsOutOfBounds(c), "chose %v", c)
		seen[c] = true
	}
	assert.Len(t, seen, 36, "every cell should come up eventually")
}

func TestAutomatedTurnEventuallyFindsFreeCell(t *testing.T) {
	target := combatBoard(6, NewVessel(C(0, 0), 1, Horizontal))
	for x := range 6 {
		for y := range 6 {
			if x == 5 && y == 5 {
				continue
			}
			if x <= 1 && y <= 1 {
				continue
			}
			_, err := target.ShootAt(C(x, y))
			require.NoError(t, err)
		}
	}

	c := NewCombatant(SideComputer, NewBoard(6), target, NewAutomatedChooser(6, NewRandom(5)))
	display := &recordingDisplay{}

	_, err := c.TakeTurn(context.Background(), display)
	require.NoError(t, err)

	last := display.events[len(display.events)-1]
	assert.Contains(t, []Coord{C(0, 0), C(0, 1), C(1, 0), C(1, 1), C(5, 5)}, last.Target)
	assert.Equal(t, 1, c.Shots())
}
