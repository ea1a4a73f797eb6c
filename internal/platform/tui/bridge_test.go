package tui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/seabattle/internal/game"
)

func TestBridgePlaysMatchToTheEnd(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := newBridge(ctx, "m1", 0)
	match := game.NewMatch(game.Options{
		ID:      "m1",
		Random:  game.NewRandom(11),
		Input:   b,
		Display: b,
	})
	go b.run(match)

	// Sweep the enemy board row by row; busy cells are rejected and the
	// next one is asked for.
	var targets []game.Coord
	for x := 0; x < game.DefaultBoardSize; x++ {
		for y := 0; y < game.DefaultBoardSize; y++ {
			targets = append(targets, game.C(x, y))
		}
	}

	var (
		done          *matchDoneMsg
		won           bool
		computerShots int
	)
	deadline := time.After(5 * time.Second)
	for done == nil {
		var msg any
		select {
		case msg = <-b.msgs:
		case <-deadline:
			t.Fatal("match did not finish")
		}

		switch msg := msg.(type) {
		case awaitMoveMsg:
			require.NotEmpty(t, targets, "ran out of targets")
			require.True(t, b.submit(targets[0]))
			targets = targets[1:]
		case eventMsg:
			assert.Equal(t, game.MatchID("m1"), msg.match)
			if msg.event.Side == game.SideComputer {
				assert.NotEqual(t, game.EventAlreadyTargeted, msg.event.Kind, "computer rejections are filtered")
				switch msg.event.Kind {
				case game.EventMiss, game.EventDamaged, game.EventDestroyed:
					computerShots++
				}
			}
			if msg.event.Kind == game.EventGameWon {
				won = true
			}
		case matchDoneMsg:
			done = &msg
		}
	}

	require.NoError(t, done.err)
	assert.True(t, won, "game-won precedes the done message")
	assert.Equal(t, computerShots, done.result.ComputerShots)
}

func TestBridgeCancelUnblocksInput(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := newBridge(ctx, "m1", time.Hour)

	errc := make(chan error, 1)
	go func() {
		_, err := b.RequestCoordinate(ctx)
		errc <- err
	}()

	assert.IsType(t, awaitMoveMsg{}, <-b.msgs)
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("RequestCoordinate did not return after cancel")
	}

	// The computer delay is cut short too.
	start := time.Now()
	b.Notify(game.Event{Kind: game.EventMiss, Side: game.SideComputer})
	assert.Less(t, time.Since(start), time.Second)
}

func TestBridgeWaitAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := newBridge(ctx, "m1", 0)
	assert.Nil(t, b.wait()())
}

func TestBridgeSubmitHoldsOneTarget(t *testing.T) {
	b := newBridge(context.Background(), "m1", 0)

	assert.True(t, b.submit(game.C(1, 1)))
	assert.False(t, b.submit(game.C(2, 2)))
	assert.Equal(t, game.C(1, 1), <-b.moves)
}

// fixedChooser replays a list of targets.
type fixedChooser struct {
	targets []game.Coord
}

func (f *fixedChooser) ChooseTarget(context.Context) (game.Coord, error) {
	c := f.targets[0]
	f.targets = f.targets[1:]
	return c, nil
}

func TestBridgePacesOnlyLegalComputerShots(t *testing.T) {
	const delay = 50 * time.Millisecond
	b := newBridge(context.Background(), "m1", delay)

	target := game.NewBoard(6)
	require.NoError(t, target.AddVessel(game.NewVessel(game.C(0, 0), 1, game.Horizontal)))
	target.BeginCombatPhase()
	_, err := target.ShootAt(game.C(5, 5))
	require.NoError(t, err)

	chooser := &fixedChooser{targets: []game.Coord{
		game.C(5, 5), game.C(5, 5), game.C(5, 5), game.C(5, 5), game.C(3, 3),
	}}
	computer := game.NewCombatant(game.SideComputer, game.NewBoard(6), target, chooser)

	start := time.Now()
	repeat, err := computer.TakeTurn(context.Background(), b)
	elapsed := time.Since(start)
	require.NoError(t, err)
	assert.False(t, repeat)
	assert.GreaterOrEqual(t, elapsed, delay)
	assert.Less(t, elapsed, 3*delay, "rejected picks are not paced")

	require.Len(t, b.msgs, 2)
	chosen := (<-b.msgs).(eventMsg)
	assert.Equal(t, game.EventTargetChosen, chosen.event.Kind)
	assert.Equal(t, game.C(3, 3), chosen.event.Target)
	assert.Equal(t, game.EventMiss, (<-b.msgs).(eventMsg).event.Kind)
}
