package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seabattle/internal/game"
)

// Messages sent from the match goroutine to the model. Each carries the
// match it belongs to so messages from an abandoned match are dropped.
type (
	boardsMsg struct {
		match    game.MatchID
		player   game.BoardView
		computer game.BoardView
	}
	eventMsg struct {
		match game.MatchID
		event game.Event
	}
	awaitMoveMsg struct {
		match game.MatchID
	}
	matchDoneMsg struct {
		match  game.MatchID
		result game.Result
		err    error
	}
)

// bridge connects a blocking game.Match to the event-driven model.
// It is the match's InputSource and Display; the model reads msgs and
// writes the player's targets to moves.
type bridge struct {
	ctx   context.Context
	id    game.MatchID
	msgs  chan tea.Msg
	moves chan game.Coord
	delay time.Duration

	// Computer target waiting for the board to accept it.
	pending *game.Event
}

func newBridge(ctx context.Context, id game.MatchID, delay time.Duration) *bridge {
	return &bridge{
		ctx:   ctx,
		id:    id,
		msgs:  make(chan tea.Msg, 16),
		moves: make(chan game.Coord, 1),
		delay: delay,
	}
}

var (
	_ game.InputSource = (*bridge)(nil)
	_ game.Display     = (*bridge)(nil)
)

func (b *bridge) send(msg tea.Msg) {
	select {
	case b.msgs <- msg:
	case <-b.ctx.Done():
	}
}

// RequestCoordinate implements game.InputSource.
func (b *bridge) RequestCoordinate(ctx context.Context) (game.Coord, error) {
	b.send(awaitMoveMsg{match: b.id})
	select {
	case c := <-b.moves:
		return c, nil
	case <-ctx.Done():
		return game.Coord{}, ctx.Err()
	}
}

// ShowBoards implements game.Display.
func (b *bridge) ShowBoards(player, computer game.BoardView) {
	b.send(boardsMsg{match: b.id, player: player, computer: computer})
}

// Notify implements game.Display. The computer's target is held until the
// board accepts it, so rejected picks are never shown. Each legal computer
// shot is paced once by the configured delay.
func (b *bridge) Notify(ev game.Event) {
	if ev.Side == game.SideComputer {
		switch ev.Kind {
		case game.EventTargetChosen:
			b.pending = &ev
			return
		case game.EventOutOfBounds, game.EventAlreadyTargeted:
			b.pending = nil
			return
		case game.EventMiss, game.EventDamaged, game.EventDestroyed:
			if b.pending != nil {
				b.send(eventMsg{match: b.id, event: *b.pending})
				b.pending = nil
			}
			b.pause()
		}
	}
	b.send(eventMsg{match: b.id, event: ev})
}

func (b *bridge) pause() {
	if b.delay <= 0 {
		return
	}
	t := time.NewTimer(b.delay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-b.ctx.Done():
	}
}

// submit hands the player's target to a waiting RequestCoordinate.
// Returns false if a target is already pending.
func (b *bridge) submit(c game.Coord) bool {
	select {
	case b.moves <- c:
		return true
	default:
		return false
	}
}

// run plays m to the end and reports the outcome as the last message.
func (b *bridge) run(m *game.Match) {
	res, err := m.Run(b.ctx)
	b.send(matchDoneMsg{match: b.id, result: res, err: err})
}

// wait returns a command that delivers the next bridge message.
// It yields nil once the match context is cancelled.
func (b *bridge) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.msgs:
			return msg
		case <-b.ctx.Done():
			return nil
		}
	}
}
