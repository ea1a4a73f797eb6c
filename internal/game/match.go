package game

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// MatchID uniquely identifies a match.
type MatchID string

// NewMatchID returns a random match identifier.
func NewMatchID() MatchID {
	return MatchID(uuid.NewString())
}

// MatchState is the controller state.
type MatchState uint8

const (
	StateAwaitingTurn MatchState = iota
	StateFinished
)

// Options configures a new match.
type Options struct {
	ID                MatchID // generated when empty
	BoardSize         int
	PlacementAttempts int
	RevealComputer    bool // show the computer's vessels to the player
	Random            Random
	Input             InputSource // the player's coordinates; required
	Display           Display
	Logger            *log.Logger
}

func (o *Options) setDefaults() {
	if o.ID == "" {
		o.ID = NewMatchID()
	}
	if o.BoardSize <= 0 {
		o.BoardSize = DefaultBoardSize
	}
	if o.PlacementAttempts <= 0 {
		o.PlacementAttempts = DefaultPlacementAttempts
	}
	if o.Random == nil {
		o.Random = NewRandom(0)
	}
	if o.Display == nil {
		o.Display = NopDisplay{}
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
}

// Result summarizes a finished match.
type Result struct {
	MatchID       MatchID
	Winner        Side
	Turns         int
	PlayerShots   int
	ComputerShots int
	StartedAt     time.Time
	Duration      time.Duration
}

// Match alternates turns between the player and the computer until one fleet
// is destroyed. It is driven from a single goroutine.
type Match struct {
	id       MatchID
	player   *Combatant
	computer *Combatant
	display  Display
	logger   *log.Logger

	turn    int // parity selects the active side; even is the player
	turns   int // completed TakeTurn calls
	state   MatchState
	winner  Side
	started time.Time
}

// NewMatch generates both fleets and sets up the combatants.
func NewMatch(opts Options) *Match {
	opts.setDefaults()
	gen := NewGenerator(opts.BoardSize, opts.PlacementAttempts, opts.Random, opts.Logger)
	playerBoard := gen.RandomBoard()
	computerBoard := gen.RandomBoard()
	return NewMatchFromBoards(opts, playerBoard, computerBoard)
}

// NewMatchFromBoards sets up a match on prepared boards.
// The boards must already be in the combat phase.
func NewMatchFromBoards(opts Options, playerBoard, computerBoard *Board) *Match {
	opts.setDefaults()
	computerBoard.SetHidden(!opts.RevealComputer)

	m := &Match{
		id:      opts.ID,
		display: opts.Display,
		logger:  opts.Logger.With("match", string(opts.ID)),
		started: time.Now(),
	}
	m.player = NewCombatant(SidePlayer, playerBoard, computerBoard, NewInteractiveChooser(opts.Input))
	m.computer = NewCombatant(SideComputer, computerBoard, playerBoard,
		NewAutomatedChooser(computerBoard.Size(), opts.Random))
	return m
}

// ID returns the match identifier.
func (m *Match) ID() MatchID {
	return m.id
}

// State returns the controller state.
func (m *Match) State() MatchState {
	return m.state
}

// Winner returns the winning side. Valid only once the match is finished.
func (m *Match) Winner() Side {
	return m.winner
}

// Active returns the side whose turn it is.
func (m *Match) Active() Side {
	if m.turn%2 == 0 {
		return SidePlayer
	}
	return SideComputer
}

// Combatant returns the combatant for side.
func (m *Match) Combatant(side Side) *Combatant {
	if side == SidePlayer {
		return m.player
	}
	return m.computer
}

// Step plays one turn and reports whether the match is over.
func (m *Match) Step(ctx context.Context) (bool, error) {
	if m.state == StateFinished {
		return true, nil
	}

	active := m.Active()
	m.display.Notify(Event{Kind: EventTurnStarted, Side: active})

	repeat, err := m.Combatant(active).TakeTurn(ctx, m.display)
	if err != nil {
		return false, err
	}
	m.turns++
	if repeat {
		m.turn--
	}

	switch {
	case m.computer.Own.IsDefeated():
		m.finish(SidePlayer)
	case m.player.Own.IsDefeated():
		m.finish(SideComputer)
	default:
		m.turn++
	}
	return m.state == StateFinished, nil
}

func (m *Match) finish(winner Side) {
	m.state = StateFinished
	m.winner = winner
	m.logger.Info("match finished",
		"winner", winner,
		"turns", m.turns,
		"player_shots", m.player.Shots(),
		"computer_shots", m.computer.Shots(),
	)
}

// Run plays the match to the end, showing the boards before every turn.
// Returns early only if a combatant's chooser fails.
func (m *Match) Run(ctx context.Context) (Result, error) {
	m.logger.Debug("match started", "size", m.player.Own.Size(), "vessels", len(m.player.Own.Vessels()))
	for {
		m.showBoards()
		done, err := m.Step(ctx)
		if err != nil {
			m.logger.Warn("match aborted", "error", err, "turns", m.turns)
			return Result{}, err
		}
		if done {
			break
		}
	}
	m.showBoards()
	m.display.Notify(Event{Kind: EventGameWon, Side: m.winner})
	return m.Result(), nil
}

func (m *Match) showBoards() {
	m.display.ShowBoards(m.player.Own.Snapshot(), m.computer.Own.Snapshot())
}

// Result returns the match summary.
func (m *Match) Result() Result {
	return Result{
		MatchID:       m.id,
		Winner:        m.winner,
		Turns:         m.turns,
		PlayerShots:   m.player.Shots(),
		ComputerShots: m.computer.Shots(),
		StartedAt:     m.started,
		Duration:      time.Since(m.started),
	}
}
