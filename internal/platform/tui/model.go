package tui

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seabattle/internal/core"
	"github.com/vovakirdan/seabattle/internal/game"
	"github.com/vovakirdan/seabattle/internal/storage"
)

// Model is the Bubble Tea model for one player's session: a match at a time,
// restartable, with the computer's turns played out in a background goroutine.
type Model struct {
	config core.RuntimeConfig
	store  *storage.Store
	logger *log.Logger
	rng    game.Random
	keys   KeyMap
	help   help.Model
	screen *core.Screen

	session *bridge
	match   *game.Match
	cancel  context.CancelFunc

	player   game.BoardView
	computer game.BoardView
	cursor   game.Coord
	awaiting bool // the match is blocked on the player's target
	events   []string
	result   *game.Result
	err      error
	quitting bool
}

// NewModel creates a model and prepares the first match. The match starts
// running when the program calls Init.
func NewModel(cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) Model {
	if cfg.BoardSize <= 0 {
		cfg.BoardSize = game.DefaultBoardSize
	}
	if cfg.LogLines <= 0 {
		cfg.LogLines = core.DefaultConfig().LogLines
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		config: cfg,
		store:  store,
		logger: logger,
		rng:    game.NewRandom(cfg.Seed),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
	}
	m.newMatch()
	return m
}

// newMatch abandons the current match, if any, and sets up a fresh one.
func (m *Model) newMatch() {
	if m.cancel != nil {
		m.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	id := game.NewMatchID()
	// The match goroutine gets its own generator; m.rng stays on this one.
	rng := game.NewRandom(int64(m.rng.Intn(math.MaxInt32)) + 1)
	b := newBridge(ctx, id, m.config.ComputerDelay)

	m.session = b
	m.cancel = cancel
	m.match = game.NewMatch(game.Options{
		ID:                id,
		BoardSize:         m.config.BoardSize,
		PlacementAttempts: m.config.Attempts,
		RevealComputer:    m.config.RevealComputer,
		Random:            rng,
		Input:             b,
		Display:           b,
		Logger:            m.logger,
	})

	m.player = m.match.Combatant(game.SidePlayer).Own.Snapshot()
	m.computer = m.match.Combatant(game.SideComputer).Own.Snapshot()
	m.cursor = game.C(0, 0)
	m.awaiting = false
	m.events = nil
	m.result = nil
	m.err = nil
}

// start returns the commands that run the current match and pump its messages.
func (m Model) start() tea.Cmd {
	b, match := m.session, m.match
	return tea.Batch(
		func() tea.Msg {
			b.run(match)
			return nil
		},
		b.wait(),
	)
}

// Init starts the first match.
func (m Model) Init() tea.Cmd {
	return m.start()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case boardsMsg:
		if msg.match != m.session.id {
			return m, nil
		}
		m.player, m.computer = msg.player, msg.computer
		return m, m.session.wait()

	case eventMsg:
		if msg.match != m.session.id {
			return m, nil
		}
		m.record(msg.event)
		return m, m.session.wait()

	case awaitMoveMsg:
		if msg.match != m.session.id {
			return m, nil
		}
		m.awaiting = true
		return m, m.session.wait()

	case matchDoneMsg:
		if msg.match != m.session.id {
			return m, nil
		}
		m.finish(msg.result, msg.err)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.cancel()
		return m, tea.Quit

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dx, dy := action.Delta()
		last := m.config.BoardSize - 1
		m.cursor = game.C(
			core.Clamp(m.cursor.X+dx, 0, last),
			core.Clamp(m.cursor.Y+dy, 0, last),
		)

	case core.ActionFire:
		if m.awaiting && m.result == nil && m.session.submit(m.cursor) {
			m.awaiting = false
		}

	case core.ActionRestart:
		m.newMatch()
		return m, m.start()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// record appends an event to the on-screen log.
func (m *Model) record(ev game.Event) {
	line := describe(ev)
	if line == "" {
		return
	}
	m.events = append(m.events, line)
	if extra := len(m.events) - m.config.LogLines; extra > 0 {
		m.events = m.events[extra:]
	}
}

// finish stops the match goroutine plumbing and records the result.
func (m *Model) finish(res game.Result, err error) {
	m.cancel()
	m.awaiting = false
	if err != nil {
		m.err = err
		return
	}

	m.result = &res
	if m.store == nil {
		return
	}
	if _, saveErr := m.store.SaveMatch(m.config.Player, m.config.BoardSize, res); saveErr != nil {
		m.logger.Warn("could not save match", "match", string(res.MatchID), "error", saveErr)
	}
}

// describe turns an event into a log line. Turn bookkeeping events are
// reflected in the status line instead and yield "".
func describe(ev game.Event) string {
	who := "You"
	if ev.Side == game.SideComputer {
		who = "Computer"
	}

	switch ev.Kind {
	case game.EventMiss:
		return fmt.Sprintf("%s: %s miss", who, ev.Target.Label())
	case game.EventDamaged:
		return fmt.Sprintf("%s: %s hit, vessel damaged", who, ev.Target.Label())
	case game.EventDestroyed:
		return fmt.Sprintf("%s: %s hit, %d-cell vessel destroyed", who, ev.Target.Label(), ev.Length)
	case game.EventOutOfBounds:
		return fmt.Sprintf("%s: %s is off the board", who, ev.Target.Label())
	case game.EventAlreadyTargeted:
		return fmt.Sprintf("%s: %s was already shot at", who, ev.Target.Label())
	case game.EventGameWon:
		if ev.Side == game.SidePlayer {
			return "You win!"
		}
		return "The computer wins!"
	}
	return ""
}

// status returns the line shown under the boards.
func (m Model) status() (string, core.Color) {
	switch {
	case m.err != nil:
		return fmt.Sprintf("Match aborted: %v", m.err), core.ColorRed
	case m.result != nil && m.result.Winner == game.SidePlayer:
		return fmt.Sprintf("You win in %d shots! Press r for a new match.", m.result.PlayerShots), core.ColorGreen
	case m.result != nil:
		return "The computer wins. Press r for a new match.", core.ColorBrightRed
	case m.awaiting:
		return fmt.Sprintf("Your move: %s, press enter to fire", m.cursor.Label()), core.ColorYellow
	default:
		return "Computer's move...", core.ColorGray
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".seabattle", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.id, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.events = append(m.events, "Screenshot saved to "+path)
}

// Result returns the last finished match result, if any.
func (m Model) Result() *game.Result {
	return m.result
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	model := NewModel(cfg, store, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
