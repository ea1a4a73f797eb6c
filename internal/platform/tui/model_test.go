package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/seabattle/internal/core"
	"github.com/vovakirdan/seabattle/internal/game"
	"github.com/vovakirdan/seabattle/internal/storage"
)

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 5
	cfg.ComputerDelay = 0
	cfg.Player = "tester"
	return cfg
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestNewModelPreparesMatch(t *testing.T) {
	m := NewModel(testConfig(), nil, nil)

	assert.Equal(t, 6, m.player.Size)
	assert.Equal(t, 7, m.player.Vessels)
	assert.True(t, m.computer.Hidden, "enemy fleet starts hidden")
	assert.False(t, m.player.Hidden)
	assert.Nil(t, m.Result())
}

func TestCursorStaysOnBoard(t *testing.T) {
	m := NewModel(testConfig(), nil, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, game.C(0, 0), m.cursor)

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, game.C(5, 5), m.cursor)

	m, _ = update(t, m, runeKey('k'))
	assert.Equal(t, game.C(4, 5), m.cursor)
}

func TestFireOnlyWhenAwaiting(t *testing.T) {
	m := NewModel(testConfig(), nil, nil)
	id := m.session.id

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.session.moves, "no target is sent before the match asks")

	m, cmd := update(t, m, awaitMoveMsg{match: id})
	assert.True(t, m.awaiting)
	assert.NotNil(t, cmd, "the model keeps listening")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.awaiting)
	require.Len(t, m.session.moves, 1)
	assert.Equal(t, game.C(1, 0), <-m.session.moves)
}

func TestStaleMessagesIgnored(t *testing.T) {
	m := NewModel(testConfig(), nil, nil)

	m, cmd := update(t, m, awaitMoveMsg{match: "old"})
	assert.False(t, m.awaiting)
	assert.Nil(t, cmd)

	m, _ = update(t, m, eventMsg{match: "old", event: game.Event{Kind: game.EventMiss}})
	assert.Empty(t, m.events)
}

func TestEventLogKeepsLastLines(t *testing.T) {
	cfg := testConfig()
	cfg.LogLines = 2
	m := NewModel(cfg, nil, nil)
	id := m.session.id

	m, _ = update(t, m, eventMsg{match: id, event: game.Event{Kind: game.EventTurnStarted}})
	assert.Empty(t, m.events, "turn bookkeeping is not logged")

	for i := 0; i < 3; i++ {
		m, _ = update(t, m, eventMsg{match: id, event: game.Event{Kind: game.EventMiss, Target: game.C(i, i)}})
	}
	assert.Equal(t, []string{"You: 2 2 miss", "You: 3 3 miss"}, m.events)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		ev   game.Event
		want string
	}{
		{game.Event{Kind: game.EventMiss, Side: game.SideComputer, Target: game.C(0, 1)}, "Computer: 1 2 miss"},
		{game.Event{Kind: game.EventDamaged, Target: game.C(2, 2)}, "You: 3 3 hit, vessel damaged"},
		{game.Event{Kind: game.EventDestroyed, Target: game.C(2, 3), Length: 2}, "You: 3 4 hit, 2-cell vessel destroyed"},
		{game.Event{Kind: game.EventOutOfBounds, Target: game.C(6, 0)}, "You: 7 1 is off the board"},
		{game.Event{Kind: game.EventAlreadyTargeted, Target: game.C(0, 0)}, "You: 1 1 was already shot at"},
		{game.Event{Kind: game.EventGameWon, Side: game.SideComputer}, "The computer wins!"},
		{game.Event{Kind: game.EventTargetChosen}, ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, describe(tc.ev), tc.ev.Kind.String())
	}
}

func TestMatchDoneSavesResult(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m := NewModel(testConfig(), store, nil)
	id := m.session.id

	res := game.Result{
		MatchID:     id,
		Winner:      game.SidePlayer,
		Turns:       30,
		PlayerShots: 21,
		StartedAt:   time.Now(),
	}
	m, cmd := update(t, m, matchDoneMsg{match: id, result: res})
	assert.Nil(t, cmd)
	require.NotNil(t, m.Result())
	assert.Equal(t, game.SidePlayer, m.Result().Winner)

	rec, err := store.MatchByID(string(id))
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "tester", rec.Player)
	assert.Equal(t, 21, rec.PlayerShots)

	m.View()
	assert.Contains(t, m.screen.String(), "You win in 21 shots!")

	// Moves after the end are ignored.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.session.moves)
}

func TestRestartStartsNewMatch(t *testing.T) {
	m := NewModel(testConfig(), nil, nil)
	first := m.session
	m, _ = update(t, m, matchDoneMsg{match: first.id, result: game.Result{MatchID: first.id, Winner: game.SideComputer}})

	m, cmd := update(t, m, runeKey('r'))
	assert.NotNil(t, cmd)
	assert.NotEqual(t, first.id, m.session.id)
	assert.Nil(t, m.Result())
	assert.Error(t, first.ctx.Err(), "the old match is cancelled")
	m.cancel()
}

func TestQuit(t *testing.T) {
	m := NewModel(testConfig(), nil, nil)
	ctx := m.session.ctx

	m, cmd := update(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Error(t, ctx.Err())
	assert.Empty(t, m.View())
}

func TestViewHidesEnemyFleet(t *testing.T) {
	m := NewModel(testConfig(), nil, nil)
	m.View()

	screen := m.screen.String()
	assert.Contains(t, screen, "SEA BATTLE")
	assert.Contains(t, screen, "Your fleet")
	assert.Contains(t, screen, "Enemy waters")

	split := boardLeft + boardWidth(6) + boardGap/2
	var left, right int
	for _, line := range strings.Split(screen, "\n") {
		runes := []rune(line)
		left += strings.Count(string(runes[:split]), "■")
		right += strings.Count(string(runes[split:]), "■")
	}
	assert.Equal(t, 3+2+2+1+1+1+1, left, "every player cell is drawn")
	assert.Zero(t, right)
	m.cancel()
}

func TestViewRevealOption(t *testing.T) {
	cfg := testConfig()
	cfg.RevealComputer = true
	m := NewModel(cfg, nil, nil)
	assert.False(t, m.computer.Hidden)
	m.cancel()
}
