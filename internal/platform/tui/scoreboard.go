package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seabattle/internal/storage"
)

const maxRows = 100

// ScoreboardTab selects what the scoreboard lists.
type ScoreboardTab int

const (
	TabLeaderboard ScoreboardTab = iota
	TabRecent
)

func (t ScoreboardTab) String() string {
	if t == TabRecent {
		return "Recent matches"
	}
	return "Leaderboard"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Tab  key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Tab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Tab, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right"),
			key.WithHelp("tab", "switch view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the results ledger: players ranked by wins, or the
// latest matches, optionally restricted to one player.
type ScoreboardModel struct {
	store  *storage.Store
	player string // empty lists everyone in the recent view
	tab    ScoreboardTab
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	rows   []table.Row
	err    error
	width  int
	height int
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		player: player,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	return m
}

func (m *ScoreboardModel) columns() []table.Column {
	if m.tab == TabRecent {
		return []table.Column{
			{Title: "Player", Width: 14},
			{Title: "Winner", Width: 9},
			{Title: "Shots", Width: 6},
			{Title: "Turns", Width: 6},
			{Title: "Time", Width: 7},
			{Title: "Date", Width: 13},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 14},
		{Title: "W", Width: 4},
		{Title: "L", Width: 4},
		{Title: "Win %", Width: 6},
		{Title: "Best", Width: 5},
	}
}

// load reads the current tab from the store and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.rows, m.err = nil, nil
	if m.store != nil {
		if m.tab == TabRecent {
			m.rows, m.err = recentRows(m.store, m.player)
		} else {
			m.rows, m.err = leaderboardRows(m.store)
		}
	}

	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	m.table = t
}

func leaderboardRows(store *storage.Store) ([]table.Row, error) {
	board, err := store.Leaderboard(maxRows)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, len(board))
	for i, p := range board {
		best := "-"
		if p.BestWin > 0 {
			best = fmt.Sprintf("%d", p.BestWin)
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			p.Player,
			fmt.Sprintf("%d", p.Wins),
			fmt.Sprintf("%d", p.Losses),
			fmt.Sprintf("%.0f", p.WinRate()*100),
			best,
		}
	}
	return rows, nil
}

func recentRows(store *storage.Store, player string) ([]table.Row, error) {
	matches, err := store.RecentMatches(player, maxRows)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, len(matches))
	for i, r := range matches {
		rows[i] = table.Row{
			r.Player,
			r.Winner,
			fmt.Sprintf("%d", r.PlayerShots),
			fmt.Sprintf("%d", r.Turns),
			fmt.Sprintf("%d:%02d", r.Duration/60, r.Duration%60),
			r.StartedAt.Format("Jan 02 15:04"),
		}
	}
	return rows, nil
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.tab = 1 - m.tab
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.load()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("SEA BATTLE - " + strings.ToUpper(m.tab.String())))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 2)

	switch {
	case m.err != nil:
		b.WriteString(boxStyle.Render(emptyStyle.Render("Could not read results: " + m.err.Error())))
	case len(m.rows) == 0:
		b.WriteString(boxStyle.Render(emptyStyle.Render("No matches recorded yet.\nPlay one with 'seabattle play'!")))
	default:
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(store *storage.Store, player string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, player, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
