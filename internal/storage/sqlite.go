// Package storage provides SQLite-based persistence for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/seabattle/internal/game"
)

// Store manages the SQLite database connection for the results ledger.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished match as stored in the ledger.
type MatchRecord struct {
	ID            int64
	MatchID       string
	Player        string
	Winner        string // "player" or "computer"
	BoardSize     int
	Turns         int
	PlayerShots   int
	ComputerShots int
	Duration      int // Duration in seconds
	StartedAt     time.Time
	CreatedAt     time.Time
}

// PlayerWon reports whether the human side won.
func (r MatchRecord) PlayerWon() bool {
	return r.Winner == game.SidePlayer.String()
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	// SSH sessions save concurrently; SQLite wants a single writer.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			winner TEXT NOT NULL,
			board_size INTEGER NOT NULL,
			turns INTEGER NOT NULL DEFAULT 0,
			player_shots INTEGER NOT NULL DEFAULT 0,
			computer_shots INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			started_at INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_player ON matches(player);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(player, winner);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match played by the named player.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(player string, boardSize int, res game.Result) (int64, error) {
	if player == "" {
		player = "anonymous"
	}

	result, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, player, winner, board_size, turns, player_shots, computer_shots, duration_secs, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(res.MatchID),
		player,
		res.Winner.String(),
		boardSize,
		res.Turns,
		res.PlayerShots,
		res.ComputerShots,
		int(res.Duration.Round(time.Second)/time.Second),
		res.StartedAt.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const matchColumns = `id, match_id, player, winner, board_size, turns,
	player_shots, computer_shots, duration_secs, started_at, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (MatchRecord, error) {
	var r MatchRecord
	var startedAt int64
	var createdAt any

	err := row.Scan(
		&r.ID,
		&r.MatchID,
		&r.Player,
		&r.Winner,
		&r.BoardSize,
		&r.Turns,
		&r.PlayerShots,
		&r.ComputerShots,
		&r.Duration,
		&startedAt,
		&createdAt,
	)
	if err != nil {
		return r, err
	}

	r.StartedAt = time.Unix(startedAt, 0)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and the string form SQLite may return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// MatchByID retrieves a match by its match ID. Returns nil if it is not recorded.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`,
		matchID,
	)

	r, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &r, nil
}

// RecentMatches retrieves the most recent matches, newest first.
// An empty player returns matches for everyone.
func (s *Store) RecentMatches(player string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + matchColumns + ` FROM matches`
	args := []any{}
	if player != "" {
		query += ` WHERE player = ?`
		args = append(args, player)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		r, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// PlayerStats contains aggregated results for one player.
type PlayerStats struct {
	Player     string
	Matches    int
	Wins       int
	Losses     int
	BestWin    int // Fewest shots in a won match, 0 if never won
	AvgShots   float64
	LastPlayed time.Time
}

// WinRate returns the share of matches won in [0, 1].
func (p PlayerStats) WinRate() float64 {
	if p.Matches == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Matches)
}

const statsSelect = `SELECT player,
		COUNT(*),
		COALESCE(SUM(CASE WHEN winner = 'player' THEN 1 ELSE 0 END), 0) AS wins,
		COALESCE(MIN(CASE WHEN winner = 'player' THEN player_shots END), 0) AS best_win,
		COALESCE(AVG(player_shots), 0),
		MAX(created_at)
	 FROM matches`

func scanStats(row scanner) (PlayerStats, error) {
	var p PlayerStats
	var lastPlayed any
	if err := row.Scan(&p.Player, &p.Matches, &p.Wins, &p.BestWin, &p.AvgShots, &lastPlayed); err != nil {
		return p, err
	}
	p.Losses = p.Matches - p.Wins
	p.LastPlayed = parseTime(lastPlayed)
	return p, nil
}

// GetPlayerStats retrieves aggregated statistics for a player.
// A player with no recorded matches gets zero stats.
func (s *Store) GetPlayerStats(player string) (*PlayerStats, error) {
	row := s.db.QueryRow(statsSelect+` WHERE player = ? GROUP BY player`, player)

	stats, err := scanStats(row)
	if errors.Is(err, sql.ErrNoRows) {
		return &PlayerStats{Player: player}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	return &stats, nil
}

// Leaderboard ranks players by wins, then by best win.
func (s *Store) Leaderboard(limit int) ([]PlayerStats, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		statsSelect+` GROUP BY player
		 ORDER BY wins DESC, best_win = 0, best_win ASC, player
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var board []PlayerStats
	for rows.Next() {
		p, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		board = append(board, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return board, nil
}

// ClearPlayer deletes all matches recorded for the given player.
func (s *Store) ClearPlayer(player string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE player = ?", player)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
