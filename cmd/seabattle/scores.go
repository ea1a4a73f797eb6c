package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seabattle/internal/platform/tui"
	"github.com/vovakirdan/seabattle/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresPlain  bool
	flagScoresLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard and recent matches",
	Long: `Display recorded results. On a terminal this opens an interactive
table; with --plain (or when output is not a terminal) it prints text.

Examples:
  seabattle scores
  seabattle scores --player alice
  seabattle scores --plain --limit 5`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show stats and matches for one player")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print text instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rows to print")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, flagScoresPlayer, width, height)
	}

	return printScores(os.Stdout, store, flagScoresPlayer, flagScoresLimit)
}

// printScores writes player stats (or the leaderboard) and recent matches.
func printScores(w io.Writer, store *storage.Store, player string, limit int) error {
	if player != "" {
		stats, err := store.GetPlayerStats(player)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Stats - %s\n\n", player)
		if stats.Matches == 0 {
			fmt.Fprintln(w, "No matches recorded yet.")
			return nil
		}
		fmt.Fprintf(w, "  Matches:  %d\n", stats.Matches)
		fmt.Fprintf(w, "  Wins:     %d\n", stats.Wins)
		fmt.Fprintf(w, "  Losses:   %d\n", stats.Losses)
		fmt.Fprintf(w, "  Win rate: %.0f%%\n", stats.WinRate()*100)
		if stats.BestWin > 0 {
			fmt.Fprintf(w, "  Best win: %d shots\n", stats.BestWin)
		}
	} else {
		board, err := store.Leaderboard(limit)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "Leaderboard")
		fmt.Fprintln(w)
		if len(board) == 0 {
			fmt.Fprintln(w, "No matches recorded yet.")
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Play 'seabattle play' to record the first one!")
			return nil
		}
		fmt.Fprintf(w, "  %-4s  %-14s  %4s  %4s  %5s  %4s\n", "Rank", "Player", "W", "L", "Win%", "Best")
		fmt.Fprintf(w, "  %-4s  %-14s  %4s  %4s  %5s  %4s\n", "----", "------", "-", "-", "----", "----")
		for i, p := range board {
			fmt.Fprintf(w, "  %-4d  %-14s  %4d  %4d  %5.0f  %4d\n", i+1, p.Player, p.Wins, p.Losses, p.WinRate()*100, p.BestWin)
		}
	}

	matches, err := store.RecentMatches(player, limit)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recent matches")
	fmt.Fprintln(w)
	for _, m := range matches {
		fmt.Fprintf(w, "  %s  %-14s  %-8s  %3d shots  %3d turns\n",
			m.StartedAt.Format("2006-01-02 15:04"), m.Player, m.Winner, m.PlayerShots, m.Turns)
	}
	return nil
}
