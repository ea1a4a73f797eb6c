package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seabattle/internal/game"
	"github.com/vovakirdan/seabattle/internal/platform/console"
	"github.com/vovakirdan/seabattle/internal/platform/tui"
)

var (
	flagPlain  bool
	flagReveal bool
	flagName   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match against the computer",
	Long: `Start a match against the computer. Both fleets are placed at random:
one 3-cell, two 2-cell and four 1-cell vessels, never touching each other.

Controls (terminal UI):
  Arrows/hjkl  - Move the cursor over enemy waters
  Enter/Space  - Fire
  R            - New match
  ?            - Full help
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

With --plain, type "x y" (row, then column, starting at 1) and press Enter.

Examples:
  seabattle play
  seabattle play --plain
  seabattle play --reveal --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Line-oriented console instead of the terminal UI")
	playCmd.Flags().BoolVar(&flagReveal, "reveal", false, "Show the computer's fleet")
	playCmd.Flags().StringVar(&flagName, "name", "", "Name to record results under (default: $USER)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagReveal {
		cfg.Match.RevealEnemy = true
	}

	// The terminal UI owns the screen, so it only logs to a file.
	var fallback io.Writer = os.Stderr
	if !flagPlain {
		fallback = io.Discard
	}
	logger, closer, err := newLogger(cfg, fallback)
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	rc := runtimeConfig(cfg)
	rc.Player = playerName(flagName)

	if !flagPlain {
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			rc.ScreenW = w
			rc.ScreenH = h
		}
		return tui.Run(rc, store, logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := console.New(os.Stdin, os.Stdout).Play(ctx, game.Options{
		BoardSize:         rc.BoardSize,
		PlacementAttempts: rc.Attempts,
		RevealComputer:    rc.RevealComputer,
		Random:            game.NewRandom(rc.Seed),
		Logger:            logger,
	})
	if err != nil {
		return fmt.Errorf("match aborted: %w", err)
	}

	if store != nil {
		if _, err := store.SaveMatch(rc.Player, rc.BoardSize, res); err != nil {
			logger.Warn("could not save match", "error", err)
		}
	}
	return nil
}
