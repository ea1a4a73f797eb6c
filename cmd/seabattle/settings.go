package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seabattle/internal/config"
	"github.com/vovakirdan/seabattle/internal/core"
	"github.com/vovakirdan/seabattle/internal/storage"
)

// loadConfig loads the config file and applies global flags set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Match.Seed = flagSeed
	}
	if cmd.Flags().Changed("db") {
		cfg.Storage.DB = flagDBPath
	}
	return cfg, nil
}

// runtimeConfig converts the loaded config into match settings.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Seed = cfg.Match.Seed
	rc.BoardSize = cfg.Board.Size
	rc.Attempts = cfg.Placement.AttemptsPerVessel
	rc.RevealComputer = cfg.Match.RevealEnemy
	rc.ComputerDelay = cfg.TUI.ComputerDelay()
	rc.LogLines = cfg.TUI.LogLines
	return rc
}

// openStore opens the results ledger. A failure is logged and play
// continues without recording.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(config.ExpandPath(cfg.Storage.DB))
	if err != nil {
		logger.Warn("could not open results database", "path", cfg.Storage.DB, "error", err)
		return nil
	}
	return store
}

// newLogger builds the logger; fallback is used when no log file is configured.
func newLogger(cfg config.Config, fallback io.Writer) (*log.Logger, io.Closer, error) {
	return config.NewLogger(cfg.Log, fallback, "seabattle")
}

// playerName is the name local matches are recorded under.
func playerName(flag string) string {
	if flag != "" {
		return flag
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
