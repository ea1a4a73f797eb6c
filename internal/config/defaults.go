package config

import (
	_ "embed"
)

//go:embed defaults/seabattle.yaml
var defaultYAML []byte

// Board size limits. The fixed fleet does not reliably fit below MinBoardSize.
const (
	MinBoardSize = 6
	MaxBoardSize = 10
)

// DefaultConfig returns the hard-coded default configuration.
// It mirrors defaults/seabattle.yaml and is used if the embedded file fails to parse.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Size: 6,
		},
		Placement: PlacementConfig{
			AttemptsPerVessel: 2000,
		},
		Match: MatchConfig{
			RevealEnemy: false,
		},
		TUI: TUIConfig{
			ComputerDelayMS: 400,
			LogLines:        6,
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			DB: "~/.seabattle/results.db",
		},
		SSH: SSHConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}
