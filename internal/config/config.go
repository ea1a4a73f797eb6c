// Package config provides YAML-based configuration loading for seabattle,
// with .env and environment overrides on top.
package config

import "time"

// Config is the full seabattle configuration.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Placement PlacementConfig `yaml:"placement"`
	Match     MatchConfig     `yaml:"match"`
	TUI       TUIConfig       `yaml:"tui"`
	Log       LogConfig       `yaml:"log"`
	Storage   StorageConfig   `yaml:"storage"`
	SSH       SSHConfig       `yaml:"ssh"`
}

// BoardConfig defines the grid. The fleet is fixed, so only the edge length varies.
type BoardConfig struct {
	Size int `yaml:"size"`
}

// PlacementConfig defines the random fleet layout search.
type PlacementConfig struct {
	AttemptsPerVessel int `yaml:"attempts_per_vessel"`
}

// MatchConfig defines match-level switches.
type MatchConfig struct {
	RevealEnemy bool  `yaml:"reveal_enemy"` // Show the computer's fleet
	Seed        int64 `yaml:"seed"`         // 0 = seed from the clock
}

// TUIConfig defines Bubble Tea front end behaviour.
type TUIConfig struct {
	ComputerDelayMS int `yaml:"computer_delay_ms"` // Pause before each computer shot
	LogLines        int `yaml:"log_lines"`         // Event log lines kept on screen
}

// ComputerDelay returns the computer pause as a duration.
func (c TUIConfig) ComputerDelay() time.Duration {
	return time.Duration(c.ComputerDelayMS) * time.Millisecond
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty = stderr (console/serve) or discard (TUI)
}

// StorageConfig defines where finished matches are recorded.
type StorageConfig struct {
	DB string `yaml:"db"`
}

// SSHConfig defines the serve command.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}
