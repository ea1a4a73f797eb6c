package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order can only reach the embedded default.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	for _, k := range []string{EnvBoardSize, EnvDB, EnvLogLevel, EnvSeed} {
		t.Setenv(k, "")
	}
	return home
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  size: 8\nmatch:\n  reveal_enemy: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Board.Size)
	assert.True(t, cfg.Match.RevealEnemy)
	// Unset keys keep their defaults.
	assert.Equal(t, 2000, cfg.Placement.AttemptsPerVessel)
	assert.Equal(t, ":23234", cfg.SSH.Address)
}

func TestLoadCustomPathMissing(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "seabattle.yaml"), []byte("board:\n  size: 7\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Board.Size, "local configs dir beats the embedded default")

	userDir := filepath.Join(home, ".seabattle")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("board:\n  size: 9\n"), 0o644))

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Board.Size, "user config beats the local configs dir")
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvBoardSize, "10")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvDB, "/tmp/x.db")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Board.Size)
	assert.Equal(t, int64(42), cfg.Match.Seed)
	assert.Equal(t, "/tmp/x.db", cfg.Storage.DB)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestDotEnvFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".env", []byte(EnvBoardSize+"=8\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv(EnvBoardSize) })
	os.Unsetenv(EnvBoardSize)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Board.Size)
}

func TestEnvOverrideNotANumber(t *testing.T) {
	isolate(t)
	t.Setenv(EnvBoardSize, "six")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvBoardSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"largest board", func(c *Config) { c.Board.Size = MaxBoardSize }, true},
		{"board too small", func(c *Config) { c.Board.Size = 5 }, false},
		{"board too large", func(c *Config) { c.Board.Size = 11 }, false},
		{"no attempts", func(c *Config) { c.Placement.AttemptsPerVessel = 0 }, false},
		{"negative delay", func(c *Config) { c.TUI.ComputerDelayMS = -1 }, false},
		{"no log lines", func(c *Config) { c.TUI.LogLines = 0 }, false},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".seabattle", "results.db"), ExpandPath("~/.seabattle/results.db"))
	assert.Equal(t, "/var/lib/x.db", ExpandPath("/var/lib/x.db"))
	assert.Equal(t, "~user/x", ExpandPath("~user/x"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := NewLogger(LogConfig{Level: "warn"}, &buf, "seabattle")
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, log.WarnLevel, logger.GetLevel())
	logger.Info("hidden")
	logger.Warn("shown", "board", 6)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "seabattle.log")
	var buf bytes.Buffer

	logger, closer, err := NewLogger(LogConfig{Level: "info", File: path}, &buf, "")
	require.NoError(t, err)
	logger.Info("match finished")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "match finished"))
	assert.Empty(t, buf.String())
}
