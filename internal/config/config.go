// Package config resolves runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds studyhub runtime configuration.
type Config struct {
	// DBPath is the SQLite database file holding history and shadow logs.
	DBPath string

	// LogMode selects the log encoder. Values: "dev", "prod".
	LogMode string

	// ShadowLogLimit is how many shadow predictions are retained.
	ShadowLogLimit int
}

// DefaultShadowLogLimit is the default number of retained shadow predictions.
const DefaultShadowLogLimit = 100

// DefaultConfig returns a Config with defaults. DBPath is left empty and
// resolved by FromEnv or DefaultDBPath.
func DefaultConfig() Config {
	return Config{
		LogMode:        "dev",
		ShadowLogLimit: DefaultShadowLogLimit,
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset or invalid values.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if m := os.Getenv("STUDYHUB_LOG_MODE"); m != "" {
		cfg.LogMode = m
	}
	if v := os.Getenv("STUDYHUB_SHADOW_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ShadowLogLimit = n
		}
	}

	p, err := DefaultDBPath()
	if err != nil {
		return cfg, err
	}
	cfg.DBPath = p
	return cfg, nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. STUDYHUB_DB environment variable
// 2. $XDG_DATA_HOME/studyhub/studyhub.db
// 3. ~/.local/share/studyhub/studyhub.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("STUDYHUB_DB"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "studyhub", "studyhub.db"), nil
}
