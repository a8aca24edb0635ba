package config

import (
	"os"
	"path/filepath"
)

// Config holds the process configuration, read from environment variables.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string
	// Addr is the HTTP listen address of the serve command.
	Addr string
}

// Default returns the configuration used when nothing is set: the database
// under ~/.naplo and the API on :8484.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		DBPath: filepath.Join(home, ".naplo", "naplo.db"),
		Addr:   ":8484",
	}, nil
}

// Load reads configuration from NAPLO_DB and NAPLO_ADDR, falling back to
// defaults for any unset variable.
func Load() (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	if v := os.Getenv("NAPLO_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("NAPLO_ADDR"); v != "" {
		cfg.Addr = v
	}
	return cfg, nil
}
