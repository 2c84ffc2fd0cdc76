package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/wordma"
	"github.com/joho/godotenv"
)

// Config holds settings read from the environment.
type Config struct {
	// Database path. Defaults to ~/.wordma/wordma.db.
	DB string `env:"WORDMA_DB"`

	// Project root holding package.json, themes/ and .deploy/.
	// Defaults to the current directory.
	Root string `env:"WORDMA_ROOT"`

	PackageManager string `env:"WORDMA_PACKAGE_MANAGER" envDefault:"pnpm"`
	LogLevel       string `env:"WORDMA_LOG_LEVEL" envDefault:"warn"`
	Addr           string `env:"WORDMA_ADDR" envDefault:"127.0.0.1:4321"`

	// Number of themes updated at once by "theme update --all".
	Concurrency int `env:"WORDMA_CONCURRENCY" envDefault:"4"`
}

// LoadConfig reads an optional .env file from the working directory and
// parses the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	return ParseConfig(env.ToMap(os.Environ()))
}

// ParseConfig parses configuration from the given environment and fills in
// path defaults.
func ParseConfig(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, wordma.Errorf(wordma.EINVALID, "parse env: %s", err)
	}

	if cfg.DB == "" {
		cfg.DB = defaultDBPath()
	}
	if cfg.Root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get working directory: %w", err)
		}
		cfg.Root = wd
	}
	if cfg.Concurrency < 1 {
		return Config{}, wordma.Errorf(wordma.EINVALID, "WORDMA_CONCURRENCY must be at least 1")
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level returns the configured log level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, wordma.Errorf(wordma.EINVALID, "invalid WORDMA_LOG_LEVEL %q", c.LogLevel)
	}
	return level, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "wordma.db"
	}
	return filepath.Join(home, ".wordma", "wordma.db")
}
