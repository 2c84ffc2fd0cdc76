package main_test

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/fwojciec/wordma"
	main "github.com/fwojciec/wordma/cmd/wordma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.ParseConfig(map[string]string{})
		require.NoError(t, err)

		assert.Equal(t, "pnpm", cfg.PackageManager)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "127.0.0.1:4321", cfg.Addr)
		assert.Equal(t, 4, cfg.Concurrency)
		assert.Equal(t, "wordma.db", filepath.Base(cfg.DB))
		assert.NotEmpty(t, cfg.Root)
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.ParseConfig(map[string]string{
			"WORDMA_DB":              "/tmp/test.db",
			"WORDMA_ROOT":            "/srv/blog",
			"WORDMA_PACKAGE_MANAGER": "npm",
			"WORDMA_LOG_LEVEL":       "debug",
			"WORDMA_ADDR":            ":8080",
			"WORDMA_CONCURRENCY":     "2",
		})
		require.NoError(t, err)

		assert.Equal(t, "/tmp/test.db", cfg.DB)
		assert.Equal(t, "/srv/blog", cfg.Root)
		assert.Equal(t, "npm", cfg.PackageManager)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 2, cfg.Concurrency)

		level, err := cfg.Level()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, level)
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		t.Parallel()

		_, err := main.ParseConfig(map[string]string{"WORDMA_LOG_LEVEL": "loud"})
		assert.Equal(t, wordma.EINVALID, wordma.ErrorCode(err))
	})

	t.Run("rejects non-numeric concurrency", func(t *testing.T) {
		t.Parallel()

		_, err := main.ParseConfig(map[string]string{"WORDMA_CONCURRENCY": "many"})
		assert.Equal(t, wordma.EINVALID, wordma.ErrorCode(err))
	})

	t.Run("rejects zero concurrency", func(t *testing.T) {
		t.Parallel()

		_, err := main.ParseConfig(map[string]string{"WORDMA_CONCURRENCY": "0"})
		assert.Equal(t, wordma.EINVALID, wordma.ErrorCode(err))
	})
}
