package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/wordma"
	"github.com/fwojciec/wordma/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		for _, table := range []string{"site", "article", "settings"} {
			var count int
			err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
			require.NoError(t, err, table)
		}
	})

	t.Run("applies the site path revision", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		var count int
		err := db.QueryRowContext(context.Background(),
			"SELECT COUNT(*) FROM pragma_index_list('site') WHERE name = 'idx_site_path'").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("returns EUNAVAILABLE for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
		assert.Equal(t, wordma.EUNAVAILABLE, wordma.ErrorCode(err))
	})

	t.Run("propagates EUNAVAILABLE from queries", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		svc := sqlite.NewSiteService(db)

		_, err := svc.FindSites(context.Background(), wordma.SiteFilter{})
		assert.Equal(t, wordma.EUNAVAILABLE, wordma.ErrorCode(err))

		_, err = svc.HasSites(context.Background())
		assert.Equal(t, wordma.EUNAVAILABLE, wordma.ErrorCode(err))
	})

	t.Run("opens lazily and reopens existing files", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "wordma.db")

		db := sqlite.NewDB(path)
		require.NoError(t, sqlite.NewSiteService(db).CreateSite(ctx, &wordma.Site{Name: "blog"}))
		require.NoError(t, db.Close())

		db = sqlite.NewDB(path)
		defer db.Close()
		sites, err := sqlite.NewSiteService(db).FindSites(ctx, wordma.SiteFilter{})
		require.NoError(t, err)
		require.Len(t, sites, 1)
		assert.Equal(t, "blog", sites[0].Name)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, db.Open())
		defer db.Close()

		var journalMode string
		err := db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		assert.Equal(t, "wal", journalMode)
	})
}
