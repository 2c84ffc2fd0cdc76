package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/wordma"
	"github.com/fwojciec/wordma/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteService_CreateSite(t *testing.T) {
	t.Parallel()

	t.Run("creates site with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSiteService(setupTestDB(t))
		ctx := context.Background()

		site := &wordma.Site{Name: "blog", Description: "my blog", Path: "/sites/blog"}
		require.NoError(t, svc.CreateSite(ctx, site))

		assert.NotZero(t, site.ID, "ID should be generated")
		assert.False(t, site.CreatedAt.IsZero(), "CreatedAt should be set")

		found, err := svc.FindSiteByID(ctx, site.ID)
		require.NoError(t, err)
		assert.Equal(t, site.Name, found.Name)
		assert.Equal(t, site.Description, found.Description)
		assert.Equal(t, site.Path, found.Path)
		assert.True(t, site.CreatedAt.Equal(found.CreatedAt))
	})

	t.Run("returns EINVALID for missing name", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSiteService(setupTestDB(t))

		err := svc.CreateSite(context.Background(), &wordma.Site{})
		require.Error(t, err)
		assert.Equal(t, wordma.EINVALID, wordma.ErrorCode(err))
	})

	t.Run("returns ENAMECONFLICT for duplicate name", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSiteService(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreateSite(ctx, &wordma.Site{Name: "blog", Path: "/a"}))

		err := svc.CreateSite(ctx, &wordma.Site{Name: "blog", Path: "/b"})
		require.Error(t, err)
		assert.Equal(t, wordma.ENAMECONFLICT, wordma.ErrorCode(err))
		assert.Contains(t, wordma.ErrorMessage(err), `"blog"`)
	})

	t.Run("returns EPATHCONFLICT for duplicate path", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSiteService(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreateSite(ctx, &wordma.Site{Name: "a", Path: "/sites/shared"}))

		err := svc.CreateSite(ctx, &wordma.Site{Name: "b", Path: "/sites/shared"})
		require.Error(t, err)
		assert.Equal(t, wordma.EPATHCONFLICT, wordma.ErrorCode(err))
		assert.Contains(t, wordma.ErrorMessage(err), "/sites/shared")
	})

	t.Run("allows many sites without a path", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSiteService(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreateSite(ctx, &wordma.Site{Name: "a"}))
		require.NoError(t, svc.CreateSite(ctx, &wordma.Site{Name: "b"}))
	})
}

func TestSiteService_FindSites(t *testing.T) {
	t.Parallel()

	t.Run("returns empty slice when no sites exist", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSiteService(setupTestDB(t))

		sites, err := svc.FindSites(context.Background(), wordma.SiteFilter{})
		require.NoError(t, err)
		assert.NotNil(t, sites)
		assert.Empty(t, sites)
	})

	t.Run("returns sites newest first", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSiteService(setupTestDB(t))
		ctx := context.Background()

		var ids []int64
		for i := 0; i < 5; i++ {
			site := &wordma.Site{Name: fmt.Sprintf("site-%d", i), Path: fmt.Sprintf("/sites/%d", i)}
			require.NoError(t, svc.CreateSite(ctx, site))
			ids = append(ids, site.ID)
		}

		sites, err := svc.FindSites(ctx, wordma.SiteFilter{})
		require.NoError(t, err)
		require.Len(t, sites, 5)
		for i, site := range sites {
			assert.Equal(t, ids[len(ids)-1-i], site.ID)
		}
	})

	t.Run("filters by name and path", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSiteService(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreateSite(ctx, &wordma.Site{Name: "a", Path: "/a"}))
		require.NoError(t, svc.CreateSite(ctx, &wordma.Site{Name: "b", Path: "/b"}))

		name := "a"
		sites, err := svc.FindSites(ctx, wordma.SiteFilter{Name: &name})
		require.NoError(t, err)
		require.Len(t, sites, 1)
		assert.Equal(t, "a", sites[0].Name)

		path := "/b"
		sites, err = svc.FindSites(ctx, wordma.SiteFilter{Path: &path})
		require.NoError(t, err)
		require.Len(t, sites, 1)
		assert.Equal(t, "b", sites[0].Name)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSiteService(setupTestDB(t))
		ctx := context.Background()

		for _, name := range []string{"a", "b", "c"} {
			require.NoError(t, svc.CreateSite(ctx, &wordma.Site{Name: name}))
		}

		sites, err := svc.FindSites(ctx, wordma.SiteFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, sites, 1)
		assert.Equal(t, "b", sites[0].Name)

		sites, err = svc.FindSites(ctx, wordma.SiteFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, sites, 1)
		assert.Equal(t, "a", sites[0].Name)
	})
}

func TestSiteService_FindSiteByID(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewSiteService(setupTestDB(t))

	_, err := svc.FindSiteByID(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, wordma.ENOTFOUND, wordma.ErrorCode(err))
}

func TestSiteService_Exists(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewSiteService(setupTestDB(t))
	ctx := context.Background()

	has, err := svc.HasSites(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, svc.CreateSite(ctx, &wordma.Site{Name: "blog", Path: "/blog"}))

	has, err = svc.HasSites(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	exists, err := svc.SiteNameExists(ctx, "blog")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.SiteNameExists(ctx, "other")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = svc.SitePathExists(ctx, "/blog")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.SitePathExists(ctx, "/other")
	require.NoError(t, err)
	assert.False(t, exists)
}
