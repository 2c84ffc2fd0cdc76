package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/wordma"
	"github.com/fwojciec/wordma/mock"
	wslog "github.com/fwojciec/wordma/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSiteService_CreateSite(t *testing.T) {
	t.Parallel()

	t.Run("logs created site with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SiteService{
			CreateSiteFn: func(_ context.Context, site *wordma.Site) error {
				site.ID = 7
				return nil
			},
		}

		svc := wslog.NewLoggingSiteService(inner, logger)
		site := &wordma.Site{Name: "blog", Path: "/blog"}
		require.NoError(t, svc.CreateSite(context.Background(), site))

		output := buf.String()
		assert.Contains(t, output, "create site")
		assert.Contains(t, output, "name=blog")
		assert.Contains(t, output, "id=7")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs and returns errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SiteService{
			CreateSiteFn: func(_ context.Context, site *wordma.Site) error {
				return wordma.Errorf(wordma.ENAMECONFLICT, "site name %q already exists", site.Name)
			},
		}

		svc := wslog.NewLoggingSiteService(inner, logger)
		err := svc.CreateSite(context.Background(), &wordma.Site{Name: "blog"})

		assert.Equal(t, wordma.ENAMECONFLICT, wordma.ErrorCode(err))
		assert.Contains(t, buf.String(), "err=")
		assert.Contains(t, buf.String(), "name_conflict")
	})
}

func TestLoggingSiteService_FindSites(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	inner := &mock.SiteService{
		FindSitesFn: func(_ context.Context, _ wordma.SiteFilter) ([]*wordma.Site, error) {
			return []*wordma.Site{{ID: 2}, {ID: 1}}, nil
		},
		HasSitesFn: func(_ context.Context) (bool, error) {
			return true, nil
		},
	}

	svc := wslog.NewLoggingSiteService(inner, logger)
	sites, err := svc.FindSites(context.Background(), wordma.SiteFilter{})
	require.NoError(t, err)
	assert.Len(t, sites, 2)
	assert.Contains(t, buf.String(), "count=2")

	has, err := svc.HasSites(context.Background())
	require.NoError(t, err)
	assert.True(t, has)
}
