package wordma_test

import (
	"testing"

	"github.com/fwojciec/wordma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want wordma.Route
	}{
		{path: "/", want: wordma.LandingRoute()},
		{path: "", want: wordma.LandingRoute()},
		{path: "/create-site", want: wordma.CreateSiteRoute()},
		{path: "/immersive", want: wordma.Route{Name: wordma.RouteImmersive}},
		{path: "/sites/7", want: wordma.SiteRoute(7)},
		{path: "/sites/7/", want: wordma.SiteRoute(7)},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := wordma.ParseRoute(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects unknown paths", func(t *testing.T) {
		t.Parallel()

		for _, path := range []string{"/settings", "/sites/", "/sites/1/articles"} {
			_, err := wordma.ParseRoute(path)
			assert.Equal(t, wordma.EINVALID, wordma.ErrorCode(err), path)
		}
	})
}

func TestRoute_SiteID(t *testing.T) {
	t.Parallel()

	id, ok := wordma.SiteRoute(42).SiteID()
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = wordma.LandingRoute().SiteID()
	assert.False(t, ok)

	_, ok = wordma.Route{Name: wordma.RouteSite, Params: map[string]string{wordma.RouteParamSiteID: "abc"}}.SiteID()
	assert.False(t, ok)
}

func TestRoute_Path(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/", wordma.LandingRoute().Path())
	assert.Equal(t, "/create-site", wordma.CreateSiteRoute().Path())
	assert.Equal(t, "/sites/3", wordma.SiteRoute(3).Path())
	assert.Equal(t, "/immersive", wordma.Route{Name: wordma.RouteImmersive}.String())
}
