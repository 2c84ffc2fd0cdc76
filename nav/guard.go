// Package nav decides where the app lands before each navigation.
package nav

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fwojciec/wordma"
)

// Ensure Guard implements wordma.Navigator.
var _ wordma.Navigator = (*Guard)(nil)

// Guard runs before each route change. It sends first-run users to the
// create-site flow and restores the last opened site on launch.
//
// Guard fails open: when the registry cannot be read, the failure is logged
// and the requested destination is allowed unchanged. A read error must not
// block navigation.
type Guard struct {
	Sites    wordma.SiteService
	Settings wordma.SettingService
	Logger   *slog.Logger

	mu      sync.Mutex
	visited bool
}

// NewGuard creates a new Guard.
func NewGuard(sites wordma.SiteService, settings wordma.SettingService, logger *slog.Logger) *Guard {
	return &Guard{Sites: sites, Settings: settings, Logger: logger}
}

// Navigate resolves the destination for a request to go to `to` and, when
// the result is a site workspace, records that site as the last opened one.
func (g *Guard) Navigate(ctx context.Context, to wordma.Route) wordma.Route {
	dest := g.Resolve(ctx, to)

	if id, ok := dest.SiteID(); ok {
		if err := g.Settings.SetLastSiteID(ctx, id); err != nil {
			g.logger().Error("failed to record last site",
				"site_id", id,
				"err", err,
			)
		}
	}

	return dest
}

// Resolve returns the destination the app should show instead of `to`.
// The first call after the guard is created counts as the launch.
func (g *Guard) Resolve(ctx context.Context, to wordma.Route) wordma.Route {
	first := g.markVisited()

	dest, err := g.resolve(ctx, to, first)
	if err != nil {
		g.logger().Error("navigation guard failed, allowing requested route",
			"to", to.Path(),
			"err", err,
		)
		return to
	}

	if dest.Path() != to.Path() {
		g.logger().Debug("navigation redirected",
			"from", to.Path(),
			"to", dest.Path(),
		)
	}
	return dest
}

func (g *Guard) resolve(ctx context.Context, to wordma.Route, first bool) (wordma.Route, error) {
	sites, err := g.Sites.FindSites(ctx, wordma.SiteFilter{})
	if err != nil {
		return to, err
	}

	if len(sites) == 0 {
		return wordma.CreateSiteRoute(), nil
	}

	switch {
	case to.Name == wordma.RouteLanding:
		return g.restore(ctx, sites)
	case to.Name == wordma.RouteCreateSite && first:
		// Sites already exist, so a fresh launch skips the create-site flow.
		return g.restore(ctx, sites)
	}

	return to, nil
}

// restore returns the last opened site when it still exists and the most
// recently created site otherwise. sites must be ordered newest first.
func (g *Guard) restore(ctx context.Context, sites []*wordma.Site) (wordma.Route, error) {
	id, ok, err := g.Settings.LastSiteID(ctx)
	if err != nil {
		return wordma.Route{}, err
	}

	if ok {
		for _, site := range sites {
			if site.ID == id {
				return wordma.SiteRoute(id), nil
			}
		}
	}

	return wordma.SiteRoute(sites[0].ID), nil
}

func (g *Guard) markVisited() (first bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	first = !g.visited
	g.visited = true
	return first
}

func (g *Guard) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}
