package wordma

import (
	"context"
	"strconv"
	"strings"
)

// RouteName identifies a destination in the desktop app.
type RouteName string

// RouteName constants.
const (
	RouteLanding    RouteName = "landing"
	RouteCreateSite RouteName = "create-site"
	RouteSite       RouteName = "site"
	RouteImmersive  RouteName = "immersive"
)

// Navigator decides where a navigation request actually lands.
type Navigator interface {
	// Navigate returns the destination for a request to go to "to". It never
	// fails: when the decision cannot be made the requested route is returned.
	Navigate(ctx context.Context, to Route) Route
}

// RouteParamSiteID is the route parameter carrying a site ID.
const RouteParamSiteID = "siteId"

// Route is a navigation destination.
type Route struct {
	Name   RouteName         `json:"name"`
	Params map[string]string `json:"params,omitempty"`
}

// LandingRoute returns the root destination.
func LandingRoute() Route { return Route{Name: RouteLanding} }

// CreateSiteRoute returns the "create site" destination.
func CreateSiteRoute() Route { return Route{Name: RouteCreateSite} }

// SiteRoute returns the workspace destination for the site with the given ID.
func SiteRoute(id int64) Route {
	return Route{
		Name:   RouteSite,
		Params: map[string]string{RouteParamSiteID: strconv.FormatInt(id, 10)},
	}
}

// SiteID returns the site ID carried by a site route. The boolean is false
// for other routes and for site routes whose parameter is not an integer.
func (r Route) SiteID() (int64, bool) {
	if r.Name != RouteSite {
		return 0, false
	}
	id, err := strconv.ParseInt(r.Params[RouteParamSiteID], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Path returns the URL path of the route.
func (r Route) Path() string {
	switch r.Name {
	case RouteCreateSite:
		return "/create-site"
	case RouteImmersive:
		return "/immersive"
	case RouteSite:
		return "/sites/" + r.Params[RouteParamSiteID]
	default:
		return "/"
	}
}

// String returns the URL path of the route.
func (r Route) String() string { return r.Path() }

// ParseRoute converts a URL path into a Route.
// Returns EINVALID for paths that name no known destination.
func ParseRoute(path string) (Route, error) {
	p := strings.Trim(path, "/")
	switch {
	case p == "":
		return LandingRoute(), nil
	case p == string(RouteCreateSite):
		return CreateSiteRoute(), nil
	case p == string(RouteImmersive):
		return Route{Name: RouteImmersive}, nil
	case strings.HasPrefix(p, "sites/"):
		id := strings.TrimPrefix(p, "sites/")
		if id == "" || strings.Contains(id, "/") {
			break
		}
		return Route{Name: RouteSite, Params: map[string]string{RouteParamSiteID: id}}, nil
	}
	return Route{}, Errorf(EINVALID, "unknown route %q", path)
}
