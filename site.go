package wordma

import (
	"context"
	"strings"
	"time"
)

// Site represents a blog instance tracked by name and storage location.
type Site struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Path        string    `json:"path,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return Errorf(EINVALID, "site name required")
	}
	return nil
}

// SiteService represents a service for managing sites.
type SiteService interface {
	// CreateSite creates a new site and sets its ID and CreatedAt.
	// Returns ENAMECONFLICT if the name is taken and EPATHCONFLICT if the
	// path is taken.
	CreateSite(ctx context.Context, site *Site) error

	// FindSiteByID retrieves a site by ID.
	// Returns ENOTFOUND if site does not exist.
	FindSiteByID(ctx context.Context, id int64) (*Site, error)

	// FindSites retrieves sites matching the filter, newest first.
	FindSites(ctx context.Context, filter SiteFilter) ([]*Site, error)

	// HasSites reports whether at least one site exists.
	HasSites(ctx context.Context) (bool, error)

	// SiteNameExists reports whether a site with the given name exists.
	SiteNameExists(ctx context.Context, name string) (bool, error)

	// SitePathExists reports whether a site with the given path exists.
	SitePathExists(ctx context.Context, path string) (bool, error)
}

// SiteFilter represents a filter for FindSites.
type SiteFilter struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
	Path *string `json:"path"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
