package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fwojciec/wordma"
)

// Compile-time interface verification.
var _ wordma.SiteService = (*SiteService)(nil)

// SiteService implements wordma.SiteService using SQLite.
type SiteService struct {
	db *DB
}

// NewSiteService creates a new SiteService.
func NewSiteService(db *DB) *SiteService {
	return &SiteService{db: db}
}

// CreateSite creates a new site.
//
// Name and path are checked before the insert to produce a friendly error.
// The UNIQUE constraints still decide when two callers race past the check.
func (s *SiteService) CreateSite(ctx context.Context, site *wordma.Site) error {
	if err := site.Validate(); err != nil {
		return err
	}

	if exists, err := s.SiteNameExists(ctx, site.Name); err != nil {
		return err
	} else if exists {
		return wordma.Errorf(wordma.ENAMECONFLICT, "site name %q already exists", site.Name)
	}

	if site.Path != "" {
		if exists, err := s.SitePathExists(ctx, site.Path); err != nil {
			return err
		} else if exists {
			return wordma.Errorf(wordma.EPATHCONFLICT, "site path %q already exists", site.Path)
		}
	}

	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO site (name, description, path)
		VALUES (?, ?, ?)
		RETURNING id, created_at
	`, site.Name, site.Description, nullString(site.Path)).Scan(&site.ID, &createdAt)

	switch {
	case uniqueViolation(err, "site.name"):
		return wordma.Errorf(wordma.ENAMECONFLICT, "site name %q already exists", site.Name)
	case uniqueViolation(err, "site.path"):
		return wordma.Errorf(wordma.EPATHCONFLICT, "site path %q already exists", site.Path)
	case err != nil:
		return err
	}

	site.CreatedAt, err = parseTimestamp(createdAt, "created_at")
	return err
}

// FindSiteByID retrieves a site by ID.
func (s *SiteService) FindSiteByID(ctx context.Context, id int64) (*wordma.Site, error) {
	sites, err := s.FindSites(ctx, wordma.SiteFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(sites) == 0 {
		return nil, wordma.Errorf(wordma.ENOTFOUND, "site %d not found", id)
	}
	return sites[0], nil
}

// FindSites retrieves sites matching the filter, newest first.
func (s *SiteService) FindSites(ctx context.Context, filter wordma.SiteFilter) ([]*wordma.Site, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, description, path, created_at FROM site WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Path != nil {
		query.WriteString(" AND path = ?")
		args = append(args, *filter.Path)
	}

	// Sites created within the same millisecond fall back to insertion order.
	query.WriteString(" ORDER BY created_at DESC, id DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sites := []*wordma.Site{}
	for rows.Next() {
		var site wordma.Site
		var path sql.NullString
		var createdAt string

		if err := rows.Scan(&site.ID, &site.Name, &site.Description, &path, &createdAt); err != nil {
			return nil, err
		}

		site.Path = path.String
		if site.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
			return nil, err
		}

		sites = append(sites, &site)
	}

	return sites, rows.Err()
}

// HasSites reports whether at least one site exists.
func (s *SiteService) HasSites(ctx context.Context) (bool, error) {
	return s.exists(ctx, "SELECT EXISTS (SELECT 1 FROM site)")
}

// SiteNameExists reports whether a site with the given name exists.
func (s *SiteService) SiteNameExists(ctx context.Context, name string) (bool, error) {
	return s.exists(ctx, "SELECT EXISTS (SELECT 1 FROM site WHERE name = ?)", name)
}

// SitePathExists reports whether a site with the given path exists.
func (s *SiteService) SitePathExists(ctx context.Context, path string) (bool, error) {
	return s.exists(ctx, "SELECT EXISTS (SELECT 1 FROM site WHERE path = ?)", path)
}

func (s *SiteService) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
