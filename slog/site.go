package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordma"
)

// Ensure LoggingSiteService implements wordma.SiteService.
var _ wordma.SiteService = (*LoggingSiteService)(nil)

// LoggingSiteService wraps a SiteService with debug logging.
type LoggingSiteService struct {
	next   wordma.SiteService
	logger *slog.Logger
}

// NewLoggingSiteService creates a new LoggingSiteService.
func NewLoggingSiteService(next wordma.SiteService, logger *slog.Logger) *LoggingSiteService {
	return &LoggingSiteService{next: next, logger: logger}
}

// CreateSite delegates to the wrapped service and logs the operation.
func (s *LoggingSiteService) CreateSite(ctx context.Context, site *wordma.Site) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create site",
			"name", site.Name,
			"path", site.Path,
			"id", site.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateSite(ctx, site)
}

// FindSiteByID delegates to the wrapped service and logs the operation.
func (s *LoggingSiteService) FindSiteByID(ctx context.Context, id int64) (site *wordma.Site, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find site",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSiteByID(ctx, id)
}

// FindSites delegates to the wrapped service and logs the operation.
func (s *LoggingSiteService) FindSites(ctx context.Context, filter wordma.SiteFilter) (sites []*wordma.Site, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find sites",
			"count", len(sites),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSites(ctx, filter)
}

// HasSites delegates to the wrapped service.
func (s *LoggingSiteService) HasSites(ctx context.Context) (bool, error) {
	return s.next.HasSites(ctx)
}

// SiteNameExists delegates to the wrapped service.
func (s *LoggingSiteService) SiteNameExists(ctx context.Context, name string) (bool, error) {
	return s.next.SiteNameExists(ctx, name)
}

// SitePathExists delegates to the wrapped service.
func (s *LoggingSiteService) SitePathExists(ctx context.Context, path string) (bool, error) {
	return s.next.SitePathExists(ctx, path)
}
