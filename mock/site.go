package mock

import (
	"context"

	"github.com/fwojciec/wordma"
)

var _ wordma.SiteService = (*SiteService)(nil)

// SiteService is a mock implementation of wordma.SiteService.
type SiteService struct {
	CreateSiteFn     func(ctx context.Context, site *wordma.Site) error
	FindSiteByIDFn   func(ctx context.Context, id int64) (*wordma.Site, error)
	FindSitesFn      func(ctx context.Context, filter wordma.SiteFilter) ([]*wordma.Site, error)
	HasSitesFn       func(ctx context.Context) (bool, error)
	SiteNameExistsFn func(ctx context.Context, name string) (bool, error)
	SitePathExistsFn func(ctx context.Context, path string) (bool, error)
}

func (s *SiteService) CreateSite(ctx context.Context, site *wordma.Site) error {
	return s.CreateSiteFn(ctx, site)
}

func (s *SiteService) FindSiteByID(ctx context.Context, id int64) (*wordma.Site, error) {
	return s.FindSiteByIDFn(ctx, id)
}

func (s *SiteService) FindSites(ctx context.Context, filter wordma.SiteFilter) ([]*wordma.Site, error) {
	return s.FindSitesFn(ctx, filter)
}

func (s *SiteService) HasSites(ctx context.Context) (bool, error) {
	return s.HasSitesFn(ctx)
}

func (s *SiteService) SiteNameExists(ctx context.Context, name string) (bool, error) {
	return s.SiteNameExistsFn(ctx, name)
}

func (s *SiteService) SitePathExists(ctx context.Context, path string) (bool, error) {
	return s.SitePathExistsFn(ctx, path)
}
