package mock

import (
	"context"

	"github.com/fwojciec/wordma"
)

var _ wordma.SettingService = (*SettingService)(nil)

// SettingService is a mock implementation of wordma.SettingService.
type SettingService struct {
	FindSettingFn   func(ctx context.Context, key string) (string, error)
	SetSettingFn    func(ctx context.Context, key, value string) error
	LastSiteIDFn    func(ctx context.Context) (int64, bool, error)
	SetLastSiteIDFn func(ctx context.Context, id int64) error
}

func (s *SettingService) FindSetting(ctx context.Context, key string) (string, error) {
	return s.FindSettingFn(ctx, key)
}

func (s *SettingService) SetSetting(ctx context.Context, key, value string) error {
	return s.SetSettingFn(ctx, key, value)
}

func (s *SettingService) LastSiteID(ctx context.Context) (int64, bool, error) {
	return s.LastSiteIDFn(ctx)
}

func (s *SettingService) SetLastSiteID(ctx context.Context, id int64) error {
	return s.SetLastSiteIDFn(ctx, id)
}
