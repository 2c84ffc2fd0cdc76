package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordma"
)

// Ensure LoggingSettingService implements wordma.SettingService.
var _ wordma.SettingService = (*LoggingSettingService)(nil)

// LoggingSettingService wraps a SettingService with debug logging.
type LoggingSettingService struct {
	next   wordma.SettingService
	logger *slog.Logger
}

// NewLoggingSettingService creates a new LoggingSettingService.
func NewLoggingSettingService(next wordma.SettingService, logger *slog.Logger) *LoggingSettingService {
	return &LoggingSettingService{next: next, logger: logger}
}

// FindSetting delegates to the wrapped service.
func (s *LoggingSettingService) FindSetting(ctx context.Context, key string) (string, error) {
	return s.next.FindSetting(ctx, key)
}

// SetSetting delegates to the wrapped service and logs the operation.
func (s *LoggingSettingService) SetSetting(ctx context.Context, key, value string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("set setting",
			"key", key,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SetSetting(ctx, key, value)
}

// LastSiteID delegates to the wrapped service and logs the operation.
func (s *LoggingSettingService) LastSiteID(ctx context.Context) (id int64, ok bool, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("last site",
			"id", id,
			"found", ok,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LastSiteID(ctx)
}

// SetLastSiteID delegates to the wrapped service and logs the operation.
func (s *LoggingSettingService) SetLastSiteID(ctx context.Context, id int64) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("set last site",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SetLastSiteID(ctx, id)
}
