package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordma"
)

// Ensure LoggingThemeService implements wordma.ThemeService.
var _ wordma.ThemeService = (*LoggingThemeService)(nil)

// LoggingThemeService wraps a ThemeService with logging of each command.
type LoggingThemeService struct {
	next   wordma.ThemeService
	logger *slog.Logger
}

// NewLoggingThemeService creates a new LoggingThemeService.
func NewLoggingThemeService(next wordma.ThemeService, logger *slog.Logger) *LoggingThemeService {
	return &LoggingThemeService{next: next, logger: logger}
}

// AddTheme delegates to the wrapped service and logs the operation.
func (s *LoggingThemeService) AddTheme(ctx context.Context, url string) (theme *wordma.Theme, err error) {
	defer func(begin time.Time) {
		s.logger.Info("add theme",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.AddTheme(ctx, url)
}

// FindThemes delegates to the wrapped service.
func (s *LoggingThemeService) FindThemes(ctx context.Context) ([]*wordma.Theme, error) {
	return s.next.FindThemes(ctx)
}

// DevTheme delegates to the wrapped service and logs the operation.
func (s *LoggingThemeService) DevTheme(ctx context.Context, name string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("dev theme",
			"theme", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DevTheme(ctx, name)
}

// BuildTheme delegates to the wrapped service and logs the operation.
func (s *LoggingThemeService) BuildTheme(ctx context.Context, name string) (result *wordma.BuildResult, err error) {
	defer func(begin time.Time) {
		var output string
		if result != nil {
			output = result.OutputDir
		}
		s.logger.Info("build theme",
			"theme", name,
			"output", output,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.BuildTheme(ctx, name)
}

// UpdateTheme delegates to the wrapped service and logs the operation.
func (s *LoggingThemeService) UpdateTheme(ctx context.Context, name string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("update theme",
			"theme", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateTheme(ctx, name)
}
