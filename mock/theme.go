package mock

import (
	"context"

	"github.com/fwojciec/wordma"
)

var _ wordma.ThemeService = (*ThemeService)(nil)

// ThemeService is a mock implementation of wordma.ThemeService.
type ThemeService struct {
	AddThemeFn    func(ctx context.Context, url string) (*wordma.Theme, error)
	FindThemesFn  func(ctx context.Context) ([]*wordma.Theme, error)
	DevThemeFn    func(ctx context.Context, name string) error
	BuildThemeFn  func(ctx context.Context, name string) (*wordma.BuildResult, error)
	UpdateThemeFn func(ctx context.Context, name string) error
}

func (s *ThemeService) AddTheme(ctx context.Context, url string) (*wordma.Theme, error) {
	return s.AddThemeFn(ctx, url)
}

func (s *ThemeService) FindThemes(ctx context.Context) ([]*wordma.Theme, error) {
	return s.FindThemesFn(ctx)
}

func (s *ThemeService) DevTheme(ctx context.Context, name string) error {
	return s.DevThemeFn(ctx, name)
}

func (s *ThemeService) BuildTheme(ctx context.Context, name string) (*wordma.BuildResult, error) {
	return s.BuildThemeFn(ctx, name)
}

func (s *ThemeService) UpdateTheme(ctx context.Context, name string) error {
	return s.UpdateThemeFn(ctx, name)
}

var _ wordma.DeployService = (*DeployService)(nil)

// DeployService is a mock implementation of wordma.DeployService.
type DeployService struct {
	DeployExistsFn func() bool
	InitDeployFn   func(ctx context.Context, url string) error
	DeleteDeployFn func(ctx context.Context) error
}

func (s *DeployService) DeployExists() bool {
	return s.DeployExistsFn()
}

func (s *DeployService) InitDeploy(ctx context.Context, url string) error {
	return s.InitDeployFn(ctx, url)
}

func (s *DeployService) DeleteDeploy(ctx context.Context) error {
	return s.DeleteDeployFn(ctx)
}
