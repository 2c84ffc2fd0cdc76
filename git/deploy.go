package git

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/wordma"
)

// Ensure DeployService implements wordma.DeployService.
var _ wordma.DeployService = (*DeployService)(nil)

// DeployService manages the <root>/.deploy checkout.
type DeployService struct {
	root   string
	runner Runner
}

// NewDeployService creates a new DeployService rooted at the project root.
func NewDeployService(root string, runner Runner) *DeployService {
	return &DeployService{root: root, runner: runner}
}

// Dir returns the deploy directory.
func (s *DeployService) Dir() string {
	return filepath.Join(s.root, wordma.DeployDir)
}

// DeployExists reports whether the deploy directory exists.
func (s *DeployService) DeployExists() bool {
	return exists(s.Dir())
}

// InitDeploy clones the repository at url into the deploy directory.
func (s *DeployService) InitDeploy(ctx context.Context, url string) error {
	if err := CheckProjectRoot(s.root); err != nil {
		return err
	}
	if s.DeployExists() {
		return wordma.Errorf(wordma.ECONFLICT, "%s already exists", wordma.DeployDir)
	}
	return s.runner.Run(ctx, s.root, "git", "clone", url, wordma.DeployDir)
}

// DeleteDeploy removes the deploy directory and everything in it.
func (s *DeployService) DeleteDeploy(ctx context.Context) error {
	if err := CheckProjectRoot(s.root); err != nil {
		return err
	}
	if !s.DeployExists() {
		return wordma.Errorf(wordma.ENOTFOUND, "%s does not exist", wordma.DeployDir)
	}
	return os.RemoveAll(s.Dir())
}
