package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fwojciec/wordma"
	"github.com/tidwall/gjson"
)

// Ensure ThemeService implements wordma.ThemeService.
var _ wordma.ThemeService = (*ThemeService)(nil)

// ThemeService manages themes checked out under <root>/themes.
type ThemeService struct {
	root           string
	packageManager string
	runner         Runner
}

// NewThemeService creates a new ThemeService rooted at the project root.
// An empty packageManager defaults to pnpm.
func NewThemeService(root, packageManager string, runner Runner) *ThemeService {
	if packageManager == "" {
		packageManager = wordma.DefaultPackager
	}
	return &ThemeService{root: root, packageManager: packageManager, runner: runner}
}

// Dir returns the directory a theme lives in.
func (s *ThemeService) Dir(name string) string {
	return filepath.Join(s.root, wordma.ThemesDir, name)
}

// AddTheme clones the repository at url into the themes directory.
func (s *ThemeService) AddTheme(ctx context.Context, url string) (*wordma.Theme, error) {
	name, err := ThemeName(url)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Join(s.root, wordma.ThemesDir), 0755); err != nil {
		return nil, err
	}

	theme := &wordma.Theme{Name: name, Dir: s.Dir(name), URL: url}
	if exists(theme.Dir) {
		return nil, wordma.Errorf(wordma.ECONFLICT, "theme %q already exists", name)
	}

	if err := s.runner.Run(ctx, s.root, "git", "clone", url, theme.Dir); err != nil {
		return nil, err
	}
	return theme, nil
}

// FindThemes lists the installed themes sorted by name.
func (s *ThemeService) FindThemes(ctx context.Context) ([]*wordma.Theme, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, wordma.ThemesDir))
	if os.IsNotExist(err) {
		return []*wordma.Theme{}, nil
	} else if err != nil {
		return nil, err
	}

	themes := []*wordma.Theme{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		themes = append(themes, &wordma.Theme{Name: entry.Name(), Dir: s.Dir(entry.Name())})
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i].Name < themes[j].Name })
	return themes, nil
}

// DevTheme runs the theme's dev script.
func (s *ThemeService) DevTheme(ctx context.Context, name string) error {
	dir, err := s.scriptDir(name, "dev")
	if err != nil {
		return err
	}
	return s.runner.Run(ctx, dir, s.packageManager, "run", "dev")
}

// BuildTheme runs the theme's build script and moves the output from
// .deploy/.temp to .deploy/<name>, replacing any previous build.
func (s *ThemeService) BuildTheme(ctx context.Context, name string) (*wordma.BuildResult, error) {
	dir, err := s.scriptDir(name, "build")
	if err != nil {
		return nil, err
	}

	if err := s.runner.Run(ctx, dir, s.packageManager, "run", "build"); err != nil {
		return nil, err
	}

	result := &wordma.BuildResult{Theme: name}

	tempDir := filepath.Join(s.root, wordma.BuildOutputDir)
	if !exists(tempDir) {
		return result, nil
	}

	targetDir := filepath.Join(s.root, wordma.DeployDir, name)
	if err := os.RemoveAll(targetDir); err != nil {
		return nil, fmt.Errorf("failed to remove previous build: %w", err)
	}
	if err := os.Rename(tempDir, targetDir); err != nil {
		return nil, fmt.Errorf("failed to move build output: %w", err)
	}

	result.OutputDir = targetDir
	return result, nil
}

// UpdateTheme pulls the theme from origin, trying main before master.
func (s *ThemeService) UpdateTheme(ctx context.Context, name string) error {
	dir := s.Dir(name)
	if !exists(dir) {
		return wordma.Errorf(wordma.ENOTFOUND, "theme %q not found", name)
	}
	if !exists(filepath.Join(dir, ".git")) {
		return wordma.Errorf(wordma.EINVALID, "theme %q is not a git repository", name)
	}

	mainErr := s.runner.Run(ctx, dir, "git", "pull", "origin", "main")
	if mainErr == nil {
		return nil
	}
	if err := s.runner.Run(ctx, dir, "git", "pull", "origin", "master"); err != nil {
		return fmt.Errorf("failed to update theme %q: %v; %w", name, mainErr, err)
	}
	return nil
}

// scriptDir returns the theme directory after checking that its manifest
// exists. A manifest that declares scripts must declare the requested one.
func (s *ThemeService) scriptDir(name, script string) (string, error) {
	dir := s.Dir(name)
	if !exists(dir) {
		return "", wordma.Errorf(wordma.ENOTFOUND, "theme %q not found", name)
	}

	manifest, err := os.ReadFile(filepath.Join(dir, wordma.ManifestFile))
	if os.IsNotExist(err) {
		return "", wordma.Errorf(wordma.ENOTFOUND, "theme %q has no %s", name, wordma.ManifestFile)
	} else if err != nil {
		return "", err
	}

	scripts := gjson.GetBytes(manifest, "scripts")
	if scripts.Exists() && !scripts.Get(script).Exists() {
		return "", wordma.Errorf(wordma.EINVALID, "theme %q has no %q script", name, script)
	}
	return dir, nil
}
