package wordma

import "context"

// Theme directory layout relative to the project root.
const (
	ThemesDir       = "themes"
	DeployDir       = ".deploy"
	BuildOutputDir  = ".deploy/.temp"
	ManifestFile    = "package.json"
	DefaultPackager = "pnpm"
)

// Theme is a site theme checked out under the project's themes directory.
type Theme struct {
	Name string `json:"name"`
	Dir  string `json:"dir"`
	URL  string `json:"url,omitempty"`
}

// BuildResult describes the output of a theme build.
type BuildResult struct {
	Theme string `json:"theme"`
	// OutputDir is where the built site ended up, empty when the build
	// produced no output directory.
	OutputDir string `json:"outputDir,omitempty"`
}

// ThemeService manages theme checkouts and runs their package scripts.
type ThemeService interface {
	// AddTheme clones the repository at url into the themes directory.
	// Returns ECONFLICT if a theme with the derived name already exists.
	AddTheme(ctx context.Context, url string) (*Theme, error)

	// FindThemes lists the installed themes sorted by name.
	FindThemes(ctx context.Context) ([]*Theme, error)

	// DevTheme runs the theme's dev script in the foreground.
	// Returns ENOTFOUND if the theme or its manifest is missing.
	DevTheme(ctx context.Context, name string) error

	// BuildTheme runs the theme's build script and moves the build output
	// into the deploy directory under the theme's name.
	// Returns ENOTFOUND if the theme or its manifest is missing.
	BuildTheme(ctx context.Context, name string) (*BuildResult, error)

	// UpdateTheme pulls the latest commits of the theme from origin.
	// Returns ENOTFOUND if the theme is missing and EINVALID if it is not
	// a git checkout.
	UpdateTheme(ctx context.Context, name string) error
}

// DeployService manages the deployment staging directory.
type DeployService interface {
	// DeployExists reports whether the deploy directory exists.
	DeployExists() bool

	// InitDeploy clones the repository at url into the deploy directory.
	// Returns ECONFLICT if the deploy directory already exists.
	InitDeploy(ctx context.Context, url string) error

	// DeleteDeploy removes the deploy directory and everything in it.
	// Returns ENOTFOUND if the deploy directory does not exist.
	DeleteDeploy(ctx context.Context) error
}
