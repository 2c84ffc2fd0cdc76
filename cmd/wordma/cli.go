package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/wordma"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Root        string
	Addr        string
	Concurrency int

	Sites    wordma.SiteService
	Settings wordma.SettingService
	Articles wordma.ArticleService
	Themes   wordma.ThemeService
	Deploy   wordma.DeployService
	Guard    wordma.Navigator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Version VersionCmd `cmd:"" help:"Show wordma and project version information"`
	Theme   ThemeCmd   `cmd:"" help:"Manage themes"`
	Deploy  DeployCmd  `cmd:"" help:"Manage the .deploy directory"`
	Site    SiteCmd    `cmd:"" help:"Manage sites"`
	Article ArticleCmd `cmd:"" help:"Browse articles"`
	Serve   ServeCmd   `cmd:"" help:"Serve the local API for the desktop app"`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}

// ThemeCmd groups the "theme" subcommands.
type ThemeCmd struct {
	Add    ThemeAddCmd    `cmd:"" help:"Clone a theme from a git URL into themes/"`
	Dev    ThemeDevCmd    `cmd:"" help:"Start a theme in development mode"`
	Build  ThemeBuildCmd  `cmd:"" help:"Build a theme into .deploy/<name>"`
	Update ThemeUpdateCmd `cmd:"" help:"Pull the latest version of a theme"`
	List   ThemeListCmd   `cmd:"" help:"List installed themes"`
}

// ThemeAddCmd is the "theme add" subcommand.
type ThemeAddCmd struct {
	URL string `arg:"" help:"Git repository URL"`
}

// ThemeDevCmd is the "theme dev" subcommand.
type ThemeDevCmd struct {
	Name string `arg:"" help:"Theme name"`
}

// ThemeBuildCmd is the "theme build" subcommand.
type ThemeBuildCmd struct {
	Name string `arg:"" help:"Theme name"`
}

// ThemeUpdateCmd is the "theme update" subcommand.
type ThemeUpdateCmd struct {
	Name string `arg:"" optional:"" help:"Theme name"`
	All  bool   `short:"a" help:"Update every installed theme"`
}

// ThemeListCmd is the "theme list" subcommand.
type ThemeListCmd struct{}

// DeployCmd groups the "deploy" subcommands.
type DeployCmd struct {
	Init   DeployInitCmd   `cmd:"" help:"Clone a git repository into .deploy"`
	Delete DeployDeleteCmd `cmd:"" help:"Delete .deploy and everything in it"`
}

// DeployInitCmd is the "deploy init" subcommand.
type DeployInitCmd struct {
	URL string `arg:"" help:"Git repository URL"`
	Yes bool   `short:"y" help:"Replace an existing .deploy without asking"`
}

// DeployDeleteCmd is the "deploy delete" subcommand.
type DeployDeleteCmd struct {
	Yes bool `short:"y" help:"Delete without asking"`
}

// SiteCmd groups the "site" subcommands.
type SiteCmd struct {
	Create SiteCreateCmd `cmd:"" help:"Register a new site"`
	List   SiteListCmd   `cmd:"" help:"List registered sites, newest first"`
	Open   SiteOpenCmd   `cmd:"" help:"Resolve where the app lands for a route"`
}

// SiteCreateCmd is the "site create" subcommand.
type SiteCreateCmd struct {
	Name        string `arg:"" help:"Site name"`
	Description string `short:"d" help:"Site description"`
	Path        string `short:"p" help:"Storage location of the site" xor:"path"`
	In          string `help:"Parent directory; the path becomes <in>/<slug of name>" xor:"path"`
}

// SiteListCmd is the "site list" subcommand.
type SiteListCmd struct{}

// SiteOpenCmd is the "site open" subcommand.
type SiteOpenCmd struct {
	Route string `arg:"" optional:"" default:"/" help:"Requested route, e.g. / or /sites/2"`
}

// ArticleCmd groups the "article" subcommands.
type ArticleCmd struct {
	List ArticleListCmd `cmd:"" help:"List articles, newest first"`
}

// ArticleListCmd is the "article list" subcommand.
type ArticleListCmd struct {
	Status string `help:"Filter by status (published, draft)"`
	Type   string `help:"Filter by type (richtext, markdown)"`
	Limit  int    `short:"n" help:"Maximum number of articles"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (defaults to WORDMA_ADDR)"`
}
