package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wordma"
	"github.com/fwojciec/wordma/git"
	"github.com/fwojciec/wordma/nav"
	wslog "github.com/fwojciec/wordma/slog"
	"github.com/fwojciec/wordma/sqlite"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration. Loaded from the environment by Run() when nil.
	Config *Config

	// Input for confirmation prompts and child processes.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wordma"),
		kong.Description("Manage wordma blog sites, themes and deployments."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wordma --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.Config == nil {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		m.Config = &cfg
	}
	cfg := m.Config

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// The database is opened lazily, so commands that never touch it do not
	// create it.
	if cfg.DB != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.DB), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	m.DB = sqlite.NewDB(cfg.DB)
	defer m.Close()

	runner := git.NewExecRunner(m.Stdin, stdout, stderr)

	deps.Logger = logger
	deps.Root = cfg.Root
	deps.Addr = cfg.Addr
	deps.Concurrency = cfg.Concurrency
	deps.Sites = wslog.NewLoggingSiteService(sqlite.NewSiteService(m.DB), logger)
	deps.Settings = wslog.NewLoggingSettingService(sqlite.NewSettingService(m.DB), logger)
	deps.Articles = sqlite.NewArticleService(m.DB)
	deps.Themes = wslog.NewLoggingThemeService(git.NewThemeService(cfg.Root, cfg.PackageManager, runner), logger)
	deps.Deploy = git.NewDeployService(cfg.Root, runner)
	deps.Guard = nav.NewGuard(deps.Sites, deps.Settings, logger)

	if err := kongCtx.Run(deps); err != nil {
		if wordma.ErrorCode(err) == wordma.EUNAVAILABLE {
			fmt.Fprintf(stderr, "Hint: Set WORDMA_DB to use a different database path (currently %q)\n", cfg.DB)
		}
		return err
	}
	return nil
}
