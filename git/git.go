// Package git implements theme and deploy directory management on top of the
// git command line and the theme's package manager.
package git

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fwojciec/wordma"
)

// Runner runs an external command in dir.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands as child processes with their output streamed to
// the given writers.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner(stdin io.Reader, stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{Stdin: stdin, Stdout: stdout, Stderr: stderr}
}

// Run executes the command and waits for it to finish.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// CheckProjectRoot returns EINVALID unless root contains a package.json.
func CheckProjectRoot(root string) error {
	if !exists(filepath.Join(root, wordma.ManifestFile)) {
		return wordma.Errorf(wordma.EINVALID,
			"%s is not a project root: %s not found", root, wordma.ManifestFile)
	}
	return nil
}

// ThemeName derives a theme name from a git repository URL.
// Both URL and scp-like ("git@host:user/repo.git") forms are accepted.
func ThemeName(url string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(url), "/")
	if i := strings.LastIndexAny(trimmed, "/:"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	name := strings.TrimSuffix(trimmed, ".git")
	if name == "" || name == "." || name == ".." {
		return "", wordma.Errorf(wordma.EINVALID, "cannot derive theme name from %q", url)
	}
	return name, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
