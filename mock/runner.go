package mock

import (
	"context"

	"github.com/fwojciec/wordma/git"
)

var _ git.Runner = (*Runner)(nil)

// Runner is a mock implementation of git.Runner.
type Runner struct {
	RunFn func(ctx context.Context, dir, name string, args ...string) error
}

func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) error {
	return r.RunFn(ctx, dir, name, args...)
}
