package main

import (
	"fmt"

	"github.com/fwojciec/wordma"
	"golang.org/x/sync/errgroup"
)

// Run executes the theme add command.
func (c *ThemeAddCmd) Run(deps *Dependencies) error {
	theme, err := deps.Themes.AddTheme(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordma.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added theme %q in %s\n", theme.Name, theme.Dir)
	fmt.Fprintf(deps.Stdout, "Start it with: wordma theme dev %s\n", theme.Name)
	return nil
}

// Run executes the theme dev command.
func (c *ThemeDevCmd) Run(deps *Dependencies) error {
	if err := deps.Themes.DevTheme(deps.Ctx, c.Name); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordma.ErrorMessage(err))
		return err
	}
	return nil
}

// Run executes the theme build command.
func (c *ThemeBuildCmd) Run(deps *Dependencies) error {
	result, err := deps.Themes.BuildTheme(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordma.ErrorMessage(err))
		return err
	}

	if result.OutputDir == "" {
		fmt.Fprintf(deps.Stdout, "Built theme %q (no output found in %s)\n", result.Theme, wordma.BuildOutputDir)
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Built theme %q into %s\n", result.Theme, result.OutputDir)
	return nil
}

// Run executes the theme update command.
func (c *ThemeUpdateCmd) Run(deps *Dependencies) error {
	if c.All == (c.Name != "") {
		fmt.Fprintln(deps.Stderr, "error: specify a theme name or --all")
		return wordma.Errorf(wordma.EINVALID, "specify a theme name or --all")
	}

	if !c.All {
		if err := deps.Themes.UpdateTheme(deps.Ctx, c.Name); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wordma.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Updated theme %q\n", c.Name)
		return nil
	}

	themes, err := deps.Themes.FindThemes(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordma.ErrorMessage(err))
		return err
	}
	if len(themes) == 0 {
		fmt.Fprintln(deps.Stdout, "No themes found. Use 'wordma theme add' to add one.")
		return nil
	}

	// One failing theme does not stop the others.
	errs := make([]error, len(themes))
	var g errgroup.Group
	g.SetLimit(max(deps.Concurrency, 1))
	for i, theme := range themes {
		g.Go(func() error {
			errs[i] = deps.Themes.UpdateTheme(deps.Ctx, theme.Name)
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for i, theme := range themes {
		if errs[i] != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", theme.Name, wordma.ErrorMessage(errs[i]))
			continue
		}
		fmt.Fprintf(deps.Stdout, "Updated theme %q\n", theme.Name)
	}
	if failed > 0 {
		return wordma.Errorf(wordma.EINTERNAL, "%d of %d themes failed to update", failed, len(themes))
	}
	return nil
}

// Run executes the theme list command.
func (c *ThemeListCmd) Run(deps *Dependencies) error {
	themes, err := deps.Themes.FindThemes(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordma.ErrorMessage(err))
		return err
	}

	if len(themes) == 0 {
		fmt.Fprintln(deps.Stdout, "No themes found. Use 'wordma theme add' to add one.")
		return nil
	}

	for _, t := range themes {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", t.Name, t.Dir)
	}
	return nil
}
