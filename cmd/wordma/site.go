package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/wordma"
)

// Run executes the site create command.
func (c *SiteCreateCmd) Run(deps *Dependencies) error {
	path := strings.TrimSpace(c.Path)
	if c.In != "" {
		slug := Slugify(c.Name)
		if slug == "" {
			fmt.Fprintf(deps.Stderr, "error: cannot derive a directory name from %q, use --path\n", c.Name)
			return wordma.Errorf(wordma.EINVALID, "cannot derive a directory name from %q", c.Name)
		}
		path = filepath.Join(c.In, slug)
	}

	site := &wordma.Site{
		Name:        strings.TrimSpace(c.Name),
		Description: c.Description,
		Path:        path,
	}
	if err := deps.Sites.CreateSite(deps.Ctx, site); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordma.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created site %q (id %d)\n", site.Name, site.ID)
	return nil
}

// Run executes the site list command.
func (c *SiteListCmd) Run(deps *Dependencies) error {
	sites, err := deps.Sites.FindSites(deps.Ctx, wordma.SiteFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordma.ErrorMessage(err))
		return err
	}

	if len(sites) == 0 {
		fmt.Fprintln(deps.Stdout, "No sites found. Use 'wordma site create' to create one.")
		return nil
	}

	for _, s := range sites {
		fmt.Fprintf(deps.Stdout, "%d  %s  %s\n", s.ID, s.Name, s.Path)
	}
	return nil
}

// Run executes the site open command.
func (c *SiteOpenCmd) Run(deps *Dependencies) error {
	route, err := wordma.ParseRoute(c.Route)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordma.ErrorMessage(err))
		return err
	}

	dest := deps.Guard.Navigate(deps.Ctx, route)
	fmt.Fprintln(deps.Stdout, dest.Path())
	return nil
}
