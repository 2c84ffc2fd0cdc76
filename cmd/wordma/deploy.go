package main

import (
	"fmt"

	"github.com/fwojciec/wordma"
)

// Run executes the deploy init command.
func (c *DeployInitCmd) Run(deps *Dependencies) error {
	if deps.Deploy.DeployExists() {
		fmt.Fprintf(deps.Stdout, "%s already exists\n", wordma.DeployDir)
		ok, err := confirm(deps, "Delete the existing "+wordma.DeployDir+" and initialize again?", c.Yes)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(deps.Stdout, "Cancelled")
			return nil
		}
		if err := deps.Deploy.DeleteDeploy(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wordma.ErrorMessage(err))
			return err
		}
	}

	if err := deps.Deploy.InitDeploy(deps.Ctx, c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordma.ErrorMessage(err))
		fmt.Fprintln(deps.Stderr, "Hint: check the repository URL, your access to it and your network connection")
		return err
	}

	fmt.Fprintf(deps.Stdout, "Cloned %s into %s\n", c.URL, wordma.DeployDir)
	fmt.Fprintln(deps.Stdout, "Build a theme into it with: wordma theme build <name>")
	return nil
}

// Run executes the deploy delete command.
func (c *DeployDeleteCmd) Run(deps *Dependencies) error {
	if !deps.Deploy.DeployExists() {
		fmt.Fprintf(deps.Stdout, "%s does not exist, nothing to delete\n", wordma.DeployDir)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "This deletes %s and everything in it\n", wordma.DeployDir)
	ok, err := confirm(deps, "Delete "+wordma.DeployDir+"?", c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(deps.Stdout, "Cancelled")
		return nil
	}

	if err := deps.Deploy.DeleteDeploy(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordma.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %s\n", wordma.DeployDir)
	fmt.Fprintln(deps.Stdout, "Initialize it again with: wordma deploy init <url>")
	return nil
}
