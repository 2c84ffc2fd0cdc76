package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/wordma"
	"github.com/fwojciec/wordma/git"
	"github.com/tidwall/gjson"
)

// Run executes the version command.
func (c *VersionCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "wordma %s\n", Version)

	if err := git.CheckProjectRoot(deps.Root); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordma.ErrorMessage(err))
		return err
	}

	manifest, err := os.ReadFile(filepath.Join(deps.Root, wordma.ManifestFile))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to read %s: %s\n", wordma.ManifestFile, err)
		return err
	}
	if !gjson.ValidBytes(manifest) {
		fmt.Fprintf(deps.Stderr, "error: %s is not valid JSON\n", wordma.ManifestFile)
		return wordma.Errorf(wordma.EINVALID, "%s is not valid JSON", wordma.ManifestFile)
	}

	fields := gjson.GetManyBytes(manifest, "name", "version", "description")
	fmt.Fprintf(deps.Stdout, "Project:     %s\n", fields[0].String())
	fmt.Fprintf(deps.Stdout, "Version:     %s\n", fields[1].String())
	if desc := fields[2].String(); desc != "" {
		fmt.Fprintf(deps.Stdout, "Description: %s\n", desc)
	}
	return nil
}
