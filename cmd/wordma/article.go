package main

import (
	"fmt"

	"github.com/fwojciec/wordma"
)

// Run executes the article list command.
func (c *ArticleListCmd) Run(deps *Dependencies) error {
	filter := wordma.ArticleFilter{Limit: c.Limit}
	if c.Status != "" {
		status := wordma.ArticleStatus(c.Status)
		if status != wordma.ArticleStatusPublished && status != wordma.ArticleStatusDraft {
			fmt.Fprintf(deps.Stderr, "error: invalid status %q\n", c.Status)
			return wordma.Errorf(wordma.EINVALID, "invalid status %q", c.Status)
		}
		filter.Status = &status
	}
	if c.Type != "" {
		typ := wordma.ArticleType(c.Type)
		if typ != wordma.ArticleTypeRichText && typ != wordma.ArticleTypeMarkdown {
			fmt.Fprintf(deps.Stderr, "error: invalid type %q\n", c.Type)
			return wordma.Errorf(wordma.EINVALID, "invalid type %q", c.Type)
		}
		filter.Type = &typ
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordma.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%d  %-9s  %-8s  %s\n", a.ID, a.Status, a.Type, a.Title)
	}
	return nil
}
