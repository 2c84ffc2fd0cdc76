package wordma

import (
	"context"
	"time"
)

// ArticleType is the editor format an article is written in.
type ArticleType string

// ArticleType constants.
const (
	ArticleTypeRichText ArticleType = "richtext"
	ArticleTypeMarkdown ArticleType = "markdown"
)

// ArticleStatus is the publication state of an article.
type ArticleStatus string

// ArticleStatus constants.
const (
	ArticleStatusPublished ArticleStatus = "published"
	ArticleStatusDraft     ArticleStatus = "draft"
)

// Article represents a piece of content authored in the app.
type Article struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Type      ArticleType   `json:"type"`
	Summary   string        `json:"summary,omitempty"`
	Cover     string        `json:"cover,omitempty"`
	Status    ArticleStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Validate returns an error if the article contains invalid fields.
// Empty Type and Status are accepted and defaulted by the store.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	switch a.Type {
	case "", ArticleTypeRichText, ArticleTypeMarkdown:
	default:
		return Errorf(EINVALID, "invalid article type %q", a.Type)
	}
	switch a.Status {
	case "", ArticleStatusPublished, ArticleStatusDraft:
	default:
		return Errorf(EINVALID, "invalid article status %q", a.Status)
	}
	return nil
}

// ArticleService represents a service for managing articles.
type ArticleService interface {
	// CreateArticle creates a new article and sets its ID and timestamps.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if article does not exist.
	FindArticleByID(ctx context.Context, id int64) (*Article, error)

	// FindArticles retrieves articles matching the filter, newest first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	Status *ArticleStatus `json:"status"`
	Type   *ArticleType   `json:"type"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
