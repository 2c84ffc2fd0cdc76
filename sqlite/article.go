package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fwojciec/wordma"
)

// Compile-time interface verification.
var _ wordma.ArticleService = (*ArticleService)(nil)

// ArticleService implements wordma.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// CreateArticle creates a new article.
func (s *ArticleService) CreateArticle(ctx context.Context, article *wordma.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}
	if article.Type == "" {
		article.Type = wordma.ArticleTypeMarkdown
	}
	if article.Status == "" {
		article.Status = wordma.ArticleStatusDraft
	}

	var createdAt, updatedAt string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO article (title, content, type, summary, cover, status)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, created_at, updated_at
	`, article.Title, article.Content, string(article.Type),
		nullString(article.Summary), nullString(article.Cover), string(article.Status),
	).Scan(&article.ID, &createdAt, &updatedAt)
	if err != nil {
		return err
	}

	if article.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
		return err
	}
	article.UpdatedAt, err = parseTimestamp(updatedAt, "updated_at")
	return err
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id int64) (*wordma.Article, error) {
	articles, err := s.findArticles(ctx, " AND id = ?", []any{id}, wordma.ArticleFilter{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, wordma.Errorf(wordma.ENOTFOUND, "article %d not found", id)
	}
	return articles[0], nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter wordma.ArticleFilter) ([]*wordma.Article, error) {
	return s.findArticles(ctx, "", nil, filter)
}

func (s *ArticleService) findArticles(ctx context.Context, where string, args []any, filter wordma.ArticleFilter) ([]*wordma.Article, error) {
	var query strings.Builder

	query.WriteString(`SELECT id, title, content, type, summary, cover, status, created_at, updated_at
		FROM article WHERE 1=1`)
	query.WriteString(where)

	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Type != nil {
		query.WriteString(" AND type = ?")
		args = append(args, string(*filter.Type))
	}

	query.WriteString(" ORDER BY created_at DESC, id DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []*wordma.Article{}
	for rows.Next() {
		var article wordma.Article
		var summary, cover sql.NullString
		var createdAt, updatedAt string

		if err := rows.Scan(&article.ID, &article.Title, &article.Content, &article.Type,
			&summary, &cover, &article.Status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		article.Summary = summary.String
		article.Cover = cover.String
		if article.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if article.UpdatedAt, err = parseTimestamp(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		articles = append(articles, &article)
	}

	return articles, rows.Err()
}
