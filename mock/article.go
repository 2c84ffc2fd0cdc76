package mock

import (
	"context"

	"github.com/fwojciec/wordma"
)

var _ wordma.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of wordma.ArticleService.
type ArticleService struct {
	CreateArticleFn   func(ctx context.Context, article *wordma.Article) error
	FindArticleByIDFn func(ctx context.Context, id int64) (*wordma.Article, error)
	FindArticlesFn    func(ctx context.Context, filter wordma.ArticleFilter) ([]*wordma.Article, error)
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *wordma.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id int64) (*wordma.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter wordma.ArticleFilter) ([]*wordma.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}
