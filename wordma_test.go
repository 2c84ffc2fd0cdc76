package wordma_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/wordma"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := wordma.Errorf(wordma.ENAMECONFLICT, "site %q already exists", "blog")

	assert.Equal(t, wordma.ENAMECONFLICT, wordma.ErrorCode(err))
	assert.Equal(t, "site \"blog\" already exists", wordma.ErrorMessage(err))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, wordma.ErrorCode(nil))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("open: %w", wordma.Errorf(wordma.EUNAVAILABLE, "store unavailable"))
		assert.Equal(t, wordma.EUNAVAILABLE, wordma.ErrorCode(err))
	})

	t.Run("plain error is internal", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, wordma.EINTERNAL, wordma.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, wordma.ErrorMessage(nil))
	})

	t.Run("plain error returns its text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "disk full", wordma.ErrorMessage(errors.New("disk full")))
	})
}

func TestSite_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&wordma.Site{Name: "blog"}).Validate())

	err := (&wordma.Site{Name: "   "}).Validate()
	assert.Equal(t, wordma.EINVALID, wordma.ErrorCode(err))
}

func TestArticle_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		article wordma.Article
		wantErr bool
	}{
		{name: "defaults", article: wordma.Article{Title: "Hello"}},
		{name: "richtext published", article: wordma.Article{Title: "Hello", Type: wordma.ArticleTypeRichText, Status: wordma.ArticleStatusPublished}},
		{name: "missing title", article: wordma.Article{}, wantErr: true},
		{name: "unknown type", article: wordma.Article{Title: "Hello", Type: "html"}, wantErr: true},
		{name: "unknown status", article: wordma.Article{Title: "Hello", Status: "archived"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.article.Validate()
			if tt.wantErr {
				assert.Equal(t, wordma.EINVALID, wordma.ErrorCode(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}
