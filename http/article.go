package http

import (
	"net/http"
	"strconv"

	"github.com/fwojciec/wordma"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleArticleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := wordma.ArticleFilter{}
	if v := q.Get("status"); v != "" {
		status := wordma.ArticleStatus(v)
		filter.Status = &status
	}
	if v := q.Get("type"); v != "" {
		typ := wordma.ArticleType(v)
		filter.Type = &typ
	}
	for key, dst := range map[string]*int{"offset": &filter.Offset, "limit": &filter.Limit} {
		v := q.Get(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.Error(w, r, wordma.Errorf(wordma.EINVALID, "invalid %s %q", key, v))
			return
		}
		*dst = n
	}

	articles, err := s.Articles.FindArticles(r.Context(), filter)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, articles)
}

func (s *Server) handleArticleView(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		s.Error(w, r, err)
		return
	}

	article, err := s.Articles.FindArticleByID(r.Context(), id)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, article)
}
