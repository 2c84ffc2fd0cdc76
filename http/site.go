package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/fwojciec/wordma"
	"github.com/go-chi/chi/v5"
)

type createSiteRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

type siteExistsResponse struct {
	Name bool `json:"name"`
	Path bool `json:"path"`
}

func (s *Server) handleSiteIndex(w http.ResponseWriter, r *http.Request) {
	filter := wordma.SiteFilter{}
	if v := r.URL.Query().Get("name"); v != "" {
		filter.Name = &v
	}
	if v := r.URL.Query().Get("path"); v != "" {
		filter.Path = &v
	}

	sites, err := s.Sites.FindSites(r.Context(), filter)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, sites)
}

func (s *Server) handleSiteCreate(w http.ResponseWriter, r *http.Request) {
	var req createSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.Error(w, r, wordma.Errorf(wordma.EINVALID, "invalid JSON body"))
		return
	}

	site := &wordma.Site{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Path:        strings.TrimSpace(req.Path),
	}
	if err := s.Sites.CreateSite(r.Context(), site); err != nil {
		s.Error(w, r, err)
		return
	}
	s.respond(w, http.StatusCreated, site)
}

func (s *Server) handleSiteExists(w http.ResponseWriter, r *http.Request) {
	var resp siteExistsResponse
	var err error

	if name := r.URL.Query().Get("name"); name != "" {
		if resp.Name, err = s.Sites.SiteNameExists(r.Context(), name); err != nil {
			s.Error(w, r, err)
			return
		}
	}
	if path := r.URL.Query().Get("path"); path != "" {
		if resp.Path, err = s.Sites.SitePathExists(r.Context(), path); err != nil {
			s.Error(w, r, err)
			return
		}
	}
	s.respond(w, http.StatusOK, resp)
}

func (s *Server) handleSiteView(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		s.Error(w, r, err)
		return
	}

	site, err := s.Sites.FindSiteByID(r.Context(), id)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, site)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, wordma.Errorf(wordma.EINVALID, "invalid ID %q", s)
	}
	return id, nil
}
