package http

import (
	"encoding/json"
	"net/http"

	"github.com/fwojciec/wordma"
)

type navigateResponse struct {
	Path  string       `json:"path"`
	Route wordma.Route `json:"route"`
}

type lastSiteResponse struct {
	SiteID int64 `json:"siteId"`
}

type lastSiteRequest struct {
	SiteID int64 `json:"siteId"`
}

// handleNavigate runs a requested path through the navigation guard and
// returns where the app should go instead.
func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	to := r.URL.Query().Get("to")
	if to == "" {
		to = "/"
	}

	route, err := wordma.ParseRoute(to)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	dest := s.Guard.Navigate(r.Context(), route)
	s.respond(w, http.StatusOK, navigateResponse{Path: dest.Path(), Route: dest})
}

func (s *Server) handleLastSiteView(w http.ResponseWriter, r *http.Request) {
	id, ok, err := s.Settings.LastSiteID(r.Context())
	if err != nil {
		s.Error(w, r, err)
		return
	} else if !ok {
		s.Error(w, r, wordma.Errorf(wordma.ENOTFOUND, "no site has been opened"))
		return
	}
	s.respond(w, http.StatusOK, lastSiteResponse{SiteID: id})
}

func (s *Server) handleLastSiteUpdate(w http.ResponseWriter, r *http.Request) {
	var req lastSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.Error(w, r, wordma.Errorf(wordma.EINVALID, "invalid JSON body"))
		return
	}

	if _, err := s.Sites.FindSiteByID(r.Context(), req.SiteID); err != nil {
		s.Error(w, r, err)
		return
	}
	if err := s.Settings.SetLastSiteID(r.Context(), req.SiteID); err != nil {
		s.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
