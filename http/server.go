// Package http provides the local JSON API the desktop frontend talks to.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/wordma"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// ShutdownTimeout is how long Serve waits for in-flight requests on shutdown.
const ShutdownTimeout = 5 * time.Second

// Server serves the local API.
type Server struct {
	router chi.Router
	logger *slog.Logger

	Sites    wordma.SiteService
	Articles wordma.ArticleService
	Settings wordma.SettingService
	Guard    wordma.Navigator
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for request and error logs.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a new Server. Services must be set before serving.
func NewServer(opts ...Option) *Server {
	s := &Server{
		router: chi.NewRouter(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(requestID)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/sites", s.handleSiteIndex)
		r.Post("/sites", s.handleSiteCreate)
		r.Get("/sites/exists", s.handleSiteExists)
		r.Get("/sites/{id}", s.handleSiteView)

		r.Get("/articles", s.handleArticleIndex)
		r.Get("/articles/{id}", s.handleArticleView)

		r.Get("/navigate", s.handleNavigate)

		r.Get("/settings/last-site", s.handleLastSiteView)
		r.Put("/settings/last-site", s.handleLastSiteUpdate)
	})

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// requestID tags each request with an X-Request-ID, keeping one supplied by
// the client.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(middleware.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(middleware.RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func(begin time.Time) {
			s.logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"request_id", middleware.GetReqID(r.Context()),
				"duration", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(ww, r)
	})
}
