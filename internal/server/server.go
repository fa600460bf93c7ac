// Package server provides the HTTP handler of the corsfilterd demo server:
// a chi router whose every route sits behind a CORS filter.
package server

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jrfom/corsfilter"
)

// Server holds HTTP handler dependencies and the chi router.
type Server struct {
	router *chi.Mux
	filter *corsfilter.Filter
	logger *slog.Logger
}

// New creates the HTTP handler with all routes mounted.
// A nil logger means slog.Default().
func New(filter *corsfilter.Filter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		router: chi.NewRouter(),
		filter: filter,
		logger: logger,
	}

	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// routes configures all middleware and mounts all routes.
func (s *Server) routes() {
	r := s.router

	// Global middleware stack.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(structuredLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(s.filter.Wrap)

	r.Get("/hello", s.handleHello)
	// The CORS filter never answers preflight requests itself;
	// without this route, chi would reply 405 to them.
	r.Options("/*", s.handlePreflight)
}

func (s *Server) handleHello(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "Hello, World!")
}

func (s *Server) handlePreflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
