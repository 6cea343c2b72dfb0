package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/harvest"
)

// Server serves the scraping API over HTTP.
type Server struct {
	Addr    string
	Scraper harvest.ScrapeService
	Records harvest.RecordService
	Logger  *slog.Logger

	server *http.Server
}

// NewServer creates a Server with routes configured.
func NewServer(addr string, scraper harvest.ScrapeService, records harvest.RecordService, logger *slog.Logger) *Server {
	s := &Server{
		Addr:    addr,
		Scraper: scraper,
		Records: records,
		Logger:  logger,
	}

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.withLogging(s.routes()),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/scrape", s.handleScrape)
	mux.HandleFunc("GET /api/data", s.handleListRecords)
	mux.HandleFunc("DELETE /api/data/{id}", s.handleDeleteRecord)

	// Unmatched API routes get a JSON 404 rather than the default text one.
	mux.HandleFunc("/api/", s.handleNotFound)

	return mux
}

// Handler returns the server's root handler, useful for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// ListenAndServe starts the HTTP server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	s.Logger.Info("http server starting", "addr", s.Addr)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("http server shutting down")
	return s.server.Shutdown(ctx)
}

// withLogging logs every request with its status and duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		s.Logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
