// Package httpapi exposes the journal over a JSON HTTP API.
package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/hollomarton/naplo/internal/service"
)

// Server holds the service layer behind the HTTP surface.
type Server struct {
	entries service.EntryService
	reports service.ReportService
	search  service.SearchService
	params  service.ParamService

	logger *log.Logger
}

// NewServer wires the services into an HTTP server. A nil logger falls
// back to the process default.
func NewServer(
	entries service.EntryService,
	reports service.ReportService,
	search service.SearchService,
	params service.ParamService,
	logger *log.Logger,
) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		entries: entries,
		reports: reports,
		search:  search,
		params:  params,
		logger:  logger,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/category-summary", s.handleCategorySummary)
	mux.HandleFunc("GET /api/category-entries", s.handleCategoryEntries)
	mux.HandleFunc("GET /api/recent-by-category", s.handleRecentByCategory)
	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)
	mux.HandleFunc("GET /api/day", s.handleDay)
	mux.HandleFunc("GET /api/form-defaults", s.handleFormDefaults)
	mux.HandleFunc("GET /api/params", s.handleParams)
	mux.HandleFunc("GET /api/recent", s.handleRecent)
	mux.HandleFunc("POST /api/entries", s.handleCreateEntry)
	mux.HandleFunc("GET /api/entries/{id}", s.handleGetEntry)
	mux.HandleFunc("PUT /api/entries/{id}", s.handleUpdateEntry)

	return s.withLogging(mux)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		began := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Printf("%s %s (%s)", r.Method, r.URL.RequestURI(), time.Since(began).Round(time.Millisecond))
	})
}
