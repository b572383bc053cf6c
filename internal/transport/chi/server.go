package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	gochi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/kailas-cloud/moviesearch/internal/domain"
	"github.com/kailas-cloud/moviesearch/internal/domain/movie"
	logpkg "github.com/kailas-cloud/moviesearch/internal/logger"
	"github.com/kailas-cloud/moviesearch/internal/ui/dom"
	healthuc "github.com/kailas-cloud/moviesearch/internal/usecase/health"
	pageuc "github.com/kailas-cloud/moviesearch/internal/usecase/page"
	searchuc "github.com/kailas-cloud/moviesearch/internal/usecase/search"
)

// queryParam carries the search text on both the page and the JSON API.
const queryParam = "s"

// ErrorCode is a machine-readable error code in JSON error bodies.
type ErrorCode string

// Error codes returned by the JSON API.
const (
	ErrorCodeBadRequest    ErrorCode = "bad_request"
	ErrorCodeEmptyQuery    ErrorCode = "empty_query"
	ErrorCodeUpstreamError ErrorCode = "upstream_error"
	ErrorCodeInternalError ErrorCode = "internal_error"
)

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// SearchResponse is the JSON body of GET /api/search.
type SearchResponse struct {
	Results []SearchResultItem `json:"results"`
	Empty   bool               `json:"empty"`
	Message string             `json:"message,omitempty"`
}

// SearchResultItem is one validated movie.
type SearchResultItem struct {
	Title  string `json:"title"`
	Poster string `json:"poster"`
	Year   string `json:"year,omitempty"`
	IMDbID string `json:"imdb_id,omitempty"`
}

// HealthResponse is the JSON body of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Version string            `json:"version,omitempty"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the search page and the JSON API.
type Server struct {
	search        *searchuc.Service
	health        *healthuc.Service
	version       string
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP server.
func NewServer(
	search *searchuc.Service,
	health *healthuc.Service,
	version string,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:  search,
		health:  health,
		version: version,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyQuery, http.StatusBadRequest, ErrorCodeEmptyQuery),
		sentinelHandler(domain.ErrUpstreamStatus, http.StatusBadGateway, ErrorCodeUpstreamError),
		sentinelHandler(domain.ErrUpstreamUnavailable, http.StatusBadGateway, ErrorCodeUpstreamError),
	}
	return s
}

// Register mounts all routes on r. allowedOrigins enables CORS on /api;
// with no origins configured cross-origin requests get no CORS headers.
func (s *Server) Register(r gochi.Router, allowedOrigins []string) {
	r.Get("/", s.SearchPage)
	r.Route("/api", func(r gochi.Router) {
		if len(allowedOrigins) > 0 {
			r.Use(cors.New(cors.Options{
				AllowedOrigins: allowedOrigins,
				AllowedMethods: []string{http.MethodGet},
			}).Handler)
		}
		r.Get("/search", s.SearchMovies)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// SearchPage handles GET /. The s parameter plays the search field: a
// non-empty value runs one search and renders its cards into the page.
func (s *Server) SearchPage(w http.ResponseWriter, r *http.Request) {
	page, err := dom.NewPage(r.URL.Query().Get(queryParam))
	if err != nil {
		s.logger.Error("build page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pageuc.New(page, s.search).Trigger(r.Context())

	out, err := page.HTML()
	if err != nil {
		s.logger.Error("render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	logpkg.FromContext(r.Context()).Debug("page rendered",
		zap.Int("cards", page.Cards()),
		zap.Int("empty_states", page.EmptyStates()),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, out)
}

// SearchMovies handles GET /api/search.
func (s *Server) SearchMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get(queryParam)
	if query == "" {
		writeError(w, http.StatusBadRequest, ErrorCodeEmptyQuery, "query parameter s is required")
		return
	}

	outcome, err := s.search.Search(r.Context(), query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponseFromOutcome(outcome))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:  string(report.Status),
		Checks:  checks,
		Version: s.version,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func searchResponseFromOutcome(o movie.Outcome) SearchResponse {
	items := make([]SearchResultItem, 0, o.Len())
	for _, r := range o.Results() {
		items = append(items, SearchResultItem{
			Title:  r.Title(),
			Poster: r.Poster(),
			Year:   r.Year(),
			IMDbID: r.IMDbID(),
		})
	}
	resp := SearchResponse{Results: items, Empty: o.Empty()}
	if resp.Empty {
		resp.Message = movie.EmptyStateMessage
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrEmptyQuery,
		domain.ErrUpstreamStatus,
		domain.ErrUpstreamUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
