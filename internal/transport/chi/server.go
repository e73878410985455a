// Package chi carries the HTTP handlers for the recommendation API.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"

	"github.com/litmatch/litmatch/internal/domain"
	domrec "github.com/litmatch/litmatch/internal/domain/recommend"
	healthuc "github.com/litmatch/litmatch/internal/usecase/health"
	recommenduc "github.com/litmatch/litmatch/internal/usecase/recommend"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server implements the recommendation HTTP API.
type Server struct {
	recommend     *recommenduc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(recommend *recommenduc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		recommend: recommend,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrNotIndexed, http.StatusServiceUnavailable, CodeNotIndexed),
		sentinelHandler(domain.ErrCorpusUnavailable, http.StatusServiceUnavailable, CodeCorpusUnavailable),
	}
	return s
}

// Routes mounts all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.GetHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/recommendations", s.PostRecommendations)
		r.Get("/recommendations", s.GetRecommendations)
		r.Post("/index/rebuild", s.RebuildIndex)
	})
}

// PostRecommendations handles POST /api/v1/recommendations.
func (s *Server) PostRecommendations(w http.ResponseWriter, r *http.Request) {
	var body RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.serveRecommendations(w, r, body.Text, body.MaxResults)
}

// GetRecommendations handles GET /api/v1/recommendations with text and
// max_results query parameters.
func (s *Server) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var text string
	if err := runtime.BindQueryParameter("form", true, true, "text", r.URL.Query(), &text); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "text query parameter is required")
		return
	}

	var maxResults *int
	if err := runtime.BindQueryParameter("form", true, false, "max_results", r.URL.Query(), &maxResults); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "max_results must be an integer")
		return
	}

	s.serveRecommendations(w, r, text, maxResults)
}

func (s *Server) serveRecommendations(w http.ResponseWriter, r *http.Request, text string, maxResults *int) {
	req, err := domrec.New(text, maxResults, s.recommend.Limits())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp, err := s.recommend.Recommend(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responseToJSON(resp))
}

// RebuildIndex handles POST /api/v1/index/rebuild. A failed rebuild leaves
// the previously serving index untouched.
func (s *Server) RebuildIndex(w http.ResponseWriter, r *http.Request) {
	if err := s.recommend.Rebuild(r.Context()); err != nil {
		s.handleDomainError(w, err)
		return
	}

	docs, terms, _ := s.recommend.Stats()
	writeJSON(w, http.StatusOK, RebuildResponse{Documents: docs, Terms: terms})
}

// GetHealth handles GET /health. Responds 503 until the first successful
// index build: the service cannot answer its one operation before then.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		status = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for name, res := range report.Checks {
		checks[name] = string(res)
	}
	writeJSON(w, status, HealthResponse{Status: string(report.Status), Checks: checks})
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
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}

// safeDomainMessage returns the error text only for known domain failures;
// anything unexpected stays out of responses.
func safeDomainMessage(err error) string {
	known := []error{domain.ErrValidation, domain.ErrNotIndexed, domain.ErrCorpusUnavailable}
	for _, sentinel := range known {
		if errors.Is(err, sentinel) {
			return err.Error()
		}
	}
	return "internal error"
}

func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
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
