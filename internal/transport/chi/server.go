// Package chi is the REST transport: routing, request decoding, and the
// mapping from domain sentinels to HTTP statuses.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/talentmatch/internal/domain"
	healthuc "github.com/kailas-cloud/talentmatch/internal/usecase/health"
	intakeuc "github.com/kailas-cloud/talentmatch/internal/usecase/intake"
	matchuc "github.com/kailas-cloud/talentmatch/internal/usecase/match"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the use case services behind the HTTP API.
type Server struct {
	intake        *intakeuc.Service
	match         *matchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	intake *intakeuc.Service,
	match *matchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		intake: intake,
		match:  match,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrProfileNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrInvalidVector, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrVectorDimMismatch, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrEmbeddingGeneration, http.StatusBadGateway, codeGenerationFailed),
		sentinelHandler(domain.ErrNarrativeGeneration, http.StatusBadGateway, codeGenerationFailed),
		sentinelHandler(domain.ErrGenerationProvider, http.StatusBadGateway, codeGenerationFailed),
	}
	return s
}

// Routes mounts all API endpoints on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/jobs", s.SubmitJob)
	r.Get("/jobs", s.ListJobs)
	r.Get("/jobs/{jobId}/match", s.MatchJob)
	r.Post("/candidates", s.SubmitCandidate)
	r.Get("/candidates", s.ListCandidates)
	r.Put("/candidates/{id}", s.UpdateCandidate)
	r.Delete("/candidates/{id}", s.DeleteCandidate)
	r.Get("/stats", s.Stats)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// SubmitJob handles POST /jobs.
func (s *Server) SubmitJob(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Job title is required")
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Job description is required")
		return
	}

	id, err := s.intake.SubmitJob(r.Context(), jobFromRequest(req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, submitJobResponse{JobID: id})
}

// ListJobs handles GET /jobs.
func (s *Server) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.intake.ListJobs(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]jobResponse, len(jobs))
	for i, j := range jobs {
		items[i] = jobResponse{ID: j.ID, Metadata: jobMetadataToDTO(j.Metadata)}
	}
	writeJSON(w, http.StatusOK, listJobsResponse{Jobs: items})
}

// MatchJob handles GET /jobs/{jobId}/match. A job with no matching
// candidates returns 200 with an empty list; an unknown job id is 404.
func (s *Server) MatchJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobId")
	if jobID == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Job id is required")
		return
	}

	res, err := s.match.FindMatches(r.Context(), jobID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]matchItemResponse, len(res.Matches))
	for i, m := range res.Matches {
		items[i] = matchItemToDTO(m)
	}
	writeJSON(w, http.StatusOK, matchResponse{
		Job: jobResponse{
			ID:       res.JobID,
			Metadata: jobMetadataToDTO(domain.JobFromRecord(res.Metadata)),
		},
		Matches: items,
	})
}

// SubmitCandidate handles POST /candidates.
func (s *Server) SubmitCandidate(w http.ResponseWriter, r *http.Request) {
	var req candidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Candidate name is required")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Candidate email is required")
		return
	}

	id, err := s.intake.SubmitCandidate(r.Context(), candidateFromRequest(req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, submitCandidateResponse{CandidateID: id})
}

// ListCandidates handles GET /candidates.
func (s *Server) ListCandidates(w http.ResponseWriter, r *http.Request) {
	cands, err := s.intake.ListCandidates(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]candidateResponse, len(cands))
	for i, c := range cands {
		items[i] = candidateResponse{ID: c.ID, Metadata: candidateMetadataToDTO(c.Metadata)}
	}
	writeJSON(w, http.StatusOK, listCandidatesResponse{Candidates: items})
}

// UpdateCandidate handles PUT /candidates/{id}.
func (s *Server) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req candidatePatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.intake.UpdateCandidate(r.Context(), id, patchFromRequest(req)); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteCandidate handles DELETE /candidates/{id}.
func (s *Server) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.intake.DeleteCandidate(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /stats with the stored-profile counts.
func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.intake.Stats(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{Jobs: stats.Jobs, Candidates: stats.Candidates})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrProfileNotFound,
		domain.ErrInvalidVector,
		domain.ErrVectorDimMismatch,
		domain.ErrEmbeddingGeneration,
		domain.ErrNarrativeGeneration,
		domain.ErrGenerationProvider,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
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
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
