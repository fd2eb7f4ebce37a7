package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kingdom/internal/core"
	"kingdom/internal/intelligence"
)

// CreateABTestRequest names a test and lists the variant contents.
type CreateABTestRequest struct {
	Name     string   `json:"name"`
	Variants []string `json:"variants"`
}

// RecordMetricsRequest adds observed counters to one variant.
type RecordMetricsRequest struct {
	VariantID string `json:"variantId"`
	core.VariantMetrics
}

// handleListABTests handles GET /api/abtests
func (s *Server) handleListABTests(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{"tests": s.deps.Intelligence.ABTests()})
}

// handleCreateABTest handles POST /api/abtests
func (s *Server) handleCreateABTest(w http.ResponseWriter, r *http.Request) {
	var req CreateABTestRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	test, err := s.deps.Intelligence.CreateABTest(req.Name, req.Variants)
	if err != nil {
		s.respondABError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, test)
}

// handleGetABTest handles GET /api/abtests/{id}
func (s *Server) handleGetABTest(w http.ResponseWriter, r *http.Request) {
	test, err := s.deps.Intelligence.ABTest(chi.URLParam(r, "id"))
	if err != nil {
		s.respondABError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, test)
}

// handleRecordABMetrics handles POST /api/abtests/{id}/metrics
func (s *Server) handleRecordABMetrics(w http.ResponseWriter, r *http.Request) {
	var req RecordMetricsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	m := req.VariantMetrics
	if m.Impressions < 0 || m.Engagement < 0 || m.Clicks < 0 || m.Conversions < 0 {
		s.respondError(w, http.StatusBadRequest, "metrics cannot be negative")
		return
	}

	if err := s.deps.Intelligence.RecordMetrics(chi.URLParam(r, "id"), req.VariantID, m); err != nil {
		s.respondABError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleABTestResult handles GET /api/abtests/{id}/result
func (s *Server) handleABTestResult(w http.ResponseWriter, r *http.Request) {
	result, err := s.deps.Intelligence.ABTestResult(chi.URLParam(r, "id"))
	if err != nil {
		s.respondABError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) respondABError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, intelligence.ErrTestNotFound), errors.Is(err, intelligence.ErrVariantNotFound):
		s.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, intelligence.ErrNoVariants):
		s.respondError(w, http.StatusBadRequest, err.Error())
	default:
		s.respondError(w, http.StatusInternalServerError, err.Error())
	}
}
