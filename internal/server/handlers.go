package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kingdom/internal/core"
	"kingdom/internal/logger"
)

const maxBodyBytes = 1 << 20

// HealthResponse is returned by /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Uptime string            `json:"uptime"`
	Checks map[string]string `json:"checks"`
}

// ErrorResponse is the body of every non-2xx API answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

var serverStartTime = time.Now()

// handleHealth handles the /health endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"store": "disabled"}

	if s.deps.Store != nil {
		if _, err := s.deps.Store.Stats(r.Context()); err != nil {
			checks["store"] = "error"
			s.respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status: "unhealthy",
				Uptime: time.Since(serverStartTime).Round(time.Second).String(),
				Checks: checks,
			})
			return
		}
		checks["store"] = "ok"
	}

	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Uptime: time.Since(serverStartTime).Round(time.Second).String(),
		Checks: checks,
	})
}

// decodeJSON reads a bounded JSON body into v. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// mode resolves a request mode, defaulting to the server's configured mode.
func (s *Server) mode(raw string) (core.Mode, error) {
	if strings.TrimSpace(raw) == "" {
		return s.deps.Mode, nil
	}
	return core.ParseMode(raw)
}

func requirePlatform(raw core.Platform) (core.Platform, error) {
	p := core.NormalizePlatform(string(raw))
	if p == "" {
		return "", errors.New("platform is required")
	}
	return p, nil
}

// respondJSON writes a JSON response
func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", err)
	}
}

// respondError writes an ErrorResponse
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, ErrorResponse{Error: message})
}
