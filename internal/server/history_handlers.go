package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"kingdom/internal/core"
	"kingdom/internal/hashtags"
	"kingdom/internal/logger"
	"kingdom/internal/trends"
)

// RecordPostRequest is a published post plus the reach increase to credit to
// its hashtags.
type RecordPostRequest struct {
	core.Post
	ReachIncrease float64 `json:"reachIncrease"`
}

// handleRecordPost handles POST /api/history/{userID}/posts
func (s *Server) handleRecordPost(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req RecordPostRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := requirePlatform(req.Platform); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := s.deps.Store.RecordPost(r.Context(), userID, req.Post, hashtags.PostUsage(req.Post, req.ReachIncrease))
	if err != nil {
		logger.Error("Failed to record post", err, "user_id", userID)
		s.respondError(w, http.StatusInternalServerError, "failed to record post")
		return
	}
	s.respondJSON(w, http.StatusCreated, post)
}

// handleListPosts handles GET /api/history/{userID}/posts?platform=&days=
func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.respondError(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = n
	}

	platform := core.NormalizePlatform(r.URL.Query().Get("platform"))
	since := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
	posts, err := s.deps.Store.ListPosts(r.Context(), userID, platform, since)
	if err != nil {
		logger.Error("Failed to list posts", err, "user_id", userID)
		s.respondError(w, http.StatusInternalServerError, "failed to list posts")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

// handleListPerformance handles GET /api/history/{userID}/hashtags
func (s *Server) handleListPerformance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	history, err := s.deps.Store.ListHashtagPerformance(r.Context(), userID)
	if err != nil {
		logger.Error("Failed to list hashtag performance", err, "user_id", userID)
		s.respondError(w, http.StatusInternalServerError, "failed to list hashtag history")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"hashtags": history})
}

// handleHistoryReport handles GET /api/history/{userID}/report?platform=
func (s *Server) handleHistoryReport(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	platform, err := requirePlatform(core.Platform(r.URL.Query().Get("platform")))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := trends.NewHistorySource(s.deps.Store.ForUser(userID)).Report(r.Context(), platform)
	if err != nil {
		logger.Error("Failed to build posting trend report", err, "user_id", userID)
		s.respondError(w, http.StatusInternalServerError, "failed to build report")
		return
	}

	if r.URL.Query().Get("format") == "markdown" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(trends.FormatReport(report)))
		return
	}
	s.respondJSON(w, http.StatusOK, report)
}
