package server

import (
	"net/http"

	"kingdom/internal/core"
	"kingdom/internal/hashtags"
	"kingdom/internal/logger"
)

// HashtagRequest asks for personalized hashtags. When History is empty and
// UserID is set, the stored history for that user is used.
type HashtagRequest struct {
	Mode     string                    `json:"mode"`
	Content  string                    `json:"content"`
	Platform core.Platform             `json:"platform"`
	History  []core.HashtagPerformance `json:"history"`
	UserID   string                    `json:"userId"`
	Niche    string                    `json:"niche"`
	Season   string                    `json:"season"`
}

// HashtagResponse wraps a ranked suggestion list.
type HashtagResponse struct {
	Platform core.Platform            `json:"platform"`
	Hashtags []core.HashtagSuggestion `json:"hashtags"`
}

// handlePersonalizedHashtags handles POST /api/hashtags
func (s *Server) handlePersonalizedHashtags(w http.ResponseWriter, r *http.Request) {
	var req HashtagRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	mode, err := s.mode(req.Mode)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	platform, err := requirePlatform(req.Platform)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	history := req.History
	if len(history) == 0 && req.UserID != "" && s.deps.Store != nil {
		history, err = s.deps.Store.ListHashtagPerformance(r.Context(), req.UserID)
		if err != nil {
			logger.Warn("Failed to load hashtag history, continuing without it", "user_id", req.UserID, "error", err.Error())
			history = nil
		}
	}

	list := s.deps.Hashtags.PersonalizedHashtags(r.Context(), hashtags.Request{
		Mode:     mode,
		Content:  req.Content,
		Platform: platform,
		History:  history,
		Niche:    req.Niche,
		Season:   req.Season,
	})
	s.respondJSON(w, http.StatusOK, HashtagResponse{Platform: platform, Hashtags: list})
}

// handleTrendingHashtags handles GET /api/hashtags/trending?platform=&mode=
func (s *Server) handleTrendingHashtags(w http.ResponseWriter, r *http.Request) {
	mode, err := s.mode(r.URL.Query().Get("mode"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	platform, err := requirePlatform(core.Platform(r.URL.Query().Get("platform")))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	list := s.deps.Hashtags.TrendingHashtags(r.Context(), mode, platform)
	s.respondJSON(w, http.StatusOK, HashtagResponse{Platform: platform, Hashtags: list})
}

// AnalyzeHashtagsRequest carries a history to analyze, or a user whose stored
// history should be analyzed.
type AnalyzeHashtagsRequest struct {
	History []core.HashtagPerformance `json:"history"`
	UserID  string                    `json:"userId"`
}

// handleAnalyzeHashtags handles POST /api/hashtags/analyze
func (s *Server) handleAnalyzeHashtags(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeHashtagsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	history := req.History
	if len(history) == 0 && req.UserID != "" && s.deps.Store != nil {
		var err error
		history, err = s.deps.Store.ListHashtagPerformance(r.Context(), req.UserID)
		if err != nil {
			logger.Error("Failed to load hashtag history", err, "user_id", req.UserID)
			s.respondError(w, http.StatusInternalServerError, "failed to load hashtag history")
			return
		}
	}

	s.respondJSON(w, http.StatusOK, s.deps.Hashtags.AnalyzePerformance(history))
}
