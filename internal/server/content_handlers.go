package server

import (
	"fmt"
	"net/http"
	"strings"

	"kingdom/internal/core"
	"kingdom/internal/intelligence"
	"kingdom/internal/optimize"
)

// MaxViralTopics caps the topics accepted by POST /api/content/viral-ideas.
const MaxViralTopics = 20

// IdeasRequest asks for personalized content ideas.
type IdeasRequest struct {
	Mode      string               `json:"mode"`
	Profile   core.UserPersonality `json:"profile"`
	Goals     []core.MarketingGoal `json:"goals"`
	Seasonal  core.SeasonalContext `json:"seasonal"`
	Platforms []core.Platform      `json:"platforms"`
}

// handleContentIdeas handles POST /api/content/ideas
func (s *Server) handleContentIdeas(w http.ResponseWriter, r *http.Request) {
	var req IdeasRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	mode, err := s.mode(req.Mode)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Platforms) == 0 {
		req.Platforms = []core.Platform{core.PlatformInstagram}
	}

	ideas := s.deps.Strategy.GeneratePersonalizedContent(r.Context(), mode, req.Profile, req.Goals, req.Seasonal, req.Platforms)
	s.respondJSON(w, http.StatusOK, map[string]any{"ideas": ideas})
}

// StrategyRequest asks for a weekly content strategy.
type StrategyRequest struct {
	Mode     string               `json:"mode"`
	UserID   string               `json:"userId"`
	Platform core.Platform        `json:"platform"`
	Goals    []core.MarketingGoal `json:"goals"`
}

// handleContentStrategy handles POST /api/content/strategy
func (s *Server) handleContentStrategy(w http.ResponseWriter, r *http.Request) {
	var req StrategyRequest
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

	s.respondJSON(w, http.StatusOK, s.deps.Strategy.GenerateContentStrategy(r.Context(), mode, req.UserID, platform, req.Goals))
}

// ContentRequest carries a single piece of content to evaluate.
type ContentRequest struct {
	Mode     string        `json:"mode"`
	Content  string        `json:"content"`
	Platform core.Platform `json:"platform"`
	Count    int           `json:"count,omitempty"`
}

// AnalyzeResponse pairs a content score with the suggestions it triggers.
type AnalyzeResponse struct {
	Score       core.ContentScore             `json:"score"`
	Suggestions []core.OptimizationSuggestion `json:"suggestions"`
}

func (s *Server) decodeContentRequest(w http.ResponseWriter, r *http.Request) (ContentRequest, core.Mode, core.Platform, bool) {
	var req ContentRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return req, "", "", false
	}
	mode, err := s.mode(req.Mode)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return req, "", "", false
	}
	platform, err := requirePlatform(req.Platform)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return req, "", "", false
	}
	if strings.TrimSpace(req.Content) == "" {
		s.respondError(w, http.StatusBadRequest, "content is required")
		return req, "", "", false
	}
	return req, mode, platform, true
}

// handleAnalyzeContent handles POST /api/content/analyze
func (s *Server) handleAnalyzeContent(w http.ResponseWriter, r *http.Request) {
	req, mode, platform, ok := s.decodeContentRequest(w, r)
	if !ok {
		return
	}

	score := s.deps.Intelligence.AnalyzeContent(r.Context(), mode, req.Content, platform)
	s.respondJSON(w, http.StatusOK, AnalyzeResponse{
		Score:       score,
		Suggestions: optimize.Suggestions(mode, req.Content, platform, score),
	})
}

// handleViralPrediction handles POST /api/content/viral
func (s *Server) handleViralPrediction(w http.ResponseWriter, r *http.Request) {
	req, mode, platform, ok := s.decodeContentRequest(w, r)
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, s.deps.Intelligence.PredictViralPotential(r.Context(), mode, req.Content, platform))
}

// handleVariations handles POST /api/content/variations
func (s *Server) handleVariations(w http.ResponseWriter, r *http.Request) {
	req, mode, platform, ok := s.decodeContentRequest(w, r)
	if !ok {
		return
	}
	if req.Count < 0 || req.Count > intelligence.MaxVariations {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("count must be between 0 and %d", intelligence.MaxVariations))
		return
	}
	variations := s.deps.Intelligence.GenerateVariations(r.Context(), mode, req.Content, platform, req.Count)
	s.respondJSON(w, http.StatusOK, map[string]any{"variations": variations})
}

// ViralIdeasRequest asks for viral-format ideas around a set of topics.
type ViralIdeasRequest struct {
	Mode      string          `json:"mode"`
	Topics    []string        `json:"topics"`
	Platforms []core.Platform `json:"platforms"`
}

// handleViralIdeas handles POST /api/content/viral-ideas
func (s *Server) handleViralIdeas(w http.ResponseWriter, r *http.Request) {
	var req ViralIdeasRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	mode, err := s.mode(req.Mode)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Topics) == 0 || len(req.Topics) > MaxViralTopics {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("between 1 and %d topics are required", MaxViralTopics))
		return
	}
	if len(req.Platforms) == 0 {
		req.Platforms = []core.Platform{core.PlatformInstagram}
	}

	ideas := s.deps.Strategy.GenerateViralContent(mode, req.Topics, req.Platforms)
	s.respondJSON(w, http.StatusOK, map[string]any{"ideas": ideas})
}
