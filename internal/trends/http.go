package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kingdom/internal/core"
	"kingdom/internal/logger"
)

// HTTPSource reads trending topics from a JSON feed:
//
//	GET {baseURL}/trends?platform=instagram  ->  {"topics": [TrendingTopic, ...]}
type HTTPSource struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewHTTPSource creates an HTTP trend source.
func NewHTTPSource(baseURL, token string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type trendsResponse struct {
	Topics []json.RawMessage `json:"topics"`
}

// TrendingTopics implements Source. Records that fail to decode are skipped.
func (s *HTTPSource) TrendingTopics(ctx context.Context, platform core.Platform) ([]core.TrendingTopic, error) {
	endpoint := fmt.Sprintf("%s/trends?platform=%s", s.BaseURL, url.QueryEscape(string(platform)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch trends: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("trends API returned %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var body trendsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode trends: %w", err)
	}

	topics := make([]core.TrendingTopic, 0, len(body.Topics))
	for i, raw := range body.Topics {
		var t core.TrendingTopic
		if err := json.Unmarshal(raw, &t); err != nil {
			logger.Debug("Skipping undecodable trending topic", "index", i, "error", err.Error())
			continue
		}
		if t.Platform == "" {
			t.Platform = platform
		}
		topics = append(topics, t)
	}
	return topics, nil
}
