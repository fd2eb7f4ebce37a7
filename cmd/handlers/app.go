package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"kingdom/internal/config"
	"kingdom/internal/core"
	"kingdom/internal/estimate"
	"kingdom/internal/hashtags"
	"kingdom/internal/intelligence"
	"kingdom/internal/llm"
	"kingdom/internal/logger"
	"kingdom/internal/metrics"
	"kingdom/internal/render"
	"kingdom/internal/store"
	"kingdom/internal/strategy"
	"kingdom/internal/trends"
)

// app holds the services one command invocation needs. Build it with newApp
// and always Close it.
type app struct {
	cfg          *config.Config
	mode         core.Mode
	recorder     *metrics.Recorder
	generator    llm.Generator
	source       trends.Source
	store        *store.Store
	hashtags     *hashtags.Service
	composer     *strategy.Composer
	intelligence *intelligence.Service
	closers      []io.Closer
}

// newApp wires services from configuration. userID scopes the history trend
// source; openStore forces the history database open even when the trend
// source does not need it.
func newApp(ctx context.Context, userID string, openStore bool) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	mode := cfg.Mode()
	if modeFlag != "" {
		mode, err = core.ParseMode(modeFlag)
		if err != nil {
			return nil, err
		}
	}

	a := &app{
		cfg:      cfg,
		mode:     mode,
		recorder: metrics.NewRecorder(),
	}

	model := cfg.AI.Model
	if cfg.AI.Provider == llm.ProviderGemini && model == llm.DefaultOpenAIModel {
		model = ""
	}
	gen, err := llm.New(ctx, llm.Config{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		BaseURL:  cfg.AI.BaseURL,
		Model:    model,
		Timeout:  cfg.AITimeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	if c, ok := gen.(io.Closer); ok {
		a.closers = append(a.closers, c)
	}
	a.generator = llm.NewTracedClient(gen, cfg.AI.Provider, a.recorder)

	if openStore || cfg.Trends.Source == "history" {
		st, err := store.Open(cfg.Store.Path)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to open history store: %w", err)
		}
		a.store = st
		a.closers = append(a.closers, st)
	}

	switch cfg.Trends.Source {
	case "http":
		a.source = trends.NewHTTPSource(cfg.Trends.URL, cfg.Trends.Token, cfg.TrendsTimeout())
	case "history":
		a.source = trends.NewHistorySource(a.store.ForUser(userID))
	default:
		a.source = trends.NewStaticSource()
	}

	rng := estimate.DefaultRand()
	a.hashtags = hashtags.NewService(a.source, rng, a.recorder)
	a.composer = strategy.NewComposer(a.source, rng, a.recorder)
	a.intelligence = intelligence.NewService(a.generator, a.recorder)

	logger.Debug("Application wired",
		"mode", string(a.mode),
		"ai_provider", cfg.AI.Provider,
		"trends_source", cfg.Trends.Source,
		"store", a.store != nil,
	)
	return a, nil
}

// Close releases the store and AI client.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			logger.Error("Failed to close resource", err)
		}
	}
	a.closers = nil
}

// output prints either the JSON encoding of v or the rendered text.
func output(v any, text string) error {
	if jsonOutput {
		return render.JSON(os.Stdout, v)
	}
	_, err := fmt.Fprint(os.Stdout, text)
	return err
}
