package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nikogura/namescore/pkg/analysis"
	"github.com/nikogura/namescore/pkg/config"
	"github.com/nikogura/namescore/pkg/history"
	"github.com/nikogura/namescore/pkg/llm"
	"github.com/nikogura/namescore/pkg/progress"
	"github.com/pkg/errors"
)

// retryBackoff is the first wait between generator attempts.
const retryBackoff = 2 * time.Second

// commandTimeout bounds a whole command, including retries.
const commandTimeout = 5 * time.Minute

// newGenerator builds the configured generator for model, or nil for provider none.
func newGenerator(ctx context.Context, cfg config.Config, model string) (gen llm.Generator, err error) {
	var base llm.Generator

	switch cfg.Provider {
	case config.ProviderClaude:
		base = llm.NewClient(cfg.AnthropicAPIKey, model, cfg.GetRequestTimeout())
	case config.ProviderGemini:
		var client *llm.GeminiClient
		client, err = llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, model, cfg.GetRequestTimeout())
		if err != nil {
			err = errors.Wrap(err, "failed to create Gemini client")
			return gen, err
		}
		base = client
	default:
		return gen, err
	}

	gen = llm.NewRetrying(base, cfg.Retries+1, retryBackoff)
	return gen, err
}

// setupAnalyzer loads config and builds the analyzer with its generators.
func setupAnalyzer(ctx context.Context) (cfg config.Config, analyzer *analysis.Analyzer, err error) {
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, analyzer, err
	}

	if getVerbose() {
		fmt.Printf("Provider: %s\n", cfg.Provider)
	}

	var gen llm.Generator
	gen, err = newGenerator(ctx, cfg, cfg.GetAnalysisModel())
	if err != nil {
		return cfg, analyzer, err
	}

	opts := analysis.Options{
		Tolerance:   cfg.GetScoreTolerance(),
		CacheSize:   cfg.GetCacheSize(),
		Concurrency: cfg.GetConcurrency(),
		Logger:      slog.Default(),
	}

	if gen != nil && cfg.GetSuggestionsModel() != cfg.GetAnalysisModel() {
		opts.Suggester, err = newGenerator(ctx, cfg, cfg.GetSuggestionsModel())
		if err != nil {
			return cfg, analyzer, err
		}
	}

	analyzer, err = analysis.New(gen, opts)
	if err != nil {
		return cfg, analyzer, err
	}

	return cfg, analyzer, err
}

// recordProgress applies events to the history file and announces new badges.
// History problems are reported but never fail the command.
func recordProgress(cfg config.Config, events ...progress.Event) {
	store, err := history.NewStore(cfg.HistoryPath)
	if err == nil {
		var unlocked []progress.BadgeID
		_, unlocked, err = store.Record(events...)
		if err == nil {
			printBadges(unlocked)
			return
		}
	}

	fmt.Fprintf(os.Stderr, "Warning: failed to update history: %v\n", err)
}

func printBadges(unlocked []progress.BadgeID) {
	for _, id := range unlocked {
		badge, ok := progress.Lookup(id)
		if !ok {
			continue
		}
		fmt.Printf("🏅 Badge Unlocked: %s (%s)\n", badge.Name, badge.Description)
	}
}

func printJSON(v any) (err error) {
	var data []byte
	data, err = json.MarshalIndent(v, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal output")
		return err
	}
	fmt.Println(string(data))
	return err
}
