package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv isolates a test from the caller's API keys and home directory.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ANTHROPIC_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY", "NAMESCORE_PROVIDER"} {
		t.Setenv(key, "")
	}
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, cfg Config) (path string) {
	t.Helper()
	path = filepath.Join(t.TempDir(), "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal test config: %v", err)
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	tolerance := 5
	configPath := writeConfig(t, Config{
		Provider:        ProviderClaude,
		AnthropicAPIKey: "test-key",
		ScoreTolerance:  &tolerance,
		HistoryPath:     "/tmp/namescore-history.json",
		Defaults: DefaultConfig{
			OutputDir: "./test-output",
		},
	})

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.AnthropicAPIKey != "test-key" {
		t.Errorf("Expected API key test-key, got %s", cfg.AnthropicAPIKey)
	}

	if cfg.GetScoreTolerance() != 5 {
		t.Errorf("Expected tolerance 5, got %d", cfg.GetScoreTolerance())
	}

	if cfg.HistoryPath != "/tmp/namescore-history.json" {
		t.Errorf("Expected history path to be kept, got %s", cfg.HistoryPath)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "google-key")
	t.Setenv("NAMESCORE_PROVIDER", "gemini")

	configPath := writeConfig(t, Config{Provider: ProviderNone})

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Provider != ProviderGemini {
		t.Errorf("Expected provider gemini, got %s", cfg.Provider)
	}

	if cfg.GeminiAPIKey != "google-key" {
		t.Errorf("Expected GOOGLE_API_KEY to be used, got %s", cfg.GeminiAPIKey)
	}

	if cfg.GetAnalysisModel() != DefaultGeminiModel {
		t.Errorf("Expected default gemini model, got %s", cfg.GetAnalysisModel())
	}
}

func TestLoadNonexistent(t *testing.T) {
	clearEnv(t)

	_, err := Load("/nonexistent/path/config.json")
	if err == nil {
		t.Error("Expected error loading nonexistent config, got nil")
	}
}

func TestLoadDefaultMissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected defaults when no config exists, got %v", err)
	}

	if cfg.Provider != ProviderNone {
		t.Errorf("Expected provider none without keys, got %s", cfg.Provider)
	}

	if filepath.Base(cfg.HistoryPath) != "history.json" {
		t.Errorf("Expected default history path, got %s", cfg.HistoryPath)
	}
}

func TestValidate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	negative := -1
	tests := []struct {
		name         string
		config       Config
		wantError    bool
		wantProvider string
	}{
		{
			name:         "claude with key",
			config:       Config{Provider: ProviderClaude, AnthropicAPIKey: "test-key"},
			wantProvider: ProviderClaude,
		},
		{
			name:         "inferred claude",
			config:       Config{AnthropicAPIKey: "test-key"},
			wantProvider: ProviderClaude,
		},
		{
			name:         "inferred gemini",
			config:       Config{GeminiAPIKey: "test-key"},
			wantProvider: ProviderGemini,
		},
		{
			name:         "no keys",
			config:       Config{},
			wantProvider: ProviderNone,
		},
		{
			name:      "claude missing key",
			config:    Config{Provider: ProviderClaude},
			wantError: true,
		},
		{
			name:      "gemini missing key",
			config:    Config{Provider: ProviderGemini, AnthropicAPIKey: "test-key"},
			wantError: true,
		},
		{
			name:      "unknown provider",
			config:    Config{Provider: "openai"},
			wantError: true,
		},
		{
			name:      "negative tolerance",
			config:    Config{ScoreTolerance: &negative},
			wantError: true,
		},
		{
			name:      "negative retries",
			config:    Config{Retries: -1},
			wantError: true,
		},
		{
			name:      "missing pandoc template",
			config:    Config{Pandoc: PandocConfig{TemplatePath: "/nonexistent/template.latex"}},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if tt.wantProvider != "" && tt.config.Provider != tt.wantProvider {
				t.Errorf("Expected provider %s, got %s", tt.wantProvider, tt.config.Provider)
			}
		})
	}
}

func TestGetters(t *testing.T) {
	var cfg Config

	if cfg.GetScoreTolerance() != DefaultScoreTolerance {
		t.Errorf("Expected default tolerance, got %d", cfg.GetScoreTolerance())
	}

	zero := 0
	cfg.ScoreTolerance = &zero
	if cfg.GetScoreTolerance() != 0 {
		t.Errorf("Expected explicit zero tolerance to be kept, got %d", cfg.GetScoreTolerance())
	}

	if cfg.GetCacheSize() != DefaultCacheSize {
		t.Errorf("Expected default cache size, got %d", cfg.GetCacheSize())
	}
	cfg.CacheSize = -1
	if cfg.GetCacheSize() != 0 {
		t.Errorf("Expected disabled cache, got %d", cfg.GetCacheSize())
	}

	if cfg.GetRequestTimeout() != DefaultRequestSeconds*time.Second {
		t.Errorf("Expected default timeout, got %s", cfg.GetRequestTimeout())
	}

	if cfg.GetConcurrency() != DefaultConcurrency {
		t.Errorf("Expected default concurrency, got %d", cfg.GetConcurrency())
	}

	cfg.Models.Analysis = "claude-test"
	if cfg.GetSuggestionsModel() != "claude-test" {
		t.Errorf("Expected suggestions model to follow analysis model, got %s", cfg.GetSuggestionsModel())
	}
}

func TestInitConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "config.json")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	var cfg Config
	err = json.Unmarshal(data, &cfg)
	if err != nil {
		t.Fatalf("Failed to unmarshal config: %v", err)
	}

	if cfg.Defaults.OutputDir == "" {
		t.Error("Default output dir was not set")
	}

	if cfg.GetScoreTolerance() != DefaultScoreTolerance {
		t.Errorf("Expected tolerance %d, got %d", DefaultScoreTolerance, cfg.GetScoreTolerance())
	}

	if cfg.Provider != ProviderClaude {
		t.Errorf("Expected provider claude, got %s", cfg.Provider)
	}
}

func TestInitConfigAlreadyExists(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "config.json")

	err := os.WriteFile(configPath, []byte("{}"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	err = InitConfig(configPath)
	if err == nil {
		t.Error("Expected error when config already exists, got nil")
	}
}
