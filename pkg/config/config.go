package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Providers.
const (
	ProviderClaude = "claude"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

// Defaults applied when the config leaves a value unset.
const (
	DefaultClaudeModel    = "claude-sonnet-4-20250514"
	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultRequestSeconds = 60
	DefaultRetries        = 2
	DefaultScoreTolerance = 7
	DefaultCacheSize      = 128
	DefaultConcurrency    = 8
)

// AppDirName is the directory under $HOME holding config and history.
const AppDirName = ".namescore"

// Config represents the application configuration.
type Config struct {
	Provider        string         `json:"provider,omitempty"`
	AnthropicAPIKey string         `json:"anthropic_api_key,omitempty"`
	GeminiAPIKey    string         `json:"gemini_api_key,omitempty"`
	Models          ModelsConfig   `json:"models,omitempty"`
	Timeouts        TimeoutsConfig `json:"timeouts,omitempty"`
	Retries         int            `json:"retries"`
	// ScoreTolerance is how far a holistic score may move from the numerology score.
	// Unset means DefaultScoreTolerance; 0 only clamps into range.
	ScoreTolerance *int          `json:"score_tolerance,omitempty"`
	CacheSize      int           `json:"cache_size,omitempty"`
	HistoryPath    string        `json:"history_path,omitempty"`
	Pandoc         PandocConfig  `json:"pandoc"`
	Defaults       DefaultConfig `json:"defaults"`
}

// ModelsConfig holds model selection per kind of call.
type ModelsConfig struct {
	Analysis    string `json:"analysis,omitempty"`
	Suggestions string `json:"suggestions,omitempty"`
}

// TimeoutsConfig holds generator timeouts.
type TimeoutsConfig struct {
	RequestSeconds int `json:"request_seconds,omitempty"`
}

// PandocConfig holds pandoc-related configuration.
type PandocConfig struct {
	TemplatePath string `json:"template_path,omitempty"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir   string `json:"output_dir"`
	Goal        string `json:"goal,omitempty"`
	Concurrency int    `json:"concurrency,omitempty"`
}

// AppDir returns $HOME/.namescore.
func AppDir() (dir string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return dir, err
	}
	dir = filepath.Join(homeDir, AppDirName)
	return dir, err
}

// GetAnalysisModel returns the model for holistic, compatibility and insight calls.
func (c *Config) GetAnalysisModel() (model string) {
	if c.Models.Analysis != "" {
		model = c.Models.Analysis
		return model
	}
	if c.Provider == ProviderGemini {
		model = DefaultGeminiModel
		return model
	}
	model = DefaultClaudeModel
	return model
}

// GetSuggestionsModel returns the model for name suggestions, defaulting to the analysis model.
func (c *Config) GetSuggestionsModel() (model string) {
	if c.Models.Suggestions != "" {
		model = c.Models.Suggestions
		return model
	}
	model = c.GetAnalysisModel()
	return model
}

// GetRequestTimeout returns the per-request generator timeout.
func (c *Config) GetRequestTimeout() (timeout time.Duration) {
	seconds := c.Timeouts.RequestSeconds
	if seconds <= 0 {
		seconds = DefaultRequestSeconds
	}
	timeout = time.Duration(seconds) * time.Second
	return timeout
}

// GetScoreTolerance returns the holistic score tolerance.
func (c *Config) GetScoreTolerance() (tolerance int) {
	if c.ScoreTolerance == nil {
		tolerance = DefaultScoreTolerance
		return tolerance
	}
	tolerance = *c.ScoreTolerance
	return tolerance
}

// GetCacheSize returns the analysis cache size. Negative values disable the cache.
func (c *Config) GetCacheSize() (size int) {
	switch {
	case c.CacheSize < 0:
		size = 0
	case c.CacheSize == 0:
		size = DefaultCacheSize
	default:
		size = c.CacheSize
	}
	return size
}

// GetConcurrency returns the batch scoring concurrency.
func (c *Config) GetConcurrency() (concurrency int) {
	concurrency = c.Defaults.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return concurrency
}

// Load reads configuration from file with .env and environment variable overrides.
// An explicit configPath must exist; a missing default config file yields defaults.
func Load(configPath string) (cfg Config, err error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	path := configPath
	if path == "" {
		var dir string
		dir, err = AppDir()
		if err != nil {
			return cfg, err
		}
		path = filepath.Join(dir, "config.json")
	}

	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && configPath == "":
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'namescore init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	applyEnv(&cfg)

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

func applyEnv(cfg *Config) {
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		cfg.AnthropicAPIKey = apiKey
	}

	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		cfg.GeminiAPIKey = apiKey
	} else if apiKey := os.Getenv("GOOGLE_API_KEY"); apiKey != "" {
		cfg.GeminiAPIKey = apiKey
	}

	if provider := os.Getenv("NAMESCORE_PROVIDER"); provider != "" {
		cfg.Provider = provider
	}
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() (err error) {
	if c.Provider == "" {
		switch {
		case c.AnthropicAPIKey != "":
			c.Provider = ProviderClaude
		case c.GeminiAPIKey != "":
			c.Provider = ProviderGemini
		default:
			c.Provider = ProviderNone
		}
	}

	switch c.Provider {
	case ProviderClaude:
		if c.AnthropicAPIKey == "" {
			err = errors.New("anthropic_api_key is required for provider 'claude' (set in config or ANTHROPIC_API_KEY env var)")
			return err
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			err = errors.New("gemini_api_key is required for provider 'gemini' (set in config or GEMINI_API_KEY env var)")
			return err
		}
	case ProviderNone:
	default:
		err = errors.Errorf("invalid provider '%s': must be 'claude', 'gemini', or 'none'", c.Provider)
		return err
	}

	if c.Retries < 0 {
		err = errors.New("retries must not be negative")
		return err
	}

	if c.ScoreTolerance != nil && (*c.ScoreTolerance < 0 || *c.ScoreTolerance > 100) {
		err = errors.Errorf("score_tolerance must be between 0 and 100, got %d", *c.ScoreTolerance)
		return err
	}

	if c.Timeouts.RequestSeconds < 0 {
		err = errors.New("timeouts.request_seconds must not be negative")
		return err
	}

	if c.Pandoc.TemplatePath != "" {
		_, err = os.Stat(c.Pandoc.TemplatePath)
		if os.IsNotExist(err) {
			err = errors.Errorf("pandoc template not found: %s", c.Pandoc.TemplatePath)
			return err
		}
		err = nil
	}

	if c.Defaults.OutputDir == "" {
		c.Defaults.OutputDir = "."
	}

	if c.HistoryPath == "" {
		var dir string
		dir, err = AppDir()
		if err != nil {
			return err
		}
		c.HistoryPath = filepath.Join(dir, "history.json")
	}

	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	var dir string
	dir, err = AppDir()
	if err != nil {
		return err
	}

	path := configPath
	if path == "" {
		path = filepath.Join(dir, "config.json")
	}

	configDir := filepath.Dir(path)
	err = os.MkdirAll(configDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", configDir)
		return err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	tolerance := DefaultScoreTolerance
	defaultConfig := Config{
		Provider:        ProviderClaude,
		AnthropicAPIKey: "sk-ant-api03-...",
		Models: ModelsConfig{
			Analysis:    DefaultClaudeModel,
			Suggestions: DefaultClaudeModel,
		},
		Timeouts: TimeoutsConfig{
			RequestSeconds: DefaultRequestSeconds,
		},
		Retries:        DefaultRetries,
		ScoreTolerance: &tolerance,
		CacheSize:      DefaultCacheSize,
		HistoryPath:    filepath.Join(dir, "history.json"),
		Defaults: DefaultConfig{
			OutputDir:   ".",
			Goal:        "General Insight",
			Concurrency: DefaultConcurrency,
		},
	}

	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
