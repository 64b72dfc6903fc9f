package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the parsed tutorials.yaml configuration.
type Config struct {
	LogLevel string       `yaml:"log_level,omitempty"`
	GitHub   GitHubConfig `yaml:"github"`
	Verify   VerifyConfig `yaml:"verify,omitempty"`
	Catalogs []CatalogRef `yaml:"catalogs,omitempty"`
}

// GitHubConfig configures the HTTP client handed to link resolvers.
type GitHubConfig struct {
	APIURL     string  `yaml:"api_url,omitempty"`
	WebURL     string  `yaml:"web_url,omitempty"`
	TokenEnv   string  `yaml:"token_env,omitempty"`
	TimeoutSec float64 `yaml:"timeout_sec"`
	RatePerSec float64 `yaml:"rate_per_sec"`
	Burst      int     `yaml:"burst"`
}

type VerifyConfig struct {
	Concurrency int `yaml:"concurrency"`
}

// CatalogRef points at an extra catalog listing, either a local file or a URL.
type CatalogRef struct {
	Path *string `yaml:"path,omitempty"`
	URL  *string `yaml:"url,omitempty"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		GitHub: GitHubConfig{
			TokenEnv:   "GITHUB_TOKEN",
			TimeoutSec: 30.0,
			RatePerSec: 1.2,
			Burst:      1,
		},
		Verify: VerifyConfig{
			Concurrency: 4,
		},
	}
}

// LoadConfig loads and parses a tutorials.yaml file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	for i, ref := range cfg.Catalogs {
		hasPath := ref.Path != nil && *ref.Path != ""
		hasURL := ref.URL != nil && *ref.URL != ""
		if !hasPath && !hasURL {
			return cfg, fmt.Errorf("catalogs[%d]: must specify either 'path' or 'url'", i)
		}
		if hasPath && hasURL {
			return cfg, fmt.Errorf("catalogs[%d]: cannot specify both 'path' and 'url'", i)
		}
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return cfg, fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}

	// Apply defaults for missing values
	def := DefaultConfig()
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.GitHub.TokenEnv == "" {
		cfg.GitHub.TokenEnv = def.GitHub.TokenEnv
	}
	if cfg.GitHub.TimeoutSec <= 0 {
		cfg.GitHub.TimeoutSec = def.GitHub.TimeoutSec
	}
	if cfg.GitHub.RatePerSec <= 0 {
		cfg.GitHub.RatePerSec = def.GitHub.RatePerSec
	}
	if cfg.GitHub.Burst <= 0 {
		cfg.GitHub.Burst = def.GitHub.Burst
	}
	if cfg.Verify.Concurrency <= 0 {
		cfg.Verify.Concurrency = def.Verify.Concurrency
	}

	return cfg, nil
}
