package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime configuration for the planner.
type Config struct {
	Source struct {
		BaseURL string   `yaml:"base_url"`
		Pages   []string `yaml:"pages"`
	} `yaml:"source"`

	Fetcher struct {
		Kind           string  `yaml:"kind"` // "colly" or "rod"
		DelaySeconds   float64 `yaml:"delay_seconds"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
	} `yaml:"fetcher"`

	Results struct {
		TopN int `yaml:"top_n"`
	} `yaml:"results"`

	Enrichment struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"enrichment"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// GetDefaultConfig returns a default configuration
func GetDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Enrichment.Enabled = true
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Source.BaseURL == "" {
		cfg.Source.BaseURL = "https://en.wikipedia.org"
	}
	if len(cfg.Source.Pages) == 0 {
		cfg.Source.Pages = []string{"/wiki/List_of_World_Heritage_Sites_by_year_of_inscription"}
	}
	if cfg.Fetcher.Kind == "" {
		cfg.Fetcher.Kind = "colly"
	}
	if cfg.Fetcher.DelaySeconds <= 0 {
		cfg.Fetcher.DelaySeconds = 2.0
	}
	if cfg.Fetcher.TimeoutSeconds <= 0 {
		cfg.Fetcher.TimeoutSeconds = 30
	}
	if cfg.Results.TopN <= 0 {
		cfg.Results.TopN = 3
	}
}
