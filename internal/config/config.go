package config

import (
	"os"
	"path/filepath"

	"github.com/julienpequegnot/tfclass/internal/tokenizer"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Tokenizer tokenizer.Options `yaml:"tokenizer"`
	Scoring   ScoringConfig     `yaml:"scoring"`
	Prune     PruneConfig       `yaml:"prune"`
	Fetch     FetchConfig       `yaml:"fetch"`
}

type ScoringConfig struct {
	Formula           string `yaml:"formula"`
	Top               int    `yaml:"top"`
	CompatibleProduct bool   `yaml:"compatible_product"`
	Concurrency       int    `yaml:"concurrency"`
}

// PruneConfig bounds the document-frequency quantiles kept by `prune`.
type PruneConfig struct {
	MinQuantile float64 `yaml:"min_quantile"`
	MaxQuantile float64 `yaml:"max_quantile"`
}

type FetchConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
}

func Default() *Config {
	return &Config{
		Tokenizer: tokenizer.DefaultOptions(),
		Scoring: ScoringConfig{
			Formula:     "standard",
			Top:         3,
			Concurrency: 4,
		},
		Prune: PruneConfig{
			MinQuantile: 0,
			MaxQuantile: 1,
		},
		Fetch: FetchConfig{
			TimeoutSeconds: 30,
			UserAgent:      "tfclass/1.0",
		},
	}
}

func Dir() string {
	if dir := os.Getenv("TFCLASS_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tfclass")
}

func DBPath() string {
	return filepath.Join(Dir(), "model.db")
}

func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(Path(), data, 0644)
}
