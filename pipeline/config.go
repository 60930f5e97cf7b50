package pipeline

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config wires the pipeline's external collaborators. The zero value
// validates to usable defaults for everything except the collaborator
// addresses.
type Config struct {
	RedisAddr string `yaml:"redis_addr"`
	IndexName string `yaml:"index_name"`

	StorageBaseURL string `yaml:"storage_base_url"`

	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	SearchKNN           int     `yaml:"search_knn"`
	CacheSize           int     `yaml:"cache_size"`
	Fanout              int     `yaml:"fanout"`

	SearchTimeout time.Duration `yaml:"search_timeout"`
	FetchTimeout  time.Duration `yaml:"fetch_timeout"`
	RetryAttempts int           `yaml:"retry_attempts"`
	RetryBackoff  time.Duration `yaml:"retry_backoff"`

	LogLevel string `yaml:"log_level"`
}

const (
	defaultIndexName = "solvernode-idx"
	defaultThreshold = 0.80
	defaultCacheSize = 256
	defaultFanout    = 4
)

// LoadConfig reads a YAML config file and validates it.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate fills defaults and rejects values that cannot work.
func (c *Config) validate() error {
	if c.IndexName == "" {
		c.IndexName = defaultIndexName
	}
	if c.SimilarityThreshold == 0 {
		c.SimilarityThreshold = defaultThreshold
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity_threshold %v outside [0,1]", c.SimilarityThreshold)
	}
	if c.SearchKNN <= 0 {
		c.SearchKNN = 1
	}
	if c.CacheSize <= 0 {
		c.CacheSize = defaultCacheSize
	}
	if c.Fanout <= 0 {
		c.Fanout = defaultFanout
	}
	if c.SearchTimeout <= 0 {
		c.SearchTimeout = 3 * time.Second
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 5 * time.Second
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry_attempts %d is negative", c.RetryAttempts)
	}
	if c.RetryAttempts == 0 {
		c.RetryAttempts = 2
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = 100 * time.Millisecond
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return nil
}
