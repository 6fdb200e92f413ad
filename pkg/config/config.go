// Package config loads the YAML configuration with defaults and validation
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/makro/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Feeds    []Feed         `yaml:"feeds" json:"feeds" jsonschema:"description=Feeds polled for macro content"`
	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Feed polling configuration"`
	Ingest   IngestConfig   `yaml:"ingest" json:"ingest" jsonschema:"description=Content ingestion configuration"`
	Analysis AnalysisConfig `yaml:"analysis" json:"analysis" jsonschema:"description=Narrative analysis configuration"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS feeds"`
}

// DatabaseConfig holds SQLite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:makro.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,minimum=1,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,minimum=0,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// Feed is a configured RSS/Atom feed
type Feed struct {
	URL      string        `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	Name     string        `yaml:"name" json:"name" jsonschema:"description=Display name, defaults to URL"`
	Category string        `yaml:"category" json:"category" jsonschema:"description=Feed category"`
	Interval time.Duration `yaml:"interval" json:"interval" jsonschema:"description=Minimal time between fetches of this feed"`
}

// ScheduleConfig holds feed polling settings
type ScheduleConfig struct {
	UpdateInterval time.Duration `yaml:"update_interval" json:"update_interval" jsonschema:"default=30m,description=Feed update interval"`
	MaxWorkers     int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,minimum=1,description=Maximum concurrent feed fetches"`
	Retries        int           `yaml:"retries" json:"retries" jsonschema:"default=3,minimum=1,description=Fetch attempts per feed"`
	Predefined     bool          `yaml:"predefined" json:"predefined" jsonschema:"default=false,description=Poll the built-in macro feed list"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed request timeout"`
}

// IngestConfig holds ingestion settings
type IngestConfig struct {
	MinRelevance int              `yaml:"min_relevance" json:"min_relevance" jsonschema:"default=10,minimum=0,maximum=100,description=Minimum macro relevance score of feed articles"`
	Extraction   ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Content extraction configuration"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable full text extraction for links and feed articles"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per page"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Makro/1.0,description=User agent for HTTP requests"`
}

// AnalysisConfig holds narrative analysis settings
type AnalysisConfig struct {
	ShiftThreshold float64 `yaml:"shift_threshold" json:"shift_threshold" jsonschema:"default=0.3,minimum=0,maximum=1,description=Minimal positive share change reported as a narrative shift"`
	Workers        int     `yaml:"workers" json:"workers" jsonschema:"default=4,minimum=1,description=Workers for clustering and conflict scans"`
	MentionLimit   int     `yaml:"mention_limit" json:"mention_limit" jsonschema:"default=10,minimum=1,description=Default size of most-mentioned rankings"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.SetDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		return nil, fmt.Errorf("verify config: %w", err)
	}

	return &cfg, nil
}

// SetDefaults fills unset values. Used by Load and for runs without a config file.
func (c *Config) SetDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:makro.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	for i := range c.Feeds {
		if c.Feeds[i].Name == "" {
			c.Feeds[i].Name = c.Feeds[i].URL
		}
	}

	if c.Schedule.UpdateInterval == 0 {
		c.Schedule.UpdateInterval = 30 * time.Minute
	}
	if c.Schedule.MaxWorkers == 0 {
		c.Schedule.MaxWorkers = 4
	}
	if c.Schedule.Retries == 0 {
		c.Schedule.Retries = 3
	}
	if c.Schedule.Timeout == 0 {
		c.Schedule.Timeout = 30 * time.Second
	}

	if c.Ingest.MinRelevance == 0 {
		c.Ingest.MinRelevance = 10
	}
	if c.Ingest.Extraction.Timeout == 0 {
		c.Ingest.Extraction.Timeout = 30 * time.Second
	}
	if c.Ingest.Extraction.UserAgent == "" {
		c.Ingest.Extraction.UserAgent = "Makro/1.0"
	}

	if c.Analysis.ShiftThreshold == 0 {
		c.Analysis.ShiftThreshold = 0.3
	}
	if c.Analysis.Workers == 0 {
		c.Analysis.Workers = 4
	}
	if c.Analysis.MentionLimit == 0 {
		c.Analysis.MentionLimit = 10
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	seen := map[string]bool{}
	for i, f := range cfg.Feeds {
		if f.URL == "" {
			return fmt.Errorf("feeds[%d].url is required", i)
		}
		if seen[f.URL] {
			return fmt.Errorf("duplicate feed url %s", f.URL)
		}
		seen[f.URL] = true
		if f.Interval < 0 {
			return fmt.Errorf("feeds[%d].interval must be non-negative", i)
		}
	}

	if cfg.Schedule.UpdateInterval < time.Minute {
		return fmt.Errorf("schedule.update_interval must be at least 1 minute")
	}
	if cfg.Schedule.MaxWorkers < 1 {
		return fmt.Errorf("schedule.max_workers must be at least 1")
	}

	if cfg.Ingest.MinRelevance < 0 || cfg.Ingest.MinRelevance > 100 {
		return fmt.Errorf("ingest.min_relevance must be between 0 and 100")
	}
	if cfg.Ingest.Extraction.Enabled && cfg.Ingest.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction timeout must be at least 1 second")
	}

	if cfg.Analysis.ShiftThreshold < 0 || cfg.Analysis.ShiftThreshold > 1 {
		return fmt.Errorf("analysis.shift_threshold must be between 0 and 1")
	}
	if cfg.Analysis.Workers < 1 {
		return fmt.Errorf("analysis.workers must be at least 1")
	}
	return nil
}

// GetFeeds returns configured feeds as domain feeds
func (c *Config) GetFeeds() []domain.Feed {
	res := make([]domain.Feed, 0, len(c.Feeds))
	for _, f := range c.Feeds {
		res = append(res, domain.Feed{ID: f.URL, Name: f.Name, URL: f.URL, Category: f.Category, Interval: f.Interval})
	}
	return res
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetFullConfig returns the full configuration
func (c *Config) GetFullConfig() *Config {
	return c
}
