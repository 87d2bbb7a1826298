package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	AppName    = "e-novel-api"
	AppVersion = "1.0.0"
)

// Config holds all process configuration, populated from ENOVEL_* environment
// variables. Clients built from it (database, translation provider) are
// constructed once at startup and shared for the lifetime of the process.
type Config struct {
	Addr     string `env:"ENOVEL_ADDR" envDefault:":8080"`
	DataDir  string `env:"ENOVEL_DATA_DIR" envDefault:"./data"`
	DBPath   string `env:"ENOVEL_DB_PATH"`
	LogLevel string `env:"ENOVEL_LOG_LEVEL" envDefault:"info"`
	SeedData bool   `env:"ENOVEL_SEED" envDefault:"true"`
	NodeID   int64  `env:"ENOVEL_NODE_ID" envDefault:"1"`

	// Translation provider settings.
	AIProvider     string `env:"ENOVEL_AI_PROVIDER" envDefault:"openai"`
	AIAPIKey       string `env:"ENOVEL_AI_API_KEY"`
	AIBaseURL      string `env:"ENOVEL_AI_BASE_URL"`
	AIModel        string `env:"ENOVEL_AI_MODEL" envDefault:"gpt-4o-mini"`
	AIRateLimitQPS int    `env:"ENOVEL_AI_RATE_LIMIT" envDefault:"10"`

	// Source language of catalog text. The original catalog is authored in
	// English; translations always run from this code.
	SourceLanguage string `env:"ENOVEL_SOURCE_LANGUAGE" envDefault:"en"`

	// Translation cache retention and sweep cadence.
	CacheTTLDays  int           `env:"ENOVEL_CACHE_TTL_DAYS" envDefault:"30"`
	SweepInterval time.Duration `env:"ENOVEL_SWEEP_INTERVAL" envDefault:"6h"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	cfg.DataDir = filepath.Clean(cfg.DataDir)
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "enovel.db")
	}
	cfg.DBPath = filepath.Clean(cfg.DBPath)

	if cfg.CacheTTLDays <= 0 {
		cfg.CacheTTLDays = 30
	}
	return cfg, nil
}

// CacheTTL returns the translation cache retention window.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLDays) * 24 * time.Hour
}
