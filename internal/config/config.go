// Package config loads server settings from RPG_SHEET_* environment variables
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Log output formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config holds everything the server needs to start
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisTLS  bool   `env:"REDIS_TLS" envDefault:"false"`

	RulesBaseURL string        `env:"RULES_BASE_URL" envDefault:"http://localhost:8000/api"`
	RulesTimeout time.Duration `env:"RULES_TIMEOUT" envDefault:"10s"`

	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	RollTTL    time.Duration `env:"ROLL_TTL" envDefault:"15m"`
	MaxNotices int           `env:"MAX_NOTICES" envDefault:"50"`

	SRDEnabled  bool          `env:"SRD_ENABLED" envDefault:"true"`
	SRDBaseURL  string        `env:"SRD_BASE_URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`
	SRDCacheTTL time.Duration `env:"SRD_CACHE_TTL" envDefault:"24h"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "RPG_SHEET_"}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the parser cannot
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("HTTPAddr", c.HTTPAddr, vb)
	errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	errors.ValidateRequired("RulesBaseURL", c.RulesBaseURL, vb)
	errors.ValidateEnum("LogFormat", strings.ToLower(c.LogFormat), []string{LogFormatJSON, LogFormatText}, vb)

	if _, err := c.SlogLevel(); err != nil {
		vb.Field("LogLevel", err.Error())
	}
	if c.RulesTimeout <= 0 {
		vb.Field("RulesTimeout", "must be positive")
	}
	if c.SessionTTL <= 0 {
		vb.Field("SessionTTL", "must be positive")
	}
	if c.MaxNotices < 0 {
		vb.Field("MaxNotices", "must not be negative")
	}

	return vb.Build()
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error")
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
