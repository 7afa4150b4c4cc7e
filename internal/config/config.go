// Package config loads server settings from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/catan-odds/internal/entities/catan"
	"github.com/KirkDiggler/catan-odds/internal/errors"
)

// Config is the server configuration. Command line flags override it.
type Config struct {
	Port int `env:"CATAN_ODDS_PORT" envDefault:"50051"`

	// RedisAddrs lists Redis endpoints; none keeps boards in memory, more
	// than one connects in cluster mode.
	RedisAddrs    []string `env:"CATAN_ODDS_REDIS_ADDR" envSeparator:","`
	RedisPassword string   `env:"CATAN_ODDS_REDIS_PASSWORD"`
	RedisTLS      bool     `env:"CATAN_ODDS_REDIS_TLS"`

	BoardTTL time.Duration `env:"CATAN_ODDS_BOARD_TTL" envDefault:"24h"`
	PortMode string        `env:"CATAN_ODDS_PORT_MODE" envDefault:"standard"`
	LogLevel string        `env:"CATAN_ODDS_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env: "+err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("Port", c.Port, 1, 65535, vb)
	if c.BoardTTL <= 0 {
		vb.Field("BoardTTL", "must be positive")
	}
	for _, addr := range c.RedisAddrs {
		if strings.TrimSpace(addr) == "" {
			vb.Field("RedisAddrs", "must not contain empty addresses")
			break
		}
	}
	if _, err := catan.ParsePortMode(c.PortMode); err != nil {
		vb.Fieldf("PortMode", "unknown mode %q", c.PortMode)
	}
	if _, err := c.SlogLevel(); err != nil {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}

	return vb.Build()
}

// Mode returns the parsed port mode
func (c *Config) Mode() catan.PortMode {
	mode, _ := catan.ParsePortMode(c.PortMode)
	return mode
}

// SlogLevel parses LogLevel (debug, info, warn, error)
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}
