package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/catan-odds/internal/config"
	"github.com/KirkDiggler/catan-odds/internal/entities/catan"
	"github.com/KirkDiggler/catan-odds/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(50051, cfg.Port)
	s.Empty(cfg.RedisAddrs)
	s.Equal(24*time.Hour, cfg.BoardTTL)
	s.Equal(catan.PortModeStandard, cfg.Mode())

	level, err := cfg.SlogLevel()
	s.Require().NoError(err)
	s.Equal(slog.LevelInfo, level)
}

func (s *ConfigTestSuite) TestFromEnvironment() {
	s.T().Setenv("CATAN_ODDS_PORT", "6000")
	s.T().Setenv("CATAN_ODDS_REDIS_ADDR", "redis-a:6379,redis-b:6379")
	s.T().Setenv("CATAN_ODDS_BOARD_TTL", "90m")
	s.T().Setenv("CATAN_ODDS_PORT_MODE", "legacy")
	s.T().Setenv("CATAN_ODDS_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(6000, cfg.Port)
	s.Equal([]string{"redis-a:6379", "redis-b:6379"}, cfg.RedisAddrs)
	s.Equal(90*time.Minute, cfg.BoardTTL)
	s.Equal(catan.PortModeLegacy, cfg.Mode())

	level, err := cfg.SlogLevel()
	s.Require().NoError(err)
	s.Equal(slog.LevelDebug, level)
}

func (s *ConfigTestSuite) TestParseError() {
	s.T().Setenv("CATAN_ODDS_PORT", "not-an-int")

	_, err := config.Load()
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "parse env:")
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		cfg    config.Config
		errMsg string
	}{
		{
			name:   "port out of range",
			cfg:    config.Config{Port: 70000, BoardTTL: time.Hour, LogLevel: "info"},
			errMsg: "Port: must be between 1 and 65535",
		},
		{
			name:   "zero ttl",
			cfg:    config.Config{Port: 1, LogLevel: "info"},
			errMsg: "BoardTTL: must be positive",
		},
		{
			name:   "bad port mode",
			cfg:    config.Config{Port: 1, BoardTTL: time.Hour, PortMode: "generous", LogLevel: "info"},
			errMsg: `PortMode: unknown mode "generous"`,
		},
		{
			name:   "bad log level",
			cfg:    config.Config{Port: 1, BoardTTL: time.Hour, LogLevel: "loud"},
			errMsg: `LogLevel: unknown level "loud"`,
		},
		{
			name:   "empty redis address",
			cfg:    config.Config{Port: 1, BoardTTL: time.Hour, LogLevel: "info", RedisAddrs: []string{"a:1", " "}},
			errMsg: "RedisAddrs: must not contain empty addresses",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.cfg.Validate()
			s.Require().Error(err)
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}
