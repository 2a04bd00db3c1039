// Package config holds the service configuration loaded from environment
// variables.
package config

import (
	"context"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

const (
	msgLoadingConfig    = "loading service configuration"
	msgConfigLoaded     = "configuration loaded successfully"
	errFailedLoadConfig = "failed to load configuration"
)

// Config is the full application configuration.
type Config struct {
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	HTTP     HTTPConfig     `yaml:"http"`
	Media    MediaConfig    `yaml:"media"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
}

// Load reads the configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)

	log.Info(ctx, msgLoadingConfig)

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Error(ctx, errFailedLoadConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFailedLoadConfig, err)
	}

	log.Info(ctx, msgConfigLoaded,
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("redis_host", cfg.Redis.Host),
		zap.String("http_address", cfg.HTTP.Address),
		zap.String("jwt_algorithm", cfg.JWT.Algorithm),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode))

	return &cfg, nil
}
