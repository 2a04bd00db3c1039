package config

import "github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"

// LoggingConfig holds the logger settings.
type LoggingConfig struct {
	Level string `yaml:"level" env:"PHOTOSHARE_LOG_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"PHOTOSHARE_LOG_MODE" env-default:"production"`
}

// GetEnvironment maps the configured mode to a logger environment.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if l.Mode == "development" {
		return logger.Development
	}
	return logger.Production
}
