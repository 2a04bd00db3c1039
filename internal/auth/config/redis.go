package config

import (
	"fmt"
	"time"
)

// RedisConfig holds the settings of the cache and revocation store.
type RedisConfig struct {
	Host            string `yaml:"host" env:"PHOTOSHARE_REDIS_HOST" env-default:"localhost"`
	Port            int    `yaml:"port" env:"PHOTOSHARE_REDIS_PORT" env-default:"6379"`
	Password        string `yaml:"password" env:"PHOTOSHARE_REDIS_PASSWORD" env-default:""`
	DB              int    `yaml:"db" env:"PHOTOSHARE_REDIS_DB" env-default:"0"`
	SessionCacheTTL string `yaml:"session_cache_ttl" env:"PHOTOSHARE_REDIS_SESSION_CACHE_TTL" env-default:"300s"`
}

// GetAddr returns the host:port address.
func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// GetSessionCacheTTL returns the session snapshot lifetime.
func (r *RedisConfig) GetSessionCacheTTL() time.Duration {
	duration, err := time.ParseDuration(r.SessionCacheTTL)
	if err != nil {
		return 300 * time.Second
	}
	return duration
}
