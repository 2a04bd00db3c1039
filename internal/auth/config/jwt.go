package config

import "time"

// JWTConfig holds the token codec settings. The algorithm is validated
// against the HMAC allow-list when the codec is constructed, so a bad
// value fails at startup rather than at first request.
type JWTConfig struct {
	SecretKey       string `yaml:"secret_key" env:"PHOTOSHARE_JWT_SECRET_KEY" env-default:"super-secret-key-change-me-in-production"`
	Algorithm       string `yaml:"algorithm" env:"PHOTOSHARE_JWT_ALGORITHM" env-default:"HS256"`
	AccessTokenTTL  string `yaml:"access_token_ttl" env:"PHOTOSHARE_JWT_ACCESS_TOKEN_TTL" env-default:"60m"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl" env:"PHOTOSHARE_JWT_REFRESH_TOKEN_TTL" env-default:"168h"`
	EmailTokenTTL   string `yaml:"email_token_ttl" env:"PHOTOSHARE_JWT_EMAIL_TOKEN_TTL" env-default:"24h"`
	BCryptCost      int    `yaml:"bcrypt_cost" env:"PHOTOSHARE_BCRYPT_COST" env-default:"10"`
}

// GetAccessTokenTTL returns the access token lifetime.
func (c *JWTConfig) GetAccessTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.AccessTokenTTL)
	if err != nil {
		return 60 * time.Minute
	}
	return duration
}

// GetRefreshTokenTTL returns the refresh token lifetime.
func (c *JWTConfig) GetRefreshTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.RefreshTokenTTL)
	if err != nil {
		return 168 * time.Hour
	}
	return duration
}

// GetEmailTokenTTL returns the email token lifetime.
func (c *JWTConfig) GetEmailTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.EmailTokenTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}
