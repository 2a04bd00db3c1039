package config

// HTTPConfig holds the HTTP server settings.
type HTTPConfig struct {
	Address     string `yaml:"address" env:"PHOTOSHARE_HTTP_ADDRESS" env-default:":8080"`
	BodyLimit   int    `yaml:"body_limit" env:"PHOTOSHARE_HTTP_BODY_LIMIT" env-default:"10485760"`
	ReadTimeout string `yaml:"read_timeout" env:"PHOTOSHARE_HTTP_READ_TIMEOUT" env-default:"10s"`
}
