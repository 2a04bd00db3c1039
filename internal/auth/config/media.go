package config

// MediaConfig holds the object storage and media proxy settings.
type MediaConfig struct {
	S3Region       string `yaml:"s3_region" env:"PHOTOSHARE_S3_REGION" env-default:"us-east-1"`
	S3Endpoint     string `yaml:"s3_endpoint" env:"PHOTOSHARE_S3_ENDPOINT" env-default:""`
	S3Bucket       string `yaml:"s3_bucket" env:"PHOTOSHARE_S3_BUCKET" env-default:"photoshare"`
	S3AccessKey    string `yaml:"s3_access_key" env:"PHOTOSHARE_S3_ACCESS_KEY" env-default:""`
	S3SecretKey    string `yaml:"s3_secret_key" env:"PHOTOSHARE_S3_SECRET_KEY" env-default:""`
	PublicBaseURL  string `yaml:"public_base_url" env:"PHOTOSHARE_MEDIA_PUBLIC_BASE_URL" env-default:"http://localhost:9000"`
	MediaProxyBase string `yaml:"media_proxy_base" env:"PHOTOSHARE_MEDIA_PROXY_BASE" env-default:"http://localhost:8081/media"`
}
