package storage

// Config points at the S3-compatible store that published datasets live in.
type Config struct {
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000" validate:"required"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds every dataset version, each under its own data prefix.
	Bucket string `mapstructure:"bucket" default:"recipes" validate:"required"`
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, TLS and response headers per request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30" validate:"gte=1"`
}
