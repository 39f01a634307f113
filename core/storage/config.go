package storage

import "fmt"

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the host of the storage service (no scheme, no port).
	Endpoint string `mapstructure:"endpoint" default:"localhost"`
	// Port is the port of the storage service.
	Port int `mapstructure:"port" default:"9000"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// BucketName is the name of the bucket to store files in.
	BucketName string `mapstructure:"bucket_name" default:"tomato-manager"`
	// ExternalURL is the public base URL under which a reverse proxy exposes
	// the storage service (e.g. https://example.com). Empty means URLs point
	// at the internal endpoint.
	ExternalURL string `mapstructure:"external_url" default:""`
	// Region is the location used when creating the bucket.
	Region string `mapstructure:"region" default:"us-east-1"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Address returns the host:port pair the client connects to.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Endpoint, c.Port)
}

// Scheme returns the URL scheme matching the UseSSL flag.
func (c Config) Scheme() string {
	if c.UseSSL {
		return "https"
	}
	return "http"
}

// BaseURL returns the internal base URL of the storage service.
func (c Config) BaseURL() string {
	return fmt.Sprintf("%s://%s", c.Scheme(), c.Address())
}
