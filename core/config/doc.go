// Package config provides configuration management for the Tomato Manager storage service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Minio: object storage endpoint, credentials, bucket and external URL
//   - Log: logging level and format
//   - Database: MySQL connection details for the upload ledger
//
// Defaults are declared on the struct fields via 'default' tags and registered
// with Viper through reflection, so every key is overridable from the
// environment (nested keys map to underscore-joined variables, e.g.
// minio.bucket_name -> MINIO_BUCKET_NAME).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Minio.BucketName)
package config
