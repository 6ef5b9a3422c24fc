// Package config provides configuration management for schedule-sync.
//
// It utilizes Viper for loading configuration from environment variables and an optional
// .env file (loaded with godotenv). Defaults come from `default` struct tags on each section.
//
// # Configuration Structure
//
//   - Server: HTTP server settings (port, API key)
//   - Database: run history connection details (mysql or sqlite)
//   - Storage: S3/MinIO credentials and bucket, used when feeds live in a bucket
//   - Log: Logging level and format
//   - Feeds: feed backend, directory or prefix, workbook sheet and first row
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Feeds.Sheet)
package config
