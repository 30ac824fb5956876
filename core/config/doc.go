// Package config provides configuration management for the sync tool.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file, with defaults declared as struct tags on the
// partial config structs.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided
// into subsections owned by their packages:
//   - Spreadsheet: spreadsheet id, token, sheet name, column letters,
//     header row, backup retention, diff policy
//   - Catalog: catalog base path and default locale
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
