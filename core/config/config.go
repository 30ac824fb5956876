package config

import (
	"fmt"
	"reflect"
	"strings"

	"translation-sheet/core/catalog"
	"translation-sheet/core/logger"
	"translation-sheet/core/sheets"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the sync tool.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Spreadsheet holds configuration for the remote spreadsheet backend.
	Spreadsheet sheets.Config `mapstructure:"spreadsheet"`
	// Catalog holds configuration for the translation files on disk.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. CI)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SPREADSHEET_ID -> spreadsheet.id)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings that must be present or well-formed
// before any remote call is attempted. Failures here are fatal at
// startup and surfaced verbatim.
func (c *Config) Validate() error {
	if c.Spreadsheet.ID == "" {
		return fmt.Errorf("spreadsheet id is not configured (set SPREADSHEET_ID)")
	}
	if c.Spreadsheet.Token == "" {
		return fmt.Errorf("spreadsheet token is not configured (set SPREADSHEET_TOKEN)")
	}
	for _, col := range []string{c.Spreadsheet.KeyColumn, c.Spreadsheet.OriginalColumn, c.Spreadsheet.UpdatedColumn} {
		if !sheets.ValidColumn(col) {
			return fmt.Errorf("invalid column letter %q", col)
		}
	}
	if c.Spreadsheet.HeaderRow < 0 {
		return fmt.Errorf("header row must be 0 (none) or positive, got %d", c.Spreadsheet.HeaderRow)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
