package catalog

// Config holds configuration for the translation catalog on disk.
type Config struct {
	// Path is the base directory holding one subdirectory per locale.
	Path string `mapstructure:"path" default:"lang"`
	// Locale is the default locale synced when none is given on the CLI.
	Locale string `mapstructure:"locale" default:"en"`
}
