package cmd

import (
	"fmt"
	"os"

	"translation-sheet/core/config"
	"translation-sheet/core/logger"
	"translation-sheet/core/sheets"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "translation-sheet",
	Short: "Translation Sheet Sync",
	Long: `Translation Sheet synchronizes a directory of translation files with
a shared spreadsheet, so translators edit rows while the code keeps
editing files. Push writes the catalog to the sheet, pull writes the
sheet back to the catalog.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			// Log the error with structured logger (Console encoding will make it pretty)
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// runtime bundles the collaborators every sync command needs.
type runtime struct {
	cfg    *config.Config
	log    *zap.Logger
	client sheets.Client
	fs     afero.Fs
}

func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := sheets.NewClient(cfg.Spreadsheet)
	if err != nil {
		return nil, err
	}

	return &runtime{cfg: cfg, log: l, client: client, fs: afero.NewOsFs()}, nil
}
