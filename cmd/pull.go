package cmd

import (
	"translation-sheet/core/sync"

	"github.com/spf13/cobra"
)

var pullDryRun bool

// pullCmd writes the spreadsheet back into the catalog.
var pullCmd = &cobra.Command{
	Use:   "pull [locale]",
	Short: "Pull spreadsheet translations back into the catalog",
	Long: `Pull reads every row from the sheet, resolves each key's effective
value (the updated column when filled in, the original otherwise), and
rewrites one translation file per top-level group.

Examples:
  # Pull the default locale
  translation-sheet pull

  # See what would be written without touching any file
  translation-sheet pull --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPull,
}

func init() {
	pullCmd.Flags().BoolVar(&pullDryRun, "dry-run", false, "Report per-group counts without writing files")

	RootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	locale := rt.cfg.Catalog.Locale
	if len(args) > 0 {
		locale = args[0]
	}

	puller := sync.NewPuller(rt.cfg.Spreadsheet, rt.cfg.Catalog, rt.client, rt.fs, rt.log)
	return puller.Run(cmd.Context(), locale, sync.PullOptions{DryRun: pullDryRun})
}
