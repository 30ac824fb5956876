package cmd

import (
	"translation-sheet/core/sync"

	"github.com/spf13/cobra"
)

var (
	// Flags for the push command
	pushClear        bool
	pushForceInitial bool
	pushNoBackup     bool
)

// pushCmd writes the catalog into the spreadsheet.
var pushCmd = &cobra.Command{
	Use:   "push [locale]",
	Short: "Push catalog translations to the spreadsheet",
	Long: `Push collects the locale's translation files, merges them with the
rows already in the sheet, and writes the complete new row set.

Human edits in the updated column are preserved for keys whose source
value did not change; keys whose source value diverged get the new value
written over any pending edit. Keys no longer in the catalog are dropped
from the sheet (a backup sheet is taken first unless --no-backup).

Examples:
  # Push the default locale
  translation-sheet push

  # Push French, rebuilding the sheet from scratch
  translation-sheet push fr --clear

  # Push without diffing against the existing rows
  translation-sheet push --force-initial`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPush,
}

func init() {
	pushCmd.Flags().BoolVar(&pushClear, "clear", false, "Clear the target range before writing (forces initial mode)")
	pushCmd.Flags().BoolVar(&pushForceInitial, "force-initial", false, "Skip diffing even when the sheet has data")
	pushCmd.Flags().BoolVar(&pushNoBackup, "no-backup", false, "Skip the backup sheet normally taken before writing")

	RootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	locale := rt.cfg.Catalog.Locale
	if len(args) > 0 {
		locale = args[0]
	}

	pusher := sync.NewPusher(rt.cfg.Spreadsheet, rt.cfg.Catalog, rt.client, rt.fs, rt.log)
	_, err = pusher.Run(cmd.Context(), locale, sync.PushOptions{
		Clear:        pushClear,
		ForceInitial: pushForceInitial,
		NoBackup:     pushNoBackup,
	})
	return err
}
