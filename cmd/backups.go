package cmd

import (
	"translation-sheet/core/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var pruneKeep int

// backupsCmd is the parent command for backup sheet management.
var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "Manage the backup sheets created before each push",
}

// backupsPruneCmd runs backup retention standalone.
var backupsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete backup sheets beyond the retention count",
	RunE:  runBackupsPrune,
}

func init() {
	backupsPruneCmd.Flags().IntVar(&pruneKeep, "keep", -1, "Backups to retain (default: configured backup_keep)")

	backupsCmd.AddCommand(backupsPruneCmd)
	RootCmd.AddCommand(backupsCmd)
}

func runBackupsPrune(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	keep := pruneKeep
	if keep < 0 {
		keep = rt.cfg.Spreadsheet.BackupKeep
	}

	deleted, err := sync.Prune(cmd.Context(), rt.client, keep, rt.log)
	if err != nil {
		return err
	}
	rt.log.Info("Backup pruning complete", zap.Int("deleted", deleted), zap.Int("kept_at_most", keep))
	return nil
}
