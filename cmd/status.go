package cmd

import (
	"translation-sheet/core/reconcile"
	"translation-sheet/core/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// statusCmd reports what the spreadsheet currently holds.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the spreadsheet's sheets and current row count",
	RunE:  runStatus,
}

func init() {
	RootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	ctx := cmd.Context()

	list, err := rt.client.ListSheets(ctx)
	if err != nil {
		return err
	}
	for _, s := range list {
		rt.log.Info("Sheet", zap.Int64("id", s.ID), zap.String("title", s.Title))
	}

	target, err := sync.TargetSheet(list, rt.cfg.Spreadsheet.Sheet)
	if err != nil {
		return err
	}

	raw, err := rt.client.GetValues(ctx, rt.cfg.Spreadsheet.ReadRange())
	if err != nil {
		return err
	}
	rows := reconcile.ParseRows(raw, rt.cfg.Spreadsheet.HasHeader())

	rt.log.Info("Target sheet",
		zap.String("title", target.Title),
		zap.Int("sheets", len(list)),
		zap.Int("data_rows", len(rows)),
	)
	return nil
}
