package sync

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"translation-sheet/core/sheets"

	"go.uber.org/zap"
)

const (
	backupPrefix     = "Backup "
	backupTimeLayout = "2006-01-02 15:04:05"
)

// Backup duplicates the live sheet under a timestamped title, then
// prunes old backups down to the configured retention count.
func Backup(ctx context.Context, client sheets.Client, cfg sheets.Config, log *zap.Logger) error {
	list, err := client.ListSheets(ctx)
	if err != nil {
		return err
	}

	target, err := TargetSheet(list, cfg.Sheet)
	if err != nil {
		return err
	}

	title := backupPrefix + time.Now().Format(backupTimeLayout)
	if err := client.DuplicateSheet(ctx, target.ID, title); err != nil {
		return err
	}
	log.Info("Created backup sheet", zap.String("title", title))

	_, err = Prune(ctx, client, cfg.BackupKeep, log)
	return err
}

// Prune deletes backup sheets beyond the keep most recent, ordered by
// the timestamp embedded in each title. Sheets whose title does not
// parse as a backup are never pruning candidates. Returns the number of
// sheets deleted.
func Prune(ctx context.Context, client sheets.Client, keep int, log *zap.Logger) (int, error) {
	list, err := client.ListSheets(ctx)
	if err != nil {
		return 0, err
	}

	type backup struct {
		sheet sheets.Sheet
		at    time.Time
	}
	var backups []backup
	for _, s := range list {
		if !strings.HasPrefix(s.Title, backupPrefix) {
			continue
		}
		at, err := time.Parse(backupTimeLayout, strings.TrimPrefix(s.Title, backupPrefix))
		if err != nil {
			continue
		}
		backups = append(backups, backup{sheet: s, at: at})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].at.After(backups[j].at)
	})

	if keep < 0 {
		keep = 0
	}
	if keep >= len(backups) {
		return 0, nil
	}

	deleted := 0
	for _, b := range backups[keep:] {
		if err := client.DeleteSheet(ctx, b.sheet.ID); err != nil {
			return deleted, err
		}
		log.Info("Pruned backup sheet", zap.String("title", b.sheet.Title))
		deleted++
	}
	return deleted, nil
}

// TargetSheet picks the sheet matching title, or the first sheet when
// title is empty.
func TargetSheet(list []sheets.Sheet, title string) (sheets.Sheet, error) {
	if len(list) == 0 {
		return sheets.Sheet{}, fmt.Errorf("spreadsheet has no sheets")
	}
	if title == "" {
		return list[0], nil
	}
	for _, s := range list {
		if s.Title == title {
			return s, nil
		}
	}
	return sheets.Sheet{}, fmt.Errorf("sheet %q not found in spreadsheet", title)
}
