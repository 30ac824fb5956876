package sync

import (
	"context"
	"fmt"

	"translation-sheet/core/catalog"
	"translation-sheet/core/reconcile"
	"translation-sheet/core/sheets"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// headerTitles is the literal title row prepended before data rows when
// a header row is configured.
var headerTitles = []string{"Key", "Original Value", "Updated Value"}

// PushOptions controls one push invocation.
type PushOptions struct {
	// Clear blanks the target range before writing, forcing initial mode.
	Clear bool
	// ForceInitial skips diffing even when the sheet has prior data.
	ForceInitial bool
	// NoBackup skips the backup sheet normally taken before writing.
	NoBackup bool
}

// Pusher syncs the catalog into the spreadsheet.
type Pusher struct {
	sheet   sheets.Config
	catalog catalog.Config
	client  sheets.Client
	fs      afero.Fs
	log     *zap.Logger
}

// NewPusher creates a push orchestrator over the given collaborators.
func NewPusher(sheetCfg sheets.Config, catalogCfg catalog.Config, client sheets.Client, fsys afero.Fs, log *zap.Logger) *Pusher {
	return &Pusher{sheet: sheetCfg, catalog: catalogCfg, client: client, fs: fsys, log: log}
}

// Run performs one push: collect the snapshot, back up, optionally
// clear, read the existing sheet state, reconcile, write the result as
// one bulk range write, and blank any leftover rows below it. Returns
// the change classification.
//
// Two concurrent pushes race: each reads the remote state fresh and
// writes a complete replacement, so the last writer wins and silently
// discards the other's rows. Known limitation, no locking.
func (p *Pusher) Run(ctx context.Context, locale string, opts PushOptions) (reconcile.Stats, error) {
	snap, err := catalog.Collect(p.fs, p.catalog, locale, p.log)
	if err != nil {
		return reconcile.Stats{}, fmt.Errorf("collect catalog: %w", err)
	}
	if snap.Len() == 0 {
		p.log.Info("Catalog holds no translation keys, nothing to push", zap.String("locale", locale))
		return reconcile.Stats{}, nil
	}

	if !opts.NoBackup {
		if err := Backup(ctx, p.client, p.sheet, p.log); err != nil {
			return reconcile.Stats{}, fmt.Errorf("backup: %w", err)
		}
	}

	if opts.Clear {
		if err := p.client.ClearValues(ctx, p.sheet.ReadRange()); err != nil {
			return reconcile.Stats{}, fmt.Errorf("clear range: %w", err)
		}
	}

	// After a clear the sheet is empty by construction; skip the read.
	var raw [][]string
	if !opts.Clear {
		raw = p.readExisting(ctx)
	}

	// Empty or header-only sheets drop into initial mode.
	empty := len(raw) == 0 || (p.sheet.HasHeader() && len(raw) == 1)
	initialMode := opts.ForceInitial || opts.Clear || empty

	var rows []reconcile.Row
	var stats reconcile.Stats
	if initialMode {
		rows, stats = reconcile.Initial(snap)
	} else {
		policy, err := reconcile.ParsePolicy(p.sheet.DiffPolicy)
		if err != nil {
			return reconcile.Stats{}, err
		}
		records := reconcile.ParseRecords(raw, p.sheet.HasHeader())
		rows, stats = reconcile.Diff(snap, records, policy)
	}

	values := make([][]string, 0, len(rows)+1)
	if p.sheet.HasHeader() {
		values = append(values, headerTitles)
	}
	for _, r := range rows {
		values = append(values, []string{r.Key, r.Original, r.Updated})
	}

	if err := p.client.UpdateValues(ctx, p.sheet.WriteRange(len(values)), values); err != nil {
		return stats, fmt.Errorf("write rows: %w", err)
	}

	// The write only covers len(values) rows. When the previous row set
	// was larger, the surplus rows below it would survive and resurrect
	// removed keys on the next read, so blank them.
	if !opts.Clear {
		if err := p.client.ClearValues(ctx, p.sheet.TailRange(len(values))); err != nil {
			return stats, fmt.Errorf("clear stale rows: %w", err)
		}
	}

	p.log.Info("Push complete",
		zap.String("locale", locale),
		zap.Bool("initial", initialMode),
		zap.Int("rows", len(rows)),
		zap.Int("new", stats.New),
		zap.Int("changed", stats.Changed),
		zap.Int("unchanged", stats.Unchanged),
		zap.Int("removed", stats.Removed),
	)
	return stats, nil
}

// readExisting fetches the current sheet rows, treating any failure as
// an empty sheet. An unreadable sheet therefore lands in initial mode
// rather than aborting the push; the warning is the only trace.
func (p *Pusher) readExisting(ctx context.Context) [][]string {
	rows, err := p.client.GetValues(ctx, p.sheet.ReadRange())
	if err != nil {
		p.log.Warn("Could not read existing sheet state, treating it as empty", zap.Error(err))
		return nil
	}
	return rows
}
