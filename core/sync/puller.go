package sync

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"translation-sheet/core/catalog"
	"translation-sheet/core/reconcile"
	"translation-sheet/core/sheets"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// PullOptions controls one pull invocation.
type PullOptions struct {
	// DryRun resolves and reinflates but writes no files, reporting
	// per-group leaf counts instead.
	DryRun bool
}

// Puller syncs the spreadsheet back into the catalog.
type Puller struct {
	sheet   sheets.Config
	catalog catalog.Config
	client  sheets.Client
	fs      afero.Fs
	log     *zap.Logger
}

// NewPuller creates a pull orchestrator over the given collaborators.
func NewPuller(sheetCfg sheets.Config, catalogCfg catalog.Config, client sheets.Client, fsys afero.Fs, log *zap.Logger) *Puller {
	return &Puller{sheet: sheetCfg, catalog: catalogCfg, client: client, fs: fsys, log: log}
}

// Run performs one pull: read all rows, resolve each key's effective
// value (updated column, falling back to the baseline), reinflate the
// dotted keys into nested mappings, and write one YAML file per
// top-level group. A write failure aborts the run; groups already
// written stay written.
func (p *Puller) Run(ctx context.Context, locale string, opts PullOptions) error {
	raw, err := p.client.GetValues(ctx, p.sheet.ReadRange())
	if err != nil {
		return fmt.Errorf("read sheet: %w", err)
	}

	rows := reconcile.ParseRows(raw, p.sheet.HasHeader())
	if len(rows) == 0 {
		p.log.Info("Sheet holds no translation rows, nothing to pull", zap.String("locale", locale))
		return nil
	}

	resolved := reconcile.Resolve(rows)
	nested := catalog.Expand(resolved)
	groups := topGroups(resolved.Keys())

	if opts.DryRun {
		for _, g := range groups {
			if _, ok := nested[g].(map[string]any); !ok {
				p.log.Warn("Skipping key without a group segment", zap.String("key", g))
				continue
			}
			p.log.Info("Would write group",
				zap.String("group", g),
				zap.Int("keys", catalog.CountLeaves(nested[g])))
		}
		p.log.Info("Dry run complete, no files written",
			zap.String("locale", locale),
			zap.Int("groups", len(groups)))
		return nil
	}

	for _, g := range groups {
		tree, ok := nested[g].(map[string]any)
		if !ok {
			// A key with no dot has no group file to live in.
			p.log.Warn("Skipping key without a group segment", zap.String("key", g))
			continue
		}
		path := filepath.Join(p.catalog.Path, locale, g+".yaml")
		if err := p.writeGroup(path, tree); err != nil {
			return err
		}
		p.log.Info("Wrote group file",
			zap.String("path", path),
			zap.Int("keys", catalog.CountLeaves(nested[g])))
	}

	p.log.Info("Pull complete", zap.String("locale", locale), zap.Int("groups", len(groups)))
	return nil
}

func (p *Puller) writeGroup(path string, tree map[string]any) error {
	return catalog.WriteMapping(p.fs, path, tree)
}

// topGroups returns the unique first key segments in first-seen order.
func topGroups(keys []string) []string {
	seen := make(map[string]struct{})
	var groups []string
	for _, key := range keys {
		g, _, _ := strings.Cut(key, ".")
		if _, ok := seen[g]; !ok {
			seen[g] = struct{}{}
			groups = append(groups, g)
		}
	}
	return groups
}
