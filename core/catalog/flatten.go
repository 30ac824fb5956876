package catalog

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Collect walks the locale's catalog directory and returns the flat
// ordered snapshot of every translation key it holds. Traversal order:
// files sorted by name, then each file's keys in declaration order, then
// subdirectories sorted by name. Files that do not parse into a mapping
// are skipped with an info log; a missing locale directory is an error.
func Collect(fsys afero.Fs, cfg Config, locale string, log *zap.Logger) (*Snapshot, error) {
	snap := NewSnapshot()
	if err := collectDir(fsys, filepath.Join(cfg.Path, locale), "", snap, log); err != nil {
		return nil, err
	}
	return snap, nil
}

func collectDir(fsys afero.Fs, dir, prefix string, snap *Snapshot, log *zap.Logger) error {
	files, dirs, err := ListEntries(fsys, dir)
	if err != nil {
		return err
	}

	for _, name := range files {
		ext := filepath.Ext(name)
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		path := filepath.Join(dir, name)
		root, err := ReadMapping(fsys, path)
		if err != nil {
			// Malformed or non-mapping files are skipped, not fatal.
			if errors.Is(err, ErrNotMapping) {
				log.Info("Skipping file without a top-level mapping", zap.String("path", path))
			} else {
				log.Warn("Skipping unreadable catalog file", zap.String("path", path), zap.Error(err))
			}
			continue
		}
		Flatten(joinKey(prefix, strings.TrimSuffix(name, ext)), root, snap)
	}

	for _, name := range dirs {
		if err := collectDir(fsys, filepath.Join(dir, name), joinKey(prefix, name), snap, log); err != nil {
			return err
		}
	}
	return nil
}

// Flatten walks the mapping node depth-first and adds every scalar leaf
// to snap under its dot-joined path. Leaves that are neither scalars nor
// mappings (sequences, aliases) have no sheet representation and are
// skipped silently.
func Flatten(prefix string, node *yaml.Node, snap *Snapshot) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		k := node.Content[i]
		v := node.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			continue
		}
		key := joinKey(prefix, k.Value)
		switch v.Kind {
		case yaml.ScalarNode:
			snap.Add(key, v.Value)
		case yaml.MappingNode:
			Flatten(key, v, snap)
		}
	}
}

func joinKey(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "." + segment
}
