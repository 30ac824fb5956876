package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned by ReadMapping when a file parses but does
// not hold a key-value mapping at the top level.
var ErrNotMapping = errors.New("file is not a key-value mapping")

// ListEntries returns the file and directory names directly under dir,
// each sorted by name.
func ListEntries(fsys afero.Fs, dir string) (files, dirs []string, err error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, nil, err
	}
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		} else {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	sort.Strings(dirs)
	return files, dirs, nil
}

// ReadMapping parses the YAML file at path and returns its top-level
// mapping node. The node form (rather than a map) preserves the file's
// key declaration order for snapshot collection.
func ReadMapping(fsys afero.Fs, path string) (*yaml.Node, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrNotMapping
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}
	return root, nil
}

// WriteMapping serializes the nested mapping to YAML at path, creating
// parent directories as needed. Keys are emitted sorted at every level
// and all leaves are tagged as strings, so a written file reads back
// byte-for-byte equivalent.
func WriteMapping(fsys afero.Fs, path string, root map[string]any) error {
	data, err := yaml.Marshal(buildNode(root))
	if err != nil {
		return fmt.Errorf("encode catalog file %s: %w", path, err)
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create catalog directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog file %s: %w", path, err)
	}
	return nil
}

// buildNode converts the nested mapping into a yaml.Node tree with
// deterministic key order.
func buildNode(value any) *yaml.Node {
	switch v := value.(type) {
	case map[string]any:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				buildNode(v[k]))
		}
		return node
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: fmt.Sprintf("%v", v)}
	}
}
