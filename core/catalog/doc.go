// Package catalog provides the filesystem side of the sync: reading a
// directory of per-group YAML translation files into a flat ordered
// snapshot of dotted keys, and writing resolved translations back out.
//
// # Layout
//
// The catalog holds one directory per locale under a configurable base
// path. Each YAML file in a locale directory is a group whose name
// becomes the first key segment; nested mappings inside contribute
// further dot-joined segments. Subdirectories nest the same way:
//
//	lang/en/auth.yaml        ->  auth.failed, auth.throttle
//	lang/en/admin/users.yaml ->  admin.users.title
//
// # Ordering
//
// Collection is depth-first: files sorted by name, keys in declaration
// order (the reader works on yaml.Node, not maps, precisely to keep that
// order), then subdirectories. The resulting Snapshot preserves
// insertion order, which downstream fixes the sheet's row order.
//
// # Writing
//
// WriteMapping emits keys sorted at every level with all leaves tagged
// as strings, so pulled files are deterministic and round-trip cleanly.
// The filesystem is abstracted behind afero; tests run against an
// in-memory fs.
package catalog
