package catalog

import "strings"

// Expand reinflates a flat dotted-key snapshot into nested maps. When an
// intermediate path segment already holds a scalar, the scalar is
// replaced with a fresh map: last write wins on structural conflicts.
func Expand(snap *Snapshot) map[string]any {
	root := make(map[string]any)
	for _, key := range snap.Keys() {
		value, _ := snap.Get(key)
		segments := strings.Split(key, ".")

		node := root
		for _, seg := range segments[:len(segments)-1] {
			child, ok := node[seg].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[seg] = child
			}
			node = child
		}
		node[segments[len(segments)-1]] = value
	}
	return root
}

// CountLeaves returns the number of scalar leaves under node.
func CountLeaves(node any) int {
	m, ok := node.(map[string]any)
	if !ok {
		return 1
	}
	n := 0
	for _, child := range m {
		n += CountLeaves(child)
	}
	return n
}
