package catalog

// Snapshot is an ordered flat mapping from dotted translation key to
// string value. It is built fresh from the catalog on every run (or from
// the sheet on pull), is never mutated after collection finishes, and
// keys keep their insertion order so output row order is deterministic.
type Snapshot struct {
	keys   []string
	values map[string]string
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{values: make(map[string]string)}
}

// Add records a key/value pair. A duplicate key keeps its first
// position and takes the new value.
func (s *Snapshot) Add(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the value for key and whether it is present.
func (s *Snapshot) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present.
func (s *Snapshot) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Keys returns the keys in insertion order. The returned slice is the
// snapshot's own backing array and must not be modified.
func (s *Snapshot) Keys() []string {
	return s.keys
}

// Len returns the number of keys.
func (s *Snapshot) Len() int {
	return len(s.keys)
}
