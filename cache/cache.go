// Package cache provides the get-or-create map behind simplot's plot caches.
//
// A Map never evicts. Entries live until Clear is called or the Map is
// dropped. A miss is not an error: it is the path that creates the value.
//
// Map is not safe for concurrent use. simplot drives it from a single
// goroutine, the same way a simulation loop drives its plots.
package cache

// Stats reports how a Map has been used.
type Stats struct {
	Len     int
	Hits    uint64
	Misses  uint64
	HitRate float64
}

// Map is an unbounded get-or-create map that remembers insertion order.
type Map[K comparable, V any] struct {
	entries map[K]V
	order   []K

	hits   uint64
	misses uint64
}

// New creates an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{entries: make(map[K]V)}
}

// Get retrieves a value by key.
// Returns (value, true) if found, (zero, false) otherwise.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// GetOrCreate returns the value stored under key, calling create and
// storing its result on a miss.
func (m *Map[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := m.entries[key]; ok {
		m.hits++
		return v
	}
	m.misses++

	v := create()
	m.entries[key] = v
	m.order = append(m.order, key)
	return v
}

// TryGetOrCreate is GetOrCreate for constructors that can fail.
// Nothing is stored when create returns an error.
func (m *Map[K, V]) TryGetOrCreate(key K, create func() (V, error)) (V, error) {
	if v, ok := m.entries[key]; ok {
		m.hits++
		return v, nil
	}
	m.misses++

	v, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	m.entries[key] = v
	m.order = append(m.order, key)
	return v, nil
}

// Keys returns the stored keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, len(m.order))
	copy(keys, m.order)
	return keys
}

// Clear removes all entries. Statistics are kept.
func (m *Map[K, V]) Clear() {
	m.entries = make(map[K]V)
	m.order = nil
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Stats returns current usage statistics.
func (m *Map[K, V]) Stats() Stats {
	var hitRate float64
	if total := m.hits + m.misses; total > 0 {
		hitRate = float64(m.hits) / float64(total)
	}
	return Stats{
		Len:     len(m.entries),
		Hits:    m.hits,
		Misses:  m.misses,
		HitRate: hitRate,
	}
}

