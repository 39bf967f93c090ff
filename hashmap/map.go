package hashmap

import "iter"

// Map is an open-addressing hash map with string keys.
//
// Collisions are resolved with linear probing. Deleted slots are marked with
// tombstones, which are reclaimed on growth or by Compact. The table grows
// by doubling before an insertion would push the load factor to 0.7.
//
// The zero value is an empty map ready to use. Map is not safe for
// concurrent use.
type Map[V any] struct {
	table[V]
}

// Returns a new, pre-allocated instance of the map.
func New[V any](opts ...Option[V]) *Map[V] {
	var m Map[V]
	m.init(opts...)

	return &m
}

// Returns the value stored for key.
func (m *Map[V]) Get(key string) (V, bool) {
	return m.get(key)
}

// Checks whether key is in the map.
func (m *Map[V]) Has(key string) bool {
	return m.find(key) >= 0
}

// Puts key into the map, overwriting the previous value if any.
// Returns whether the key is new.
func (m *Map[V]) Set(key string, value V) bool {
	return m.set(key, value)
}

// Deletes key from the map. Returns whether the key was present.
func (m *Map[V]) Delete(key string) bool {
	return m.delete(key)
}

// Iterates over the entries in slot order.
// The map must not be modified during the iteration.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return m.all()
}

// Iterates over the keys in slot order.
func (m *Map[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range m.all() {
			if !yield(k) {
				return
			}
		}
	}
}
