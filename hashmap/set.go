package hashmap

import "iter"

type SetOption = Option[struct{}]

// Set is a set of strings sharing the Map table layout, it just doesn't
// store values, only keys.
type Set struct {
	table[struct{}]
}

// Returns a new, pre-allocated instance of the set.
func NewSet(opts ...SetOption) *Set {
	var s Set
	s.init(opts...)

	return &s
}

// Checks whether key is in the set.
func (s *Set) Has(key string) bool {
	return s.find(key) >= 0
}

// Puts a key in the set. Returns whether the key is new.
func (s *Set) Put(key string) bool {
	return s.set(key, struct{}{})
}

// Deletes key from the set. Returns whether the key was present.
func (s *Set) Delete(key string) bool {
	return s.delete(key)
}

// Iterates over the keys in slot order.
// The set must not be modified during the iteration.
func (s *Set) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range s.all() {
			if !yield(k) {
				return
			}
		}
	}
}
