package hashmap

import "iter"

const (
	slotEmpty   = 0x80
	slotDeleted = 0xFE
	slotFull    = 0x01
)

type slot[V any] struct {
	// One of slotEmpty, slotDeleted or slotFull.
	// A deleted slot (tombstone) keeps the probe chain intact.
	ctrl uint8

	key   string
	value V
}

type table[V any] struct {
	slots []slot[V]

	capacity   int
	size       int
	tombstones int

	initialCapacity int
	sizeHint        int

	hashFunc HashFunc

	emptyV V
}

type Option[V any] func(t *table[V])

// Override default hash function.
func WithHashFunc[V any](f HashFunc) Option[V] {
	return func(t *table[V]) {
		t.hashFunc = f
	}
}

// Override the number of slots allocated first. Values <= 0 are ignored.
func WithInitialCapacity[V any](capacity int) Option[V] {
	return func(t *table[V]) {
		if capacity > 0 {
			t.initialCapacity = capacity
		}
	}
}

// Pre-size the table so that n entries fit without growing.
// It's applied on top of WithInitialCapacity, whatever the option order.
func WithCapacity[V any](n int) Option[V] {
	return func(t *table[V]) {
		t.sizeHint = n
	}
}

func (t *table[V]) init(opts ...Option[V]) {
	t.initialCapacity = DefaultInitialCapacity

	for _, opt := range opts {
		opt(t)
	}

	if t.sizeHint > 0 {
		t.initialCapacity = CapacityFor(t.initialCapacity, t.sizeHint)
	}

	if t.hashFunc == nil {
		t.hashFunc = Hash
	}

	t.alloc(t.initialCapacity)
}

func (t *table[V]) alloc(capacity int) {
	t.slots = make([]slot[V], capacity)
	t.capacity = capacity
	t.size = 0
	t.tombstones = 0

	t.Reset()
}

func (t *table[V]) hash(key string) uint32 {
	if t.hashFunc == nil {
		return Hash(key)
	}

	return t.hashFunc(key)
}

// find returns the index of the slot holding key, or -1.
func (t *table[V]) find(key string) int {
	if t.capacity == 0 {
		return -1
	}

	idx := bucket(t.hash(key), t.capacity)

	for p := 0; p < t.capacity; p++ {
		s := &t.slots[idx]

		switch s.ctrl {
		case slotEmpty:
			return -1
		case slotFull:
			if s.key == key {
				return idx
			}
		}

		// Tombstones are skipped, the key may live further along the chain.
		idx++
		if idx == t.capacity {
			idx = 0
		}
	}

	return -1
}

func (t *table[V]) get(key string) (V, bool) {
	idx := t.find(key)
	if idx < 0 {
		return t.emptyV, false
	}

	return t.slots[idx].value, true
}

// set inserts or overwrites key.
// Returns true if the key is new.
func (t *table[V]) set(key string, value V) bool {
	// The check goes first, so the probe below always has a free slot.
	if t.capacity == 0 {
		t.alloc(t.nextInitialCapacity())
	}
	if overLoaded(t.size, t.capacity) {
		t.rehash(t.capacity * 2)
	}

	var (
		idx = bucket(t.hash(key), t.capacity)

		target    int
		foundSlot bool
	)

	for p := 0; p < t.capacity; p++ {
		s := &t.slots[idx]

		// 1. Existing check
		if s.ctrl == slotFull && s.key == key {
			s.value = value
			return false
		}

		// 2. Cache first available slot
		if !foundSlot && s.ctrl != slotFull {
			target = idx
			foundSlot = true
		}

		// 3. Termination condition
		if s.ctrl == slotEmpty {
			break
		}

		idx++
		if idx == t.capacity {
			idx = 0
		}
	}

	if !foundSlot {
		// Unreachable while the load factor holds, every slot would be full.
		t.rehash(t.capacity * 2)
		return t.set(key, value)
	}

	s := &t.slots[target]
	if s.ctrl == slotDeleted {
		t.tombstones--
	}

	s.ctrl = slotFull
	s.key = key
	s.value = value
	t.size++

	return true
}

// delete marks the slot of key as a tombstone.
// Returns false if the key is absent.
func (t *table[V]) delete(key string) bool {
	idx := t.find(key)
	if idx < 0 {
		return false
	}

	// Mark as Deleted to preserve the probe chain
	t.slots[idx] = slot[V]{ctrl: slotDeleted}
	t.size--
	t.tombstones++

	return true
}

// rehash moves every live entry into a fresh table of the given capacity.
// Tombstones are dropped.
func (t *table[V]) rehash(capacity int) {
	old := t.slots

	t.alloc(capacity)

	for i := range old {
		s := &old[i]
		if s.ctrl != slotFull {
			continue
		}

		t.place(s.key, s.value)
	}
}

// place puts a key known to be absent into the first empty slot of its chain.
func (t *table[V]) place(key string, value V) {
	idx := bucket(t.hash(key), t.capacity)
	for t.slots[idx].ctrl != slotEmpty {
		idx++
		if idx == t.capacity {
			idx = 0
		}
	}

	t.slots[idx] = slot[V]{ctrl: slotFull, key: key, value: value}
	t.size++
}

func (t *table[V]) nextInitialCapacity() int {
	if t.initialCapacity > 0 {
		return t.initialCapacity
	}

	return DefaultInitialCapacity
}

func (t *table[V]) all() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i := range t.slots {
			s := &t.slots[i]
			if s.ctrl != slotFull {
				continue
			}

			if !yield(s.key, s.value) {
				return
			}
		}
	}
}

func (t *table[V]) Len() int {
	return t.size
}

func (t *table[V]) Cap() int {
	return t.capacity
}

// Empties every slot, keeping the capacity.
func (t *table[V]) Reset() {
	for i := range t.slots {
		t.slots[i] = slot[V]{ctrl: slotEmpty}
	}

	t.size = 0
	t.tombstones = 0
}

// Drops all tombstones by rehashing the live entries at the same capacity.
func (t *table[V]) Compact() {
	if t.tombstones == 0 {
		return
	}

	t.rehash(t.capacity)
}

// Releases the slot storage. The next insertion allocates the initial
// capacity again.
func (t *table[V]) Free() {
	t.slots = nil
	t.capacity = 0
	t.size = 0
	t.tombstones = 0
}

func (t *table[V]) Stats() Stats {
	st := Stats{
		Size:       t.size,
		Capacity:   t.capacity,
		Tombstones: t.tombstones,
	}

	if t.capacity > 0 {
		st.LoadFactor = float32(t.size) / float32(t.capacity)
		st.TombstonesCapacityRatio = float32(t.tombstones) / float32(t.capacity)
	}

	if t.size > 0 {
		st.TombstonesSizeRatio = float32(t.tombstones) / float32(t.size)
	}

	return st
}
