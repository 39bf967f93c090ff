package hashmap

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Basic(t *testing.T) {
	m := New[int]()

	// Set and Get
	isNew := m.Set("foo", 42)
	require.True(t, isNew)

	v, ok := m.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	// Update existing key
	isNew = m.Set("foo", 100)
	require.False(t, isNew)

	v, ok = m.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 100, v)
	assert.Equal(t, 1, m.Len())

	// Get non-existent key
	_, ok = m.Get("bar")
	assert.False(t, ok)
	assert.False(t, m.Has("bar"))

	// Delete
	deleted := m.Delete("foo")
	assert.True(t, deleted)

	_, ok = m.Get("foo")
	assert.False(t, ok)

	// Delete non-existent key
	deleted = m.Delete("foo")
	assert.False(t, deleted)
	assert.Equal(t, 0, m.Len())
}

func TestMap_Scenario(t *testing.T) {
	m := New[int]()

	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	v, ok := m.Get("b")
	require.True(t, ok)
	require.Equal(t, 2, v)

	require.True(t, m.Delete("b"))

	_, ok = m.Get("b")
	require.False(t, ok)

	v, ok = m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestMap_DeleteMissingIsIdempotent(t *testing.T) {
	m := New[int]()
	for i := range 50 {
		m.Set(strconv.Itoa(i), i)
	}

	before := m.Stats()
	for range 3 {
		require.False(t, m.Delete("missing"))
	}

	require.Equal(t, before, m.Stats())
	for i := range 50 {
		v, ok := m.Get(strconv.Itoa(i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestMap_RandomOps(t *testing.T) {
	tests := []struct {
		name string
		hash HashFunc
		keys int
	}{
		{"default hash", Hash, 300},
		{"colliding hash", func(k string) uint32 { return uint32(len(k)) }, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rnd := rand.New(rand.NewSource(42))
			m := New(WithHashFunc[int](tt.hash), WithInitialCapacity[int](8))
			oracle := make(map[string]int)

			for i := range 5000 {
				key := strconv.Itoa(rnd.Intn(tt.keys))

				if rnd.Intn(3) == 0 {
					_, exists := oracle[key]
					require.Equal(t, exists, m.Delete(key))
					delete(oracle, key)
				} else {
					_, exists := oracle[key]
					require.Equal(t, !exists, m.Set(key, i))
					oracle[key] = i
				}

				require.Less(t, m.Len()*10, m.Cap()*7)
			}

			require.Equal(t, len(oracle), m.Len())

			for i := range tt.keys {
				key := strconv.Itoa(i)
				want, exists := oracle[key]

				got, ok := m.Get(key)
				require.Equal(t, exists, ok, "key %s", key)
				require.Equal(t, want, got, "key %s", key)
			}

			seen := make(map[string]int)
			for k, v := range m.All() {
				seen[k] = v
			}
			require.Equal(t, oracle, seen)
		})
	}
}

func TestMap_Stats(t *testing.T) {
	m := New[int](WithInitialCapacity[int](16))

	stats := m.Stats()
	assert.Equal(t, 0, stats.Size)
	assert.Equal(t, 16, stats.Capacity)

	for i := range 8 {
		m.Set(strconv.Itoa(i), i)
	}
	for i := range 2 {
		m.Delete(strconv.Itoa(i))
	}

	stats = m.Stats()
	assert.Equal(t, 6, stats.Size)
	assert.Equal(t, 2, stats.Tombstones)
	assert.InDelta(t, 6.0/16, stats.LoadFactor, 1e-6)
	assert.InDelta(t, 2.0/16, stats.TombstonesCapacityRatio, 1e-6)
	assert.InDelta(t, 2.0/6, stats.TombstonesSizeRatio, 1e-6)
}

func TestMap_Compact(t *testing.T) {
	m := New[int](WithInitialCapacity[int](16))

	for i := range 10 {
		m.Set(strconv.Itoa(i), i*10)
	}

	for i := range 5 {
		m.Delete(strconv.Itoa(i))
	}

	stats := m.Stats()
	assert.Equal(t, 5, stats.Tombstones)

	m.Compact()

	stats = m.Stats()
	assert.Equal(t, 0, stats.Tombstones)
	assert.Equal(t, 5, stats.Size)
	assert.Equal(t, 16, stats.Capacity)

	// Verify remaining values
	for i := 5; i < 10; i++ {
		v, ok := m.Get(strconv.Itoa(i))
		require.True(t, ok)
		assert.Equal(t, i*10, v)
	}
}

func TestMap_Reset(t *testing.T) {
	m := New[int]()

	for i := range 5 {
		m.Set(strconv.Itoa(i), i)
	}

	assert.Equal(t, 5, m.Stats().Size)

	m.Reset()

	assert.Equal(t, 0, m.Stats().Size)

	_, ok := m.Get("0")
	assert.False(t, ok)
}

func TestMap_WithCapacity(t *testing.T) {
	m := New(WithCapacity[int](1000))
	capacity := m.Cap()

	for i := range 1000 {
		m.Set(strconv.Itoa(i), i)
	}

	require.Equal(t, capacity, m.Cap(), "pre-sized map grew")
}

func TestMap_WithHashFunc(t *testing.T) {
	customHash := func(k string) uint32 {
		return uint32(len(k) * 31)
	}

	m := New(WithHashFunc[int](customHash))

	m.Set("a", 100)
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 100, v)
}

func TestMap_Keys(t *testing.T) {
	m := New[struct{}]()
	m.Set("x", struct{}{})
	m.Set("y", struct{}{})

	var keys []string
	for k := range m.Keys() {
		keys = append(keys, k)
	}

	require.ElementsMatch(t, []string{"x", "y"}, keys)
}

func TestMap_ZeroValue(t *testing.T) {
	var m Map[string]

	_, ok := m.Get("foo")
	require.False(t, ok)
	require.False(t, m.Delete("foo"))

	m.Set("foo", "bar")
	v, ok := m.Get("foo")
	require.True(t, ok)
	require.Equal(t, "bar", v)
}
