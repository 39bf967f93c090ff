package hashmap

const (
	// DefaultInitialCapacity is the number of slots allocated by the first growth.
	DefaultInitialCapacity = 256

	// Load factor is loadFactorNum/loadFactorDen = 0.7.
	loadFactorNum = 7
	loadFactorDen = 10
)

// Reports whether a table with the given capacity must grow before
// accepting one more entry on top of size.
func overLoaded(size, capacity int) bool {
	return (size+1)*loadFactorDen >= capacity*loadFactorNum
}

// Returns the smallest capacity, doubled from initial, which holds n entries
// without exceeding the load factor.
func CapacityFor(initial, n int) int {
	if initial <= 0 {
		initial = DefaultInitialCapacity
	}

	capacity := initial
	for n > 0 && overLoaded(n-1, capacity) {
		capacity *= 2
	}

	return capacity
}
