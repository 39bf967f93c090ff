package hashmap

const (
	hashSeed  uint32 = 2166136261
	hashPrime uint32 = 16777619
)

type HashFunc func(key string) uint32

// Hash is the default hash function.
//
// It's 32-bit FNV-1: multiply, then xor, on every byte. Not FNV-1a.
// Values must stay bit-compatible, so don't swap the order.
func Hash(key string) uint32 {
	h := hashSeed
	for i := 0; i < len(key); i++ {
		h *= hashPrime
		h ^= uint32(key[i])
	}

	return h
}

// Returns the home bucket of a hash in a table of the given capacity.
func bucket(hash uint32, capacity int) int {
	return int(uint64(hash) % uint64(capacity))
}
