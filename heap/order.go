package heap

import "golang.org/x/exp/constraints"

// Greater orders a max-heap.
func Greater[T constraints.Ordered](a, b T) bool {
	return a > b
}

// Less orders a min-heap.
func Less[T constraints.Ordered](a, b T) bool {
	return a < b
}

// By orders elements by the key extracted from them.
func By[T any, K constraints.Ordered](key func(T) K, order func(a, b K) bool) func(a, b T) bool {
	return func(a, b T) bool {
		return order(key(a), key(b))
	}
}
