// Package heap implements a generic binary heap over a vec.Vec.
//
// The ordering is a user-provided predicate greater(a, b), which reports
// whether a must sit closer to the root than b. A max-heap uses a > b,
// a min-heap uses a < b. The predicate only has to be deterministic for a
// given pair, it doesn't need to be a strict weak ordering.
//
// Basic usage:
//
//	h := heap.New(heap.Greater[int])
//	h.Push(5)
//	h.Push(9)
//	h.Push(1)
//
//	for h.Len() > 0 {
//	    v, _ := h.Pop()
//	    fmt.Println(v) // 9, 5, 1
//	}
//
// Elements can also be appended in bulk and ordered once with Heapify,
// which is cheaper than pushing them one by one:
//
//	h := heap.New(heap.By(func(p Person) int { return p.Age }, heap.Greater[int]))
//	for _, p := range people {
//	    h.Append(p)
//	}
//	h.Heapify()
//
// Popping from an empty heap is reported through the boolean result of Pop.
// MustPop panics instead.
package heap
