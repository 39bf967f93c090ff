package heap

import (
	"fmt"

	"github.com/homier/carr/vec"
)

const nilOrder = "heap: nil order"

// Heap is a binary heap stored in a 0-indexed vec.Vec.
//
// The zero value has no order and isn't usable, create heaps with New or From.
type Heap[T any] struct {
	elems   vec.Vec[T]
	greater func(a, b T) bool
}

// New creates an empty heap ordered by greater.
// The options configure the backing Vec.
// Panics if greater is nil.
func New[T any](greater func(a, b T) bool, opts ...vec.Option) *Heap[T] {
	if greater == nil {
		panic(nilOrder)
	}

	return &Heap[T]{
		elems:   *vec.New[T](opts...),
		greater: greater,
	}
}

// From creates a heap holding a copy of items, already heapified.
func From[T any](items []T, greater func(a, b T) bool, opts ...vec.Option) *Heap[T] {
	h := New(greater, opts...)
	for _, item := range items {
		h.elems.Append(item)
	}
	h.Heapify()

	return h
}

func parent(i int) int { return (i - 1) >> 1 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return h.elems.Len()
}

// Append adds v at the end without restoring the heap order.
// Call Heapify once all elements are appended.
func (h *Heap[T]) Append(v T) {
	h.elems.Append(v)
}

// Heapify restores the heap order over the whole backing array.
//
// Internal nodes are sifted down from the last one to the root, so both
// subtrees of a node are already heaps when it's visited.
func (h *Heap[T]) Heapify() {
	for i := h.elems.Len()/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// Push adds v and restores the heap order.
func (h *Heap[T]) Push(v T) {
	h.elems.Append(v)
	h.siftUp(h.elems.Len() - 1)
}

// Pop removes and returns the most preferred element.
// Returns false if the heap is empty.
func (h *Heap[T]) Pop() (T, bool) {
	if h.elems.Len() <= 1 {
		return h.elems.Pop()
	}

	h.elems.Swap(0, h.elems.Len()-1)
	v, _ := h.elems.Pop()
	h.siftDown(0)

	return v, true
}

// MustPop is like Pop, but panics on an empty heap.
func (h *Heap[T]) MustPop() T {
	v, ok := h.Pop()
	if !ok {
		panic("heap: pop from an empty heap")
	}

	return v
}

// Peek returns the most preferred element without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if h.elems.Len() == 0 {
		var zero T
		return zero, false
	}

	return h.elems.At(0), true
}

// Increase writes v at index i and moves it up towards the root.
// v must not be less preferred than the value it replaces.
// Panics if i is out of range.
func (h *Heap[T]) Increase(i int, v T) {
	if i < 0 || i >= h.elems.Len() {
		panic(fmt.Sprintf("heap: index out of range [%d] with length %d", i, h.elems.Len()))
	}

	h.elems.Set(i, v)
	h.siftUp(i)
}

// Values returns a copy of the elements in heap order.
func (h *Heap[T]) Values() []T {
	return h.elems.Values()
}

// Clone returns an independent copy of the heap.
func (h *Heap[T]) Clone() *Heap[T] {
	return &Heap[T]{
		elems:   *h.elems.Clone(),
		greater: h.greater,
	}
}

// Free releases the backing storage.
func (h *Heap[T]) Free() {
	h.elems.Free()
}

// prefers reports whether the element at i goes above the one at j.
func (h *Heap[T]) prefers(i, j int) bool {
	if h.greater == nil {
		panic(nilOrder)
	}

	return h.greater(h.elems.At(i), h.elems.At(j))
}

// siftUp moves the element at i up while its parent is less preferred.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if !h.prefers(i, p) {
			return
		}

		h.elems.Swap(i, p)
		i = p
	}
}

// siftDown moves the element at i down along the path of preferred
// children, until both children are not preferred over it.
func (h *Heap[T]) siftDown(i int) {
	n := h.elems.Len()

	for {
		best := i

		if l := left(i); l < n && h.prefers(l, best) {
			best = l
		}
		if r := right(i); r < n && h.prefers(r, best) {
			best = r
		}

		if best == i {
			return
		}

		h.elems.Swap(i, best)
		i = best
	}
}
