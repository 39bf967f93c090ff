package vec

import (
	"errors"
	"fmt"
	"iter"
)

// DefaultInitialCapacity is the capacity allocated on the first growth
// of a Vec, unless overridden with WithInitialCapacity.
const DefaultInitialCapacity = 256

var ErrOutOfRange = errors.New("vec: index out of range")

// Vec is a contiguous, growable sequence of T.
//
// Capacity is managed explicitly: it starts at the initial capacity and
// doubles whenever an append would exceed it. The zero value is an empty Vec
// ready to use.
//
// Vec is not safe for concurrent use.
type Vec[T any] struct {
	items      []T
	initialCap int
}

type Option func(cfg *config)

type config struct {
	initialCap int
}

// Override the capacity allocated on the first growth.
// Values <= 0 keep DefaultInitialCapacity.
func WithInitialCapacity(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.initialCap = n
		}
	}
}

// Returns a new Vec with the initial capacity already allocated.
func New[T any](opts ...Option) *Vec[T] {
	var v Vec[T]
	v.init(opts...)
	v.grow()

	return &v
}

func (v *Vec[T]) init(opts ...Option) {
	cfg := config{initialCap: DefaultInitialCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	v.initialCap = cfg.initialCap
}

// grow doubles the capacity, or allocates the initial one for an empty Vec.
func (v *Vec[T]) grow() {
	newCap := cap(v.items) * 2
	if newCap == 0 {
		newCap = v.initialCap
		if newCap <= 0 {
			newCap = DefaultInitialCapacity
		}
	}

	items := make([]T, len(v.items), newCap)
	copy(items, v.items)
	v.items = items
}

func (v *Vec[T]) Len() int {
	return len(v.items)
}

func (v *Vec[T]) Cap() int {
	return cap(v.items)
}

// Returns the element at index. Panics if index is out of range.
func (v *Vec[T]) At(index int) T {
	v.mustBeInRange(index)

	return v.items[index]
}

// Overwrites the element at index. Panics if index is out of range.
func (v *Vec[T]) Set(index int, item T) {
	v.mustBeInRange(index)

	v.items[index] = item
}

func (v *Vec[T]) Append(item T) {
	if len(v.items)+1 > cap(v.items) {
		v.grow()
	}

	v.items = append(v.items, item)
}

// Inserts item at index, shifting the suffix right by one.
// index == Len() is an append.
func (v *Vec[T]) Insert(index int, item T) error {
	if index < 0 || index > len(v.items) {
		return fmt.Errorf("%w: insert at %d with length %d", ErrOutOfRange, index, len(v.items))
	}

	if index == len(v.items) {
		v.Append(item)
		return nil
	}

	if len(v.items)+1 > cap(v.items) {
		v.grow()
	}

	v.items = v.items[:len(v.items)+1]
	copy(v.items[index+1:], v.items[index:])
	v.items[index] = item

	return nil
}

// Removes the element at index, shifting the suffix left by one.
// An out of range index is a no-op.
func (v *Vec[T]) Delete(index int) {
	if index < 0 || index >= len(v.items) {
		return
	}

	last := len(v.items) - 1
	copy(v.items[index:], v.items[index+1:])

	// Drop the reference held by the vacated tail slot.
	var zero T
	v.items[last] = zero
	v.items = v.items[:last]
}

// Removes and returns the last element.
// Returns false if the Vec is empty.
func (v *Vec[T]) Pop() (T, bool) {
	if len(v.items) == 0 {
		var zero T
		return zero, false
	}

	last := len(v.items) - 1
	item := v.items[last]
	v.Delete(last)

	return item, true
}

// Like Pop, but panics on an empty Vec.
func (v *Vec[T]) MustPop() T {
	item, ok := v.Pop()
	if !ok {
		panic("vec: pop from an empty vec")
	}

	return item
}

// Exchanges the elements at i and j. Panics if either is out of range.
func (v *Vec[T]) Swap(i, j int) {
	v.mustBeInRange(i)
	v.mustBeInRange(j)

	v.items[i], v.items[j] = v.items[j], v.items[i]
}

// Returns an independent copy with the same length and capacity.
func (v *Vec[T]) Clone() *Vec[T] {
	items := make([]T, len(v.items), cap(v.items))
	copy(items, v.items)

	return &Vec[T]{
		items:      items,
		initialCap: v.initialCap,
	}
}

// Returns a copy of the live elements.
func (v *Vec[T]) Values() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)

	return out
}

// Iterates over the live elements in index order.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range v.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Sets the length to zero, keeping the allocated capacity.
func (v *Vec[T]) Reset() {
	clear(v.items)
	v.items = v.items[:0]
}

// Releases the backing storage. The Vec stays usable and will allocate
// the initial capacity again on the next append.
func (v *Vec[T]) Free() {
	v.items = nil
}

func (v *Vec[T]) mustBeInRange(index int) {
	if index < 0 || index >= len(v.items) {
		panic(fmt.Sprintf("vec: index out of range [%d] with length %d", index, len(v.items)))
	}
}
