// Package arena implements a fixed-capacity bump allocator with
// snapshot/restore semantics, used by the lexer and trie to hand out
// long-lived values without per-value heap churn. Snapshot/Restore
// unwinds a run of allocations cheaply; the parser does not use it and
// backtracks by saving its token cursor instead.
package arena

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is a generic bump allocator over a preallocated, fixed-capacity
// slice. Capacity is fixed at construction: Alloc never reallocates the
// backing slice, so pointers returned by Alloc stay valid for the life
// of the Arena, up until a Restore rewinds past them.
type Arena[T any] struct {
	data []T
}

// New creates an Arena with room for exactly capacity elements.
// Allocating past capacity panics; callers that expect to exceed a
// size should size capacity generously up front, the same tradeoff the
// teacher's Arena[T] makes with its capHint.
func New[T any](capacity uint) *Arena[T] {
	return &Arena[T]{data: make([]T, 0, capacity)}
}

// Alloc copies value into the arena and returns a pointer to the
// in-arena copy. The pointer is valid until the next Restore that
// rewinds past this allocation.
func (a *Arena[T]) Alloc(value T) *T {
	if len(a.data) == cap(a.data) {
		panic(fmt.Sprintf("arena: capacity %d exhausted", cap(a.data)))
	}
	a.data = append(a.data, value)
	return &a.data[len(a.data)-1]
}

// Len returns the number of elements currently allocated.
func (a *Arena[T]) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Sprintf("arena: length overflow: %v", err))
	}
	return n
}

// Cap returns the arena's fixed capacity.
func (a *Arena[T]) Cap() uint32 {
	n, err := safecast.Conv[uint32](cap(a.data))
	if err != nil {
		panic(fmt.Sprintf("arena: capacity overflow: %v", err))
	}
	return n
}

// Snapshot marks the current allocation position. Pass the returned
// value to Restore to free every allocation made since.
func (a *Arena[T]) Snapshot() uint32 {
	return a.Len()
}

// Restore rewinds the arena to a previously taken Snapshot. Pointers
// handed out by Alloc after the snapshot was taken must not be used
// after Restore returns.
func (a *Arena[T]) Restore(snapshot uint32) {
	if uint64(snapshot) > uint64(len(a.data)) {
		panic("arena: restore snapshot past current length")
	}
	var zero T
	for i := int(snapshot); i < len(a.data); i++ {
		a.data[i] = zero
	}
	a.data = a.data[:snapshot]
}

// Reset rewinds the arena to empty, equivalent to Restore(0).
func (a *Arena[T]) Reset() {
	a.Restore(0)
}
