package slot

import (
	"iter"
	"math/bits"
)

// Bitmap is one word of the occupancy index.
//
// Bit i of word w corresponds to slot w*64+i.
type Bitmap = uint64

const wordBits = 64

// Array stores elements in fixed-capacity slots with occupancy tracking.
//
// The backing storage is allocated once at construction and never grows.
type Array[T any] struct {
	occupied []Bitmap
	slots    []T
}

// New creates an array with the given slot capacity, all slots empty.
//
// A negative capacity is clamped to zero.
func New[T any](capacity int) *Array[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Array[T]{
		occupied: make([]Bitmap, (capacity+wordBits-1)/wordBits),
		slots:    make([]T, capacity),
	}
}

// Cap returns the slot capacity.
func (a *Array[T]) Cap() int {
	return len(a.slots)
}

// Count returns the number of occupied slots.
func (a *Array[T]) Count() int {
	n := 0
	for _, w := range a.occupied {
		n += bits.OnesCount64(w)
	}
	return n
}

// Occupied reports whether slot i holds an element.
func (a *Array[T]) Occupied(i int) bool {
	if i < 0 || i >= len(a.slots) {
		return false
	}
	return a.occupied[i/wordBits]&bit(i) != 0
}

// Put stores item in slot i.
//
// Returns ErrIndexOutOfBounds for an invalid index and ErrSlotOccupied if the
// slot already holds an element.
func (a *Array[T]) Put(i int, item T) error {
	if i < 0 || i >= len(a.slots) {
		return ErrIndexOutOfBounds
	}
	if a.Occupied(i) {
		return ErrSlotOccupied
	}
	a.slots[i] = item
	a.occupied[i/wordBits] |= bit(i)
	return nil
}

// Take moves the element out of slot i, leaving the slot empty.
//
// The slot is zeroed so the element cannot surface again through the array.
// Returns ErrIndexOutOfBounds for an invalid index and ErrSlotEmpty if the
// slot holds no element.
func (a *Array[T]) Take(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(a.slots) {
		return zero, ErrIndexOutOfBounds
	}
	if !a.Occupied(i) {
		return zero, ErrSlotEmpty
	}
	item := a.slots[i]
	a.slots[i] = zero
	a.occupied[i/wordBits] &^= bit(i)
	return item, nil
}

// At returns a pointer to the element in slot i, or nil if the slot is empty
// or the index invalid.
func (a *Array[T]) At(i int) *T {
	if !a.Occupied(i) {
		return nil
	}
	return &a.slots[i]
}

// Drain returns a consuming traversal over the occupied slots in index order.
//
// Every yielded element is taken out of its slot before being handed to the
// consumer; an abandoned traversal leaves the remaining slots untouched.
func (a *Array[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range a.slots {
			if !a.Occupied(i) {
				continue
			}
			item, err := a.Take(i)
			if err != nil {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}

// --- Bitmap helpers --------------------------------------------------------

func bit(i int) Bitmap {
	return Bitmap(1) << uint(i%wordBits)
}
