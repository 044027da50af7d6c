package tinyvec

/*
BSD 3-Clause License

Copyright (c) 2026, Joris Hadeler

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/jooris-hadeler/tiny-vec/slot"
)

// Vec stores a sequence of elements, holding up to a fixed number of them in
// a preallocated slot array before spilling onto a growable heap buffer.
//
// A Vec created by
//
//	Vec[int]{}
//
// is a valid object with an inline capacity of zero.
//
// The inline capacity is fixed at construction; see New. Methods that take or
// return positions use logical indices, counted in push order.
type Vec[T any] struct {
	store    storage[T]
	length   int
	capacity int
}

// storage is the active representation variant of a Vec. Exactly one
// implementation is held at a time: an inline slot array before the spill, a
// growable buffer afterwards.
type storage[T any] interface {
	spilled() bool
	at(i int) *T
	put(i int, item T)
	take(i int) T
	drain() iter.Seq[T]
}

// New creates an empty Vec with the given inline capacity.
//
// Up to stackCapacity elements are held without further allocation; the
// element exceeding it triggers the spill. A negative capacity is clamped
// to zero.
func New[T any](stackCapacity int) *Vec[T] {
	if stackCapacity < 0 {
		stackCapacity = 0
	}
	return &Vec[T]{
		store:    &inlineStore[T]{slots: slot.New[T](stackCapacity)},
		capacity: stackCapacity,
	}
}

// FromSeq creates a Vec with the given inline capacity and fills it from a
// finite producer, appending in encounter order.
//
// The resulting length equals the producer's element count; the Vec spills
// if that count exceeds the inline capacity.
func FromSeq[T any](stackCapacity int, seq iter.Seq[T]) *Vec[T] {
	v := New[T](stackCapacity)
	v.Extend(seq)
	return v
}

// FromSlice creates a Vec with the given inline capacity holding the given
// elements in order.
func FromSlice[T any](stackCapacity int, items ...T) *Vec[T] {
	v := New[T](stackCapacity)
	for _, item := range items {
		v.Push(item)
	}
	return v
}

// spill moves the inline elements onto a heap buffer when the slot capacity
// is exhausted. It runs at most once per Vec and is inert on every later
// call.
func (v *Vec[T]) spill() {
	if v.length < v.capacity || v.HasSpilled() {
		return
	}
	buf := make([]T, 0, v.length+1)
	if v.store != nil {
		for item := range v.store.drain() {
			buf = append(buf, item)
		}
	}
	assert(len(buf) == v.length, "spill must carry over every element")
	v.store = &heapStore[T]{items: buf}
	tracer().Debugf("vec of %d spilled onto the heap", v.length)
}

// Push appends item at the end of the sequence.
//
// If the inline capacity is exhausted, the Vec first spills onto the heap;
// this costs O(len) and happens at most once. Push itself never fails;
// running out of memory aborts the process like any other Go allocation.
func (v *Vec[T]) Push(item T) {
	v.spill()
	v.store.put(v.length, item)
	v.length++
}

// Pop removes and returns the last element.
//
// The boolean is false if the Vec is empty. Popping neither shrinks the heap
// buffer nor reverts a spilled Vec to inline storage.
func (v *Vec[T]) Pop() (T, bool) {
	if v.length == 0 {
		var none T
		return none, false
	}
	v.length--
	return v.store.take(v.length), true
}

// Get returns the element at logical index i.
//
// The boolean is false if i is out of bounds.
func (v *Vec[T]) Get(i int) (T, bool) {
	if p := v.At(i); p != nil {
		return *p, true
	}
	var none T
	return none, false
}

// At returns a pointer to the element at logical index i for in-place
// mutation, or nil if i is out of bounds.
//
// The pointer is invalidated by any structural mutation of the Vec.
func (v *Vec[T]) At(i int) *T {
	if v == nil || i < 0 || i >= v.length {
		return nil
	}
	return v.store.at(i)
}

// Set overwrites the element at logical index i and reports whether the
// index was in bounds.
func (v *Vec[T]) Set(i int, item T) bool {
	p := v.At(i)
	if p == nil {
		return false
	}
	*p = item
	return true
}

// HasSpilled reports whether the Vec has moved onto the heap.
func (v *Vec[T]) HasSpilled() bool {
	return v != nil && v.store != nil && v.store.spilled()
}

// IsEmpty reports whether the Vec holds no elements.
func (v *Vec[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Len returns the number of elements in the Vec.
func (v *Vec[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.length
}

// Cap returns the inline capacity the Vec was created with.
func (v *Vec[T]) Cap() int {
	if v == nil {
		return 0
	}
	return v.capacity
}

// Extend appends every element of a finite producer in encounter order.
//
// It is equivalent to pushing each element individually.
func (v *Vec[T]) Extend(seq iter.Seq[T]) {
	for item := range seq {
		v.Push(item)
	}
}

// Clone returns a copy of the Vec holding the same elements.
//
// Storage mode and inline capacity are preserved. The copy is shallow: if T
// is a pointer or reference type, the referenced data is shared.
func (v *Vec[T]) Clone() *Vec[T] {
	if v == nil {
		return nil
	}
	out := New[T](v.capacity)
	out.length = v.length
	switch st := v.store.(type) {
	case *heapStore[T]:
		out.store = &heapStore[T]{items: append([]T(nil), st.items...)}
	case *inlineStore[T]:
		for i := 0; i < v.length; i++ {
			out.store.put(i, *st.at(i))
		}
	}
	return out
}

// --- Inline storage --------------------------------------------------------

// inlineStore is the pre-spill representation: a fixed slot array in which
// slots 0..length are occupied in logical order.
type inlineStore[T any] struct {
	slots *slot.Array[T]
}

func (s *inlineStore[T]) spilled() bool { return false }

func (s *inlineStore[T]) at(i int) *T {
	return s.slots.At(i)
}

func (s *inlineStore[T]) put(i int, item T) {
	err := s.slots.Put(i, item)
	assert(err == nil, "inline put must hit an empty slot below capacity")
}

func (s *inlineStore[T]) take(i int) T {
	item, err := s.slots.Take(i)
	assert(err == nil, "inline take must hit an occupied slot")
	return item
}

func (s *inlineStore[T]) drain() iter.Seq[T] {
	// detach the slot array; an abandoned traversal must not leave
	// occupied slots behind in the store
	detached := s.slots
	s.slots = slot.New[T](detached.Cap())
	return detached.Drain()
}

// --- Heap storage ----------------------------------------------------------

// heapStore is the post-spill representation: logical index i maps 1:1 to
// buffer index i.
type heapStore[T any] struct {
	items []T
}

func (s *heapStore[T]) spilled() bool { return true }

func (s *heapStore[T]) at(i int) *T {
	return &s.items[i]
}

func (s *heapStore[T]) put(i int, item T) {
	assert(i == len(s.items), "heap put must append at the buffer tail")
	s.items = append(s.items, item)
}

func (s *heapStore[T]) take(i int) T {
	assert(i == len(s.items)-1, "heap take must remove the buffer tail")
	item := s.items[i]
	var none T
	s.items[i] = none // do not retain the element beyond its removal
	s.items = s.items[:i]
	return item
}

func (s *heapStore[T]) drain() iter.Seq[T] {
	items := s.items
	s.items = nil
	return func(yield func(T) bool) {
		var none T
		for i, item := range items {
			items[i] = none
			if !yield(item) {
				return
			}
		}
	}
}
