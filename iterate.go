package tinyvec

import "iter"

// Values returns a borrowing iterator over the elements in logical order.
//
// The sequence is finite and restartable; every range over it starts a fresh
// traversal at index 0. Structural mutation of the Vec invalidates an
// in-flight traversal.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(*v.store.at(i)) {
				return
			}
		}
	}
}

// All returns a borrowing iterator over index/element pairs in logical
// order.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, *v.store.at(i)) {
				return
			}
		}
	}
}

// Refs returns a borrowing iterator over element pointers in logical order,
// for in-place mutation during traversal.
//
// The yielded pointers are invalidated by structural mutation of the Vec.
func (v *Vec[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(v.store.at(i)) {
				return
			}
		}
	}
}

// Drain returns a consuming iterator over the elements in logical order.
//
// Drain detaches the contents from the Vec: the Vec is empty once Drain
// returns, while its storage mode is kept (a spilled Vec stays spilled).
// Elements are moved out one by one; slot storage is emptied in index order,
// a heap buffer is handed over to its own consuming traversal. The sequence
// is single-pass.
func (v *Vec[T]) Drain() iter.Seq[T] {
	if v == nil || v.store == nil || v.length == 0 {
		return func(yield func(T) bool) {}
	}
	length := v.length
	seq := v.store.drain()
	v.length = 0
	tracer().Debugf("vec of %d drained", length)
	return seq
}
