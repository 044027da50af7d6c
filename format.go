package tinyvec

import "fmt"

// Slice returns the logical contents as a freshly allocated slice.
//
// The copy is shallow; mutating the returned slice does not affect the Vec.
func (v *Vec[T]) Slice() []T {
	out := make([]T, 0, v.Len())
	for item := range v.Values() {
		out = append(out, item)
	}
	return out
}

// String implements fmt.Stringer for easier debugging.
//
// The rendering is an ordered list of the logical elements; its exact shape
// carries no stability guarantee.
func (v *Vec[T]) String() string {
	return fmt.Sprintf("%v", v.Slice())
}
