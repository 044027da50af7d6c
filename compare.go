package tinyvec

import (
	"encoding/binary"
	"hash/fnv"
	"io"
)

// Equal reports whether two Vecs hold equal elements in the same order.
//
// Inline capacity and storage mode take no part in the comparison: an inline
// Vec and a spilled Vec with identical logical contents are equal, as are
// Vecs created with different inline capacities.
func Equal[T comparable](a, b *Vec[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vec[T], eq func(a, b T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(*a.At(i), *b.At(i)) {
			return false
		}
	}
	return true
}

// Hash64 returns an FNV-1a digest of the Vec's contents.
//
// The digest is fed with (index, element) pairs in logical order: each
// element's hash input is prefixed with its varint-encoded position. Element
// order is therefore significant, and two Vecs holding the same elements in
// a different order digest differently. Equal Vecs digest equally, since the
// index is determined by position; inline capacity and storage mode do not
// enter the digest.
//
// item writes an element's hash input to the digest writer.
func Hash64[T any](v *Vec[T], item func(w io.Writer, item T)) uint64 {
	h := fnv.New64a()
	var prefix [binary.MaxVarintLen64]byte
	for i, elm := range v.All() {
		n := binary.PutUvarint(prefix[:], uint64(i))
		h.Write(prefix[:n])
		item(h, elm)
	}
	return h.Sum64()
}
