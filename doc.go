/*
Package tinyvec provides a sequence container optimized for holding few
elements.

A Vec keeps up to a fixed number of elements in a preallocated slot array and
transparently moves them onto a growable heap buffer the moment that capacity
would be exceeded. Small collections thus pay no per-growth reallocation cost,
while no hard upper bound is placed on the element count.

The transition between the two representations, called the spill, happens at
most once over a Vec's lifetime and is one-way: popping elements never reverts
a spilled Vec to its slot array.

A Vec created by

	tinyvec.Vec[int]{}

is a valid object with an inline capacity of zero; its first push spills.

Due to the dual representation, Vecs have performance characteristics
differing from plain Go slices:

	Operation     |   Vec                  |  Slice
	--------------+------------------------+------------------
	Push          |   O(1), one O(N) spill |   amortized O(1)
	Pop           |   O(1)                 |   O(1)
	Index         |   O(1)                 |   O(1)
	Iterate       |   O(n)                 |   O(n)

For use cases with many short-lived small collections, Vecs avoid the
allocation churn of repeatedly grown slices.

Vecs are not safe for concurrent mutation; exactly one goroutine may mutate a
Vec at a time, and structural mutation invalidates in-flight iteration.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Joris Hadeler

Please refer to the License file in the repository root.
*/
package tinyvec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tinyvec'
func tracer() tracing.Trace {
	return tracing.Select("tinyvec")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
