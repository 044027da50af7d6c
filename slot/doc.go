/*
Package slot implements fixed-capacity element storage with explicit
per-slot occupancy.

An Array holds a preallocated run of slots plus an occupancy bitmap. A slot
is either occupied, holding exactly one element, or empty. Taking an element
out of a slot zeroes the slot, so a moved-out element can never resurface as
a stale duplicate.

The bitmap spans as many 64-bit words as the capacity requires, so arrays of
any size are supported.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, Joris Hadeler

Please refer to the License file in the repository root.
*/
package slot
