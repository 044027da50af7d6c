/*
Package feed fills a tinyvec.Vec from a producer in the background.

Filling a large Vec need not block the caller: a Feeder pushes elements from
a goroutine of its own and broadcasts progress events, including the spill,
to any number of subscribers. The Vec remains single-owner throughout; it is
only handed back once the fill has completed.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, Joris Hadeler

Please refer to the License file in the repository root.
*/
package feed

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tinyvec.feed'
func tracer() tracing.Trace {
	return tracing.Select("tinyvec.feed")
}
