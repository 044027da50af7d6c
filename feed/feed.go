package feed

/*
BSD 3-Clause License

Copyright (c) 2026, Joris Hadeler

Please refer to the License file in the repository root.

*/

import (
	"context"
	"iter"

	"github.com/guiguan/caster"
	tinyvec "github.com/jooris-hadeler/tiny-vec"
)

// EventKind classifies fill progress events.
type EventKind int

const (
	// ItemAppended signals that one element has been pushed.
	ItemAppended EventKind = iota
	// Spilled signals that the push at Index moved the Vec onto the heap.
	Spilled
	// Done signals that the producer is exhausted; Index holds the final
	// element count.
	Done
)

// Event is one fill progress notification.
type Event struct {
	Kind  EventKind
	Index int
}

// Feeder fills a Vec from a producer in a background goroutine and
// broadcasts progress events to any number of observers.
//
// The Vec stays single-owner during the fill: only the feeder goroutine
// mutates it, and ownership returns to the caller when Wait returns.
// Observers receive events, never the container itself.
type Feeder[T any] struct {
	vec  *tinyvec.Vec[T]
	cast *caster.Caster // broadcaster for fill progress
	done chan struct{}
}

// New creates a feeder for vec. The fill begins with Start; subscribing
// through Events before Start guarantees that no event is missed.
func New[T any](vec *tinyvec.Vec[T]) *Feeder[T] {
	return &Feeder[T]{
		vec:  vec,
		cast: caster.New(nil), // we will broadcast events as elements arrive
		done: make(chan struct{}),
	}
}

// Fill creates a feeder for vec and immediately starts filling it from src.
func Fill[T any](vec *tinyvec.Vec[T], src iter.Seq[T]) *Feeder[T] {
	f := New(vec)
	f.Start(src)
	return f
}

// Start launches the background fill. It must be called exactly once.
func (f *Feeder[T]) Start(src iter.Seq[T]) {
	go f.run(src)
}

func (f *Feeder[T]) run(src iter.Seq[T]) {
	defer close(f.done)
	defer f.cast.Close()
	for item := range src {
		spilledBefore := f.vec.HasSpilled()
		f.vec.Push(item)
		index := f.vec.Len() - 1
		if !spilledBefore && f.vec.HasSpilled() {
			tracer().Debugf("feeder observed spill at index %d", index)
			f.cast.Pub(Event{Kind: Spilled, Index: index})
		}
		f.cast.Pub(Event{Kind: ItemAppended, Index: index})
	}
	tracer().Debugf("feeder done after %d elements", f.vec.Len())
	f.cast.Pub(Event{Kind: Done, Index: f.vec.Len()})
}

// Events subscribes to fill progress. The returned channel is closed when
// the fill completes; the boolean is false if the fill has already finished.
//
// Cancelling ctx ends the subscription early and releases the delivery
// goroutine even if the channel is never read again.
func (f *Feeder[T]) Events(ctx context.Context) (<-chan Event, bool) {
	select {
	case <-f.done:
		// the caster may lag behind its Close, so completion is checked here
		return nil, false
	default:
	}
	src, ok := f.cast.Sub(ctx, 16)
	if !ok {
		return nil, false
	}
	out := make(chan Event, 16)
	go func() {
		defer close(out)
		for m := range src {
			ev, isEvent := m.(Event)
			if !isEvent {
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, true
}

// Wait blocks until the producer is exhausted and returns the filled Vec,
// handing ownership back to the caller.
func (f *Feeder[T]) Wait() *tinyvec.Vec[T] {
	<-f.done
	return f.vec
}
