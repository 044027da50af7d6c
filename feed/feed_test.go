package feed

import (
	"context"
	"testing"

	tinyvec "github.com/jooris-hadeler/tiny-vec"
)

func intRange(n int) func(yield func(int) bool) {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func TestFillBuildsVec(t *testing.T) {
	v := tinyvec.New[int](4)
	f := Fill(v, intRange(8))
	filled := f.Wait()
	if filled.Len() != 8 {
		t.Fatalf("expected 8 elements, got %d", filled.Len())
	}
	if !filled.HasSpilled() {
		t.Fatalf("8 elements in a capacity-4 vec should have spilled")
	}
	for idx, elm := range filled.All() {
		if idx != elm {
			t.Errorf("element at %d is %d", idx, elm)
		}
	}
}

func TestEventsObserveFill(t *testing.T) {
	v := tinyvec.New[int](4)
	f := New(v)
	events, ok := f.Events(context.Background())
	if !ok {
		t.Fatalf("subscription before Start should succeed")
	}
	f.Start(intRange(6))
	var appended, spilled, done int
	spillIndex := -1
	for ev := range events {
		switch ev.Kind {
		case ItemAppended:
			appended++
		case Spilled:
			spilled++
			spillIndex = ev.Index
		case Done:
			done++
			if ev.Index != 6 {
				t.Errorf("Done should carry the final count, got %d", ev.Index)
			}
		}
	}
	if appended != 6 {
		t.Errorf("observed %d appends, want 6", appended)
	}
	if spilled != 1 || spillIndex != 4 {
		t.Errorf("observed %d spill events at index %d, want one at 4", spilled, spillIndex)
	}
	if done != 1 {
		t.Errorf("observed %d done events, want 1", done)
	}
	if f.Wait().Len() != 6 {
		t.Errorf("unexpected final length %d", f.Wait().Len())
	}
}

func TestCancelledSubscriptionTerminates(t *testing.T) {
	v := tinyvec.New[int](2)
	f := New(v)
	ctx, cancel := context.WithCancel(context.Background())
	events, ok := f.Events(ctx)
	if !ok {
		t.Fatalf("subscription before Start should succeed")
	}
	cancel() // subscriber walks away without reading
	f.Start(intRange(100))
	if f.Wait().Len() != 100 {
		t.Fatalf("fill should complete despite the cancelled subscriber")
	}
	for range events {
		// delivery must end after cancellation; a leaked goroutine
		// would keep this loop alive past the test timeout
	}
}

func TestEventsAfterCompletion(t *testing.T) {
	v := tinyvec.New[int](8)
	f := Fill(v, intRange(3))
	f.Wait()
	if _, ok := f.Events(context.Background()); ok {
		t.Fatalf("subscription after completion should report failure")
	}
}
