package slot

import (
	"errors"
	"testing"
)

func TestNewStartsEmpty(t *testing.T) {
	a := New[int](4)
	if a.Cap() != 4 {
		t.Fatalf("unexpected capacity: %d", a.Cap())
	}
	if a.Count() != 0 {
		t.Fatalf("new array should hold no elements, count=%d", a.Count())
	}
	for i := 0; i < 4; i++ {
		if a.Occupied(i) {
			t.Fatalf("slot %d should be empty", i)
		}
	}
}

func TestNewClampsNegativeCapacity(t *testing.T) {
	a := New[int](-3)
	if a.Cap() != 0 {
		t.Fatalf("negative capacity should clamp to 0, got %d", a.Cap())
	}
	if err := a.Put(0, 1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestPutAndTake(t *testing.T) {
	a := New[string](3)
	if err := a.Put(1, "mid"); err != nil {
		t.Fatalf("unexpected Put error: %v", err)
	}
	if !a.Occupied(1) || a.Count() != 1 {
		t.Fatalf("slot 1 should be occupied, count=%d", a.Count())
	}
	item, err := a.Take(1)
	if err != nil {
		t.Fatalf("unexpected Take error: %v", err)
	}
	if item != "mid" {
		t.Fatalf("unexpected element: %q", item)
	}
	if a.Occupied(1) {
		t.Fatalf("slot 1 should be empty after Take")
	}
}

func TestTakeZeroesSlot(t *testing.T) {
	a := New[*int](2)
	n := 42
	if err := a.Put(0, &n); err != nil {
		t.Fatalf("unexpected Put error: %v", err)
	}
	if _, err := a.Take(0); err != nil {
		t.Fatalf("unexpected Take error: %v", err)
	}
	if _, err := a.Take(0); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("second Take should report ErrSlotEmpty, got %v", err)
	}
	// the backing storage must not retain the pointer
	if a.slots[0] != nil {
		t.Fatalf("taken slot still references the element")
	}
}

func TestPutRejectsOccupiedSlot(t *testing.T) {
	a := New[int](2)
	if err := a.Put(0, 1); err != nil {
		t.Fatalf("unexpected Put error: %v", err)
	}
	if err := a.Put(0, 2); !errors.Is(err, ErrSlotOccupied) {
		t.Fatalf("expected ErrSlotOccupied, got %v", err)
	}
	if p := a.At(0); p == nil || *p != 1 {
		t.Fatalf("rejected Put must not overwrite, slot holds %v", p)
	}
}

func TestBoundsChecks(t *testing.T) {
	a := New[int](2)
	if err := a.Put(-1, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds for negative index, got %v", err)
	}
	if err := a.Put(2, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds past capacity, got %v", err)
	}
	if _, err := a.Take(7); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds from Take, got %v", err)
	}
	if p := a.At(5); p != nil {
		t.Fatalf("At past capacity should be nil")
	}
}

func TestAtAllowsMutation(t *testing.T) {
	a := New[int](2)
	if err := a.Put(0, 7); err != nil {
		t.Fatalf("unexpected Put error: %v", err)
	}
	p := a.At(0)
	if p == nil {
		t.Fatalf("At should return occupied slot")
	}
	*p = 9
	item, err := a.Take(0)
	if err != nil || item != 9 {
		t.Fatalf("mutation through At not visible, got %v (%v)", item, err)
	}
}

func TestDrainConsumesInOrder(t *testing.T) {
	a := New[int](5)
	for _, i := range []int{0, 2, 4} {
		if err := a.Put(i, i*10); err != nil {
			t.Fatalf("unexpected Put error: %v", err)
		}
	}
	var got []int
	for item := range a.Drain() {
		got = append(got, item)
	}
	want := []int{0, 20, 40}
	if len(got) != len(want) {
		t.Fatalf("drained %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("drain order mismatch at %d: got %d want %d", i, got[i], want[i])
		}
	}
	if a.Count() != 0 {
		t.Fatalf("array should be empty after drain, count=%d", a.Count())
	}
}

func TestDrainStopsOnEarlyBreak(t *testing.T) {
	a := New[int](3)
	for i := 0; i < 3; i++ {
		if err := a.Put(i, i); err != nil {
			t.Fatalf("unexpected Put error: %v", err)
		}
	}
	for range a.Drain() {
		break
	}
	if a.Count() != 2 {
		t.Fatalf("abandoned drain should leave remaining slots, count=%d", a.Count())
	}
	if a.Occupied(0) {
		t.Fatalf("yielded slot should stay empty after early break")
	}
}

func TestBitmapSpansMultipleWords(t *testing.T) {
	const capacity = 130
	a := New[int](capacity)
	for i := 0; i < capacity; i++ {
		if err := a.Put(i, i); err != nil {
			t.Fatalf("unexpected Put error at %d: %v", i, err)
		}
	}
	if a.Count() != capacity {
		t.Fatalf("count=%d, want %d", a.Count(), capacity)
	}
	for _, i := range []int{0, 63, 64, 127, 128, 129} {
		item, err := a.Take(i)
		if err != nil || item != i {
			t.Fatalf("Take(%d) = %v (%v)", i, item, err)
		}
	}
	if a.Count() != capacity-6 {
		t.Fatalf("count=%d after takes, want %d", a.Count(), capacity-6)
	}
}
