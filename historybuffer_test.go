package bounded

import (
	"slices"
	"testing"
)

func TestHistoryBuffer_Chronological(t *testing.T) {
	h := NewHistoryBuffer[int](3)
	h.Extend(1, 2)
	if h.IsFull() {
		t.Error("IsFull() = true before wrapping")
	}
	if got := slices.Collect(h.All()); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("All() = %v, want [1 2]", got)
	}

	h.Extend(3, 4, 5)
	if !h.IsFull() || h.Len() != 3 {
		t.Errorf("IsFull() = %v, Len() = %d, want true, 3", h.IsFull(), h.Len())
	}
	if got := slices.Collect(h.All()); !slices.Equal(got, []int{3, 4, 5}) {
		t.Errorf("All() = %v, want [3 4 5]", got)
	}
	if r, _ := h.Recent(); r != 5 {
		t.Errorf("Recent() = %d, want 5", r)
	}
	if o, _ := h.Oldest(); o != 3 {
		t.Errorf("Oldest() = %d, want 3", o)
	}

	h.Write(6) // next wraps back to slot 0
	if r, _ := h.Recent(); r != 6 {
		t.Errorf("Recent() = %d, want 6", r)
	}
}

func TestHistoryBuffer_RecentAtSlotBoundary(t *testing.T) {
	h := NewHistoryBuffer[string](2)
	h.Extend("a", "b")
	if r, _ := h.Recent(); r != "b" {
		t.Errorf("Recent() = %q, want b", r)
	}
}

func TestHistoryBuffer_EmptyAndZero(t *testing.T) {
	h := NewHistoryBuffer[int](2)
	if _, ok := h.Recent(); ok {
		t.Error("Recent() on empty buffer should report false")
	}
	if _, ok := h.Oldest(); ok {
		t.Error("Oldest() on empty buffer should report false")
	}

	z := NewHistoryBuffer[int](0)
	z.Write(1)
	if z.Len() != 0 {
		t.Errorf("zero-capacity Len() = %d, want 0", z.Len())
	}

	h.Extend(1, 2, 3)
	h.Clear()
	if h.Len() != 0 || h.IsFull() {
		t.Error("Clear() should reset the buffer")
	}
}
