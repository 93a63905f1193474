package bounded

import (
	"cmp"
	"iter"
)

// BinaryHeap is a fixed-capacity priority queue stored as an implicit
// binary heap. The element for which cmp orders first sits at the root.
type BinaryHeap[T any] struct {
	buf []T
	cmp func(a, b T) int
}

var _ Serializable = (*BinaryHeap[int])(nil)

// NewMaxHeap returns a heap that pops the greatest element first.
func NewMaxHeap[T cmp.Ordered](capacity int) *BinaryHeap[T] {
	return NewBinaryHeapFunc(capacity, func(a, b T) int { return cmp.Compare(b, a) })
}

// NewMinHeap returns a heap that pops the least element first.
func NewMinHeap[T cmp.Ordered](capacity int) *BinaryHeap[T] {
	return NewBinaryHeapFunc(capacity, cmp.Compare[T])
}

// NewBinaryHeapFunc returns a heap ordered by compare: the element that
// compares lowest is popped first.
func NewBinaryHeapFunc[T any](capacity int, compare func(a, b T) int) *BinaryHeap[T] {
	return &BinaryHeap[T]{buf: make([]T, 0, capacity), cmp: compare}
}

// Len returns the number of elements.
func (h *BinaryHeap[T]) Len() int { return len(h.buf) }

// Cap returns the fixed capacity.
func (h *BinaryHeap[T]) Cap() int { return cap(h.buf) }

// IsFull reports whether another Push would fail.
func (h *BinaryHeap[T]) IsFull() bool { return len(h.buf) == cap(h.buf) }

// Push adds x to the heap.
func (h *BinaryHeap[T]) Push(x T) error {
	if h.IsFull() {
		return newCapacityError("binary heap", cap(h.buf))
	}
	h.buf = append(h.buf, x)
	h.siftUp(len(h.buf) - 1)
	return nil
}

// Peek returns the root element.
func (h *BinaryHeap[T]) Peek() (T, bool) {
	if len(h.buf) == 0 {
		var zero T
		return zero, false
	}
	return h.buf[0], true
}

// Pop removes and returns the root element.
func (h *BinaryHeap[T]) Pop() (T, bool) {
	var zero T
	n := len(h.buf)
	if n == 0 {
		return zero, false
	}
	root := h.buf[0]
	h.buf[0] = h.buf[n-1]
	h.buf[n-1] = zero
	h.buf = h.buf[:n-1]
	if len(h.buf) > 0 {
		h.siftDown(0)
	}
	return root, true
}

// Clear removes all elements.
func (h *BinaryHeap[T]) Clear() {
	clear(h.buf)
	h.buf = h.buf[:0]
}

func (h *BinaryHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.buf[i], h.buf[parent]) >= 0 {
			return
		}
		h.buf[i], h.buf[parent] = h.buf[parent], h.buf[i]
		i = parent
	}
}

func (h *BinaryHeap[T]) siftDown(i int) {
	n := len(h.buf)
	for {
		first := i
		if l := 2*i + 1; l < n && h.cmp(h.buf[l], h.buf[first]) < 0 {
			first = l
		}
		if r := 2*i + 2; r < n && h.cmp(h.buf[r], h.buf[first]) < 0 {
			first = r
		}
		if first == i {
			return
		}
		h.buf[i], h.buf[first] = h.buf[first], h.buf[i]
		i = first
	}
}

// All yields elements in heap-array order. The order is not sorted and may
// change with any Push or Pop.
func (h *BinaryHeap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range h.buf {
			if !yield(x) {
				return
			}
		}
	}
}

// Serialize emits every element as a sequence in heap-array order.
func (h *BinaryHeap[T]) Serialize(s Serializer) error {
	return EncodeSeq[T](s, h)
}
