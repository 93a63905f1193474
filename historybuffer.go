package bounded

import "iter"

// HistoryBuffer keeps the last Cap values written. Once full, each Write
// overwrites the oldest slot. next is the slot the following Write uses.
type HistoryBuffer[T any] struct {
	buf    []T
	next   int
	filled bool
}

var _ Serializable = (*HistoryBuffer[int])(nil)

// NewHistoryBuffer returns an empty buffer of the given capacity.
func NewHistoryBuffer[T any](capacity int) *HistoryBuffer[T] {
	return &HistoryBuffer[T]{buf: make([]T, capacity)}
}

// Len returns the number of values held.
func (h *HistoryBuffer[T]) Len() int {
	if h.filled {
		return len(h.buf)
	}
	return h.next
}

// Cap returns the fixed capacity.
func (h *HistoryBuffer[T]) Cap() int { return len(h.buf) }

// IsFull reports whether the next Write overwrites a value.
func (h *HistoryBuffer[T]) IsFull() bool { return h.filled }

// Write records x, overwriting the oldest value when full.
// A zero-capacity buffer discards every write.
func (h *HistoryBuffer[T]) Write(x T) {
	if len(h.buf) == 0 {
		return
	}
	h.buf[h.next] = x
	h.next++
	if h.next == len(h.buf) {
		h.next = 0
		h.filled = true
	}
}

// Extend writes each value of xs in order.
func (h *HistoryBuffer[T]) Extend(xs ...T) {
	for _, x := range xs {
		h.Write(x)
	}
}

// Recent returns the most recently written value.
func (h *HistoryBuffer[T]) Recent() (T, bool) {
	if h.Len() == 0 {
		var zero T
		return zero, false
	}
	i := h.next - 1
	if i < 0 {
		i = len(h.buf) - 1
	}
	return h.buf[i], true
}

// Oldest returns the oldest value still held.
func (h *HistoryBuffer[T]) Oldest() (T, bool) {
	if h.Len() == 0 {
		var zero T
		return zero, false
	}
	return h.buf[h.oldestSlot()], true
}

// Clear discards all values.
func (h *HistoryBuffer[T]) Clear() {
	clear(h.buf)
	h.next, h.filled = 0, false
}

func (h *HistoryBuffer[T]) oldestSlot() int {
	if h.filled {
		return h.next
	}
	return 0
}

// All yields values oldest to newest, independent of the physical slot layout.
func (h *HistoryBuffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		start, n := h.oldestSlot(), h.Len()
		for i := 0; i < n; i++ {
			if !yield(h.buf[(start+i)%len(h.buf)]) {
				return
			}
		}
	}
}

// Serialize emits the values as a sequence in chronological order.
func (h *HistoryBuffer[T]) Serialize(s Serializer) error {
	return EncodeSeq[T](s, h)
}
