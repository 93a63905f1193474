package bounded

import "iter"

// Deque is a fixed-capacity double-ended queue over a circular buffer.
// front is the physical slot of the logical first element.
type Deque[T any] struct {
	buf   []T
	front int
	n     int
}

var _ Serializable = (*Deque[int])(nil)

// NewDeque returns an empty deque holding at most capacity elements.
func NewDeque[T any](capacity int) *Deque[T] {
	return &Deque[T]{buf: make([]T, capacity)}
}

// Len returns the number of stored elements.
func (d *Deque[T]) Len() int { return d.n }

// Cap returns the fixed capacity.
func (d *Deque[T]) Cap() int { return len(d.buf) }

// IsFull reports whether another push would fail.
func (d *Deque[T]) IsFull() bool { return d.n == len(d.buf) }

// slot maps a logical index to its physical position.
func (d *Deque[T]) slot(i int) int {
	return (d.front + i) % len(d.buf)
}

// PushBack appends x at the back.
func (d *Deque[T]) PushBack(x T) error {
	if d.IsFull() {
		return newCapacityError("deque", len(d.buf))
	}
	d.buf[d.slot(d.n)] = x
	d.n++
	return nil
}

// PushFront prepends x at the front.
func (d *Deque[T]) PushFront(x T) error {
	if d.IsFull() {
		return newCapacityError("deque", len(d.buf))
	}
	d.front = (d.front + len(d.buf) - 1) % len(d.buf)
	d.buf[d.front] = x
	d.n++
	return nil
}

// PopFront removes and returns the front element.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.n == 0 {
		return zero, false
	}
	x := d.buf[d.front]
	d.buf[d.front] = zero
	d.front = (d.front + 1) % len(d.buf)
	d.n--
	return x, true
}

// PopBack removes and returns the back element.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.n == 0 {
		return zero, false
	}
	i := d.slot(d.n - 1)
	x := d.buf[i]
	d.buf[i] = zero
	d.n--
	return x, true
}

// Front returns the front element without removing it.
func (d *Deque[T]) Front() (T, bool) { return d.At(0) }

// Back returns the back element without removing it.
func (d *Deque[T]) Back() (T, bool) { return d.At(d.n - 1) }

// At returns the element at logical index i.
func (d *Deque[T]) At(i int) (T, bool) {
	if i < 0 || i >= d.n {
		var zero T
		return zero, false
	}
	return d.buf[d.slot(i)], true
}

// Clear removes all elements.
func (d *Deque[T]) Clear() {
	clear(d.buf)
	d.front, d.n = 0, 0
}

// All yields elements front to back, regardless of where the buffer wraps.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.n; i++ {
			if !yield(d.buf[d.slot(i)]) {
				return
			}
		}
	}
}

// Serialize emits the elements as a sequence, front to back.
// The size hint is the logical element count, not the buffer length.
func (d *Deque[T]) Serialize(s Serializer) error {
	return EncodeSeq[T](s, d)
}
