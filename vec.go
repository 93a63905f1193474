package bounded

import "iter"

// Vec is a fixed-capacity vector backed by a single contiguous buffer.
type Vec[T any] struct {
	buf []T
}

var _ Serializable = (*Vec[int])(nil)

// NewVec returns an empty vector holding at most capacity elements.
func NewVec[T any](capacity int) *Vec[T] {
	return &Vec[T]{buf: make([]T, 0, capacity)}
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int { return len(v.buf) }

// Cap returns the fixed capacity.
func (v *Vec[T]) Cap() int { return cap(v.buf) }

// IsFull reports whether another Push would fail.
func (v *Vec[T]) IsFull() bool { return len(v.buf) == cap(v.buf) }

// Push appends x.
func (v *Vec[T]) Push(x T) error {
	if v.IsFull() {
		return newCapacityError("vec", cap(v.buf))
	}
	v.buf = append(v.buf, x)
	return nil
}

// Pop removes and returns the last element.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if len(v.buf) == 0 {
		return zero, false
	}
	last := v.buf[len(v.buf)-1]
	v.buf[len(v.buf)-1] = zero
	v.buf = v.buf[:len(v.buf)-1]
	return last, true
}

// At returns the element at index i.
func (v *Vec[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(v.buf) {
		var zero T
		return zero, false
	}
	return v.buf[i], true
}

// Set replaces the element at index i.
func (v *Vec[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.buf) {
		return ErrOutOfRange
	}
	v.buf[i] = x
	return nil
}

// Insert places x at index i, shifting later elements right.
func (v *Vec[T]) Insert(i int, x T) error {
	if i < 0 || i > len(v.buf) {
		return ErrOutOfRange
	}
	if v.IsFull() {
		return newCapacityError("vec", cap(v.buf))
	}
	v.buf = append(v.buf, x)
	copy(v.buf[i+1:], v.buf[i:])
	v.buf[i] = x
	return nil
}

// Remove deletes and returns the element at index i, shifting later elements left.
func (v *Vec[T]) Remove(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(v.buf) {
		return zero, false
	}
	x := v.buf[i]
	copy(v.buf[i:], v.buf[i+1:])
	v.buf[len(v.buf)-1] = zero
	v.buf = v.buf[:len(v.buf)-1]
	return x, true
}

// Truncate shortens the vector to n elements. It is a no-op when n >= Len.
func (v *Vec[T]) Truncate(n int) {
	if n < 0 || n >= len(v.buf) {
		return
	}
	clear(v.buf[n:])
	v.buf = v.buf[:n]
}

// Clear removes all elements.
func (v *Vec[T]) Clear() { v.Truncate(0) }

// Slice returns a copy of the elements.
func (v *Vec[T]) Slice() []T {
	out := make([]T, len(v.buf))
	copy(out, v.buf)
	return out
}

// All yields elements in index order.
func (v *Vec[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.buf {
			if !yield(x) {
				return
			}
		}
	}
}

// Serialize emits the elements as a sequence in index order.
func (v *Vec[T]) Serialize(s Serializer) error {
	return EncodeSeq[T](s, v)
}
