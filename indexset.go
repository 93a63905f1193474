package bounded

import "iter"

// IndexSet is a fixed-capacity set that remembers insertion order.
// Membership goes through a hash index into a dense backing slice.
type IndexSet[T comparable] struct {
	index map[T]int
	dense []T
}

var _ Serializable = (*IndexSet[int])(nil)

// NewIndexSet returns an empty set holding at most capacity elements.
func NewIndexSet[T comparable](capacity int) *IndexSet[T] {
	return &IndexSet[T]{
		index: make(map[T]int, capacity),
		dense: make([]T, 0, capacity),
	}
}

// Len returns the number of elements.
func (s *IndexSet[T]) Len() int { return len(s.dense) }

// Cap returns the fixed capacity.
func (s *IndexSet[T]) Cap() int { return cap(s.dense) }

// Insert adds x. It reports false without error when x is already present.
func (s *IndexSet[T]) Insert(x T) (bool, error) {
	if _, ok := s.index[x]; ok {
		return false, nil
	}
	if len(s.dense) == cap(s.dense) {
		return false, newCapacityError("index set", cap(s.dense))
	}
	s.index[x] = len(s.dense)
	s.dense = append(s.dense, x)
	return true, nil
}

// Contains reports whether x is in the set.
func (s *IndexSet[T]) Contains(x T) bool {
	_, ok := s.index[x]
	return ok
}

// Remove deletes x, keeping the order of the remaining elements.
func (s *IndexSet[T]) Remove(x T) bool {
	i, ok := s.index[x]
	if !ok {
		return false
	}
	delete(s.index, x)
	copy(s.dense[i:], s.dense[i+1:])
	var zero T
	s.dense[len(s.dense)-1] = zero
	s.dense = s.dense[:len(s.dense)-1]
	for j := i; j < len(s.dense); j++ {
		s.index[s.dense[j]] = j
	}
	return true
}

// First returns the oldest inserted element.
func (s *IndexSet[T]) First() (T, bool) {
	if len(s.dense) == 0 {
		var zero T
		return zero, false
	}
	return s.dense[0], true
}

// Last returns the newest inserted element.
func (s *IndexSet[T]) Last() (T, bool) {
	if len(s.dense) == 0 {
		var zero T
		return zero, false
	}
	return s.dense[len(s.dense)-1], true
}

// Clear removes all elements.
func (s *IndexSet[T]) Clear() {
	clear(s.index)
	clear(s.dense)
	s.dense = s.dense[:0]
}

// All yields elements in insertion order.
func (s *IndexSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range s.dense {
			if !yield(x) {
				return
			}
		}
	}
}

// Serialize emits the elements as a sequence in insertion order.
func (s *IndexSet[T]) Serialize(dst Serializer) error {
	return EncodeSeq[T](dst, s)
}
