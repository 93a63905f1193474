package bounded

import "iter"

// LinearMap is a fixed-capacity map searched by linear scan.
// It makes no ordering promise: Remove moves the last entry into the gap.
type LinearMap[K comparable, V any] struct {
	buf []entry[K, V]
}

var _ Serializable = (*LinearMap[string, int])(nil)

// NewLinearMap returns an empty map holding at most capacity entries.
func NewLinearMap[K comparable, V any](capacity int) *LinearMap[K, V] {
	return &LinearMap[K, V]{buf: make([]entry[K, V], 0, capacity)}
}

// Len returns the number of entries.
func (m *LinearMap[K, V]) Len() int { return len(m.buf) }

// Cap returns the fixed capacity.
func (m *LinearMap[K, V]) Cap() int { return cap(m.buf) }

func (m *LinearMap[K, V]) find(key K) int {
	for i := range m.buf {
		if m.buf[i].key == key {
			return i
		}
	}
	return -1
}

// Insert sets key to value, returning the previous value when replaced.
func (m *LinearMap[K, V]) Insert(key K, value V) (prev V, replaced bool, err error) {
	if i := m.find(key); i >= 0 {
		prev = m.buf[i].value
		m.buf[i].value = value
		return prev, true, nil
	}
	if len(m.buf) == cap(m.buf) {
		return prev, false, newCapacityError("linear map", cap(m.buf))
	}
	m.buf = append(m.buf, entry[K, V]{key: key, value: value})
	return prev, false, nil
}

// Get returns the value for key.
func (m *LinearMap[K, V]) Get(key K) (V, bool) {
	if i := m.find(key); i >= 0 {
		return m.buf[i].value, true
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether key is present.
func (m *LinearMap[K, V]) ContainsKey(key K) bool {
	return m.find(key) >= 0
}

// Remove deletes key by swapping the last entry into its slot.
func (m *LinearMap[K, V]) Remove(key K) (V, bool) {
	i := m.find(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	removed := m.buf[i].value
	last := len(m.buf) - 1
	m.buf[i] = m.buf[last]
	m.buf[last] = entry[K, V]{}
	m.buf = m.buf[:last]
	return removed, true
}

// Clear removes all entries.
func (m *LinearMap[K, V]) Clear() {
	clear(m.buf)
	m.buf = m.buf[:0]
}

// All yields entries in physical scan order, which carries no meaning.
func (m *LinearMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.buf {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Serialize emits the entries as a map in scan order.
func (m *LinearMap[K, V]) Serialize(s Serializer) error {
	return EncodeMap[K, V](s, m)
}
