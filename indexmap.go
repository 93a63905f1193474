package bounded

import "iter"

// entry is a key/value pair in a map's dense backing slice.
type entry[K, V any] struct {
	key   K
	value V
}

// IndexMap is a fixed-capacity map that remembers insertion order.
// Lookups go through a hash index into a dense slice of entries.
type IndexMap[K comparable, V any] struct {
	index map[K]int
	dense []entry[K, V]
}

var _ Serializable = (*IndexMap[string, int])(nil)

// NewIndexMap returns an empty map holding at most capacity entries.
func NewIndexMap[K comparable, V any](capacity int) *IndexMap[K, V] {
	return &IndexMap[K, V]{
		index: make(map[K]int, capacity),
		dense: make([]entry[K, V], 0, capacity),
	}
}

// Len returns the number of entries.
func (m *IndexMap[K, V]) Len() int { return len(m.dense) }

// Cap returns the fixed capacity.
func (m *IndexMap[K, V]) Cap() int { return cap(m.dense) }

// Insert sets key to value. Replacing an existing key keeps its position
// and returns the previous value with replaced set.
func (m *IndexMap[K, V]) Insert(key K, value V) (prev V, replaced bool, err error) {
	if i, ok := m.index[key]; ok {
		prev = m.dense[i].value
		m.dense[i].value = value
		return prev, true, nil
	}
	if len(m.dense) == cap(m.dense) {
		return prev, false, newCapacityError("index map", cap(m.dense))
	}
	m.index[key] = len(m.dense)
	m.dense = append(m.dense, entry[K, V]{key: key, value: value})
	return prev, false, nil
}

// Get returns the value for key.
func (m *IndexMap[K, V]) Get(key K) (V, bool) {
	if i, ok := m.index[key]; ok {
		return m.dense[i].value, true
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether key is present.
func (m *IndexMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Remove deletes key, keeping the order of the remaining entries.
func (m *IndexMap[K, V]) Remove(key K) (V, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	removed := m.dense[i].value
	delete(m.index, key)
	copy(m.dense[i:], m.dense[i+1:])
	m.dense[len(m.dense)-1] = entry[K, V]{}
	m.dense = m.dense[:len(m.dense)-1]
	for j := i; j < len(m.dense); j++ {
		m.index[m.dense[j].key] = j
	}
	return removed, true
}

// Keys yields keys in insertion order.
func (m *IndexMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range m.dense {
			if !yield(e.key) {
				return
			}
		}
	}
}

// Values yields values in insertion order.
func (m *IndexMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range m.dense {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Clear removes all entries.
func (m *IndexMap[K, V]) Clear() {
	clear(m.index)
	clear(m.dense)
	m.dense = m.dense[:0]
}

// All yields entries in insertion order.
func (m *IndexMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.dense {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Serialize emits the entries as a map in insertion order.
func (m *IndexMap[K, V]) Serialize(s Serializer) error {
	return EncodeMap[K, V](s, m)
}
