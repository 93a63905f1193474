package bounded

import "iter"

// Sequence is the read capability the sequence adapter needs: a logical
// length and a restartable traversal in the container's documented order.
// Len must equal the number of elements All yields.
type Sequence[T any] interface {
	Len() int
	All() iter.Seq[T]
}

// Map is the read capability the map adapter needs.
// Len must equal the number of pairs All yields.
type Map[K, V any] interface {
	Len() int
	All() iter.Seq2[K, V]
}

// EncodeSeq drives s's sequence protocol from src.
//
// The first failing write stops the traversal: no later element is visited
// and the error is returned as the destination produced it.
func EncodeSeq[T any](s Serializer, src Sequence[T]) error {
	seq, err := s.BeginSeq(SizeHint(src.Len()))
	if err != nil {
		return err
	}
	for element := range src.All() {
		if err := seq.WriteElement(element); err != nil {
			return err
		}
	}
	return seq.End()
}

// EncodeMap drives s's map protocol from src, key then value per entry.
// Failure handling matches EncodeSeq.
func EncodeMap[K, V any](s Serializer, src Map[K, V]) error {
	m, err := s.BeginMap(SizeHint(src.Len()))
	if err != nil {
		return err
	}
	for k, v := range src.All() {
		if err := m.WriteEntry(k, v); err != nil {
			return err
		}
	}
	return m.End()
}
