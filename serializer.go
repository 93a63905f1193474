package bounded

// SizeHint is the number of elements or entries a container is about to emit.
// UnknownSize means the producer cannot say.
type SizeHint int

// UnknownSize is the hint used when the element count is not known up front.
const UnknownSize SizeHint = -1

// Known reports whether the hint carries a count.
func (h SizeHint) Known() bool {
	return h >= 0
}

// Serializer is the destination side of the bridge.
// Each wire format provides one; containers drive it through Serialize.
//
// Errors returned by a Serializer, SeqWriter or MapWriter are opaque and
// backend-defined. Containers return them to their caller untouched.
type Serializer interface {
	// BeginSeq opens a sequence context.
	BeginSeq(hint SizeHint) (SeqWriter, error)

	// BeginMap opens a map context.
	BeginMap(hint SizeHint) (MapWriter, error)

	// WriteString emits a single text value.
	WriteString(s string) error
}

// SeqWriter receives the elements of an open sequence.
type SeqWriter interface {
	// WriteElement emits one element. A value implementing Serializable
	// is driven through the same destination; anything else is encoded
	// with the backend's native rules.
	WriteElement(v any) error

	// End closes the sequence.
	End() error
}

// MapWriter receives the entries of an open map.
type MapWriter interface {
	// WriteEntry emits one key then its value, with the same value rules
	// as SeqWriter.WriteElement.
	WriteEntry(key, value any) error

	// End closes the map.
	End() error
}

// Serializable is implemented by every bounded container.
// Serialize performs a single read-only pass over the receiver.
type Serializable interface {
	Serialize(s Serializer) error
}
