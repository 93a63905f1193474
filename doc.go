// Package bounded provides fixed-capacity containers that serialize into any
// destination format.
//
// Every container is allocated once with a fixed capacity and rejects
// insertions past it with a *CapacityError wrapping ErrFull. Each container
// implements Serializable, emitting its logical contents through a Serializer
// without copying them out first.
//
// # Containers
//
// Sequence-shaped containers serialize as a sequence:
//
//   - Vec: contiguous, index order
//   - Deque: double-ended ring, front to back
//   - BinaryHeap: priority queue, internal storage order
//   - IndexSet: insertion-ordered set, insertion order
//   - HistoryBuffer: overwriting ring, oldest to newest
//
// Map-shaped containers serialize as a map:
//
//   - IndexMap: insertion-ordered map, insertion order
//   - LinearMap: unordered small map, storage order
//
// String serializes as a single text value.
//
// # Serializers
//
// A Serializer is the destination format. Containers drive it through two
// generic adapters, EncodeSeq and EncodeMap, which announce the element
// count as a SizeHint, emit every element in the container's order, and
// stop at the first destination error, returning it unmodified.
//
//	func (q *Queue[T]) Serialize(s bounded.Serializer) error {
//	    return bounded.EncodeSeq[T](s, q)
//	}
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - cbor - CBOR encoding (application/cbor)
//   - bson - BSON encoding (application/bson)
//
// The compress subpackage wraps any codec with zstd or LZ4 compression.
//
// Containers also implement each library's own marshaler interface, so a
// container held in a struct field or plain slice encodes the same way when
// the surrounding value goes through a codec or straight to the library.
// The interface methods route to the backend subpackage, which must be
// imported; otherwise they fail with ErrBackendNotLinked.
//
// # Basic Usage
//
//	ring := bounded.NewHistoryBuffer[int](3)
//	ring.Extend(1, 2, 3, 4)
//
//	data, _ := bounded.Marshal(ctx, json.New(), ring)
//	// [2,3,4]
//
// Codecs registered with Register can be selected by content type:
//
//	bounded.Register(cbor.New())
//	data, _ := bounded.MarshalAs(ctx, "application/cbor", ring)
//
// # Signals
//
// Marshal emits capitan signals around every call. Hook them to observe
// content type, value type, output size, duration and failures.
package bounded
