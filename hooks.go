package bounded

import (
	"encoding/xml"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Library encoders find containers nested in ordinary values (struct
// fields, plain slices, maps) through their own marshaler interfaces.
// Each backend subpackage installs the function behind its interface
// from init, so the container methods below route to the same Serializer
// the codec uses.
var (
	jsonHook    func(Serializable) ([]byte, error)
	xmlHook     func(*xml.Encoder, xml.StartElement, Serializable) error
	yamlHook    func(Serializable) (any, error)
	msgpackHook func(*msgpack.Encoder, Serializable) error
	cborHook    func(Serializable) ([]byte, error)
	bsonHook    func(Serializable) (bsontype.Type, []byte, error)
)

// SetJSONHook installs the encoder behind MarshalJSON. Call it from init.
func SetJSONHook(fn func(Serializable) ([]byte, error)) { jsonHook = fn }

// SetXMLHook installs the encoder behind MarshalXML. Call it from init.
func SetXMLHook(fn func(*xml.Encoder, xml.StartElement, Serializable) error) { xmlHook = fn }

// SetYAMLHook installs the encoder behind MarshalYAML. Call it from init.
func SetYAMLHook(fn func(Serializable) (any, error)) { yamlHook = fn }

// SetMsgpackHook installs the encoder behind EncodeMsgpack. Call it from init.
func SetMsgpackHook(fn func(*msgpack.Encoder, Serializable) error) { msgpackHook = fn }

// SetCBORHook installs the encoder behind MarshalCBOR. Call it from init.
func SetCBORHook(fn func(Serializable) ([]byte, error)) { cborHook = fn }

// SetBSONHook installs the encoder behind MarshalBSONValue. Call it from init.
func SetBSONHook(fn func(Serializable) (bsontype.Type, []byte, error)) { bsonHook = fn }

func notLinked(pkg string) error {
	return fmt.Errorf("%w: import github.com/zoobzio/bounded/%s", ErrBackendNotLinked, pkg)
}

func marshalJSON(v Serializable) ([]byte, error) {
	if jsonHook == nil {
		return nil, notLinked("json")
	}
	return jsonHook(v)
}

func marshalXML(e *xml.Encoder, start xml.StartElement, v Serializable) error {
	if xmlHook == nil {
		return notLinked("xml")
	}
	return xmlHook(e, start, v)
}

func marshalYAML(v Serializable) (any, error) {
	if yamlHook == nil {
		return nil, notLinked("yaml")
	}
	return yamlHook(v)
}

func encodeMsgpack(e *msgpack.Encoder, v Serializable) error {
	if msgpackHook == nil {
		return notLinked("msgpack")
	}
	return msgpackHook(e, v)
}

func marshalCBOR(v Serializable) ([]byte, error) {
	if cborHook == nil {
		return nil, notLinked("cbor")
	}
	return cborHook(v)
}

func marshalBSONValue(v Serializable) (bsontype.Type, []byte, error) {
	if bsonHook == nil {
		return 0, nil, notLinked("bson")
	}
	return bsonHook(v)
}

// Vec

func (v *Vec[T]) MarshalJSON() ([]byte, error) { return marshalJSON(v) }
func (v *Vec[T]) MarshalXML(e *xml.Encoder, start xml.StartElement) error { return marshalXML(e, start, v) }
func (v *Vec[T]) MarshalYAML() (any, error) { return marshalYAML(v) }
func (v *Vec[T]) EncodeMsgpack(e *msgpack.Encoder) error { return encodeMsgpack(e, v) }
func (v *Vec[T]) MarshalCBOR() ([]byte, error) { return marshalCBOR(v) }
func (v *Vec[T]) MarshalBSONValue() (bsontype.Type, []byte, error) { return marshalBSONValue(v) }

// Deque

func (d *Deque[T]) MarshalJSON() ([]byte, error) { return marshalJSON(d) }
func (d *Deque[T]) MarshalXML(e *xml.Encoder, start xml.StartElement) error { return marshalXML(e, start, d) }
func (d *Deque[T]) MarshalYAML() (any, error) { return marshalYAML(d) }
func (d *Deque[T]) EncodeMsgpack(e *msgpack.Encoder) error { return encodeMsgpack(e, d) }
func (d *Deque[T]) MarshalCBOR() ([]byte, error) { return marshalCBOR(d) }
func (d *Deque[T]) MarshalBSONValue() (bsontype.Type, []byte, error) { return marshalBSONValue(d) }

// BinaryHeap

func (h *BinaryHeap[T]) MarshalJSON() ([]byte, error) { return marshalJSON(h) }
func (h *BinaryHeap[T]) MarshalXML(e *xml.Encoder, start xml.StartElement) error { return marshalXML(e, start, h) }
func (h *BinaryHeap[T]) MarshalYAML() (any, error) { return marshalYAML(h) }
func (h *BinaryHeap[T]) EncodeMsgpack(e *msgpack.Encoder) error { return encodeMsgpack(e, h) }
func (h *BinaryHeap[T]) MarshalCBOR() ([]byte, error) { return marshalCBOR(h) }
func (h *BinaryHeap[T]) MarshalBSONValue() (bsontype.Type, []byte, error) { return marshalBSONValue(h) }

// IndexSet

func (s *IndexSet[T]) MarshalJSON() ([]byte, error) { return marshalJSON(s) }
func (s *IndexSet[T]) MarshalXML(e *xml.Encoder, start xml.StartElement) error { return marshalXML(e, start, s) }
func (s *IndexSet[T]) MarshalYAML() (any, error) { return marshalYAML(s) }
func (s *IndexSet[T]) EncodeMsgpack(e *msgpack.Encoder) error { return encodeMsgpack(e, s) }
func (s *IndexSet[T]) MarshalCBOR() ([]byte, error) { return marshalCBOR(s) }
func (s *IndexSet[T]) MarshalBSONValue() (bsontype.Type, []byte, error) { return marshalBSONValue(s) }

// HistoryBuffer

func (h *HistoryBuffer[T]) MarshalJSON() ([]byte, error) { return marshalJSON(h) }
func (h *HistoryBuffer[T]) MarshalXML(e *xml.Encoder, start xml.StartElement) error { return marshalXML(e, start, h) }
func (h *HistoryBuffer[T]) MarshalYAML() (any, error) { return marshalYAML(h) }
func (h *HistoryBuffer[T]) EncodeMsgpack(e *msgpack.Encoder) error { return encodeMsgpack(e, h) }
func (h *HistoryBuffer[T]) MarshalCBOR() ([]byte, error) { return marshalCBOR(h) }
func (h *HistoryBuffer[T]) MarshalBSONValue() (bsontype.Type, []byte, error) { return marshalBSONValue(h) }

// IndexMap

func (m *IndexMap[K, V]) MarshalJSON() ([]byte, error) { return marshalJSON(m) }
func (m *IndexMap[K, V]) MarshalXML(e *xml.Encoder, start xml.StartElement) error { return marshalXML(e, start, m) }
func (m *IndexMap[K, V]) MarshalYAML() (any, error) { return marshalYAML(m) }
func (m *IndexMap[K, V]) EncodeMsgpack(e *msgpack.Encoder) error { return encodeMsgpack(e, m) }
func (m *IndexMap[K, V]) MarshalCBOR() ([]byte, error) { return marshalCBOR(m) }
func (m *IndexMap[K, V]) MarshalBSONValue() (bsontype.Type, []byte, error) { return marshalBSONValue(m) }

// LinearMap

func (m *LinearMap[K, V]) MarshalJSON() ([]byte, error) { return marshalJSON(m) }
func (m *LinearMap[K, V]) MarshalXML(e *xml.Encoder, start xml.StartElement) error { return marshalXML(e, start, m) }
func (m *LinearMap[K, V]) MarshalYAML() (any, error) { return marshalYAML(m) }
func (m *LinearMap[K, V]) EncodeMsgpack(e *msgpack.Encoder) error { return encodeMsgpack(e, m) }
func (m *LinearMap[K, V]) MarshalCBOR() ([]byte, error) { return marshalCBOR(m) }
func (m *LinearMap[K, V]) MarshalBSONValue() (bsontype.Type, []byte, error) { return marshalBSONValue(m) }

// String

func (s *String) MarshalJSON() ([]byte, error) { return marshalJSON(s) }
func (s *String) MarshalXML(e *xml.Encoder, start xml.StartElement) error { return marshalXML(e, start, s) }
func (s *String) MarshalYAML() (any, error) { return marshalYAML(s) }
func (s *String) EncodeMsgpack(e *msgpack.Encoder) error { return encodeMsgpack(e, s) }
func (s *String) MarshalCBOR() ([]byte, error) { return marshalCBOR(s) }
func (s *String) MarshalBSONValue() (bsontype.Type, []byte, error) { return marshalBSONValue(s) }
