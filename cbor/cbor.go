// Package cbor provides a CBOR codec implementation.
//
// Array and map heads are definite-length when the size hint is known and
// indefinite-length otherwise. Scalars go through a Core Deterministic
// encoding mode.
package cbor

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/fxamacker/cbor/v2"
	"github.com/zoobzio/bounded"
)

// Major types used for container heads (RFC 8949 §3.1).
const (
	majorArray = 4
	majorMap   = 5
)

// encMode encodes scalar values with smallest integer encoding and sorted
// keys for any Go maps passed as plain values. Container heads are
// written by this package, so container order is never re-sorted.
var encMode cbor.EncMode

func init() {
	var err error
	encOptions := cbor.CoreDetEncOptions()
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	// Unknown size hints fall back to indefinite-length heads.
	encOptions.IndefLength = cbor.IndefLengthAllowed
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("cbor: encoder initialization failed: " + err.Error())
	}

	bounded.SetCBORHook(func(v bounded.Serializable) ([]byte, error) {
		var buf bytes.Buffer
		if err := v.Serialize(NewSerializer(&buf)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
}

// cborCodec implements bounded.Codec for CBOR.
type cborCodec struct{}

// New returns a CBOR codec.
func New() bounded.Codec {
	return &cborCodec{}
}

// ContentType returns the MIME type for CBOR.
func (c *cborCodec) ContentType() string {
	return "application/cbor"
}

// Marshal encodes v as CBOR.
func (c *cborCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewSerializer(&buf).value(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Serializer streams CBOR to a writer.
type Serializer struct {
	w   io.Writer
	enc *cbor.Encoder
}

var _ bounded.Serializer = (*Serializer)(nil)

// NewSerializer returns a Serializer writing to w.
func NewSerializer(w io.Writer) *Serializer {
	return &Serializer{w: w, enc: encMode.NewEncoder(w)}
}

// BeginSeq writes an array head.
func (s *Serializer) BeginSeq(hint bounded.SizeHint) (bounded.SeqWriter, error) {
	if !hint.Known() {
		if err := s.enc.StartIndefiniteArray(); err != nil {
			return nil, err
		}
		return &seqWriter{s: s, indefinite: true}, nil
	}
	if err := writeHead(s.w, majorArray, uint64(hint)); err != nil {
		return nil, err
	}
	return &seqWriter{s: s}, nil
}

// BeginMap writes a map head.
func (s *Serializer) BeginMap(hint bounded.SizeHint) (bounded.MapWriter, error) {
	if !hint.Known() {
		if err := s.enc.StartIndefiniteMap(); err != nil {
			return nil, err
		}
		return &mapWriter{s: s, indefinite: true}, nil
	}
	if err := writeHead(s.w, majorMap, uint64(hint)); err != nil {
		return nil, err
	}
	return &mapWriter{s: s}, nil
}

// WriteString writes a text string.
func (s *Serializer) WriteString(str string) error {
	return s.enc.Encode(str)
}

// value writes v, recursing through Serializable values.
func (s *Serializer) value(v any) error {
	if sv, ok := v.(bounded.Serializable); ok {
		return sv.Serialize(s)
	}
	return s.enc.Encode(v)
}

// writeHead writes a definite-length data item head.
func writeHead(w io.Writer, major byte, n uint64) error {
	var head [9]byte
	size := 1
	switch {
	case n < 24:
		head[0] = major<<5 | byte(n)
	case n <= math.MaxUint8:
		head[0] = major<<5 | 24
		head[1] = byte(n)
		size = 2
	case n <= math.MaxUint16:
		head[0] = major<<5 | 25
		binary.BigEndian.PutUint16(head[1:], uint16(n))
		size = 3
	case n <= math.MaxUint32:
		head[0] = major<<5 | 26
		binary.BigEndian.PutUint32(head[1:], uint32(n))
		size = 5
	default:
		head[0] = major<<5 | 27
		binary.BigEndian.PutUint64(head[1:], n)
		size = 9
	}
	_, err := w.Write(head[:size])
	return err
}

type seqWriter struct {
	s          *Serializer
	indefinite bool
}

func (w *seqWriter) WriteElement(v any) error {
	return w.s.value(v)
}

func (w *seqWriter) End() error {
	if w.indefinite {
		return w.s.enc.EndIndefinite()
	}
	return nil
}

type mapWriter struct {
	s          *Serializer
	indefinite bool
}

func (w *mapWriter) WriteEntry(key, value any) error {
	if err := w.s.value(key); err != nil {
		return err
	}
	return w.s.value(value)
}

func (w *mapWriter) End() error {
	if w.indefinite {
		return w.s.enc.EndIndefinite()
	}
	return nil
}
