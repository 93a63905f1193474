// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/bounded"
)

func init() {
	bounded.SetMsgpackHook(func(enc *msgpack.Encoder, v bounded.Serializable) error {
		return v.Serialize(NewSerializer(enc))
	})
}

// Option configures the MessagePack codec.
type Option func(*msgpackCodec)

// WithCompactInts encodes integers in the smallest type that holds them.
func WithCompactInts() Option {
	return func(c *msgpackCodec) {
		c.compactInts = true
	}
}

// msgpackCodec implements bounded.Codec for MessagePack.
type msgpackCodec struct {
	compactInts bool
}

// New returns a MessagePack codec.
func New(opts ...Option) bounded.Codec {
	c := &msgpackCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	s := NewSerializer(msgpack.NewEncoder(&buf))
	s.UseCompactInts(c.compactInts)
	if err := s.value(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Serializer streams MessagePack through a msgpack.Encoder.
type Serializer struct {
	enc         *msgpack.Encoder
	compactInts bool
}

var _ bounded.Serializer = (*Serializer)(nil)

// NewSerializer returns a Serializer writing through enc.
func NewSerializer(enc *msgpack.Encoder) *Serializer {
	return &Serializer{enc: enc}
}

// UseCompactInts sets compact integer encoding on the encoder and on any
// buffer encoders opened for containers without a size hint.
func (s *Serializer) UseCompactInts(on bool) {
	s.compactInts = on
	s.enc.UseCompactInts(on)
}

// BeginSeq writes an array header. MessagePack needs the length up front,
// so without a hint elements are buffered until End.
func (s *Serializer) BeginSeq(hint bounded.SizeHint) (bounded.SeqWriter, error) {
	if hint.Known() {
		if err := s.enc.EncodeArrayLen(int(hint)); err != nil {
			return nil, err
		}
		return &seqWriter{s: s}, nil
	}
	b := s.buffered()
	return &seqWriter{s: b.s, pending: b}, nil
}

// BeginMap writes a map header, buffering like BeginSeq without a hint.
func (s *Serializer) BeginMap(hint bounded.SizeHint) (bounded.MapWriter, error) {
	if hint.Known() {
		if err := s.enc.EncodeMapLen(int(hint)); err != nil {
			return nil, err
		}
		return &mapWriter{s: s}, nil
	}
	b := s.buffered()
	return &mapWriter{s: b.s, pending: b}, nil
}

// WriteString writes a str value.
func (s *Serializer) WriteString(str string) error {
	return s.enc.EncodeString(str)
}

// value writes v, recursing through Serializable values.
func (s *Serializer) value(v any) error {
	if sv, ok := v.(bounded.Serializable); ok {
		return sv.Serialize(s)
	}
	return s.enc.Encode(v)
}

// pending holds the body of a container whose length was not known.
type pending struct {
	parent *Serializer
	buf    *bytes.Buffer
	s      *Serializer
}

func (s *Serializer) buffered() *pending {
	buf := &bytes.Buffer{}
	child := NewSerializer(msgpack.NewEncoder(buf))
	child.UseCompactInts(s.compactInts)
	return &pending{parent: s, buf: buf, s: child}
}

// flush writes the header produced by writeLen followed by the buffered body.
func (p *pending) flush(writeLen func(*msgpack.Encoder) error) error {
	if err := writeLen(p.parent.enc); err != nil {
		return err
	}
	_, err := p.parent.enc.Writer().Write(p.buf.Bytes())
	return err
}

type seqWriter struct {
	s       *Serializer
	pending *pending
	n       int
}

func (w *seqWriter) WriteElement(v any) error {
	w.n++
	return w.s.value(v)
}

func (w *seqWriter) End() error {
	if w.pending == nil {
		return nil
	}
	return w.pending.flush(func(enc *msgpack.Encoder) error { return enc.EncodeArrayLen(w.n) })
}

type mapWriter struct {
	s       *Serializer
	pending *pending
	n       int
}

func (w *mapWriter) WriteEntry(key, value any) error {
	w.n++
	if err := w.s.value(key); err != nil {
		return err
	}
	return w.s.value(value)
}

func (w *mapWriter) End() error {
	if w.pending == nil {
		return nil
	}
	return w.pending.flush(func(enc *msgpack.Encoder) error { return enc.EncodeMapLen(w.n) })
}
