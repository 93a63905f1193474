// Package json provides a JSON codec implementation.
package json

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/zoobzio/bounded"
)

func init() {
	bounded.SetJSONHook(func(v bounded.Serializable) ([]byte, error) {
		var buf bytes.Buffer
		if err := v.Serialize(NewSerializer(&buf)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
}

// Option configures the JSON codec.
type Option func(*jsonCodec)

// WithIndent indents output the way json.MarshalIndent does.
func WithIndent(prefix, indent string) Option {
	return func(c *jsonCodec) {
		c.prefix = prefix
		c.indent = indent
	}
}

// jsonCodec implements bounded.Codec for JSON.
type jsonCodec struct {
	prefix string
	indent string
}

// New returns a JSON codec.
func New(opts ...Option) bounded.Codec {
	c := &jsonCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewSerializer(&buf).value(v); err != nil {
		return nil, err
	}
	if c.prefix == "" && c.indent == "" {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), c.prefix, c.indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Serializer streams JSON into a buffer.
type Serializer struct {
	buf *bytes.Buffer
}

var _ bounded.Serializer = (*Serializer)(nil)

// NewSerializer returns a Serializer writing to buf.
func NewSerializer(buf *bytes.Buffer) *Serializer {
	return &Serializer{buf: buf}
}

// BeginSeq opens a JSON array.
func (s *Serializer) BeginSeq(_ bounded.SizeHint) (bounded.SeqWriter, error) {
	s.buf.WriteByte('[')
	return &seqWriter{s: s}, nil
}

// BeginMap opens a JSON object.
func (s *Serializer) BeginMap(_ bounded.SizeHint) (bounded.MapWriter, error) {
	s.buf.WriteByte('{')
	return &mapWriter{s: s}, nil
}

// WriteString writes a JSON string.
func (s *Serializer) WriteString(str string) error {
	return s.native(str)
}

// value writes v, recursing through Serializable values.
func (s *Serializer) value(v any) error {
	if sv, ok := v.(bounded.Serializable); ok {
		return sv.Serialize(s)
	}
	return s.native(v)
}

func (s *Serializer) native(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.buf.Write(b)
	return nil
}

// key writes an object key following encoding/json's map key rules:
// strings, integers and encoding.TextMarshaler.
func (s *Serializer) key(k any) error {
	if tm, ok := k.(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return err
		}
		return s.native(string(text))
	}
	rv := reflect.ValueOf(k)
	switch rv.Kind() {
	case reflect.String:
		return s.native(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return s.native(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return s.native(strconv.FormatUint(rv.Uint(), 10))
	default:
		return fmt.Errorf("%w: json object key %T", bounded.ErrUnsupportedKey, k)
	}
}

type seqWriter struct {
	s *Serializer
	n int
}

func (w *seqWriter) WriteElement(v any) error {
	if w.n > 0 {
		w.s.buf.WriteByte(',')
	}
	w.n++
	return w.s.value(v)
}

func (w *seqWriter) End() error {
	w.s.buf.WriteByte(']')
	return nil
}

type mapWriter struct {
	s *Serializer
	n int
}

func (w *mapWriter) WriteEntry(key, value any) error {
	if w.n > 0 {
		w.s.buf.WriteByte(',')
	}
	w.n++
	if err := w.s.key(key); err != nil {
		return err
	}
	w.s.buf.WriteByte(':')
	return w.s.value(value)
}

func (w *mapWriter) End() error {
	w.s.buf.WriteByte('}')
	return nil
}
