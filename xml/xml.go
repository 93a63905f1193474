// Package xml provides an XML codec implementation.
//
// Sequences render as <seq len="n"><item>..</item></seq>, maps as
// <map len="n"><entry><key>..</key><value>..</value></entry></map> and text
// as <text>..</text>. Nested elements take the name of their slot.
package xml

import (
	"bytes"
	"encoding/xml"
	"strconv"

	"github.com/zoobzio/bounded"
)

func init() {
	bounded.SetXMLHook(func(enc *xml.Encoder, start xml.StartElement, v bounded.Serializable) error {
		return v.Serialize(NewSerializer(enc, start.Name.Local))
	})
}

// Option configures the XML codec.
type Option func(*xmlCodec)

// WithRootName names the outermost element instead of seq, map or text.
func WithRootName(name string) Option {
	return func(c *xmlCodec) {
		c.root = name
	}
}

// xmlCodec implements bounded.Codec for XML.
type xmlCodec struct {
	root string
}

// New returns an XML codec.
func New(opts ...Option) bounded.Codec {
	c := &xmlCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := NewSerializer(enc, c.root).value(v); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Serializer writes one XML element through an xml.Encoder.
type Serializer struct {
	enc  *xml.Encoder
	name string
}

var _ bounded.Serializer = (*Serializer)(nil)

// NewSerializer returns a Serializer that writes an element called name.
// An empty name picks seq, map or text by what is written.
func NewSerializer(enc *xml.Encoder, name string) *Serializer {
	return &Serializer{enc: enc, name: name}
}

func (s *Serializer) start(fallback string, hint bounded.SizeHint) xml.StartElement {
	name := s.name
	if name == "" {
		name = fallback
	}
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if hint.Known() {
		start.Attr = []xml.Attr{{Name: xml.Name{Local: "len"}, Value: strconv.Itoa(int(hint))}}
	}
	return start
}

// BeginSeq opens a sequence element.
func (s *Serializer) BeginSeq(hint bounded.SizeHint) (bounded.SeqWriter, error) {
	start := s.start("seq", hint)
	if err := s.enc.EncodeToken(start); err != nil {
		return nil, err
	}
	return &seqWriter{enc: s.enc, start: start}, nil
}

// BeginMap opens a map element.
func (s *Serializer) BeginMap(hint bounded.SizeHint) (bounded.MapWriter, error) {
	start := s.start("map", hint)
	if err := s.enc.EncodeToken(start); err != nil {
		return nil, err
	}
	return &mapWriter{enc: s.enc, start: start}, nil
}

// WriteString writes a text element.
func (s *Serializer) WriteString(str string) error {
	return s.enc.EncodeElement(str, s.start("text", bounded.UnknownSize))
}

// value writes v, recursing through Serializable values.
func (s *Serializer) value(v any) error {
	if sv, ok := v.(bounded.Serializable); ok {
		return sv.Serialize(s)
	}
	if s.name == "" {
		return s.enc.Encode(v)
	}
	return s.enc.EncodeElement(v, xml.StartElement{Name: xml.Name{Local: s.name}})
}

type seqWriter struct {
	enc   *xml.Encoder
	start xml.StartElement
}

func (w *seqWriter) WriteElement(v any) error {
	return NewSerializer(w.enc, "item").value(v)
}

func (w *seqWriter) End() error {
	return w.enc.EncodeToken(w.start.End())
}

type mapWriter struct {
	enc   *xml.Encoder
	start xml.StartElement
}

var entryStart = xml.StartElement{Name: xml.Name{Local: "entry"}}

func (w *mapWriter) WriteEntry(key, value any) error {
	if err := w.enc.EncodeToken(entryStart); err != nil {
		return err
	}
	if err := NewSerializer(w.enc, "key").value(key); err != nil {
		return err
	}
	if err := NewSerializer(w.enc, "value").value(value); err != nil {
		return err
	}
	return w.enc.EncodeToken(entryStart.End())
}

func (w *mapWriter) End() error {
	return w.enc.EncodeToken(w.start.End())
}
