// Package bson provides a BSON codec implementation.
//
// Sequences become bson.A and maps become bson.D, which keeps entry order.
// A BSON payload must be a document, so any root that is not a map is
// stored under a single root key.
package bson

import (
	"fmt"
	"reflect"

	"github.com/zoobzio/bounded"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// DefaultRootKey holds non-document roots.
const DefaultRootKey = "value"

func init() {
	bounded.SetBSONHook(func(v bounded.Serializable) (bsontype.Type, []byte, error) {
		x, err := build(v)
		if err != nil {
			return 0, nil, err
		}
		return bson.MarshalValue(x)
	})
}

// Option configures the BSON codec.
type Option func(*bsonCodec)

// WithRootKey sets the key used to wrap non-document roots.
func WithRootKey(key string) Option {
	return func(c *bsonCodec) {
		c.rootKey = key
	}
}

// bsonCodec implements bounded.Codec for BSON.
type bsonCodec struct {
	rootKey string
}

// New returns a BSON codec.
func New(opts ...Option) bounded.Codec {
	c := &bsonCodec{rootKey: DefaultRootKey}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	sv, ok := v.(bounded.Serializable)
	if !ok {
		return bson.Marshal(v)
	}
	s := &Serializer{}
	if err := sv.Serialize(s); err != nil {
		return nil, err
	}
	if doc, ok := s.Value().(bson.D); ok {
		return bson.Marshal(doc)
	}
	return bson.Marshal(bson.D{{Key: c.rootKey, Value: s.Value()}})
}

// Serializer builds a BSON value: bson.A, bson.D or string.
type Serializer struct {
	val any
}

var _ bounded.Serializer = (*Serializer)(nil)

// Value returns the value built so far.
func (s *Serializer) Value() any {
	return s.val
}

// BeginSeq starts a bson.A.
func (s *Serializer) BeginSeq(hint bounded.SizeHint) (bounded.SeqWriter, error) {
	return &seqWriter{s: s, arr: make(bson.A, 0, max(int(hint), 0))}, nil
}

// BeginMap starts a bson.D.
func (s *Serializer) BeginMap(hint bounded.SizeHint) (bounded.MapWriter, error) {
	return &mapWriter{s: s, doc: make(bson.D, 0, max(int(hint), 0))}, nil
}

// WriteString sets a string value.
func (s *Serializer) WriteString(str string) error {
	s.val = str
	return nil
}

// build converts v, recursing through Serializable values.
func build(v any) (any, error) {
	sv, ok := v.(bounded.Serializable)
	if !ok {
		return v, nil
	}
	s := &Serializer{}
	if err := sv.Serialize(s); err != nil {
		return nil, err
	}
	return s.Value(), nil
}

// documentKey returns k as a document key. Only string kinds are accepted.
func documentKey(k any) (string, error) {
	rv := reflect.ValueOf(k)
	if rv.Kind() != reflect.String {
		return "", fmt.Errorf("%w: bson document key %T", bounded.ErrUnsupportedKey, k)
	}
	return rv.String(), nil
}

type seqWriter struct {
	s   *Serializer
	arr bson.A
}

func (w *seqWriter) WriteElement(v any) error {
	x, err := build(v)
	if err != nil {
		return err
	}
	w.arr = append(w.arr, x)
	return nil
}

func (w *seqWriter) End() error {
	w.s.val = w.arr
	return nil
}

type mapWriter struct {
	s   *Serializer
	doc bson.D
}

func (w *mapWriter) WriteEntry(key, value any) error {
	k, err := documentKey(key)
	if err != nil {
		return err
	}
	x, err := build(value)
	if err != nil {
		return err
	}
	w.doc = append(w.doc, bson.E{Key: k, Value: x})
	return nil
}

func (w *mapWriter) End() error {
	w.s.val = w.doc
	return nil
}
