// Package yaml provides a YAML codec implementation.
//
// Containers are built into a yaml.Node tree first, so mapping keys keep
// the container's order instead of being sorted.
package yaml

import (
	"bytes"

	"github.com/zoobzio/bounded"
	"gopkg.in/yaml.v3"
)

func init() {
	bounded.SetYAMLHook(func(v bounded.Serializable) (any, error) {
		return encodeNode(v)
	})
}

// Option configures the YAML codec.
type Option func(*yamlCodec)

// WithIndent sets the number of spaces used for nesting.
func WithIndent(spaces int) Option {
	return func(c *yamlCodec) {
		c.indent = spaces
	}
}

// yamlCodec implements bounded.Codec for YAML.
type yamlCodec struct {
	indent int
}

// New returns a YAML codec.
func New(opts ...Option) bounded.Codec {
	c := &yamlCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	node, err := encodeNode(v)
	if err != nil {
		return nil, err
	}
	if c.indent == 0 {
		return yaml.Marshal(node)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.indent)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Serializer builds a single yaml.Node.
type Serializer struct {
	node *yaml.Node
}

var _ bounded.Serializer = (*Serializer)(nil)

// Node returns the node built so far, or a null scalar if nothing was written.
func (s *Serializer) Node() *yaml.Node {
	if s.node == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
	return s.node
}

// BeginSeq starts a sequence node.
func (s *Serializer) BeginSeq(hint bounded.SizeHint) (bounded.SeqWriter, error) {
	s.node = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if hint.Known() {
		s.node.Content = make([]*yaml.Node, 0, int(hint))
	}
	return &seqWriter{node: s.node}, nil
}

// BeginMap starts a mapping node.
func (s *Serializer) BeginMap(hint bounded.SizeHint) (bounded.MapWriter, error) {
	s.node = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if hint.Known() {
		s.node.Content = make([]*yaml.Node, 0, 2*int(hint))
	}
	return &mapWriter{node: s.node}, nil
}

// WriteString sets a string scalar, quoted when it would otherwise resolve
// to another type.
func (s *Serializer) WriteString(str string) error {
	n := &yaml.Node{}
	if err := n.Encode(str); err != nil {
		return err
	}
	s.node = n
	return nil
}

// encodeNode converts v to a node, recursing through Serializable values.
func encodeNode(v any) (*yaml.Node, error) {
	if sv, ok := v.(bounded.Serializable); ok {
		s := &Serializer{}
		if err := sv.Serialize(s); err != nil {
			return nil, err
		}
		return s.Node(), nil
	}
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}

type seqWriter struct {
	node *yaml.Node
}

func (w *seqWriter) WriteElement(v any) error {
	n, err := encodeNode(v)
	if err != nil {
		return err
	}
	w.node.Content = append(w.node.Content, n)
	return nil
}

func (w *seqWriter) End() error { return nil }

type mapWriter struct {
	node *yaml.Node
}

func (w *mapWriter) WriteEntry(key, value any) error {
	k, err := encodeNode(key)
	if err != nil {
		return err
	}
	v, err := encodeNode(value)
	if err != nil {
		return err
	}
	w.node.Content = append(w.node.Content, k, v)
	return nil
}

func (w *mapWriter) End() error { return nil }
