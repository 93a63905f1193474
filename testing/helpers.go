// Package testing provides test utilities for bounded.
package testing

import (
	"github.com/zoobzio/bounded"
)

// Kind identifies what a recorded Node holds.
type Kind int

const (
	KindNone  Kind = iota // zero value of a Recorder nothing was written to
	KindSeq        // Items holds the elements
	KindMap        // Keys and Values hold the entries
	KindText       // Text holds the value
	KindValue      // Value holds a non-Serializable element, key or value
)

// Node is one value captured by a Recorder.
type Node struct {
	Kind   Kind
	Hint   bounded.SizeHint
	Items  []Node
	Keys   []Node
	Values []Node
	Text   string
	Value  any
	Closed bool // End was called
}

// Plain converts n into ordinary Go values for comparison:
// sequences become []any, maps become []Pair, text becomes string.
func (n Node) Plain() any {
	switch n.Kind {
	case KindSeq:
		out := make([]any, len(n.Items))
		for i, item := range n.Items {
			out[i] = item.Plain()
		}
		return out
	case KindMap:
		out := make([]Pair, len(n.Keys))
		for i := range n.Keys {
			out[i] = Pair{Key: n.Keys[i].Plain(), Value: n.Values[i].Plain()}
		}
		return out
	case KindText:
		return n.Text
	case KindValue:
		return n.Value
	default:
		return nil
	}
}

// Pair is a recorded map entry in plain form.
type Pair struct {
	Key   any
	Value any
}

// Recorder is a bounded.Serializer that captures everything written to it.
//
// When FailAt is k > 0, the k-th WriteElement or WriteEntry call at the top
// level returns Err and is not recorded. Writes counts every top-level
// write attempt, failing or not.
type Recorder struct {
	Root   Node
	FailAt int
	Err    error
	Writes int
}

var _ bounded.Serializer = (*Recorder)(nil)

// Record serializes v into a fresh Recorder and returns it.
func Record(v bounded.Serializable) (*Recorder, error) {
	r := &Recorder{}
	return r, v.Serialize(r)
}

// BeginSeq implements bounded.Serializer.
func (r *Recorder) BeginSeq(hint bounded.SizeHint) (bounded.SeqWriter, error) {
	r.Root = Node{Kind: KindSeq, Hint: hint, Items: []Node{}}
	return &seqRecorder{r: r}, nil
}

// BeginMap implements bounded.Serializer.
func (r *Recorder) BeginMap(hint bounded.SizeHint) (bounded.MapWriter, error) {
	r.Root = Node{Kind: KindMap, Hint: hint, Keys: []Node{}, Values: []Node{}}
	return &mapRecorder{r: r}, nil
}

// WriteString implements bounded.Serializer.
func (r *Recorder) WriteString(s string) error {
	r.Root = Node{Kind: KindText, Text: s}
	return nil
}

// attempt counts a write and reports the injected failure, if due.
func (r *Recorder) attempt() error {
	r.Writes++
	if r.FailAt > 0 && r.Writes == r.FailAt {
		return r.Err
	}
	return nil
}

// capture records v, descending into Serializable values with a child Recorder.
func capture(v any) (Node, error) {
	if s, ok := v.(bounded.Serializable); ok {
		child := &Recorder{}
		if err := s.Serialize(child); err != nil {
			return Node{}, err
		}
		return child.Root, nil
	}
	return Node{Kind: KindValue, Value: v}, nil
}

type seqRecorder struct {
	r *Recorder
}

func (w *seqRecorder) WriteElement(v any) error {
	if err := w.r.attempt(); err != nil {
		return err
	}
	n, err := capture(v)
	if err != nil {
		return err
	}
	w.r.Root.Items = append(w.r.Root.Items, n)
	return nil
}

func (w *seqRecorder) End() error {
	w.r.Root.Closed = true
	return nil
}

type mapRecorder struct {
	r *Recorder
}

func (w *mapRecorder) WriteEntry(key, value any) error {
	if err := w.r.attempt(); err != nil {
		return err
	}
	k, err := capture(key)
	if err != nil {
		return err
	}
	v, err := capture(value)
	if err != nil {
		return err
	}
	w.r.Root.Keys = append(w.r.Root.Keys, k)
	w.r.Root.Values = append(w.r.Root.Values, v)
	return nil
}

func (w *mapRecorder) End() error {
	w.r.Root.Closed = true
	return nil
}
