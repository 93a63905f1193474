package cbor

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/zoobzio/bounded"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/cbor" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/cbor")
	}
}

func TestMarshalContainers(t *testing.T) {
	hist := bounded.NewHistoryBuffer[int](3)
	hist.Extend(1, 2, 3, 4)

	m := bounded.NewIndexMap[string, int](2)
	_, _, _ = m.Insert("b", 1)
	_, _, _ = m.Insert("a", 2)

	text, _ := bounded.StringFrom(8, []byte("héllo"))

	tests := []struct {
		name string
		v    any
		want []byte
	}{
		{"history", hist, []byte{0x83, 0x02, 0x03, 0x04}},
		{"empty vec", bounded.NewVec[int](2), []byte{0x80}},
		{"map keeps order", m, []byte{0xa2, 0x61, 'b', 0x01, 0x61, 'a', 0x02}},
		{"empty map", bounded.NewLinearMap[int, int](2), []byte{0xa0}},
		{"text", text, append([]byte{0x66}, "héllo"...)},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := c.Marshal(tt.v)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if !bytes.Equal(data, tt.want) {
				t.Errorf("Marshal() = %x, want %x", data, tt.want)
			}
		})
	}
}

func TestMarshalDecodes(t *testing.T) {
	vec := bounded.NewVec[*bounded.IndexSet[string]](2)
	set := bounded.NewIndexSet[string](3)
	_, _ = set.Insert("x")
	_, _ = set.Insert("y")
	_ = vec.Push(set)

	data, err := New().Marshal(vec)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var got [][]string
	if err := cbor.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !reflect.DeepEqual(got, [][]string{{"x", "y"}}) {
		t.Errorf("decoded = %v, want [[x y]]", got)
	}
}

func TestSerializer_UnknownHint(t *testing.T) {
	var buf bytes.Buffer
	s := NewSerializer(&buf)

	seq, err := s.BeginSeq(bounded.UnknownSize)
	if err != nil {
		t.Fatalf("BeginSeq() error: %v", err)
	}
	_ = seq.WriteElement(1)
	_ = seq.WriteElement(2)
	if err := seq.End(); err != nil {
		t.Fatalf("End() error: %v", err)
	}

	if want := []byte{0x9f, 0x01, 0x02, 0xff}; !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("bytes = %x, want %x", buf.Bytes(), want)
	}
}

func TestWriteHead(t *testing.T) {
	tests := []struct {
		n    uint64
		want []byte
	}{
		{0, []byte{0x80}},
		{23, []byte{0x97}},
		{24, []byte{0x98, 24}},
		{256, []byte{0x99, 0x01, 0x00}},
		{1 << 16, []byte{0x9a, 0x00, 0x01, 0x00, 0x00}},
		{1 << 32, []byte{0x9b, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := writeHead(&buf, majorArray, tt.n); err != nil {
			t.Fatalf("writeHead(%d) error: %v", tt.n, err)
		}
		if !bytes.Equal(buf.Bytes(), tt.want) {
			t.Errorf("writeHead(%d) = %x, want %x", tt.n, buf.Bytes(), tt.want)
		}
	}
}

type reading struct {
	Sensor  string
	Samples *bounded.HistoryBuffer[int]
}

func TestMarshalStructField(t *testing.T) {
	h := bounded.NewHistoryBuffer[int](3)
	h.Extend(1, 2, 3, 4)

	data, err := New().Marshal(reading{Sensor: "t1", Samples: h})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !bytes.Contains(data, []byte{0x83, 0x02, 0x03, 0x04}) {
		t.Errorf("output % x should carry the history buffer as 83 02 03 04", data)
	}

	var got struct {
		Sensor  string
		Samples []int
	}
	if err := cbor.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got.Sensor != "t1" || !reflect.DeepEqual(got.Samples, []int{2, 3, 4}) {
		t.Errorf("decoded = %+v, want t1 and [2 3 4]", got)
	}
}
