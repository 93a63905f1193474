package integration

import (
	"context"
	stdjson "encoding/json"
	stdxml "encoding/xml"
	"errors"
	"reflect"
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	vmsgpack "github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/bounded"
	"github.com/zoobzio/bounded/bson"
	"github.com/zoobzio/bounded/cbor"
	"github.com/zoobzio/bounded/compress"
	"github.com/zoobzio/bounded/json"
	"github.com/zoobzio/bounded/msgpack"
	"github.com/zoobzio/bounded/xml"
	"github.com/zoobzio/bounded/yaml"
	mongobson "go.mongodb.org/mongo-driver/bson"
	yamlv3 "gopkg.in/yaml.v3"
)

// ring returns a capacity-3 history buffer after writing 1..4.
func ring() *bounded.HistoryBuffer[int] {
	h := bounded.NewHistoryBuffer[int](3)
	h.Extend(1, 2, 3, 4)
	return h
}

func decoders() map[string]func([]byte, any) error {
	return map[string]func([]byte, any) error{
		"application/json":    stdjson.Unmarshal,
		"application/yaml":    yamlv3.Unmarshal,
		"application/msgpack": vmsgpack.Unmarshal,
		"application/cbor":    fxcbor.Unmarshal,
	}
}

func TestRingBuffer_AllBackends(t *testing.T) {
	codecs := []bounded.Codec{json.New(), yaml.New(), msgpack.New(), cbor.New()}
	decode := decoders()

	for _, c := range codecs {
		t.Run(c.ContentType(), func(t *testing.T) {
			data, err := bounded.Marshal(context.Background(), c, ring())
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			var got []int
			if err := decode[c.ContentType()](data, &got); err != nil {
				t.Fatalf("decode error: %v", err)
			}
			if !reflect.DeepEqual(got, []int{2, 3, 4}) {
				t.Errorf("decoded = %v, want [2 3 4]", got)
			}
		})
	}
}

func TestRingBuffer_XML(t *testing.T) {
	data, err := bounded.Marshal(context.Background(), xml.New(xml.WithRootName("ring")), ring())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var got struct {
		Len   int   `xml:"len,attr"`
		Items []int `xml:"item"`
	}
	if err := stdxml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got.Len != 3 || !reflect.DeepEqual(got.Items, []int{2, 3, 4}) {
		t.Errorf("decoded = %+v, want len 3 and [2 3 4]", got)
	}
}

func TestRingBuffer_BSON(t *testing.T) {
	data, err := bounded.Marshal(context.Background(), bson.New(), ring())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var got map[string][]int
	if err := mongobson.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !reflect.DeepEqual(got[bson.DefaultRootKey], []int{2, 3, 4}) {
		t.Errorf("decoded = %v, want [2 3 4]", got)
	}
}

func TestNestedContainers_AllBackends(t *testing.T) {
	inner := bounded.NewVec[string](2)
	_ = inner.Push("héllo")
	_ = inner.Push("wörld")

	empty := bounded.NewVec[string](2)

	m := bounded.NewIndexMap[string, *bounded.Vec[string]](2)
	_, _, _ = m.Insert("words", inner)
	_, _, _ = m.Insert("none", empty)

	want := map[string][]string{"words": {"héllo", "wörld"}, "none": {}}
	codecs := []bounded.Codec{json.New(), yaml.New(), msgpack.New(), cbor.New()}
	decode := decoders()

	for _, c := range codecs {
		t.Run(c.ContentType(), func(t *testing.T) {
			data, err := bounded.Marshal(context.Background(), c, m)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			got := map[string][]string{}
			if err := decode[c.ContentType()](data, &got); err != nil {
				t.Fatalf("decode error: %v", err)
			}
			if len(got) != 2 || !reflect.DeepEqual(got["words"], want["words"]) || len(got["none"]) != 0 {
				t.Errorf("decoded = %v, want %v", got, want)
			}
		})
	}
}

func TestMarshalAs_Compressed(t *testing.T) {
	bounded.Reset()
	z, err := compress.Zstd(cbor.New())
	if err != nil {
		t.Fatalf("Zstd() error: %v", err)
	}
	bounded.Register(z)

	data, err := bounded.MarshalAs(context.Background(), "application/cbor+zstd", ring())
	if err != nil {
		t.Fatalf("MarshalAs() error: %v", err)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		t.Fatalf("zstd.NewReader() error: %v", err)
	}
	defer dec.Close()
	plain, err := dec.DecodeAll(data, nil)
	if err != nil {
		t.Fatalf("DecodeAll() error: %v", err)
	}

	var got []int
	if err := fxcbor.Unmarshal(plain, &got); err != nil {
		t.Fatalf("cbor.Unmarshal() error: %v", err)
	}
	if !reflect.DeepEqual(got, []int{2, 3, 4}) {
		t.Errorf("decoded = %v, want [2 3 4]", got)
	}
}

func TestElementFailure_Surfaces(t *testing.T) {
	v := bounded.NewVec[any](2)
	_ = v.Push(1)
	_ = v.Push(make(chan int))

	_, err := bounded.Marshal(context.Background(), json.New(), v)
	if !errors.Is(err, bounded.ErrMarshal) {
		t.Fatalf("Marshal() error = %v, want ErrMarshal", err)
	}
	var unsupported *stdjson.UnsupportedTypeError
	if !errors.As(err, &unsupported) {
		t.Errorf("error should carry the encoder's own failure, got %v", err)
	}
}

// Reading holds a container in an ordinary struct field.
type Reading struct {
	Sensor  string                      `json:"sensor" yaml:"sensor" msgpack:"sensor" cbor:"sensor" bson:"sensor" xml:"sensor"`
	Samples *bounded.HistoryBuffer[int] `json:"samples" yaml:"samples" msgpack:"samples" cbor:"samples" bson:"samples" xml:"samples"`
}

type decodedReading struct {
	Sensor  string `json:"sensor" yaml:"sensor" msgpack:"sensor" cbor:"sensor" bson:"sensor" xml:"sensor"`
	Samples struct {
		Len   int   `xml:"len,attr"`
		Items []int `xml:"item"`
	} `xml:"samples"`
}

func TestStructField_AllBackends(t *testing.T) {
	r := Reading{Sensor: "t1", Samples: ring()}

	type sampled struct {
		Sensor  string `json:"sensor" yaml:"sensor" msgpack:"sensor" cbor:"sensor"`
		Samples []int  `json:"samples" yaml:"samples" msgpack:"samples" cbor:"samples"`
	}
	codecs := []bounded.Codec{json.New(), yaml.New(), msgpack.New(), cbor.New()}
	decode := decoders()

	for _, c := range codecs {
		t.Run(c.ContentType(), func(t *testing.T) {
			data, err := bounded.Marshal(context.Background(), c, r)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			var got sampled
			if err := decode[c.ContentType()](data, &got); err != nil {
				t.Fatalf("decode error: %v", err)
			}
			if got.Sensor != "t1" || !reflect.DeepEqual(got.Samples, []int{2, 3, 4}) {
				t.Errorf("decoded = %+v, want t1 and [2 3 4]", got)
			}
		})
	}

	t.Run("application/bson", func(t *testing.T) {
		data, err := bounded.Marshal(context.Background(), bson.New(), r)
		if err != nil {
			t.Fatalf("Marshal() error: %v", err)
		}
		var got struct {
			Sensor  string `bson:"sensor"`
			Samples []int  `bson:"samples"`
		}
		if err := mongobson.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal() error: %v", err)
		}
		if got.Sensor != "t1" || !reflect.DeepEqual(got.Samples, []int{2, 3, 4}) {
			t.Errorf("decoded = %+v, want t1 and [2 3 4]", got)
		}
	})

	t.Run("application/xml", func(t *testing.T) {
		data, err := bounded.Marshal(context.Background(), xml.New(), r)
		if err != nil {
			t.Fatalf("Marshal() error: %v", err)
		}
		var got decodedReading
		if err := stdxml.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal() error: %v", err)
		}
		if got.Sensor != "t1" || got.Samples.Len != 3 || !reflect.DeepEqual(got.Samples.Items, []int{2, 3, 4}) {
			t.Errorf("decoded = %+v, want t1 and len 3 [2 3 4]", got)
		}
	})
}
