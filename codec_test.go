package bounded_test

import (
	"context"
	"errors"
	"testing"

	"github.com/zoobzio/bounded"
	"github.com/zoobzio/bounded/json"
)

// failingCodec always fails to marshal.
type failingCodec struct{ err error }

func (c *failingCodec) ContentType() string        { return "application/fail" }
func (c *failingCodec) Marshal(any) ([]byte, error) { return nil, c.err }

func TestMarshal(t *testing.T) {
	v := bounded.NewVec[int](3)
	_ = v.Push(1)
	_ = v.Push(2)

	data, err := bounded.Marshal(context.Background(), json.New(), v)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != "[1,2]" {
		t.Errorf("Marshal() = %s, want [1,2]", data)
	}
}

func TestMarshal_WrapsCodecError(t *testing.T) {
	cause := errors.New("destination failure")

	_, err := bounded.Marshal(context.Background(), &failingCodec{err: cause}, 1)
	if !errors.Is(err, bounded.ErrMarshal) {
		t.Errorf("error should match ErrMarshal, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("error should wrap the codec's cause, got %v", err)
	}

	var codecErr *bounded.CodecError
	if !errors.As(err, &codecErr) {
		t.Fatalf("error should be *CodecError, got %T", err)
	}
	if codecErr.ContentType != "application/fail" {
		t.Errorf("ContentType = %q, want application/fail", codecErr.ContentType)
	}
}

func TestMarshalAs(t *testing.T) {
	bounded.Reset()
	bounded.Register(json.New())

	set := bounded.NewIndexSet[string](2)
	_, _ = set.Insert("b")
	_, _ = set.Insert("a")

	data, err := bounded.MarshalAs(context.Background(), "application/json", set)
	if err != nil {
		t.Fatalf("MarshalAs() error: %v", err)
	}
	if string(data) != `["b","a"]` {
		t.Errorf("MarshalAs() = %s, want [\"b\",\"a\"]", data)
	}

	if _, err := bounded.MarshalAs(context.Background(), "text/plain", set); !errors.Is(err, bounded.ErrUnknownContentType) {
		t.Errorf("MarshalAs(unknown) error = %v, want ErrUnknownContentType", err)
	}
}
