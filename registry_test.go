package bounded_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/bounded"
	"github.com/zoobzio/bounded/cbor"
	"github.com/zoobzio/bounded/json"
)

func TestRegister_FirstWins(t *testing.T) {
	bounded.Reset()

	first := json.New()
	if got := bounded.Register(first); got != first {
		t.Error("Register() should return the codec it stored")
	}

	second := json.New(json.WithIndent("", "  "))
	if got := bounded.Register(second); got != first {
		t.Error("Register() should keep the first codec for a content type")
	}

	c, err := bounded.Lookup("application/json")
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if c != first {
		t.Error("Lookup() should return the first registered codec")
	}
}

func TestLookup_Unknown(t *testing.T) {
	bounded.Reset()

	_, err := bounded.Lookup("application/x-unknown")
	if !errors.Is(err, bounded.ErrUnknownContentType) {
		t.Errorf("Lookup() error = %v, want ErrUnknownContentType", err)
	}
}

func TestReset(t *testing.T) {
	bounded.Register(cbor.New())

	bounded.Reset()

	if _, err := bounded.Lookup("application/cbor"); err == nil {
		t.Error("Reset() should clear registered codecs")
	}
}
