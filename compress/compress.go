// Package compress wraps a bounded.Codec so its output is compressed.
package compress

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/zoobzio/bounded"
)

// zstdEncoder is shared by codecs built without options.
// zstd.Encoder is safe for concurrent EncodeAll calls.
var zstdEncoder *zstd.Encoder

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("compress: zstd encoder initialization failed: " + err.Error())
	}
}

// zstdCodec compresses the inner codec's output with zstd.
type zstdCodec struct {
	inner bounded.Codec
	enc   *zstd.Encoder
}

// Zstd returns a codec producing inner's output compressed with zstd.
// Options configure a dedicated encoder; without them a shared default is used.
func Zstd(inner bounded.Codec, opts ...zstd.EOption) (bounded.Codec, error) {
	enc := zstdEncoder
	if len(opts) > 0 {
		var err error
		enc, err = zstd.NewWriter(nil, opts...)
		if err != nil {
			return nil, fmt.Errorf("zstd encoder: %w", err)
		}
	}
	return &zstdCodec{inner: inner, enc: enc}, nil
}

// ContentType returns the inner content type with a +zstd suffix.
func (c *zstdCodec) ContentType() string {
	return c.inner.ContentType() + "+zstd"
}

// Marshal encodes v with the inner codec and compresses the result.
func (c *zstdCodec) Marshal(v any) ([]byte, error) {
	data, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}
	return c.enc.EncodeAll(data, nil), nil
}

// lz4Codec compresses the inner codec's output as an LZ4 frame.
type lz4Codec struct {
	inner bounded.Codec
}

// LZ4 returns a codec producing inner's output as an LZ4 frame.
func LZ4(inner bounded.Codec) bounded.Codec {
	return &lz4Codec{inner: inner}
}

// ContentType returns the inner content type with a +lz4 suffix.
func (c *lz4Codec) ContentType() string {
	return c.inner.ContentType() + "+lz4"
}

// Marshal encodes v with the inner codec and compresses the result.
func (c *lz4Codec) Marshal(v any) ([]byte, error) {
	data, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	return buf.Bytes(), nil
}
