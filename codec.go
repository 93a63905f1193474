package bounded

import (
	"context"
	"fmt"
	"time"
)

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes. Values implementing Serializable are
	// driven through the codec's Serializer.
	Marshal(v any) ([]byte, error)
}

// Marshal encodes v with c and emits marshal signals around the call.
// Codec failures are returned as *CodecError wrapping ErrMarshal and the cause.
func Marshal(ctx context.Context, c Codec, v any) ([]byte, error) {
	contentType := c.ContentType()
	typeName := fmt.Sprintf("%T", v)

	start := time.Now()
	emitMarshalStart(ctx, contentType, typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitMarshalComplete(ctx, contentType, typeName, len(retData), time.Since(start), retErr)
	}()

	data, err := c.Marshal(v)
	if err != nil {
		retErr = newCodecError(ErrMarshal, contentType, err)
		return nil, retErr
	}
	retData = data
	return retData, nil
}

// MarshalAs looks up the registered codec for contentType and marshals v with it.
func MarshalAs(ctx context.Context, contentType string, v any) ([]byte, error) {
	c, err := Lookup(contentType)
	if err != nil {
		return nil, err
	}
	return Marshal(ctx, c, v)
}
