package bounded

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for marshal events.
var (
	SignalCodecRegistered = capitan.NewSignal("bounded.codec.registered", "Codec registered for a content type")
	SignalMarshalStart    = capitan.NewSignal("bounded.marshal.start", "Marshal operation beginning")
	SignalMarshalComplete = capitan.NewSignal("bounded.marshal.complete", "Marshal operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitCodecRegistered emits an event when a codec is registered.
func emitCodecRegistered(ctx context.Context, contentType string) {
	capitan.Emit(ctx, SignalCodecRegistered,
		KeyContentType.Field(contentType),
	)
}

// emitMarshalStart emits an event when marshal begins.
func emitMarshalStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalMarshalStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitMarshalComplete emits an event when marshal finishes.
func emitMarshalComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalMarshalComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalMarshalComplete, fields...)
	}
}
