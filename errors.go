package bounded

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrFull indicates an insertion would exceed a container's capacity.
	ErrFull = errors.New("capacity exceeded")

	// ErrOutOfRange indicates an index outside the container's length.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidText indicates bytes that are not valid UTF-8.
	ErrInvalidText = errors.New("invalid utf-8 text")

	// ErrUnsupportedKey indicates a backend cannot encode a map key type.
	ErrUnsupportedKey = errors.New("unsupported map key")

	// ErrUnknownContentType indicates no codec is registered for a content type.
	ErrUnknownContentType = errors.New("unknown content type")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrBackendNotLinked indicates a library encoder reached a container
	// whose backend subpackage was never imported.
	ErrBackendNotLinked = errors.New("backend not linked")
)

// CapacityError reports an insertion rejected by a full container.
type CapacityError struct {
	Container string // Container kind (vec, deque, ...)
	Capacity  int    // Fixed capacity of the container
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: %s (capacity %d)", e.Container, ErrFull.Error(), e.Capacity)
}

func (e *CapacityError) Unwrap() error {
	return ErrFull
}

// CodecError represents a marshal error surfaced by Marshal or MarshalAs.
type CodecError struct {
	Err         error  // Underlying sentinel error (ErrMarshal)
	ContentType string // Content type of the codec that failed
	Cause       error  // Original error from the codec
}

func (e *CodecError) Error() string {
	msg := e.Err.Error()
	if e.ContentType != "" {
		msg += " (" + e.ContentType + ")"
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *CodecError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// newCapacityError creates a CapacityError for a full container.
func newCapacityError(container string, capacity int) error {
	return &CapacityError{
		Container: container,
		Capacity:  capacity,
	}
}

// newCodecError creates a CodecError for marshal failures.
func newCodecError(sentinel error, contentType string, cause error) error {
	return &CodecError{
		Err:         sentinel,
		ContentType: contentType,
		Cause:       cause,
	}
}
