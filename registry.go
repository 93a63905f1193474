package bounded

import (
	"context"
	"fmt"
	"sync"
)

var (
	registry   = make(map[string]Codec)
	registryMu sync.RWMutex
)

// Register makes c available to Lookup and MarshalAs under its content type.
// The first codec registered for a content type wins; Register returns the
// codec that ends up cached.
func Register(c Codec) Codec {
	contentType := c.ContentType()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[contentType]; ok {
		registryMu.RUnlock()
		return cached
	}
	registryMu.RUnlock()

	// Slow path: cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[contentType]; ok {
		return cached
	}

	registry[contentType] = c
	emitCodecRegistered(context.Background(), contentType)
	return c
}

// Lookup returns the codec registered for contentType.
func Lookup(contentType string) (Codec, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	c, ok := registry[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContentType, contentType)
	}
	return c, nil
}

// Reset clears the codec registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Codec)
}
