package bounded

import (
	"unicode/utf8"
)

// String is a fixed-capacity text buffer that always holds valid UTF-8.
// Capacity and length are measured in bytes.
type String struct {
	buf []byte
}

var _ Serializable = (*String)(nil)

// NewString returns an empty buffer of capacity bytes.
func NewString(capacity int) *String {
	return &String{buf: make([]byte, 0, capacity)}
}

// StringFrom returns a buffer of capacity bytes holding b.
func StringFrom(capacity int, b []byte) (*String, error) {
	if !utf8.Valid(b) {
		return nil, ErrInvalidText
	}
	if len(b) > capacity {
		return nil, newCapacityError("string", capacity)
	}
	s := NewString(capacity)
	s.buf = append(s.buf, b...)
	return s, nil
}

// Len returns the length in bytes.
func (s *String) Len() int { return len(s.buf) }

// Cap returns the capacity in bytes.
func (s *String) Cap() int { return cap(s.buf) }

// Push appends r. Invalid runes are stored as utf8.RuneError.
func (s *String) Push(r rune) error {
	size := utf8.RuneLen(r)
	if size < 0 {
		size = utf8.RuneLen(utf8.RuneError)
	}
	if len(s.buf)+size > cap(s.buf) {
		return newCapacityError("string", cap(s.buf))
	}
	s.buf = utf8.AppendRune(s.buf, r)
	return nil
}

// PushString appends str whole or not at all. str must be valid UTF-8.
func (s *String) PushString(str string) error {
	if !utf8.ValidString(str) {
		return ErrInvalidText
	}
	if len(s.buf)+len(str) > cap(s.buf) {
		return newCapacityError("string", cap(s.buf))
	}
	s.buf = append(s.buf, str...)
	return nil
}

// Pop removes and returns the last rune.
func (s *String) Pop() (rune, bool) {
	if len(s.buf) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRune(s.buf)
	s.buf = s.buf[:len(s.buf)-size]
	return r, true
}

// Truncate shortens the text to n bytes. n must fall on a rune boundary.
func (s *String) Truncate(n int) error {
	if n >= len(s.buf) {
		return nil
	}
	if n < 0 || !utf8.RuneStart(s.buf[n]) {
		return ErrOutOfRange
	}
	s.buf = s.buf[:n]
	return nil
}

// Clear empties the buffer.
func (s *String) Clear() { s.buf = s.buf[:0] }

// String returns the text.
func (s *String) String() string { return string(s.buf) }

// Serialize emits the whole text as a single value.
func (s *String) Serialize(dst Serializer) error {
	return dst.WriteString(string(s.buf))
}
