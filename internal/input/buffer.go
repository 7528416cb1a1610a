// Package input holds the launcher's bounded line buffer.
package input

// DefaultCapacity matches the launcher's default max_input_length.
const DefaultCapacity = 256

// Buffer is a bounded line of single-byte printable text.
// Capacity counts a reserved terminator slot, so at most Capacity()-1
// characters are ever stored.
type Buffer struct {
	text     []byte
	capacity int
}

// NewBuffer creates an empty buffer. Capacities below 2 fall back to
// DefaultCapacity since they could never hold a character.
func NewBuffer(capacity int) *Buffer {
	if capacity < 2 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		text:     make([]byte, 0, capacity-1),
		capacity: capacity,
	}
}

// Capacity returns the configured capacity including the terminator slot.
func (b *Buffer) Capacity() int { return b.capacity }

// Len returns the number of stored characters.
func (b *Buffer) Len() int { return len(b.text) }

// Full reports whether another character would be dropped.
func (b *Buffer) Full() bool { return len(b.text) >= b.capacity-1 }

// String returns the current text.
func (b *Buffer) String() string { return string(b.text) }

// Append adds c when there is room and c is a printable single-byte
// character. It reports whether the buffer changed.
func (b *Buffer) Append(c rune) bool {
	if !Printable(c) || b.Full() {
		return false
	}
	b.text = append(b.text, byte(c))
	return true
}

// Backspace removes the last character. It reports whether the buffer changed.
func (b *Buffer) Backspace() bool {
	if len(b.text) == 0 {
		return false
	}
	b.text = b.text[:len(b.text)-1]
	return true
}

// ReplaceWith overwrites the whole buffer with s, truncated to fit.
// Unprintable bytes in s are kept as-is; s normally comes from a file name.
func (b *Buffer) ReplaceWith(s string) {
	if limit := b.capacity - 1; len(s) > limit {
		s = s[:limit]
	}
	b.text = append(b.text[:0], s...)
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.text = b.text[:0]
}

// Printable reports whether c is a printable single-byte character.
func Printable(c rune) bool {
	return c >= 0x20 && c < 0x7f
}
