// Package pathbuf provides a fixed-capacity path buffer whose mutations fail
// instead of overflowing.
package pathbuf

import (
	"fmt"
	"strings"
)

// Separators are the bytes treated as path separators when splitting a path.
// Both are accepted on every platform so that Windows-style paths can be
// handled (and tested) anywhere.
const Separators = `/\`

// OverflowError is returned when a mutation would exceed the buffer capacity.
type OverflowError struct {
	Need     int // bytes required, including the terminator
	Capacity int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("path needs %d bytes but the buffer holds %d", e.Need, e.Capacity)
}

// PathTooLongError is returned when a path cannot fit the buffer it is
// destined for.
type PathTooLongError struct {
	Path     string
	Capacity int
}

func (e *PathTooLongError) Error() string {
	return fmt.Sprintf("path to %s is too long for a %d byte buffer", e.Path, e.Capacity)
}

// Buffer holds a path of at most Cap()-1 bytes. Capacity counts the
// terminating NUL, matching what a C caller would have to allocate.
type Buffer struct {
	b   []byte
	cap int
}

// New returns an empty buffer with the given capacity.
func New(capacity int) *Buffer {
	return &Buffer{b: make([]byte, 0, capacity), cap: capacity}
}

// From returns a buffer holding s, or an OverflowError if s does not fit.
func From(s string, capacity int) (*Buffer, error) {
	b := New(capacity)
	if err := b.Set(s); err != nil {
		return nil, err
	}
	return b, nil
}

// Fits reports whether a string of n bytes plus terminator fits the buffer.
func (b *Buffer) Fits(n int) bool {
	return n >= 0 && n+1 <= b.cap
}

// Set replaces the buffer contents.
func (b *Buffer) Set(s string) error {
	if !b.Fits(len(s)) {
		return &OverflowError{Need: len(s) + 1, Capacity: b.cap}
	}
	b.b = append(b.b[:0], s...)
	return nil
}

// Truncate cuts the contents at byte offset n (excluding n).
func (b *Buffer) Truncate(n int) error {
	if n < 0 || n > len(b.b) {
		return fmt.Errorf("truncate at %d out of range [0,%d]", n, len(b.b))
	}
	b.b = b.b[:n]
	return nil
}

// OverwriteAt replaces everything from offset i onward with s.
func (b *Buffer) OverwriteAt(i int, s string) error {
	if i < 0 || i > len(b.b) {
		return fmt.Errorf("overwrite at %d out of range [0,%d]", i, len(b.b))
	}
	if !b.Fits(i + len(s)) {
		return &OverflowError{Need: i + len(s) + 1, Capacity: b.cap}
	}
	b.b = append(b.b[:i], s...)
	return nil
}

// LastIndexByte returns the offset of the last c, or -1.
func (b *Buffer) LastIndexByte(c byte) int {
	for i := len(b.b) - 1; i >= 0; i-- {
		if b.b[i] == c {
			return i
		}
	}
	return -1
}

// Len returns the length of the contents without terminator.
func (b *Buffer) Len() int { return len(b.b) }

// Cap returns the capacity including terminator.
func (b *Buffer) Cap() int { return b.cap }

func (b *Buffer) String() string { return string(b.b) }

// Split splits path after its last separator. dir keeps the trailing
// separator; if there is none, dir is empty and name is the whole path.
func Split(path string) (dir, name string) {
	i := strings.LastIndexAny(path, Separators)
	return path[:i+1], path[i+1:]
}
