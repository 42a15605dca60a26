// Package secure provides a memory-locked, zero-on-close byte container for
// symmetric key material and other secrets that must not outlive their use
// or leak into swap.
package secure

import (
	"errors"
	"runtime"

	"github.com/Yashkhatsuriya/CEX/internal/mem"
)

// ErrClosed is returned by any Buffer operation performed after Close.
var ErrClosed = errors.New("secure: buffer is closed")

// Buffer holds a fixed-length byte secret. The backing array is page-locked
// on platforms that support it so the kernel cannot swap it to disk, and is
// zeroed exactly once, on Close.
type Buffer struct {
	b      []byte
	locked bool
	closed bool
}

// New allocates a Buffer of the given length. The contents start zeroed.
func New(length int) *Buffer {
	b := make([]byte, length)
	locked := lock(b)
	return &Buffer{b: b, locked: locked}
}

// NewFromBytes allocates a Buffer and copies src into it. src is not
// modified or retained.
func NewFromBytes(src []byte) *Buffer {
	buf := New(len(src))
	copy(buf.b, src)
	return buf
}

// Len returns the length of the buffer in bytes.
func (b *Buffer) Len() int {
	return len(b.b)
}

// IsEmpty reports whether the buffer has zero length.
func (b *Buffer) IsEmpty() bool {
	return len(b.b) == 0
}

// AsSlice returns the buffer's contents as a read-only view. The returned
// slice aliases the buffer's storage and must not be retained past Close.
func (b *Buffer) AsSlice() []byte {
	if b.closed {
		panic("secure: AsSlice called after Close")
	}
	return b.b
}

// AsMutSlice returns the buffer's contents as a mutable view, for in-place
// key derivation or rekeying. The returned slice aliases the buffer's
// storage and must not be retained past Close.
func (b *Buffer) AsMutSlice() []byte {
	if b.closed {
		panic("secure: AsMutSlice called after Close")
	}
	return b.b
}

// FillFrom overwrites the buffer's contents with src. len(src) must equal
// b.Len().
func (b *Buffer) FillFrom(src []byte) error {
	if b.closed {
		return ErrClosed
	}
	if len(src) != len(b.b) {
		return errors.New("secure: FillFrom length mismatch")
	}
	copy(b.b, src)
	return nil
}

// ConstantTimeEq reports whether b and other hold equal contents, in time
// independent of where they first differ.
func (b *Buffer) ConstantTimeEq(other *Buffer) bool {
	if b.closed || other.closed {
		return false
	}
	return mem.ConstantTimeEq(b.b, other.b)
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	if b.closed {
		panic("secure: Clone called after Close")
	}
	return NewFromBytes(b.b)
}

// Close zeroes the buffer's contents, unlocks its pages, and invalidates the
// instance. Close is idempotent. After Close, Len and IsEmpty still work,
// ConstantTimeEq reports false, and every other method panics or returns
// ErrClosed.
func (b *Buffer) Close() {
	if b.closed {
		return
	}
	for i := range b.b {
		b.b[i] = 0
	}
	runtime.KeepAlive(b.b)
	if b.locked {
		unlock(b.b)
	}
	b.closed = true
}
