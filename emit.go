// Completion: 100% - cursor writer complete
package main

import (
	"fmt"
	"os"
)

// CodeBuffer is a write cursor over a fixed-capacity byte arena (the
// writable executable region). It supports appending bytes, appending a
// 32-bit little-endian immediate, reading the current offset, and patching
// an earlier offset with the cursor restored afterwards. It never grows:
// writes past capacity set a sticky overflow flag instead of reallocating,
// so already-recorded patch sites stay valid.
type CodeBuffer struct {
	buf        []byte
	pos        int
	overflowed bool
}

func NewCodeBuffer(buf []byte) *CodeBuffer {
	return &CodeBuffer{buf: buf}
}

func (cb *CodeBuffer) Write(b byte) int {
	if cb.pos >= len(cb.buf) {
		cb.overflowed = true
		return 0
	}
	cb.buf[cb.pos] = b
	cb.pos++
	if VerboseMode {
		fmt.Fprintf(os.Stderr, " %02x", b)
	}
	return 1
}

func (cb *CodeBuffer) WriteBytes(bs []byte) int {
	n := 0
	for _, b := range bs {
		n += cb.Write(b)
	}
	return n
}

// WriteUnsigned appends a 32-bit value, little-endian.
func (cb *CodeBuffer) WriteUnsigned(v uint32) int {
	n := cb.Write(byte(v))
	n += cb.Write(byte(v >> 8))
	n += cb.Write(byte(v >> 16))
	n += cb.Write(byte(v >> 24))
	return n
}

// Offset returns the current write position.
func (cb *CodeBuffer) Offset() int {
	return cb.pos
}

// Cap returns the fixed capacity of the buffer.
func (cb *CodeBuffer) Cap() int {
	return len(cb.buf)
}

// PatchUnsigned overwrites the 32-bit little-endian value at off, then
// returns the cursor to where it was. This is the loop fix-up primitive:
// the forward branch placeholder is rewritten once its target is known.
func (cb *CodeBuffer) PatchUnsigned(off int, v uint32) {
	if off < 0 || off+4 > len(cb.buf) {
		cb.overflowed = true
		return
	}
	saved := cb.pos
	cb.pos = off
	cb.Write(byte(v))
	cb.Write(byte(v >> 8))
	cb.Write(byte(v >> 16))
	cb.Write(byte(v >> 24))
	cb.pos = saved
	if VerboseMode {
		fmt.Fprintf(os.Stderr, " (patched %08x at %d)", v, off)
	}
}

// Overflowed reports whether any write ran past capacity.
func (cb *CodeBuffer) Overflowed() bool {
	return cb.overflowed
}
