// Completion: 100%
package main

import (
	"bytes"
	"testing"
)

func TestCodeBufferWrite(t *testing.T) {
	buf := make([]byte, 8)
	cb := NewCodeBuffer(buf)

	cb.Write(0x42)
	if buf[0] != 0x42 {
		t.Errorf("Write failed: expected 0x42, got 0x%x", buf[0])
	}
	if cb.Offset() != 1 {
		t.Errorf("expected offset 1, got %d", cb.Offset())
	}

	cb.WriteBytes([]byte{0x0F, 0x05})
	if !bytes.Equal(buf[:3], []byte{0x42, 0x0F, 0x05}) {
		t.Errorf("WriteBytes failed: got % x", buf[:3])
	}
}

func TestCodeBufferWriteUnsigned(t *testing.T) {
	buf := make([]byte, 4)
	cb := NewCodeBuffer(buf)
	cb.WriteUnsigned(0x11223344)
	if !bytes.Equal(buf, []byte{0x44, 0x33, 0x22, 0x11}) {
		t.Errorf("expected little-endian 44 33 22 11, got % x", buf)
	}
}

func TestCodeBufferPatchRestoresCursor(t *testing.T) {
	buf := make([]byte, 12)
	cb := NewCodeBuffer(buf)
	cb.WriteBytes([]byte{0x0F, 0x84})
	patchSite := cb.Offset()
	cb.WriteUnsigned(0) // placeholder
	cb.Write(0xC3)

	before := cb.Offset()
	cb.PatchUnsigned(patchSite, 0xDEADBEEF)
	if cb.Offset() != before {
		t.Errorf("patch moved the cursor: %d -> %d", before, cb.Offset())
	}
	if !bytes.Equal(buf[2:6], []byte{0xEF, 0xBE, 0xAD, 0xDE}) {
		t.Errorf("patch not applied: % x", buf[2:6])
	}
	if buf[6] != 0xC3 {
		t.Errorf("patch clobbered later bytes: 0x%x", buf[6])
	}
}

func TestCodeBufferNeverGrows(t *testing.T) {
	buf := make([]byte, 2)
	cb := NewCodeBuffer(buf)
	cb.WriteBytes([]byte{1, 2})
	if cb.Overflowed() {
		t.Fatal("overflow reported for an exact fit")
	}
	cb.Write(3)
	if !cb.Overflowed() {
		t.Fatal("write past capacity must set the overflow flag")
	}
	if cb.Offset() != 2 {
		t.Errorf("cursor moved past capacity: %d", cb.Offset())
	}
}

func TestCodeBufferPatchOutOfRange(t *testing.T) {
	cb := NewCodeBuffer(make([]byte, 4))
	cb.PatchUnsigned(2, 0xFFFFFFFF)
	if !cb.Overflowed() {
		t.Error("out-of-range patch must set the overflow flag")
	}
}
