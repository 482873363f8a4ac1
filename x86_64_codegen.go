// Completion: 100% - encoding primitives complete
package main

import (
	"fmt"
	"os"
)

// The data pointer lives in r8 for the whole execution: caller-saved under
// both the System V and the Go internal ABI, untouched by the syscall
// instruction (which clobbers only rcx and r11), and not one of the Go
// runtime's reserved registers.
const regPointer = 8 // r8

// REX prefix for 64-bit operations
// W: 64-bit operand size
// R: extension of ModRM reg field
// X: extension of SIB index field
// B: extension of ModRM r/m field
func rexByte(w, r, x, b bool) byte {
	rex := byte(0x40)
	if w {
		rex |= 0x08
	}
	if r {
		rex |= 0x04
	}
	if x {
		rex |= 0x02
	}
	if b {
		rex |= 0x01
	}
	return rex
}

// ModRM byte: mod (2 bits) | reg (3 bits) | rm (3 bits)
func modRM(mod, reg, rm byte) byte {
	return (mod << 6) | ((reg & 7) << 3) | (rm & 7)
}

// Out emits x86-64 instructions into a CodeBuffer. The syscall numbers are
// resolved once from the target platform when the Out is created, not per
// emission site.
type Out struct {
	w   *CodeBuffer
	sys sysNumbers
}

func NewOut(w *CodeBuffer, sys sysNumbers) *Out {
	return &Out{w: w, sys: sys}
}

func (o *Out) Write(b byte) {
	o.w.Write(b)
}

// movImm32 emits mov r32, imm32 for the registers the syscall sequences
// need. Writing the 32-bit register zero-extends into the full register.
func (o *Out) movImm32(reg string, v uint32) {
	switch reg {
	case "eax":
		o.Write(0xB8)
	case "edi":
		o.Write(0xBF)
	case "edx":
		o.Write(0xBA)
	default:
		panic("movImm32: unsupported register " + reg)
	}
	o.w.WriteUnsigned(v)
}

// movPointerToRSI emits mov rsi, r8 (the buffer argument of read/write).
func (o *Out) movPointerToRSI() {
	o.Write(rexByte(true, true, false, false)) // 0x4C
	o.Write(0x89)
	o.Write(modRM(3, regPointer, 6)) // 0xC6, rsi
}

func (o *Out) trace(format string, args ...interface{}) {
	if VerboseMode {
		fmt.Fprintf(os.Stderr, format+":", args...)
	}
}

func (o *Out) traceEnd() {
	if VerboseMode {
		fmt.Fprintln(os.Stderr)
	}
}
