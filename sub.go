// Completion: 100% - instruction implementation complete
package main

// SubPointer moves the data pointer back by delta bytes.
// Encoding: sub r8, imm32 (REX.W+B 81 /5).
func (o *Out) SubPointer(delta uint32) {
	o.trace("sub r8, %d", delta)
	o.Write(rexByte(true, false, false, true)) // 0x49
	o.Write(0x81)
	o.Write(modRM(3, 5, regPointer)) // 0xE8
	o.w.WriteUnsigned(delta)
	o.traceEnd()
}

// SubCell subtracts n from the 32-bit cell at the data pointer, wrapping
// on underflow.
// Encoding: sub dword [r8], imm32 (REX.B 81 /5).
func (o *Out) SubCell(n uint32) {
	o.trace("sub dword [r8], %d", n)
	o.Write(rexByte(false, false, false, true)) // 0x41
	o.Write(0x81)
	o.Write(modRM(0, 5, regPointer)) // 0x28
	o.w.WriteUnsigned(n)
	o.traceEnd()
}
