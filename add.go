// Completion: 100% - instruction implementation complete
package main

// AddPointer advances the data pointer by delta bytes.
// Encoding: add r8, imm32 (REX.W+B 81 /0).
func (o *Out) AddPointer(delta uint32) {
	o.trace("add r8, %d", delta)
	o.Write(rexByte(true, false, false, true)) // 0x49
	o.Write(0x81)
	o.Write(modRM(3, 0, regPointer)) // 0xC0
	o.w.WriteUnsigned(delta)
	o.traceEnd()
}

// AddCell adds n to the 32-bit cell at the data pointer. Overflow wraps
// silently; that is the language's arithmetic, not an error.
// Encoding: add dword [r8], imm32 (REX.B 81 /0).
func (o *Out) AddCell(n uint32) {
	o.trace("add dword [r8], %d", n)
	o.Write(rexByte(false, false, false, true)) // 0x41
	o.Write(0x81)
	o.Write(modRM(0, 0, regPointer)) // 0x00
	o.w.WriteUnsigned(n)
	o.traceEnd()
}
