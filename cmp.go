// Completion: 100% - instruction implementation complete
package main

// CmpCellZero compares the 32-bit cell at the data pointer against zero,
// setting the flags for the loop branches.
// Encoding: cmp dword [r8], 0 (REX.B 83 /7 ib).
func (o *Out) CmpCellZero() {
	o.trace("cmp dword [r8], 0")
	o.Write(rexByte(false, false, false, true)) // 0x41
	o.Write(0x83)
	o.Write(modRM(0, 7, regPointer)) // 0x38
	o.Write(0x00)
	o.traceEnd()
}
