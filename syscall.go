// Completion: 100% - direct read/write sequences, no buffering layer
package main

// The two I/O commands compile to direct system calls. Register use per the
// kernel convention: rax = number, rdi = fd, rsi = buffer, rdx = count.
// syscall clobbers rcx and r11 only, so the data pointer in r8 survives.

// SysWriteCell emits write(stdout, P, 1): the low-order byte of the current
// cell goes to standard output. Blocks until the call returns.
func (o *Out) SysWriteCell() {
	o.trace("write(%d, r8, 1)", o.sys.stdout)
	o.movImm32("eax", o.sys.write)
	o.movImm32("edi", o.sys.stdout)
	o.movPointerToRSI()
	o.movImm32("edx", 1)
	o.Write(0x0F)
	o.Write(0x05)
	o.traceEnd()
}

// SysReadCell emits read(stdin, P, 1) into the current cell. The cell is
// zeroed first so the single byte read lands zero-extended to the full cell
// width; on end of input read writes nothing and the cell stays 0.
func (o *Out) SysReadCell() {
	o.trace("mov dword [r8], 0; read(%d, r8, 1)", o.sys.stdin)
	// mov dword [r8], 0 (REX.B C7 /0 imm32)
	o.Write(rexByte(false, false, false, true)) // 0x41
	o.Write(0xC7)
	o.Write(modRM(0, 0, regPointer)) // 0x00
	o.w.WriteUnsigned(0)
	o.movImm32("eax", o.sys.read)
	o.movImm32("edi", o.sys.stdin)
	o.movPointerToRSI()
	o.movImm32("edx", 1)
	o.Write(0x0F)
	o.Write(0x05)
	o.traceEnd()
}
