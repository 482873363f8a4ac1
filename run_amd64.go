// Completion: 100% - trampoline complete
package main

import (
	"unsafe"
)

// Machine pairs a sealed region with a tape geometry. Each Run gets a fresh
// zero-initialized tape that exists only for that invocation, so repeated
// runs of the same compiled program are independent.
type Machine struct {
	sealed *SealedRegion
	cells  int
}

func NewMachine(sealed *SealedRegion, cells int) *Machine {
	if cells <= 0 {
		cells = defaultTapeCells
	}
	return &Machine{sealed: sealed, cells: cells}
}

// Run allocates a zeroed tape, transfers control to the generated code and
// returns the tape once the generated return instruction brings control
// back. All observable effects besides the tape happen through the read and
// write system calls emitted inline.
func (m *Machine) Run() []uint32 {
	tape := make([]uint32, m.cells)
	m.RunOn(tape)
	return tape
}

// RunOn executes the compiled program against a caller-supplied tape.
func (m *Machine) RunOn(tape []uint32) {
	if len(tape) == 0 {
		return
	}
	jump(m.sealed.Entry(), unsafe.Pointer(&tape[0]))
}

// Release frees the underlying executable region.
func (m *Machine) Release() error {
	return m.sealed.Release()
}

// jump binds the tape base address into the designated pointer register and
// calls the entry point. Implemented in jump_amd64.s. The call takes no
// arguments through the normal calling convention and produces no return
// value; control comes back only when the generated ret executes.
//
//go:noescape
func jump(entry uintptr, tape unsafe.Pointer)
