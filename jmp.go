// Completion: 100% - instruction implementation complete
package main

// Near conditional jumps with rel32 displacements, measured from the end of
// the instruction. Loops need exactly two of them: a forward je emitted with
// a placeholder (the target is not known until the loop body and exit test
// exist) and a backward jne whose displacement is known immediately.

// JeForward emits je rel32 with a zero placeholder displacement and returns
// the buffer offset of the placeholder, to be patched once the jump target
// is known.
func (o *Out) JeForward() int {
	o.trace("je <patch>")
	o.Write(0x0F)
	o.Write(0x84)
	patchSite := o.w.Offset()
	o.w.WriteUnsigned(0)
	o.traceEnd()
	return patchSite
}

// Jne emits jne rel32 with a known displacement.
func (o *Out) Jne(disp int32) {
	o.trace("jne %d", disp)
	o.Write(0x0F)
	o.Write(0x85)
	o.w.WriteUnsigned(uint32(disp))
	o.traceEnd()
}

// PatchJump resolves a placeholder emitted by JeForward so that the jump
// lands at target. patchSite is the offset of the 4-byte displacement;
// the displacement is relative to the end of that immediate.
func (o *Out) PatchJump(patchSite, target int) error {
	disp := target - (patchSite + 4)
	if disp > maxInt32 || disp < minInt32 {
		return &EncodingOverflowError{Displacement: disp, Offset: patchSite}
	}
	o.w.PatchUnsigned(patchSite, uint32(int32(disp)))
	return nil
}

const (
	maxInt32 = 1<<31 - 1
	minInt32 = -1 << 31
)
