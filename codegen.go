// Completion: 100% - recursive emission with two-pass loop patching
package main

import (
	"fmt"
)

// CompileProgram translates an optimized program into a sealed executable
// region for the given platform. The region is allocated writable at the
// exact size the estimator predicts, filled by one recursive traversal, and
// sealed read-execute before it is returned. On any failure the region is
// released and nothing is returned.
func CompileProgram(p *Program, platform Platform) (*SealedRegion, error) {
	sys, err := sysNumbersFor(platform)
	if err != nil {
		return nil, err
	}

	size := EstimateSize(p)
	region, err := AcquireRegion(size)
	if err != nil {
		return nil, err
	}

	out := NewOut(region.Writer(), sys)
	if err := emitNodes(out, p.Nodes); err != nil {
		region.Release()
		return nil, err
	}
	out.Ret()

	if w := region.Writer(); w.Overflowed() || w.Offset() != size {
		region.Release()
		return nil, fmt.Errorf("internal: emitted %d bytes, estimated %d", w.Offset(), size)
	}

	sealed, err := region.Seal()
	if err != nil {
		region.Release()
		return nil, err
	}
	return sealed, nil
}

func emitNodes(o *Out, nodes []Node) error {
	for _, n := range nodes {
		switch n.Kind {
		case MoveForward, MoveBack:
			delta := n.Count * cellWidth
			if delta > maxInt32 {
				return &EncodingOverflowError{Displacement: delta, Offset: o.w.Offset()}
			}
			if n.Kind == MoveForward {
				o.AddPointer(uint32(delta))
			} else {
				o.SubPointer(uint32(delta))
			}
		case IncValue:
			o.AddCell(uint32(n.Count))
		case DecValue:
			o.SubCell(uint32(n.Count))
		case OutputValue:
			o.SysWriteCell()
		case InputValue:
			o.SysReadCell()
		case Loop:
			if err := emitLoop(o, n.Body); err != nil {
				return err
			}
		}
	}
	return nil
}

// emitLoop emits the structured conditional loop:
//
//	entry:  cmp dword [r8], 0
//	        je after          ; displacement patched below
//	body:   ...
//	exit:   cmp dword [r8], 0
//	        jne body          ; displacement known immediately
//	after:
//
// The entry branch target is unknown until the body and exit test exist, so
// a placeholder goes in and its offset is patched afterwards. The backward
// branch needs no patch: the body's start offset was recorded before
// recursing. Each recursive call's locals are the per-loop bookkeeping, so
// nested loops need no auxiliary stack.
func emitLoop(o *Out, body []Node) error {
	o.CmpCellZero()
	patchSite := o.JeForward()
	bodyStart := o.w.Offset()

	if err := emitNodes(o, body); err != nil {
		return err
	}

	o.CmpCellZero()
	afterExit := o.w.Offset() + sizeBranch
	disp := bodyStart - afterExit
	if disp < minInt32 {
		return &EncodingOverflowError{Displacement: disp, Offset: o.w.Offset()}
	}
	o.Jne(int32(disp))

	return o.PatchJump(patchSite, o.w.Offset())
}
