// Completion: 100% - write-xor-execute region lifecycle complete
package main

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Region is an anonymous, process-private memory range in its writable
// state. It hands out the cursor writer used during generation and makes
// exactly one one-way transition: Seal consumes it and yields a
// SealedRegion. The two types are the write-xor-execute discipline — a
// sealed region has no write operations to call.
type Region struct {
	mem []byte
	w   *CodeBuffer
}

// AcquireRegion reserves size bytes of read+write, zero-initialized memory.
// The kernel rounds the mapping up to whole pages; the writer still enforces
// the requested capacity so the estimator's prediction stays authoritative.
// Allocation failure is fatal to the compilation: a transient retry of a
// virtual-memory failure has no expected benefit.
func AcquireRegion(size int) (*Region, error) {
	if size <= 0 {
		return nil, &AllocationError{Size: size, Err: unix.EINVAL}
	}
	mem, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, &AllocationError{Size: size, Err: err}
	}
	return &Region{mem: mem[:size], w: NewCodeBuffer(mem[:size])}, nil
}

// Writer returns the cursor-based write/patch interface for the code
// generator. Valid only before Seal.
func (r *Region) Writer() *CodeBuffer {
	return r.w
}

// Seal transitions the whole region from read-write to read-execute and
// consumes the writable handle. The transition is total and one-way; on
// success any further use of r is a programming error.
func (r *Region) Seal() (*SealedRegion, error) {
	if err := unix.Mprotect(r.mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		return nil, &ProtectionError{Size: len(r.mem), Err: err}
	}
	s := &SealedRegion{mem: r.mem}
	r.mem = nil
	r.w = nil
	return s, nil
}

// Release unmaps a region that never got sealed (a failed compilation).
func (r *Region) Release() error {
	if r.mem == nil {
		return nil
	}
	mem := r.mem
	r.mem = nil
	r.w = nil
	return unix.Munmap(mem)
}

// SealedRegion is the read-execute state. It exposes the entry point and
// teardown, nothing else.
type SealedRegion struct {
	mem []byte
}

// Entry returns the address of the region's first byte, the generated
// program's entry point.
func (s *SealedRegion) Entry() uintptr {
	return uintptr(unsafe.Pointer(&s.mem[0]))
}

// Size returns the emitted code size in bytes.
func (s *SealedRegion) Size() int {
	return len(s.mem)
}

// Code returns a copy of the generated machine code (the region stays
// readable after sealing).
func (s *SealedRegion) Code() []byte {
	code := make([]byte, len(s.mem))
	copy(code, s.mem)
	return code
}

// Release unmaps the region. The entry point is invalid afterwards.
func (s *SealedRegion) Release() error {
	if s.mem == nil {
		return nil
	}
	mem := s.mem
	s.mem = nil
	return unix.Munmap(mem)
}
