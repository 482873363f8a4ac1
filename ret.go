// Completion: 100% - instruction implementation complete
package main

// Ret emits the terminal return instruction. Executing it is the only way
// control comes back to the trampoline.
func (o *Out) Ret() {
	o.trace("ret")
	o.Write(0xC3)
	o.traceEnd()
}
