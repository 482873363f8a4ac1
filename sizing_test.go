// Completion: 100%
package main

import (
	"testing"
)

func TestEstimatePerKind(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"", sizeReturn},
		{"+", sizeCellArith + sizeReturn},
		{"-----", sizeCellArith + sizeReturn}, // count rides in the immediate
		{">", sizePointerMove + sizeReturn},
		{"<<<", sizePointerMove + sizeReturn},
		{".", sizeOutput + sizeReturn},
		{",", sizeInput + sizeReturn},
		{"[]", 2*sizeLoopTest + sizeReturn},
		{"[+]", 2*sizeLoopTest + sizeCellArith + sizeReturn},
		{"[[]]", 4*sizeLoopTest + sizeReturn},
	}
	for _, tt := range tests {
		program, err := Parse(tt.src, "test.bf")
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.src, err)
		}
		if got := EstimateSize(program); got != tt.want {
			t.Errorf("EstimateSize(%q) = %d, want %d", tt.src, got, tt.want)
		}
	}
}

// The core property: the generator emits exactly as many bytes as the
// estimator predicts, for every balanced program.
func TestEstimateMatchesEmission(t *testing.T) {
	sources := []string{
		"",
		"+++",
		"><><",
		"+++[>++++<-]",
		"++[>+++<-]",
		"[->+<]",
		"+[>[-]<]",
		"[[[[]]]]",
		",.",
		"+++>[<->]<",
		"++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.",
	}
	platform := Platform{Arch: ArchX86_64, OS: OSLinux}
	for _, src := range sources {
		program, err := Parse(src, "test.bf")
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", src, err)
		}
		sealed, err := CompileProgram(program, platform)
		if err != nil {
			t.Fatalf("CompileProgram(%q) failed: %v", src, err)
		}
		if got, want := sealed.Size(), EstimateSize(program); got != want {
			t.Errorf("%q: emitted %d bytes, estimator predicted %d", src, got, want)
		}
		sealed.Release()
	}
}
