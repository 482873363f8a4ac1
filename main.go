// Completion: 100% - CLI entry complete, all flags working
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/xyproto/env/v2"
)

// A tiny just-in-time Brainfuck compiler for x86_64: parse, fold, emit
// native code into an anonymous mapping, seal it executable and jump in.

const versionString = "bfjit 1.0.0"

const defaultTapeCells = 30000

// VerboseMode prints emitted mnemonics and hex bytes to stderr
var VerboseMode bool

// Architecture type
type Arch int

const (
	ArchUnknown Arch = iota
	ArchX86_64
)

func (a Arch) String() string {
	switch a {
	case ArchX86_64:
		return "x86_64"
	default:
		return "unknown"
	}
}

// OS type
type OS int

const (
	OSLinux OS = iota
	OSDarwin
	OSFreeBSD
)

func (o OS) String() string {
	switch o {
	case OSLinux:
		return "linux"
	case OSDarwin:
		return "darwin"
	case OSFreeBSD:
		return "freebsd"
	default:
		return "unknown"
	}
}

// Platform represents a target platform (architecture + OS)
type Platform struct {
	Arch Arch
	OS   OS
}

func (p Platform) String() string {
	return p.Arch.String() + "-" + p.OS.String()
}

// NativePlatform returns the platform the process is running on.
func NativePlatform() Platform {
	p := Platform{Arch: ArchUnknown, OS: OSLinux}
	if runtime.GOARCH == "amd64" {
		p.Arch = ArchX86_64
	}
	switch runtime.GOOS {
	case "darwin":
		p.OS = OSDarwin
	case "freebsd":
		p.OS = OSFreeBSD
	}
	return p
}

// sysNumbers holds the system-call numbers and descriptors the generated
// code needs. Resolved once at code-generation start from the target
// platform, never looked up per emission site.
type sysNumbers struct {
	read   uint32
	write  uint32
	stdin  uint32
	stdout uint32
}

func sysNumbersFor(p Platform) (sysNumbers, error) {
	if p.Arch != ArchX86_64 {
		return sysNumbers{}, fmt.Errorf("unsupported architecture: %s (supported: x86_64)", p.Arch)
	}
	switch p.OS {
	case OSLinux:
		return sysNumbers{read: 0, write: 1, stdin: 0, stdout: 1}, nil
	case OSDarwin:
		// Darwin syscall numbers carry the class prefix 0x2000000
		return sysNumbers{read: 0x2000003, write: 0x2000004, stdin: 0, stdout: 1}, nil
	case OSFreeBSD:
		return sysNumbers{read: 3, write: 4, stdin: 0, stdout: 1}, nil
	default:
		return sysNumbers{}, fmt.Errorf("unsupported OS: %s", p.OS)
	}
}

func main() {
	verboseFlag := flag.Bool("v", env.Bool("BFJIT_VERBOSE"), "print emitted instructions and hex bytes to stderr")
	tapeFlag := flag.Int("t", env.Int("BFJIT_TAPE_SIZE", defaultTapeCells), "tape size in cells")
	dumpFlag := flag.Bool("S", false, "print the generated machine code as hex instead of executing")
	compileOnlyFlag := flag.Bool("n", false, "compile without executing")
	codeFlag := flag.String("c", "", "compile and run the given source string")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	VerboseMode = *verboseFlag
	useColor := !env.Bool("NO_COLOR")

	if *versionFlag {
		fmt.Println(versionString)
		return
	}

	ctx := &CommandContext{
		Args:        flag.Args(),
		Platform:    NativePlatform(),
		TapeCells:   *tapeFlag,
		DumpHex:     *dumpFlag,
		CompileOnly: *compileOnlyFlag,
	}

	var err error
	if *codeFlag != "" {
		err = runSource(ctx, *codeFlag, "<inline>")
	} else {
		err = RunCLI(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", FormatError(err, useColor))
		os.Exit(1)
	}
}
