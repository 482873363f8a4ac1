// Completion: 100% - subcommands, shorthand and shebang execution working
package main

import (
	"fmt"
	"os"
	"strings"
)

// cli.go - command-line interface for bfjit
//
// Subcommands:
// - bfjit run <file.bf> (compile and execute)
// - bfjit <file.bf> (shorthand for run)
// - bfjit version / help
//
// Also supports shebang execution: #!/usr/bin/bfjit

// CommandContext holds the execution context for a CLI command
type CommandContext struct {
	Args        []string
	Platform    Platform
	TapeCells   int
	DumpHex     bool
	CompileOnly bool
}

// RunCLI determines which command to run based on arguments.
func RunCLI(ctx *CommandContext) error {
	args := ctx.Args

	if len(args) == 0 {
		return cmdHelp()
	}

	switch args[0] {
	case "run":
		if len(args) < 2 {
			return fmt.Errorf("usage: bfjit run <file.bf>")
		}
		return cmdRun(ctx, args[1])

	case "help", "--help", "-h":
		return cmdHelp()

	case "version", "--version", "-V":
		fmt.Println(versionString)
		return nil

	default:
		if sourceFile(args[0]) {
			return cmdRun(ctx, args[0])
		}
		return fmt.Errorf("unknown command or source file: %s (try 'bfjit help')", args[0])
	}
}

func sourceFile(name string) bool {
	return strings.HasSuffix(name, ".bf") || strings.HasSuffix(name, ".b")
}

func cmdRun(ctx *CommandContext, filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	src := string(content)

	// Shebang mode: the interpreter line is stripped before scanning so a
	// path containing command characters cannot leak into the program.
	if strings.HasPrefix(src, "#!") {
		if idx := strings.IndexByte(src, '\n'); idx >= 0 {
			src = strings.Repeat(" ", idx) + src[idx:]
		} else {
			src = ""
		}
	}

	return runSource(ctx, src, filename)
}

// runSource drives the whole pipeline: parse, compile into a sealed region,
// then either dump, stop after compilation, or execute.
func runSource(ctx *CommandContext, src, name string) error {
	program, err := Parse(src, name)
	if err != nil {
		return err
	}

	sealed, err := CompileProgram(program, ctx.Platform)
	if err != nil {
		return err
	}
	defer sealed.Release()

	if ctx.DumpHex {
		dumpCode(sealed.Code())
		return nil
	}
	if ctx.CompileOnly {
		return nil
	}

	machine := NewMachine(sealed, ctx.TapeCells)
	machine.Run()
	return nil
}

func dumpCode(code []byte) {
	for off := 0; off < len(code); off += 16 {
		end := off + 16
		if end > len(code) {
			end = len(code)
		}
		fmt.Printf("%04x: % x\n", off, code[off:end])
	}
}

func cmdHelp() error {
	fmt.Println(versionString)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  bfjit run <file.bf>     Compile to native code and execute")
	fmt.Println("  bfjit <file.bf>         Shorthand for run")
	fmt.Println("  bfjit -c '<source>'     Compile and run an inline program")
	fmt.Println("  bfjit version           Print version")
	fmt.Println("  bfjit help              This help output")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -v    Verbose emission trace (or BFJIT_VERBOSE=1)")
	fmt.Println("  -t N  Tape size in cells (or BFJIT_TAPE_SIZE, default 30000)")
	fmt.Println("  -S    Dump generated machine code as hex instead of executing")
	fmt.Println("  -n    Compile without executing")
	return nil
}
