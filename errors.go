// Completion: 100% - four fatal categories, none retried
package main

import (
	"fmt"
	"strings"
)

// SourceLocation is a position in source code.
type SourceLocation struct {
	File string
	Line int
	Col  int
}

func (loc SourceLocation) String() string {
	if loc.File == "" {
		return fmt.Sprintf("%d:%d", loc.Line, loc.Col)
	}
	return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
}

// SyntaxError reports an unmatched loop bracket. No code is generated when
// parsing fails; the run aborts before any execution.
type SyntaxError struct {
	Message  string
	Location SourceLocation
	Source   string // full source, for the context line in Format
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// Format renders the error with the offending source line and a caret.
func (e *SyntaxError) Format(useColor bool) string {
	var sb strings.Builder

	if useColor {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString("error: ")
	if useColor {
		sb.WriteString("\033[0m")
	}
	sb.WriteString(e.Message)
	sb.WriteString("\n")

	if useColor {
		sb.WriteString("\033[1;34m")
	}
	sb.WriteString("  --> ")
	sb.WriteString(e.Location.String())
	if useColor {
		sb.WriteString("\033[0m")
	}
	sb.WriteString("\n")

	line := sourceLine(e.Source, e.Location.Line)
	if line != "" && e.Location.Col > 0 && e.Location.Col <= len(line) {
		lineNum := fmt.Sprintf("%d", e.Location.Line)
		padding := strings.Repeat(" ", len(lineNum)+1)
		sb.WriteString(padding)
		sb.WriteString("|\n")
		sb.WriteString(lineNum)
		sb.WriteString(" | ")
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(padding)
		sb.WriteString("| ")
		sb.WriteString(strings.Repeat(" ", e.Location.Col-1))
		if useColor {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if useColor {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// AllocationError means the executable region could not be reserved.
// Fatal: a failed anonymous mapping is not worth retrying.
type AllocationError struct {
	Size int
	Err  error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("cannot reserve %d bytes of executable memory: %v", e.Size, e.Err)
}

func (e *AllocationError) Unwrap() error { return e.Err }

// ProtectionError means the writable-to-executable transition was rejected
// by the operating system. Fatal for the same reason as AllocationError.
type ProtectionError struct {
	Size int
	Err  error
}

func (e *ProtectionError) Error() string {
	return fmt.Sprintf("cannot seal %d-byte region as executable: %v", e.Size, e.Err)
}

func (e *ProtectionError) Unwrap() error { return e.Err }

// EncodingOverflowError means a branch displacement does not fit the rel32
// immediate. Defensive: realistic programs stay far inside the range.
type EncodingOverflowError struct {
	Displacement int
	Offset       int
}

func (e *EncodingOverflowError) Error() string {
	return fmt.Sprintf("branch displacement %d at offset %d does not fit in 32 bits",
		e.Displacement, e.Offset)
}

// FormatError renders any pipeline error for the CLI, with source context
// for syntax errors.
func FormatError(err error, useColor bool) string {
	if se, ok := err.(*SyntaxError); ok {
		return se.Format(useColor)
	}
	if useColor {
		return fmt.Sprintf("\033[1;31merror:\033[0m %v", err)
	}
	return fmt.Sprintf("error: %v", err)
}
