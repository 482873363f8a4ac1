// Completion: 100%
package main

import (
	"errors"
	"strings"
	"testing"
)

func TestRunLengthFold(t *testing.T) {
	program, err := Parse("++++", "test.bf")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(program.Nodes) != 1 {
		t.Fatalf("expected a single folded node, got %d: %s", len(program.Nodes), program)
	}
	n := program.Nodes[0]
	if n.Kind != IncValue || n.Count != 4 {
		t.Errorf("expected IncValue{4}, got %s", n)
	}
}

func TestNoFoldAcrossOutput(t *testing.T) {
	program, err := Parse("+.+.", "test.bf")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	expected := []Node{
		{Kind: IncValue, Count: 1},
		{Kind: OutputValue},
		{Kind: IncValue, Count: 1},
		{Kind: OutputValue},
	}
	if len(program.Nodes) != len(expected) {
		t.Fatalf("expected %d nodes, got %d: %s", len(expected), len(program.Nodes), program)
	}
	for i, want := range expected {
		got := program.Nodes[i]
		if got.Kind != want.Kind || got.Count != want.Count {
			t.Errorf("node %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestFoldPerKind(t *testing.T) {
	program, err := Parse(">>><<++--", "test.bf")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	expected := []Node{
		{Kind: MoveForward, Count: 3},
		{Kind: MoveBack, Count: 2},
		{Kind: IncValue, Count: 2},
		{Kind: DecValue, Count: 2},
	}
	if len(program.Nodes) != len(expected) {
		t.Fatalf("expected %d nodes, got %d: %s", len(expected), len(program.Nodes), program)
	}
	for i, want := range expected {
		got := program.Nodes[i]
		if got.Kind != want.Kind || got.Count != want.Count {
			t.Errorf("node %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestNestedLoops(t *testing.T) {
	program, err := Parse("+[>[-]<]", "test.bf")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(program.Nodes) != 2 {
		t.Fatalf("expected 2 top-level nodes, got %d", len(program.Nodes))
	}
	outer := program.Nodes[1]
	if outer.Kind != Loop || len(outer.Body) != 3 {
		t.Fatalf("expected outer loop with 3 children, got %s", outer)
	}
	inner := outer.Body[1]
	if inner.Kind != Loop || len(inner.Body) != 1 || inner.Body[0].Kind != DecValue {
		t.Errorf("expected inner loop [-], got %s", inner)
	}
}

func TestNoFoldAcrossLoopBoundary(t *testing.T) {
	program, err := Parse("+[+]+", "test.bf")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(program.Nodes) != 3 {
		t.Fatalf("expected 3 top-level nodes, got %d: %s", len(program.Nodes), program)
	}
	if program.Nodes[0].Count != 1 || program.Nodes[2].Count != 1 {
		t.Errorf("counts merged across a loop boundary: %s", program)
	}
}

func TestUnmatchedOpen(t *testing.T) {
	program, err := Parse("[+", "test.bf")
	if err == nil {
		t.Fatal("expected SyntaxError for unmatched '['")
	}
	if program != nil {
		t.Error("no partial program may be returned on failure")
	}
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if se.Location.Line != 1 || se.Location.Col != 1 {
		t.Errorf("expected error at 1:1 (the open bracket), got %s", se.Location)
	}
}

func TestUnmatchedClose(t *testing.T) {
	program, err := Parse("+]", "test.bf")
	if err == nil {
		t.Fatal("expected SyntaxError for unmatched ']'")
	}
	if program != nil {
		t.Error("no partial program may be returned on failure")
	}
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if se.Location.Line != 1 || se.Location.Col != 2 {
		t.Errorf("expected error at 1:2, got %s", se.Location)
	}
}

func TestDeepUnmatchedOpen(t *testing.T) {
	if _, err := Parse("[[[]]", "test.bf"); err == nil {
		t.Fatal("expected SyntaxError")
	}
}

func TestEmptyProgram(t *testing.T) {
	program, err := Parse("just a comment", "test.bf")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(program.Nodes) != 0 {
		t.Errorf("expected empty program, got %s", program)
	}
}

func TestSyntaxErrorFormat(t *testing.T) {
	_, err := Parse("++]", "hello.bf")
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	formatted := se.Format(false)
	if formatted == "" {
		t.Fatal("empty formatted error")
	}
	for _, want := range []string{"unmatched ']'", "hello.bf:1:3", "++]", "^"} {
		if !strings.Contains(formatted, want) {
			t.Errorf("formatted error missing %q:\n%s", want, formatted)
		}
	}
}
