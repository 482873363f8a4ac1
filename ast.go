// Completion: 100% - closed node set, nothing left to add
package main

import (
	"fmt"
	"strings"
)

// NodeKind tags the expression variants. The set is closed: a switch over
// NodeKind in the size estimator and the code generator covers the whole
// language.
type NodeKind int

const (
	MoveForward NodeKind = iota // > (counted)
	MoveBack                    // < (counted)
	IncValue                    // + (counted)
	DecValue                    // - (counted)
	OutputValue                 // .
	InputValue                  // ,
	Loop                        // [ body ]
)

func (k NodeKind) String() string {
	switch k {
	case MoveForward:
		return ">"
	case MoveBack:
		return "<"
	case IncValue:
		return "+"
	case DecValue:
		return "-"
	case OutputValue:
		return "."
	case InputValue:
		return ","
	case Loop:
		return "[]"
	default:
		return "?"
	}
}

// Counted reports whether the kind carries a run length.
func (k NodeKind) Counted() bool {
	switch k {
	case MoveForward, MoveBack, IncValue, DecValue:
		return true
	}
	return false
}

// Node is a tagged variant. Count is the run length for the four counted
// kinds (always >= 1), Body is the ordered loop body for Loop nodes.
type Node struct {
	Kind  NodeKind
	Count int
	Body  []Node
}

func (n Node) String() string {
	switch {
	case n.Kind == Loop:
		var sb strings.Builder
		sb.WriteString("[")
		for _, c := range n.Body {
			sb.WriteString(c.String())
		}
		sb.WriteString("]")
		return sb.String()
	case n.Kind.Counted() && n.Count != 1:
		return fmt.Sprintf("%s{%d}", n.Kind, n.Count)
	default:
		return n.Kind.String()
	}
}

// Program is an ordered sequence of top-level nodes, immutable once built.
type Program struct {
	Nodes []Node
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, n := range p.Nodes {
		sb.WriteString(n.String())
	}
	return sb.String()
}
