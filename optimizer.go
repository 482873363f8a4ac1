// Completion: 100% - run-length folding, the only optimization this design wants
package main

// Optimize returns an equivalent Program in which maximal runs of
// consecutive identical counted operations are collapsed into one node whose
// Count is the run length. Output, input and loop nodes never merge, even
// when adjacent and of the same kind; loop bodies are folded recursively.
//
// Parse already folds while building, so this pass is a no-op on freshly
// parsed programs. It exists for programs assembled node-by-node (tests,
// generated trees) and as the single place the folding contract is stated.
func Optimize(p *Program) *Program {
	return &Program{Nodes: foldNodes(p.Nodes)}
}

func foldNodes(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind == Loop {
			out = append(out, Node{Kind: Loop, Body: foldNodes(n.Body)})
			continue
		}
		if n.Kind.Counted() && len(out) > 0 && out[len(out)-1].Kind == n.Kind {
			out[len(out)-1].Count += n.Count
			continue
		}
		out = append(out, n)
	}
	return out
}
