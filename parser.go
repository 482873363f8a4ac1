// Completion: 100% - bracket matching and run-length folding complete
package main

// Parse builds a Program from source text. Runs of identical >, <, + and -
// commands fold into a single counted node while parsing; . , and loops
// never merge with anything. Bracket matching uses a stack of open loop
// bodies: [ pushes a fresh body, ] pops it, wraps it in a Loop node and
// appends that to the enclosing body. Unbalanced brackets fail with a
// *SyntaxError and no partial Program is returned.
func Parse(src, file string) (*Program, error) {
	lexer := NewLexer(src, file)

	// stack[0] is the top-level sequence; opens remembers where each
	// still-open [ was seen, for the unmatched-open error.
	stack := [][]Node{nil}
	var opens []Token

	for {
		tok := lexer.Next()
		if tok.Type == TOKEN_EOF {
			break
		}
		switch tok.Type {
		case TOKEN_LOOP_OPEN:
			stack = append(stack, nil)
			opens = append(opens, tok)
		case TOKEN_LOOP_CLOSE:
			if len(opens) == 0 {
				return nil, &SyntaxError{
					Message:  "unmatched ']'",
					Location: SourceLocation{File: file, Line: tok.Line, Col: tok.Col},
					Source:   src,
				}
			}
			body := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			opens = opens[:len(opens)-1]
			top := len(stack) - 1
			stack[top] = append(stack[top], Node{Kind: Loop, Body: body})
		default:
			kind := nodeKind(tok.Type)
			top := len(stack) - 1
			if kind.Counted() && len(stack[top]) > 0 {
				last := &stack[top][len(stack[top])-1]
				if last.Kind == kind {
					last.Count++
					continue
				}
			}
			n := Node{Kind: kind}
			if kind.Counted() {
				n.Count = 1
			}
			stack[top] = append(stack[top], n)
		}
	}

	if len(opens) > 0 {
		open := opens[len(opens)-1]
		return nil, &SyntaxError{
			Message:  "unmatched '['",
			Location: SourceLocation{File: file, Line: open.Line, Col: open.Col},
			Source:   src,
		}
	}

	return &Program{Nodes: stack[0]}, nil
}

func nodeKind(t TokenType) NodeKind {
	switch t {
	case TOKEN_FORWARD:
		return MoveForward
	case TOKEN_BACKWARD:
		return MoveBack
	case TOKEN_INC:
		return IncValue
	case TOKEN_DEC:
		return DecValue
	case TOKEN_OUTPUT:
		return OutputValue
	default:
		return InputValue
	}
}
