// Completion: 100% - all eight commands recognized, positions tracked
package main

// Token types for the eight Brainfuck commands. Every other byte in the
// source is a comment and never produces a token.
type TokenType int

const (
	TOKEN_EOF        TokenType = iota
	TOKEN_FORWARD              // >
	TOKEN_BACKWARD             // <
	TOKEN_INC                  // +
	TOKEN_DEC                  // -
	TOKEN_OUTPUT               // .
	TOKEN_INPUT                // ,
	TOKEN_LOOP_OPEN            // [
	TOKEN_LOOP_CLOSE           // ]
)

func (t TokenType) String() string {
	switch t {
	case TOKEN_FORWARD:
		return ">"
	case TOKEN_BACKWARD:
		return "<"
	case TOKEN_INC:
		return "+"
	case TOKEN_DEC:
		return "-"
	case TOKEN_OUTPUT:
		return "."
	case TOKEN_INPUT:
		return ","
	case TOKEN_LOOP_OPEN:
		return "["
	case TOKEN_LOOP_CLOSE:
		return "]"
	default:
		return "EOF"
	}
}

// Token is a single recognized command with its source position.
type Token struct {
	Type TokenType
	Line int
	Col  int
}

// Lexer scans source text one command at a time.
type Lexer struct {
	src  string
	file string
	pos  int
	line int
	col  int
}

func NewLexer(src, file string) *Lexer {
	return &Lexer{src: src, file: file, line: 1, col: 0}
}

// Next returns the next command token, skipping comment bytes.
// Returns a TOKEN_EOF token at end of input.
func (l *Lexer) Next() Token {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		l.pos++
		if c == '\n' {
			l.line++
			l.col = 0
			continue
		}
		l.col++
		if t, ok := commandToken(c); ok {
			return Token{Type: t, Line: l.line, Col: l.col}
		}
	}
	return Token{Type: TOKEN_EOF, Line: l.line, Col: l.col}
}

func commandToken(c byte) (TokenType, bool) {
	switch c {
	case '>':
		return TOKEN_FORWARD, true
	case '<':
		return TOKEN_BACKWARD, true
	case '+':
		return TOKEN_INC, true
	case '-':
		return TOKEN_DEC, true
	case '.':
		return TOKEN_OUTPUT, true
	case ',':
		return TOKEN_INPUT, true
	case '[':
		return TOKEN_LOOP_OPEN, true
	case ']':
		return TOKEN_LOOP_CLOSE, true
	}
	return TOKEN_EOF, false
}

// Tokenize scans the whole source and returns all command tokens.
func Tokenize(src, file string) []Token {
	l := NewLexer(src, file)
	var tokens []Token
	for {
		tok := l.Next()
		if tok.Type == TOKEN_EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
