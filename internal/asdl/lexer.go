package asdl

import (
	"fmt"
	"unicode"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenIdent
	tokenLBrace
	tokenRBrace
	tokenLParen
	tokenRParen
	tokenComma
	tokenEq
	tokenPipe
	tokenQuestion
	tokenStar
	tokenIllegal
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "end of input"
	case tokenIdent:
		return "identifier"
	case tokenLBrace:
		return "'{'"
	case tokenRBrace:
		return "'}'"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	case tokenComma:
		return "','"
	case tokenEq:
		return "'='"
	case tokenPipe:
		return "'|'"
	case tokenQuestion:
		return "'?'"
	case tokenStar:
		return "'*'"
	default:
		return "illegal token"
	}
}

type token struct {
	typ  tokenType
	text string
	line int
	col  int
}

type lexer struct {
	input []rune
	pos   int
	line  int
	col   int
}

func newLexer(input string) *lexer {
	return &lexer{input: []rune(input), line: 1, col: 1}
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *lexer) advance() rune {
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

// skip consumes whitespace and "--" comments.
func (l *lexer) skip() {
	for l.pos < len(l.input) {
		ch := l.peek()
		switch {
		case unicode.IsSpace(ch):
			l.advance()
		case ch == '-' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '-':
			for l.pos < len(l.input) && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *lexer) next() token {
	l.skip()
	line, col := l.line, l.col
	if l.pos >= len(l.input) {
		return token{typ: tokenEOF, line: line, col: col}
	}
	ch := l.advance()
	switch ch {
	case '{':
		return token{tokenLBrace, "{", line, col}
	case '}':
		return token{tokenRBrace, "}", line, col}
	case '(':
		return token{tokenLParen, "(", line, col}
	case ')':
		return token{tokenRParen, ")", line, col}
	case ',':
		return token{tokenComma, ",", line, col}
	case '=':
		return token{tokenEq, "=", line, col}
	case '|':
		return token{tokenPipe, "|", line, col}
	case '?':
		return token{tokenQuestion, "?", line, col}
	case '*':
		return token{tokenStar, "*", line, col}
	}
	if isIdentStart(ch) {
		start := l.pos - 1
		for l.pos < len(l.input) && isIdentPart(l.peek()) {
			l.advance()
		}
		return token{tokenIdent, string(l.input[start:l.pos]), line, col}
	}
	return token{tokenIllegal, fmt.Sprintf("%q", ch), line, col}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}
