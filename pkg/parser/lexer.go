package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Punctuation
	LPAREN    // "("
	RPAREN    // ")"
	LBRACE    // "{"
	RBRACE    // "}"
	COLON     // ":"
	COMMA     // ","
	DOT       // "."
	SEMICOLON // ";"

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	ASSIGN // "="
	EQ     // "=="
	NEQ    // "!="
	LT
	LE
	GT
	GE

	// Literals & identifiers
	IDENT
	STRING
	INT

	// Keywords
	VAR
	FUNCTION
	RETURN
	IF
	ELSE
)

// Token is a lexical token with optional literal value.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any // int for INT, decoded string for STRING
	Line    int
	Col     int
}

var keywords = map[string]TokenType{
	"var":      VAR,
	"function": FUNCTION,
	"return":   RETURN,
	"if":       IF,
	"else":     ELSE,
}

// operatorName maps an operator token to the builtin it desugars to.
var operatorName = map[TokenType]string{
	PLUS:    "+",
	MINUS:   "-",
	STAR:    "*",
	SLASH:   "/",
	PERCENT: "%",
	EQ:      "==",
	NEQ:     "!=",
	LT:      "<",
	LE:      "<=",
	GT:      ">",
	GE:      ">=",
}

// Lexer scans source text into tokens.
type Lexer struct {
	src    string
	start  int
	cur    int
	line   int // 1-based
	col    int // 0-based within line
	tokens []Token

	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Scan tokenizes the whole source, ending with an EOF token.
func (l *Lexer) Scan() ([]Token, error) {
	for {
		l.skipWhitespace()
		if l.isAtEnd() {
			break
		}
		l.start = l.cur
		l.tokStartLine = l.line
		l.tokStartCol = l.col
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	l.tokStartLine = l.line
	l.tokStartCol = l.col
	l.start = l.cur
	l.addToken(EOF, nil)
	return l.tokens, nil
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.cur]
}

func (l *Lexer) peekNext() byte {
	if l.cur+1 >= len(l.src) {
		return 0
	}
	return l.src[l.cur+1]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) match(expected byte) bool {
	if l.isAtEnd() || l.src[l.cur] != expected {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) addToken(tt TokenType, lit any) {
	l.tokens = append(l.tokens, Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.tokStartLine,
		Col:     l.tokStartCol + 1,
	})
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		case '/':
			if l.peekNext() == '/' {
				for !l.isAtEnd() && l.peek() != '\n' {
					l.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (l *Lexer) scanToken() error {
	ch := l.advance()
	switch ch {
	case '(':
		l.addToken(LPAREN, nil)
	case ')':
		l.addToken(RPAREN, nil)
	case '{':
		l.addToken(LBRACE, nil)
	case '}':
		l.addToken(RBRACE, nil)
	case ':':
		l.addToken(COLON, nil)
	case ',':
		l.addToken(COMMA, nil)
	case '.':
		l.addToken(DOT, nil)
	case ';':
		l.addToken(SEMICOLON, nil)
	case '+':
		l.addToken(PLUS, nil)
	case '-':
		l.addToken(MINUS, nil)
	case '*':
		l.addToken(STAR, nil)
	case '/':
		l.addToken(SLASH, nil)
	case '%':
		l.addToken(PERCENT, nil)
	case '=':
		if l.match('=') {
			l.addToken(EQ, nil)
		} else {
			l.addToken(ASSIGN, nil)
		}
	case '!':
		if l.match('=') {
			l.addToken(NEQ, nil)
		} else {
			return l.errorf("unexpected character %q", ch)
		}
	case '<':
		if l.match('=') {
			l.addToken(LE, nil)
		} else {
			l.addToken(LT, nil)
		}
	case '>':
		if l.match('=') {
			l.addToken(GE, nil)
		} else {
			l.addToken(GT, nil)
		}
	case '"':
		return l.scanString()
	default:
		switch {
		case isDigit(ch):
			return l.scanNumber()
		case isAlpha(ch):
			l.scanIdentifier()
			return nil
		default:
			return l.errorf("unexpected character %q", ch)
		}
	}
	return nil
}

func (l *Lexer) scanString() error {
	var b strings.Builder
	for {
		if l.isAtEnd() {
			return &Error{Line: l.tokStartLine, Col: l.tokStartCol + 1, Msg: "unterminated string", Incomplete: true}
		}
		if l.peek() == '\n' {
			return &Error{Line: l.tokStartLine, Col: l.tokStartCol + 1, Msg: "unterminated string"}
		}
		ch := l.advance()
		if ch == '"' {
			break
		}
		if ch == '\\' {
			if l.isAtEnd() {
				return &Error{Line: l.tokStartLine, Col: l.tokStartCol + 1, Msg: "unterminated string", Incomplete: true}
			}
			esc := l.advance()
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			default:
				return l.errorf("unknown escape %q", esc)
			}
			continue
		}
		b.WriteByte(ch)
	}
	l.addToken(STRING, b.String())
	return nil
}

func (l *Lexer) scanNumber() error {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}
	value, err := strconv.Atoi(l.src[l.start:l.cur])
	if err != nil {
		return l.errorf("invalid integer %q", l.src[l.start:l.cur])
	}
	l.addToken(INT, value)
	return nil
}

func (l *Lexer) scanIdentifier() {
	for !l.isAtEnd() && isAlphaNumeric(l.peek()) {
		l.advance()
	}
	name := l.src[l.start:l.cur]
	if kw, ok := keywords[name]; ok {
		l.addToken(kw, nil)
		return
	}
	l.addToken(IDENT, nil)
}

func (l *Lexer) errorf(format string, args ...any) error {
	return &Error{Line: l.tokStartLine, Col: l.tokStartCol + 1, Msg: fmt.Sprintf(format, args...)}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isAlpha(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isAlphaNumeric(ch byte) bool { return isAlpha(ch) || isDigit(ch) }
