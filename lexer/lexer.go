package lexer

import (
	"monkey/token"
)

//TODO: support unicode identifiers (input is scanned byte by byte)

type Lexer struct {
	input        string
	position     int
	readPosition int
	c            byte
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.c = 0
	} else {
		l.c = l.input[l.readPosition]
	}
	l.position = l.readPosition
	if l.readPosition <= len(l.input) {
		l.readPosition++
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) eatWhitespace() {
	for l.c == ' ' || l.c == '\t' || l.c == '\n' || l.c == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readWhile(pred func(byte) bool) string {
	start := l.position
	for pred(l.c) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isIdentifier(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// NextToken returns the next token. Once the input is exhausted it keeps
// returning EOF.
func (l *Lexer) NextToken() token.Token {
	var tok token.Token
	l.eatWhitespace()

	switch l.c {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.EQ, Literal: "=="}
		} else {
			tok = newToken(token.ASSIGN, l.c)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.NOT_EQ, Literal: "!="}
		} else {
			tok = newToken(token.BANG, l.c)
		}
	case '+':
		tok = newToken(token.PLUS, l.c)
	case '-':
		tok = newToken(token.MINUS, l.c)
	case '*':
		tok = newToken(token.ASTERISK, l.c)
	case '/':
		tok = newToken(token.SLASH, l.c)
	case '<':
		tok = newToken(token.LT, l.c)
	case '>':
		tok = newToken(token.GT, l.c)
	case ',':
		tok = newToken(token.COMMA, l.c)
	case ';':
		tok = newToken(token.SEMICOLON, l.c)
	case '(':
		tok = newToken(token.LPAREN, l.c)
	case ')':
		tok = newToken(token.RPAREN, l.c)
	case '{':
		tok = newToken(token.LBRACE, l.c)
	case '}':
		tok = newToken(token.RBRACE, l.c)
	case 0:
		return token.Token{Type: token.EOF, Literal: ""}
	default:
		if isIdentifier(l.c) {
			tok.Literal = l.readWhile(isIdentifier)
			tok.Type = token.LookupIdent(tok.Literal)
			return tok
		}
		if isDigit(l.c) {
			//decimal only; range is checked by the parser
			tok.Literal = l.readWhile(isDigit)
			tok.Type = token.INT
			return tok
		}
		tok = newToken(token.ILLEGAL, l.c)
	}
	l.readChar()
	return tok
}

func newToken(tokenType token.TokenType, ch byte) token.Token {
	return token.Token{Type: tokenType, Literal: string(ch)}
}
