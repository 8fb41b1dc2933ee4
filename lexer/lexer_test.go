package lexer

import (
	"monkey/token"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextToken(t *testing.T) {
	input := `let five = 5;
let ten = 10;

let add = fn(x, y) {
  x + y;
};

let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		//let five = 5;
		{token.LET, "let"},
		{token.IDENT, "five"},
		{token.ASSIGN, "="},
		{token.INT, "5"},
		{token.SEMICOLON, ";"},

		//let ten = 10;
		{token.LET, "let"},
		{token.IDENT, "ten"},
		{token.ASSIGN, "="},
		{token.INT, "10"},
		{token.SEMICOLON, ";"},

		// let add = fn(x, y) {
		//   x + y;
		// };
		{token.LET, "let"},
		{token.IDENT, "add"},
		{token.ASSIGN, "="},
		{token.FUNCTION, "fn"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.COMMA, ","},
		{token.IDENT, "y"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENT, "x"},
		{token.PLUS, "+"},
		{token.IDENT, "y"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.SEMICOLON, ";"},

		// let result = add(five, ten);
		{token.LET, "let"},
		{token.IDENT, "result"},
		{token.ASSIGN, "="},
		{token.IDENT, "add"},
		{token.LPAREN, "("},
		{token.IDENT, "five"},
		{token.COMMA, ","},
		{token.IDENT, "ten"},
		{token.RPAREN, ")"},
		{token.SEMICOLON, ";"},

		// !-/*5;
		{token.BANG, "!"},
		{token.MINUS, "-"},
		{token.SLASH, "/"},
		{token.ASTERISK, "*"},
		{token.INT, "5"},
		{token.SEMICOLON, ";"},

		// 5 < 10 > 5;
		{token.INT, "5"},
		{token.LT, "<"},
		{token.INT, "10"},
		{token.GT, ">"},
		{token.INT, "5"},
		{token.SEMICOLON, ";"},

		{token.IF, "if"},
		{token.LPAREN, "("},
		{token.INT, "5"},
		{token.LT, "<"},
		{token.INT, "10"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.TRUE, "true"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.ELSE, "else"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.FALSE, "false"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},

		{token.INT, "10"},
		{token.EQ, "=="},
		{token.INT, "10"},
		{token.SEMICOLON, ";"},
		{token.INT, "10"},
		{token.NOT_EQ, "!="},
		{token.INT, "9"},
		{token.SEMICOLON, ";"},
		{token.EOF, ""},
	}

	lexer := New(input)

	for i, tt := range tests {
		tok := lexer.NextToken()

		assert.Equal(t, tt.expectedType, tok.Type, "test case %d {%s, %s}", i, tok.Type, tok.Literal)
		assert.Equal(t, tt.expectedLiteral, tok.Literal, "test case %d {%s, %s}", i, tok.Type, tok.Literal)
	}
}

func TestIllegalCharacters(t *testing.T) {
	lexer := New("a @ 1 $")

	expected := []token.Token{
		{Type: token.IDENT, Literal: "a"},
		{Type: token.ILLEGAL, Literal: "@"},
		{Type: token.INT, Literal: "1"},
		{Type: token.ILLEGAL, Literal: "$"},
		{Type: token.EOF, Literal: ""},
	}
	for _, want := range expected {
		assert.Equal(t, want, lexer.NextToken())
	}
}

func TestEOFIsSticky(t *testing.T) {
	lexer := New("x")
	assert.Equal(t, token.Token{Type: token.IDENT, Literal: "x"}, lexer.NextToken())
	for i := 0; i < 3; i++ {
		assert.Equal(t, token.Token{Type: token.EOF, Literal: ""}, lexer.NextToken())
	}

	empty := New("  \t\r\n")
	assert.Equal(t, token.Token{Type: token.EOF, Literal: ""}, empty.NextToken())
	assert.Equal(t, token.Token{Type: token.EOF, Literal: ""}, empty.NextToken())
}

func TestTrailingOperatorLookahead(t *testing.T) {
	lexer := New("=!")
	assert.Equal(t, token.Token{Type: token.ASSIGN, Literal: "="}, lexer.NextToken())
	assert.Equal(t, token.Token{Type: token.BANG, Literal: "!"}, lexer.NextToken())
	assert.Equal(t, token.TokenType(token.EOF), lexer.NextToken().Type)
}

func TestIdentifiersWithUnderscores(t *testing.T) {
	lexer := New("_foo bar_baz 12abc")
	assert.Equal(t, token.Token{Type: token.IDENT, Literal: "_foo"}, lexer.NextToken())
	assert.Equal(t, token.Token{Type: token.IDENT, Literal: "bar_baz"}, lexer.NextToken())
	assert.Equal(t, token.Token{Type: token.INT, Literal: "12"}, lexer.NextToken())
	assert.Equal(t, token.Token{Type: token.IDENT, Literal: "abc"}, lexer.NextToken())
}
