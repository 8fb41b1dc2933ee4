package parser

import (
	"fmt"
	"monkey/ast"
	"monkey/lexer"
	"monkey/token"
	"strconv"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(lhs ast.Expression) ast.Expression
)

// Precedence orders binding strength, weakest first.
type Precedence int

const (
	_ Precedence = iota
	LOWEST
	EQUALS      // ==
	LESSGREATER // > or <
	SUM         // +
	PRODUCT     // *
	PREFIX      // -X or !X
	CALL        // myFunction(X)
)

var precedences = map[token.TokenType]Precedence{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.LPAREN:   CALL,
}

// Parser turns a token stream into an AST. Diagnostics accumulate in Errors
// instead of aborting the parse, so the returned program may be partial.
type Parser struct {
	l         *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
	errors    []string

	prefixParseFunctions map[token.TokenType]prefixParseFn
	infixParseFunctions  map[token.TokenType]infixParseFn
}

func New(l *lexer.Lexer) *Parser {
	p := Parser{l: l, errors: []string{}}
	p.nextToken()
	p.nextToken()

	p.prefixParseFunctions = make(map[token.TokenType]prefixParseFn)
	p.infixParseFunctions = make(map[token.TokenType]infixParseFn)

	//prefix
	p.registerPrefixParseFn(token.IDENT, p.parseExprIdentifier)
	p.registerPrefixParseFn(token.INT, p.parseExprIntegerLiteral)
	p.registerPrefixParseFn(token.LPAREN, p.parseExprGroup)
	p.registerPrefixParseFnMulti([]token.TokenType{token.TRUE, token.FALSE}, p.parseExprBooleanLiteral)
	p.registerPrefixParseFnMulti([]token.TokenType{token.BANG, token.MINUS}, p.parseExprPrefix)
	p.registerPrefixParseFn(token.IF, p.parseExprIf)
	p.registerPrefixParseFn(token.FUNCTION, p.parseExprFunction)

	//infix
	p.registerInfixParseFnMulti([]token.TokenType{
		token.EQ, token.NOT_EQ,
		token.GT, token.LT,
		token.PLUS, token.MINUS,
		token.ASTERISK, token.SLASH,
	}, p.parseExprInfix)
	p.registerInfixParseFn(token.LPAREN, p.parseExprCall)
	return &p
}

// Errors returns the diagnostics recorded so far.
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) ParseProgram() *ast.Program {
	program := ast.Program{}
	program.Statements = []ast.Statement{}

	for !p.curTokenIs(token.EOF) {
		statement := p.parseStatement()
		if statement != nil {
			program.Statements = append(program.Statements, statement)
		}
		p.nextToken()
	}
	return &program
}

func (p *Parser) curTokenIs(tokenType token.TokenType) bool {
	return p.curToken.Type == tokenType
}

func (p *Parser) peekTokenIs(tokenType token.TokenType) bool {
	return p.peekToken.Type == tokenType
}

func (p *Parser) registerPrefixParseFn(tokenType token.TokenType, parseFn prefixParseFn) {
	p.prefixParseFunctions[tokenType] = parseFn
}

func (p *Parser) registerInfixParseFn(tokenType token.TokenType, parseFn infixParseFn) {
	p.infixParseFunctions[tokenType] = parseFn
}

func (p *Parser) registerPrefixParseFnMulti(tokenTypes []token.TokenType, parseFn prefixParseFn) {
	for _, tokenType := range tokenTypes {
		p.registerPrefixParseFn(tokenType, parseFn)
	}
}

func (p *Parser) registerInfixParseFnMulti(tokenTypes []token.TokenType, parseFn infixParseFn) {
	for _, tokenType := range tokenTypes {
		p.registerInfixParseFn(tokenType, parseFn)
	}
}

func (p *Parser) addError(format string, a ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, a...))
}

func (p *Parser) peekError(tokenType token.TokenType) {
	p.addError("expected next token to be %s, got %s instead", tokenType, p.peekToken.Type)
}

// expectPeek advances only when the next token has the wanted type.
func (p *Parser) expectPeek(tokenType token.TokenType) bool {
	if p.peekTokenIs(tokenType) {
		p.nextToken()
		return true
	}
	p.peekError(tokenType)
	return false
}

func (p *Parser) skipOptionalSemicolon() {
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
}

// Statements

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	letStmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	letStmt.Identifier = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()

	letStmt.Value = p.parseExpression(LOWEST)
	p.skipOptionalSemicolon()
	return letStmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	retStmt := &ast.ReturnStatement{Token: p.curToken}

	// bare `return;` carries no operand
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		return retStmt
	}
	p.nextToken()

	retStmt.Expression = p.parseExpression(LOWEST)
	p.skipOptionalSemicolon()
	return retStmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	exprStmt := &ast.ExpressionStatement{Token: p.curToken}
	exprStmt.Expression = p.parseExpression(LOWEST)
	p.skipOptionalSemicolon()
	return exprStmt
}

// parseBlockStatement expects curToken to be '{' and stops on the matching
// '}'. Running into EOF first is reported but the partial block is kept.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken, Statements: []ast.Statement{}}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	if p.curTokenIs(token.EOF) {
		p.addError("expected next token to be %s, got %s instead", token.RBRACE, token.EOF)
	}
	return block
}

// Expressions

// parseExpression is the Pratt loop: a prefix function produces the left
// operand, then infix functions fold in operators that bind tighter than
// precedence. Passing the operator's own precedence on the right-hand side
// keeps equal-precedence chains left-associative.
func (p *Parser) parseExpression(precedence Precedence) ast.Expression {
	prefixFn, ok := p.prefixParseFunctions[p.curToken.Type]
	if !ok {
		p.addError("no prefix parse function for %s found", p.curToken.Type)
		return nil
	}
	leftExpr := prefixFn()
	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infixFn, ok := p.infixParseFunctions[p.peekToken.Type]
		if !ok {
			return leftExpr
		}
		p.nextToken()
		leftExpr = infixFn(leftExpr)
	}
	return leftExpr
}

func (p *Parser) currentPrecedence() Precedence { return tokenPrecedence(p.curToken.Type) }

func (p *Parser) peekPrecedence() Precedence { return tokenPrecedence(p.peekToken.Type) }

func tokenPrecedence(tokenType token.TokenType) Precedence {
	if prec, ok := precedences[tokenType]; ok {
		return prec
	}
	return LOWEST
}

// Prefix parsers
func (p *Parser) parseExprIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseExprIntegerLiteral() ast.Expression {
	v, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.addError("could not parse %q as integer", p.curToken.Literal)
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: v}
}

func (p *Parser) parseExprBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseExprGroup() ast.Expression {
	p.nextToken()
	e := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return e
}

func (p *Parser) parseExprPrefix() ast.Expression {
	e := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()
	e.Right = p.parseExpression(PREFIX)
	return e
}

func (p *Parser) parseExprIf() ast.Expression {
	e := &ast.IfExpression{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	e.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	e.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		e.Alternative = p.parseBlockStatement()
	}
	return e
}

func (p *Parser) parseExprFunction() ast.Expression {
	e := &ast.FunctionLiteral{Token: p.curToken}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}
	e.Parameters = params

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	e.Body = p.parseBlockStatement()
	return e
}

// parseFunctionParameters expects curToken to be '(' and leaves it on ')'.
func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, bool) {
	params := []*ast.Identifier{}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params, true
	}

	if !p.expectPeek(token.IDENT) {
		return nil, false
	}
	params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil, false
		}
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return params, true
}

// Infix parsers
func (p *Parser) parseExprInfix(lhs ast.Expression) ast.Expression {
	e := &ast.InfixExpression{Token: p.curToken, Left: lhs, Operator: p.curToken.Literal}
	precedence := p.currentPrecedence()
	p.nextToken()
	e.Right = p.parseExpression(precedence)
	return e
}

func (p *Parser) parseExprCall(lhs ast.Expression) ast.Expression {
	e := &ast.CallExpression{Token: p.curToken, Function: lhs}
	args, ok := p.parseCallArguments()
	if !ok {
		return nil
	}
	e.Arguments = args
	return e
}

// parseCallArguments expects curToken to be '(' and leaves it on ')'.
func (p *Parser) parseCallArguments() ([]ast.Expression, bool) {
	args := []ast.Expression{}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args, true
	}

	p.nextToken()
	if arg := p.parseExpression(LOWEST); arg != nil {
		args = append(args, arg)
	}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		if arg := p.parseExpression(LOWEST); arg != nil {
			args = append(args, arg)
		}
	}

	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return args, true
}
