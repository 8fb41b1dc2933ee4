package object

import (
	"monkey/ast"
	"monkey/token"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspect(t *testing.T) {
	x := &ast.Identifier{Token: token.Token{Type: token.IDENT, Literal: "x"}, Value: "x"}
	y := &ast.Identifier{Token: token.Token{Type: token.IDENT, Literal: "y"}, Value: "y"}
	body := &ast.BlockStatement{Statements: []ast.Statement{
		&ast.ExpressionStatement{Expression: &ast.InfixExpression{Left: x, Operator: "+", Right: y}},
	}}

	tests := []struct {
		obj      Object
		typ      ObjectType
		expected string
	}{
		{&Integer{Value: -42}, INTEGER_OBJ, "-42"},
		{TRUE, BOOLEAN_OBJ, "true"},
		{FALSE, BOOLEAN_OBJ, "false"},
		{NULL, NULL_OBJ, "null"},
		{&ReturnValue{Value: &Integer{Value: 7}}, RETURN_VALUE_OBJ, "7"},
		{NewError("identifier not found: %s", "foo"), ERROR_OBJ, "ERROR: identifier not found: foo"},
		{&Function{Parameters: []*ast.Identifier{x, y}, Body: body}, FUNCTION_OBJ, "fn(x, y) {\n(x + y)\n}"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.typ, tt.obj.Type())
		assert.Equal(t, tt.expected, tt.obj.Inspect())
	}
}

func TestNativeBoolIsInterned(t *testing.T) {
	assert.Same(t, TRUE, NativeBool(true))
	assert.Same(t, FALSE, NativeBool(false))
}

func TestIsError(t *testing.T) {
	assert.True(t, IsError(NewError("boom")))
	assert.False(t, IsError(NULL))
	assert.False(t, IsError(nil))
}

func TestEnvironmentWalksOuterChain(t *testing.T) {
	root := NewEnvironment()
	root.Set("a", &Integer{Value: 1})
	root.Set("b", &Integer{Value: 2})

	child := NewEnclosedEnvironment(root)
	child.Set("b", &Integer{Value: 20})
	grandchild := NewEnclosedEnvironment(child)

	a, ok := grandchild.Get("a")
	assert.True(t, ok)
	assert.Equal(t, int64(1), a.(*Integer).Value)

	b, ok := grandchild.Get("b")
	assert.True(t, ok)
	assert.Equal(t, int64(20), b.(*Integer).Value)

	_, ok = grandchild.Get("missing")
	assert.False(t, ok)

	assert.Same(t, child, grandchild.Outer())
	assert.Nil(t, root.Outer())
}

func TestEnvironmentSetIsLocal(t *testing.T) {
	root := NewEnvironment()
	child := NewEnclosedEnvironment(root)

	val := child.Set("x", TRUE)
	assert.Same(t, TRUE, val)

	_, ok := root.Get("x")
	assert.False(t, ok, "child bindings must not leak into the parent")

	root.Set("y", FALSE)
	root.Set("y", TRUE)
	y, ok := child.Get("y")
	assert.True(t, ok)
	assert.Same(t, TRUE, y)
}
