package evaluator

import (
	"context"
	"log/slog"
	"monkey/ast"
	"monkey/object"
)

// DefaultMaxDepth bounds nested function calls so runaway recursion ends
// with an error value instead of exhausting the goroutine stack.
const DefaultMaxDepth = 4096

// Evaluator walks an AST. It tracks call depth, so one Evaluator must not be
// used from several goroutines at once.
type Evaluator struct {
	maxDepth int
	logger   *slog.Logger
	depth    int
}

type Option func(*Evaluator)

// WithMaxDepth sets the nested call ceiling; zero or less disables it.
func WithMaxDepth(n int) Option {
	return func(e *Evaluator) { e.maxDepth = n }
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		maxDepth: DefaultMaxDepth,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Eval evaluates node with a fresh default Evaluator.
func Eval(node ast.Node, env *object.Environment) object.Object {
	return New().Eval(context.Background(), node, env)
}

// Eval evaluates node in env. A nil result means the node produced no value
// (a let statement, or an empty program).
func (e *Evaluator) Eval(ctx context.Context, node ast.Node, env *object.Environment) object.Object {
	e.depth = 0
	return e.eval(ctx, node, env)
}

func (e *Evaluator) eval(ctx context.Context, node ast.Node, env *object.Environment) object.Object {
	switch node := node.(type) {
	case nil:
		return object.NULL

	// statements
	case *ast.Program:
		return e.evalProgram(ctx, node, env)
	case *ast.BlockStatement:
		return e.evalBlockStatement(ctx, node, env)
	case *ast.ExpressionStatement:
		return e.eval(ctx, node.Expression, env)
	case *ast.LetStatement:
		val := e.eval(ctx, node.Value, env)
		if object.IsError(val) {
			return val
		}
		env.Set(node.Identifier.Value, val)
		return nil
	case *ast.ReturnStatement:
		val := e.eval(ctx, node.Expression, env)
		if object.IsError(val) {
			return val
		}
		return &object.ReturnValue{Value: val}

	// expressions
	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}
	case *ast.BooleanLiteral:
		return object.NativeBool(node.Value)
	case *ast.PrefixExpression:
		right := e.eval(ctx, node.Right, env)
		if object.IsError(right) {
			return right
		}
		return evalPrefixExpression(node.Operator, right)
	case *ast.InfixExpression:
		left := e.eval(ctx, node.Left, env)
		if object.IsError(left) {
			return left
		}
		right := e.eval(ctx, node.Right, env)
		if object.IsError(right) {
			return right
		}
		return evalInfixExpression(node.Operator, left, right)
	case *ast.IfExpression:
		return e.evalIfExpression(ctx, node, env)
	case *ast.Identifier:
		return evalIdentifier(node, env)
	case *ast.FunctionLiteral:
		return &object.Function{Parameters: node.Parameters, Body: node.Body, Env: env}
	case *ast.CallExpression:
		fn := e.eval(ctx, node.Function, env)
		if object.IsError(fn) {
			return fn
		}
		args := e.evalExpressions(ctx, node.Arguments, env)
		if len(args) == 1 && object.IsError(args[0]) {
			return args[0]
		}
		return e.applyFunction(ctx, fn, args)
	default:
		return object.NewError("unsupported node %T", node)
	}
}

// evalProgram unwraps a top-level return and stops on the first error.
func (e *Evaluator) evalProgram(ctx context.Context, program *ast.Program, env *object.Environment) object.Object {
	var result object.Object
	for _, stmt := range program.Statements {
		if err := ctx.Err(); err != nil {
			return cancelled(err)
		}
		result = e.eval(ctx, stmt, env)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			e.logger.Debug("evaluation error", slog.String("message", result.Message))
			return result
		}
	}
	return result
}

// evalBlockStatement leaves return values wrapped so they reach the call
// that owns the block. A block that yields nothing (empty, or ending in a
// let) evaluates to null.
func (e *Evaluator) evalBlockStatement(ctx context.Context, block *ast.BlockStatement, env *object.Environment) object.Object {
	var result object.Object
	for _, stmt := range block.Statements {
		if err := ctx.Err(); err != nil {
			return cancelled(err)
		}
		result = e.eval(ctx, stmt, env)
		if result != nil {
			if rt := result.Type(); rt == object.RETURN_VALUE_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		}
	}
	if result == nil {
		return object.NULL
	}
	return result
}

func (e *Evaluator) evalIfExpression(ctx context.Context, node *ast.IfExpression, env *object.Environment) object.Object {
	cond := e.eval(ctx, node.Condition, env)
	if object.IsError(cond) {
		return cond
	}
	if isTruthy(cond) {
		return e.eval(ctx, node.Consequence, env)
	} else if node.Alternative != nil {
		return e.eval(ctx, node.Alternative, env)
	}
	return object.NULL
}

// evalExpressions evaluates left to right. On error it returns a one-element
// slice holding only that error.
func (e *Evaluator) evalExpressions(ctx context.Context, exprs []ast.Expression, env *object.Environment) []object.Object {
	result := make([]object.Object, 0, len(exprs))
	for _, expr := range exprs {
		evaluated := e.eval(ctx, expr, env)
		if object.IsError(evaluated) {
			return []object.Object{evaluated}
		}
		result = append(result, evaluated)
	}
	return result
}

func (e *Evaluator) applyFunction(ctx context.Context, fn object.Object, args []object.Object) object.Object {
	function, ok := fn.(*object.Function)
	if !ok {
		return object.NewError("not a function: %s", typeOf(fn))
	}
	if len(args) != len(function.Parameters) {
		return object.NewError("wrong number of arguments: want=%d, got=%d", len(function.Parameters), len(args))
	}
	if err := ctx.Err(); err != nil {
		return cancelled(err)
	}
	if e.maxDepth > 0 && e.depth >= e.maxDepth {
		return object.NewError("maximum call depth exceeded (%d)", e.maxDepth)
	}

	e.depth++
	defer func() { e.depth-- }()
	e.logger.Debug("function call",
		slog.Int("depth", e.depth),
		slog.Int("argument-count", len(args)))

	extendedEnv := object.NewEnclosedEnvironment(function.Env)
	for i, param := range function.Parameters {
		extendedEnv.Set(param.Value, args[i])
	}

	evaluated := e.eval(ctx, function.Body, extendedEnv)
	if returnValue, ok := evaluated.(*object.ReturnValue); ok {
		return returnValue.Value
	}
	return evaluated
}

func evalIdentifier(node *ast.Identifier, env *object.Environment) object.Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	return object.NewError("identifier not found: %s", node.Value)
}

func evalPrefixExpression(operator string, right object.Object) object.Object {
	switch operator {
	case "!":
		return evalBangOperator(right)
	case "-":
		value, ok := right.(*object.Integer)
		if !ok {
			return object.NewError("unknown operator: -%s", typeOf(right))
		}
		return &object.Integer{Value: -value.Value}
	default:
		return object.NewError("unknown operator: %s%s", operator, typeOf(right))
	}
}

func evalBangOperator(right object.Object) object.Object {
	switch right {
	case object.TRUE:
		return object.FALSE
	case object.FALSE, object.NULL:
		return object.TRUE
	default:
		return object.FALSE
	}
}

func evalInfixExpression(operator string, left, right object.Object) object.Object {
	leftNum, leftIsInt := left.(*object.Integer)
	rightNum, rightIsInt := right.(*object.Integer)

	switch {
	case leftIsInt && rightIsInt:
		return evalIntegerInfixExpression(operator, leftNum, rightNum)
	case operator == "==":
		return object.NativeBool(left == right)
	case operator == "!=":
		return object.NativeBool(left != right)
	case typeOf(left) != typeOf(right):
		return object.NewError("type mismatch: %s %s %s", typeOf(left), operator, typeOf(right))
	default:
		return object.NewError("unknown operator: %s %s %s", typeOf(left), operator, typeOf(right))
	}
}

// evalIntegerInfixExpression uses int64 arithmetic: overflow wraps and
// division truncates toward zero.
func evalIntegerInfixExpression(operator string, left, right *object.Integer) object.Object {
	l, r := left.Value, right.Value
	switch operator {
	//arithmetic operators
	case "+":
		return &object.Integer{Value: l + r}
	case "-":
		return &object.Integer{Value: l - r}
	case "*":
		return &object.Integer{Value: l * r}
	case "/":
		if r == 0 {
			return object.NewError("division by zero")
		}
		return &object.Integer{Value: l / r}

	//boolean operators
	case "<":
		return object.NativeBool(l < r)
	case ">":
		return object.NativeBool(l > r)
	case "==":
		return object.NativeBool(l == r)
	case "!=":
		return object.NativeBool(l != r)
	default:
		return object.NewError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

// isTruthy: only false and null are falsy; 0 is truthy.
func isTruthy(o object.Object) bool {
	return !(o == object.FALSE || o == object.NULL)
}

func typeOf(o object.Object) object.ObjectType {
	if o == nil {
		return object.NULL_OBJ
	}
	return o.Type()
}

func cancelled(err error) *object.Error {
	return object.NewError("evaluation cancelled: %v", err)
}
