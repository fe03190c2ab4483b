// Package lang implements the runtime side of the interpreter: the
// Value tagged union, lexically-scoped Environments, first-class
// function Callables, and the tree-walking Interpreter that
// evaluates a parsed program to completion.
package lang

import (
	"fmt"
	"io"
	"os"

	"github.com/akshat2474/Interpreter/parser"
	"github.com/akshat2474/Interpreter/token"
)

// Interpreter walks a statement list, mutating a stack of lexical
// environments and invoking callables. A single instance is meant to
// be reused across successive Interpret calls so that top-level
// bindings persist (the REPL relies on this).
type Interpreter struct {
	Globals *Environment
	env     *Environment
	Out     io.Writer
}

// New constructs an Interpreter with an empty global scope. Builtins
// are seeded by the runtime package, not here, so this package has no
// dependency on wall-clock time or any other host capability.
func New() *Interpreter {
	globals := NewEnvironment(nil)
	return &Interpreter{Globals: globals, env: globals, Out: os.Stdout}
}

// Interpret executes statements in the interpreter's current
// environment. It aborts on the first RuntimeError. Return signals
// raised inside a function are caught at that call's boundary; a
// `return` at top level is not inside any call, so its signal stops
// the pass and is returned here as an error.
func (in *Interpreter) Interpret(statements []parser.Stmt) error {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt parser.Stmt) error {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := in.evaluate(s.Expression)
		return err

	case *parser.PrintStmt:
		value, err := in.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Out, value.String())
		return nil

	case *parser.LetStmt:
		value := Nil
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.env.Define(s.Name.Lexeme, value)
		return nil

	case *parser.BlockStmt:
		return in.executeBlock(s.Statements, NewEnvironment(in.env))

	case *parser.IfStmt:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *parser.WhileStmt:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !cond.Truthy() {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	case *parser.FunctionStmt:
		fn := &Function{Declaration: s, Closure: in.env}
		in.env.Define(s.Name.Lexeme, CallableValue(fn))
		return nil

	case *parser.ReturnStmt:
		value := Nil
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &controlReturn{value: value}

	default:
		return fmt.Errorf("unhandled statement type %T", stmt)
	}
}

// executeBlock runs statements inside env, restoring the interpreter's
// prior environment on every exit path: normal completion, an
// in-flight return signal, or a runtime error.
func (in *Interpreter) executeBlock(statements []parser.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evaluate(expr parser.Expr) (Value, error) {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		return FromLiteral(e.Value), nil

	case *parser.GroupingExpr:
		return in.evaluate(e.Expression)

	case *parser.VariableExpr:
		return in.env.Get(e.Name)

	case *parser.AssignExpr:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return Nil, err
		}
		if err := in.env.Assign(e.Name, value); err != nil {
			return Nil, err
		}
		return value, nil

	case *parser.UnaryExpr:
		return in.evalUnary(e)

	case *parser.BinaryExpr:
		return in.evalBinary(e)

	case *parser.LogicalExpr:
		return in.evalLogical(e)

	case *parser.CallExpr:
		return in.evalCall(e)

	default:
		return Nil, fmt.Errorf("unhandled expression type %T", expr)
	}
}

func (in *Interpreter) evalUnary(e *parser.UnaryExpr) (Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return Nil, err
	}
	switch e.Operator.Type {
	case token.Bang:
		return BoolValue(!right.Truthy()), nil
	case token.Minus:
		if right.Type != TypeNumber {
			return Nil, &RuntimeError{Token: e.Operator, Message: "Operand must be a number."}
		}
		return NumberValue(-right.Number()), nil
	}
	return Nil, &RuntimeError{Token: e.Operator, Message: "Unknown unary operator."}
}

func (in *Interpreter) evalLogical(e *parser.LogicalExpr) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return Nil, err
	}
	if e.Operator.Type == token.Or {
		if left.Truthy() {
			return left, nil
		}
	} else {
		if !left.Truthy() {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalBinary(e *parser.BinaryExpr) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return Nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return Nil, err
	}

	switch e.Operator.Type {
	case token.Minus:
		if err := checkNumberOperands(e.Operator, left, right); err != nil {
			return Nil, err
		}
		return NumberValue(left.Number() - right.Number()), nil

	case token.Star:
		if err := checkNumberOperands(e.Operator, left, right); err != nil {
			return Nil, err
		}
		return NumberValue(left.Number() * right.Number()), nil

	case token.Slash:
		if err := checkNumberOperands(e.Operator, left, right); err != nil {
			return Nil, err
		}
		if right.Number() == 0 {
			return Nil, &RuntimeError{Token: e.Operator, Message: "Division by zero."}
		}
		return NumberValue(left.Number() / right.Number()), nil

	case token.Plus:
		return evalPlus(e.Operator, left, right)

	case token.Greater:
		if err := checkNumberOperands(e.Operator, left, right); err != nil {
			return Nil, err
		}
		return BoolValue(left.Number() > right.Number()), nil

	case token.GreaterEqual:
		if err := checkNumberOperands(e.Operator, left, right); err != nil {
			return Nil, err
		}
		return BoolValue(left.Number() >= right.Number()), nil

	case token.Less:
		if err := checkNumberOperands(e.Operator, left, right); err != nil {
			return Nil, err
		}
		return BoolValue(left.Number() < right.Number()), nil

	case token.LessEqual:
		if err := checkNumberOperands(e.Operator, left, right); err != nil {
			return Nil, err
		}
		return BoolValue(left.Number() <= right.Number()), nil

	case token.BangEqual:
		return BoolValue(!left.Equal(right)), nil

	case token.EqualEqual:
		return BoolValue(left.Equal(right)), nil
	}

	return Nil, &RuntimeError{Token: e.Operator, Message: "Unknown binary operator."}
}

func evalPlus(operator token.Token, left, right Value) (Value, error) {
	switch {
	case left.Type == TypeNumber && right.Type == TypeNumber:
		return NumberValue(left.Number() + right.Number()), nil
	case left.Type == TypeString && right.Type == TypeString:
		return StringValue(left.Str() + right.Str()), nil
	case left.Type == TypeString && right.Type == TypeNumber:
		return StringValue(left.Str() + right.String()), nil
	case left.Type == TypeNumber && right.Type == TypeString:
		return StringValue(left.String() + right.Str()), nil
	default:
		return Nil, &RuntimeError{Token: operator, Message: "Operands must be two numbers or two strings."}
	}
}

func checkNumberOperands(operator token.Token, left, right Value) error {
	if left.Type != TypeNumber || right.Type != TypeNumber {
		return &RuntimeError{Token: operator, Message: "Operands must be numbers."}
	}
	return nil
}

func (in *Interpreter) evalCall(e *parser.CallExpr) (Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return Nil, err
	}

	args := make([]Value, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := in.evaluate(a)
		if err != nil {
			return Nil, err
		}
		args[i] = v
	}

	if callee.Type != TypeCallable {
		return Nil, &RuntimeError{Token: e.Paren, Message: "Can only call functions and classes."}
	}

	fn := callee.Callable()
	if len(args) != fn.Arity() {
		return Nil, &RuntimeError{
			Token:   e.Paren,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)),
		}
	}
	return fn.Call(in, args)
}
