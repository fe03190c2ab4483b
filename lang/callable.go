package lang

import (
	"fmt"

	"github.com/akshat2474/Interpreter/parser"
)

// Callable is the capability set shared by builtins and user-defined
// functions.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
	String() string
}

// Builtin wraps a native Go function as a Callable, e.g. clock().
type Builtin struct {
	Name string
	Arg  int
	Fn   func(interp *Interpreter, args []Value) (Value, error)
}

func (b *Builtin) Arity() int { return b.Arg }

func (b *Builtin) Call(interp *Interpreter, args []Value) (Value, error) {
	return b.Fn(interp, args)
}

func (b *Builtin) String() string {
	return fmt.Sprintf("<native fn %s>", b.Name)
}

// Function is a user-defined function value: the declaration node
// plus the environment active when the function was declared. Two
// calls to a function that returns a fresh closure yield independent
// Functions, each holding its own closure environment.
type Function struct {
	Declaration *parser.FunctionStmt
	Closure     *Environment
}

func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Call binds parameters to args by position in a new environment
// whose parent is the closure (not the caller's environment), then
// executes the body as a block inside it. A return signal raised
// during the body is captured here and becomes the call's result; if
// the body runs to completion the result is nil.
func (f *Function) Call(interp *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.Declaration.Body, env)
	if err != nil {
		if ret, ok := err.(*controlReturn); ok {
			return ret.value, nil
		}
		return Nil, err
	}
	return Nil, nil
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}
