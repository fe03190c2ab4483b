package lang

import (
	"fmt"

	"github.com/akshat2474/Interpreter/token"
)

// Environment is a mapping from identifier strings to runtime values,
// plus an optional parent, forming a lexical scope chain. Distinct
// names may exist in inner and outer scopes; redefining a name within
// the same scope silently overwrites it.
type Environment struct {
	parent *Environment
	values map[string]Value
}

// NewEnvironment creates an environment with the given parent (nil
// for the global scope).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, values: make(map[string]Value)}
}

// Define unconditionally binds name to value in this scope.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get searches this scope then its parent chain, raising a
// RuntimeError referencing name if no binding is found.
func (e *Environment) Get(name token.Token) (Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Nil, &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}

// Assign searches this scope then its parent chain, overwriting the
// innermost occurrence of name. It raises the same error as Get on a
// miss.
func (e *Environment) Assign(name token.Token, value Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.parent != nil {
		return e.parent.Assign(name, value)
	}
	return &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}
