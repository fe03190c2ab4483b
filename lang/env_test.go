package lang

import (
	"testing"

	"github.com/akshat2474/Interpreter/token"
)

func nameTok(name string) token.Token {
	return token.Token{Type: token.Identifier, Lexeme: name, Line: 1}
}

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", NumberValue(1))
	v, err := env.Get(nameTok("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Number() != 1 {
		t.Fatalf("got %v", v)
	}
}

func TestEnvironmentGetMissingIsRuntimeError(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Get(nameTok("missing"))
	if err == nil {
		t.Fatalf("expected error")
	}
	re, ok := err.(*RuntimeError)
	if !ok || re.Message != "Undefined variable 'missing'." {
		t.Fatalf("got %v", err)
	}
}

func TestEnvironmentShadowing(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", NumberValue(1))
	inner := NewEnvironment(outer)
	inner.Define("x", NumberValue(2))

	v, _ := inner.Get(nameTok("x"))
	if v.Number() != 2 {
		t.Fatalf("inner scope should shadow outer, got %v", v)
	}

	// The block exiting means the outer environment is consulted again;
	// its binding for x must be untouched.
	v, _ = outer.Get(nameTok("x"))
	if v.Number() != 1 {
		t.Fatalf("outer scope should be unaffected by shadowing, got %v", v)
	}
}

func TestEnvironmentAssignWalksParentChain(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", NumberValue(1))
	inner := NewEnvironment(outer)

	if err := inner.Assign(nameTok("x"), NumberValue(9)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := outer.Get(nameTok("x"))
	if v.Number() != 9 {
		t.Fatalf("assign should overwrite innermost occurrence found via parent walk, got %v", v)
	}
}

func TestEnvironmentAssignMissingIsRuntimeError(t *testing.T) {
	env := NewEnvironment(nil)
	err := env.Assign(nameTok("missing"), NumberValue(1))
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestEnvironmentRedefinitionOverwrites(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", NumberValue(1))
	env.Define("x", NumberValue(2))
	v, _ := env.Get(nameTok("x"))
	if v.Number() != 2 {
		t.Fatalf("redefinition should silently overwrite, got %v", v)
	}
}
