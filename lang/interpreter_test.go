package lang

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akshat2474/Interpreter/parser"
	"github.com/akshat2474/Interpreter/report"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	rep := &report.Reporter{Out: &strings.Builder{}}
	toks := parser.NewScanner(src, rep).ScanTokens()
	stmts := parser.NewParser(toks, rep).Parse()
	if rep.HadError {
		t.Fatalf("unexpected parse/scan error for %q", src)
	}
	interp := New()
	var out bytes.Buffer
	interp.Out = &out
	err := interp.Interpret(stmts)
	return out.String(), err
}

func TestInterpretArithmeticPrecedence(t *testing.T) {
	out, err := run(t, "print 1 + 2 * 3;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "7\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpretStringConcatenation(t *testing.T) {
	out, err := run(t, `let a = "hi"; print a + " " + "there";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hi there\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpretStringNumberConcatenation(t *testing.T) {
	out, err := run(t, `print "n=" + 3; print 3 + "=n";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "n=3\n3=n\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpretRecursiveFunction(t *testing.T) {
	out, err := run(t, `function fact(n){ if (n<=1) return 1; return n*fact(n-1); }
print fact(5);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "120\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpretClosureCapture(t *testing.T) {
	out, err := run(t, `function mk(){ let c=0; function i(){ c=c+1; return c; } return i; }
let k=mk(); print k(); print k(); print k();`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n3\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpretIndependentClosures(t *testing.T) {
	out, err := run(t, `function mk(){ let c=0; function i(){ c=c+1; return c; } return i; }
let a=mk(); let b=mk();
print a(); print a(); print b();`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n1\n" {
		t.Fatalf("two counters should be independent, got %q", out)
	}
}

func TestInterpretForLoop(t *testing.T) {
	out, err := run(t, `for (let i=0; i<3; i=i+1) print i;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\n1\n2\n" {
		t.Fatalf("got %q", out)
	}
}

func TestForWhileEquivalence(t *testing.T) {
	forOut, err := run(t, `for (let i=0; i<3; i=i+1) print i;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	whileOut, err := run(t, `let i=0; while (i<3) { print i; i=i+1; }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if forOut != whileOut {
		t.Fatalf("for/while should produce identical output: %q vs %q", forOut, whileOut)
	}
}

func TestInterpretDivisionByZero(t *testing.T) {
	out, err := run(t, "print 1/0;")
	if err == nil {
		t.Fatalf("expected runtime error")
	}
	if out != "" {
		t.Fatalf("expected no output before the error, got %q", out)
	}
	re, ok := err.(*RuntimeError)
	if !ok || re.Message != "Division by zero." {
		t.Fatalf("got %v", err)
	}
	if re.Token.Line != 1 {
		t.Fatalf("expected line 1, got %d", re.Token.Line)
	}
}

func TestInterpretScopeShadowing(t *testing.T) {
	out, err := run(t, `let x = "outer";
{ let x = "inner"; print x; }
print x;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "inner\nouter\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpretShortCircuitOr(t *testing.T) {
	out, err := run(t, `print 1 or 2;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n" {
		t.Fatalf("`a or b` should return a when a is truthy, got %q", out)
	}
}

func TestInterpretShortCircuitAnd(t *testing.T) {
	out, err := run(t, `print false and 2;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "false\n" {
		t.Fatalf("`a and b` should return a when a is falsy, got %q", out)
	}
}

func TestInterpretUndefinedVariable(t *testing.T) {
	_, err := run(t, "print undefinedThing;")
	re, ok := err.(*RuntimeError)
	if !ok || re.Message != "Undefined variable 'undefinedThing'." {
		t.Fatalf("got %v", err)
	}
}

func TestInterpretArityMismatch(t *testing.T) {
	_, err := run(t, `function f(a, b) { return a; } f(1);`)
	re, ok := err.(*RuntimeError)
	if !ok || re.Message != "Expected 2 arguments but got 1." {
		t.Fatalf("got %v", err)
	}
}

func TestInterpretCallingNonCallable(t *testing.T) {
	_, err := run(t, `let x = 1; x();`)
	re, ok := err.(*RuntimeError)
	if !ok || re.Message != "Can only call functions and classes." {
		t.Fatalf("got %v", err)
	}
}

func TestInterpretNumberFormatting(t *testing.T) {
	out, err := run(t, `print 3.0; print 3.5;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "3\n3.5\n" {
		t.Fatalf("got %q", out)
	}
}
