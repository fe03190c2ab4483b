// Package runtime wires the scanner, parser, and interpreter together
// behind a single Run entry point, and seeds the interpreter's
// builtins. A single *lang.Interpreter is meant to be constructed
// once and passed to every Run call for a session (the REPL relies on
// this to keep top-level bindings alive between lines).
package runtime

import (
	"os"

	"github.com/akshat2474/Interpreter/lang"
	"github.com/akshat2474/Interpreter/parser"
	"github.com/akshat2474/Interpreter/report"
)

// NewInterpreter constructs an interpreter with the standard builtins
// installed.
func NewInterpreter() *lang.Interpreter {
	interp := lang.New()
	installBuiltins(interp)
	return interp
}

// Run scans, parses, and (absent a scan/parse error) interprets one
// chunk of source text, reporting diagnostics through rep. It never
// resets rep's flags; callers that loop (the REPL) do that themselves
// between iterations.
func Run(interp *lang.Interpreter, source string, rep *report.Reporter) {
	scanner := parser.NewScanner(source, rep)
	tokens := scanner.ScanTokens()

	p := parser.NewParser(tokens, rep)
	statements := p.Parse()

	if rep.HadError {
		return
	}

	if err := interp.Interpret(statements); err != nil {
		rep.RuntimeError(err)
	}
}

// RunFile reads path as bytes and runs it once. It returns an error
// only for the underlying file read; scan/parse/runtime failures are
// reported through rep and reflected in rep's flags.
func RunFile(interp *lang.Interpreter, path string, rep *report.Reporter) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	Run(interp, string(data), rep)
	return nil
}
