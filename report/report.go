// Package report implements the shared diagnostic sink described by
// the interpreter's error-handling design: two sticky flags
// (HadError, HadRuntimeError) plus byte-exact message formatting for
// scan, parse, and runtime errors.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/akshat2474/Interpreter/token"
)

// Reporter accumulates whether any scan/parse or runtime error has
// been seen and writes human-readable diagnostics to Out.
type Reporter struct {
	Out             io.Writer
	HadError        bool
	HadRuntimeError bool
}

// New returns a Reporter that writes to os.Stderr.
func New() *Reporter {
	return &Reporter{Out: os.Stderr}
}

// Reset clears both sticky flags. The REPL calls this between lines
// so that an error on one line does not poison later ones.
func (r *Reporter) Reset() {
	r.HadError = false
	r.HadRuntimeError = false
}

// Error reports a bare scan error against a line, with no location
// suffix.
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// ErrorAtToken reports a parse error located at tok: " at end" for
// the EOF token, " at 'lexeme'" otherwise.
func (r *Reporter) ErrorAtToken(tok token.Token, message string) {
	if tok.Type == token.EOF {
		r.report(tok.Line, " at end", message)
	} else {
		r.report(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), message)
	}
}

func (r *Reporter) report(line int, where, message string) {
	fmt.Fprintf(r.Out, "[line %d] Error%s: %s\n", line, where, message)
	r.HadError = true
}

// RuntimeError reports a runtime failure. Its message is followed by
// a newline and "[line N]" per the byte-exact runtime error format.
func (r *Reporter) RuntimeError(err error) {
	line, msg := lineAndMessage(err)
	fmt.Fprintf(r.Out, "%s\n[line %d]\n", msg, line)
	r.HadRuntimeError = true
}

type lineMessager interface {
	LineMessage() (int, string)
}

func lineAndMessage(err error) (int, string) {
	if lm, ok := err.(lineMessager); ok {
		return lm.LineMessage()
	}
	return 0, err.Error()
}
