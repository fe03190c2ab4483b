package runtime

import (
	"time"

	"github.com/akshat2474/Interpreter/lang"
)

// installBuiltins seeds the interpreter's global scope with the
// language's only native function: clock().
func installBuiltins(interp *lang.Interpreter) {
	interp.Globals.Define("clock", lang.CallableValue(&lang.Builtin{
		Name: "clock",
		Arg:  0,
		Fn: func(_ *lang.Interpreter, _ []lang.Value) (lang.Value, error) {
			return lang.NumberValue(float64(time.Now().UnixNano()) / float64(time.Second)), nil
		},
	}))
}
