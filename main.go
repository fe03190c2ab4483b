// Command interpreter is the CLI wrapper around the tree-walking
// interpreter in package runtime: argument triage, file reading, and
// the REPL line loop.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"github.com/akshat2474/Interpreter/lang"
	"github.com/akshat2474/Interpreter/report"
	"github.com/akshat2474/Interpreter/runtime"
)

func main() {
	args := os.Args[1:]

	switch {
	case len(args) > 1:
		fmt.Fprintln(os.Stderr, "Usage: interpreter [script]")
		os.Exit(64)
	case len(args) == 1:
		runFile(args[0])
	default:
		runPrompt()
	}
}

func runFile(path string) {
	interp := runtime.NewInterpreter()
	rep := report.New()

	if err := runtime.RunFile(interp, path, rep); err != nil {
		fmt.Fprintf(os.Stderr, "interpreter: %v\n", err)
		os.Exit(1)
	}

	if rep.HadError {
		os.Exit(65)
	}
	if rep.HadRuntimeError {
		os.Exit(70)
	}
}

func runPrompt() {
	interp := runtime.NewInterpreter()
	rep := report.New()

	if isInteractive() {
		runInteractiveREPL(interp, rep)
	} else {
		runBufferedREPL(interp, rep, bufio.NewReader(os.Stdin))
	}
}

func runBufferedREPL(interp *lang.Interpreter, rep *report.Reporter, reader *bufio.Reader) {
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			runtime.Run(interp, line, rep)
			rep.Reset()
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Fprintf(os.Stderr, "read error: %v\n", err)
			return
		}
	}
}

func runInteractiveREPL(interp *lang.Interpreter, rep *report.Reporter) {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	historyPath := replHistoryPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		line, err := state.Prompt("> ")
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return
			default:
				fmt.Fprintf(os.Stderr, "read error: %v\n", err)
				return
			}
		}

		state.AppendHistory(line)
		runtime.Run(interp, line, rep)
		rep.Reset()
	}
}

func replHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".interp_history")
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
