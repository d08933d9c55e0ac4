// Package runner drives the non-interactive halcon pipeline: reading a
// source file, lexing, parsing, and evaluating it, reporting parse errors
// and the evaluated error channel distinctly from Go-level I/O failures.
package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/oops"

	"github.com/epichalcon/halcon-language/evaluator"
	"github.com/epichalcon/halcon-language/lexer"
	"github.com/epichalcon/halcon-language/object"
	"github.com/epichalcon/halcon-language/parser"
)

const sourceExtension = ".hc"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

// RunFile reads path, requiring it end in .hc, and evaluates its contents,
// writing results to out and errors to errOut. It returns the exit code the
// caller should use: 0 on clean completion, non-zero on I/O failure, parse
// errors, or an evaluated Error value.
func RunFile(path string, out, errOut io.Writer) int {
	if !strings.HasSuffix(path, sourceExtension) {
		err := oops.Code("HALCON_BAD_EXTENSION").Errorf("source file %q must end in %s", path, sourceExtension)
		redColor.Fprintf(errOut, "%v\n", err)
		return 1
	}

	source, err := os.ReadFile(path)
	if err != nil {
		wrapped := oops.Code("HALCON_READ_FAILED").With("path", path).Wrap(err)
		redColor.Fprintf(errOut, "%v\n", wrapped)
		return 1
	}

	return Run(string(source), out, errOut)
}

// Run lexes, parses and evaluates source, writing the final value's
// Inspect() (unless it's Null) to out. Parse errors are printed to errOut
// and abort evaluation; an evaluated Error also writes to errOut.
func Run(source string, out, errOut io.Writer) int {
	l := lexer.NewLexer(source)
	p := parser.New(&l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		fmt.Fprintf(errOut, "Errors have been found: %s\n", strings.Join(errs, ", "))
		return 1
	}

	e := evaluator.New()
	result := e.Eval(program)

	switch result := result.(type) {
	case *object.Error:
		redColor.Fprintf(errOut, "%s\n", result.Inspect())
		return 1
	case *object.Null, nil:
		return 0
	default:
		yellowColor.Fprintf(out, "%s\n", result.Inspect())
		return 0
	}
}
