// Package repl implements halcon's read-eval-print loop: a readline-backed
// interactive session that lexes, parses and evaluates one statement per
// line, persisting the environment across iterations.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/epichalcon/halcon-language/evaluator"
	"github.com/epichalcon/halcon-language/lexer"
	"github.com/epichalcon/halcon-language/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const defaultPrompt = ">> "

// Repl holds the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// NewRepl builds a Repl with the given banner, version, author and separator
// line, using the default `>> ` prompt.
func NewRepl(banner, version, author, line string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: defaultPrompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to halcon!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Press enter on an empty line to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop until the user enters an empty line or readline
// reports EOF. Lines are read through readline from the process's standard
// input; reader is not read. Banner, results and errors are written to writer.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	eval := evaluator.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		if line == "" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line, eval)
	}
}

// executeWithRecovery lexes, parses and evaluates one line, printing the
// result or the parser's accumulated errors. A panic is caught and reported
// so one bad line cannot bring down the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, eval *evaluator.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	l := lexer.NewLexer(line)
	p := parser.New(&l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		redColor.Fprintf(writer, "Errors have been found: %s\n", strings.Join(errs, ", "))
		return
	}

	result := eval.Eval(program)
	if result != nil {
		yellowColor.Fprintf(writer, "%s\n", result.Inspect())
	}
}
