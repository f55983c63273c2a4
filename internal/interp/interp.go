// Package interp is the interpreter driver: it orchestrates the lexer, the
// recursive-descent parser, and the AST evaluator against a global closure
// and a caller-supplied Context, as an explicit-argument entry point
// rather than package-level mutable state.
package interp

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"pytwig/internal/lexer"
	"pytwig/internal/object"
	"pytwig/internal/parser"
)

// Options configures a single Run call. SourcePath only labels log entries
// (as their "source" field); Logger defaults to logrus.StandardLogger()
// when nil.
type Options struct {
	SourcePath string
	Logger     *logrus.Logger
}

func (o Options) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

// Result is what Run reports back: parse-time syntax errors (recovered
// and synchronized past by the parser; when there are any, the tree is not
// evaluated) and a top-level runtime error, if evaluation failed.
type Result struct {
	ParseErrors []error
	RuntimeErr  *object.RuntimeError
}

// Ok reports whether the run produced no errors of either kind.
func (r Result) Ok() bool {
	return len(r.ParseErrors) == 0 && r.RuntimeErr == nil
}

// Run tokenizes and parses source, then evaluates the resulting tree once
// against a fresh global closure and ctx. Only the `return` unwind is
// caught internally; every other runtime error propagates via
// panic/recover to become Result.RuntimeErr here, at the top of the
// evaluator.
func Run(source string, ctx object.Context, opts Options) Result {
	return Eval(source, object.NewClosure(), ctx, opts)
}

// Eval is Run but against a caller-supplied global closure, so a REPL can
// keep variables and class definitions bound across successive turns
// instead of starting from a fresh global scope each time.
func Eval(source string, global *object.Closure, ctx object.Context, opts Options) (result Result) {
	log := opts.logger().WithField("source", displayPath(opts.SourcePath))

	lex, err := lexer.New(source)
	if err != nil {
		result.RuntimeErr = &object.RuntimeError{Kind: object.LexicalError, Message: err.Error()}
		log.WithField("kind", object.LexicalError).Error(err)
		return result
	}
	log.WithField("tokens", len(lex.Tokens())).Debug("tokenize complete")

	p := parser.New(lex)
	program, parseErrors := p.Parse()
	result.ParseErrors = parseErrors
	log.WithField("statements", len(program.Statements)).WithField("errors", len(parseErrors)).Debug("parse complete")
	for _, perr := range parseErrors {
		log.Error(perr)
	}
	if len(parseErrors) > 0 {
		return result
	}

	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(*object.RuntimeError)
			if !ok {
				panic(r)
			}
			result.RuntimeErr = rerr
			log.WithFields(logrus.Fields{"kind": rerr.Kind}).Error(rerr.Message)
		}
	}()

	program.Execute(global, ctx)
	log.Debug("evaluate complete")
	return result
}

func displayPath(path string) string {
	if path == "" {
		return "<repl>"
	}
	return path
}

// FormatError renders a Result's failures the way the CLI prints them,
// one per line, to w.
func FormatError(w io.Writer, r Result) {
	for _, perr := range r.ParseErrors {
		fmt.Fprintln(w, perr)
	}
	if r.RuntimeErr != nil {
		fmt.Fprintf(w, "%s: %s\n", r.RuntimeErr.Kind, r.RuntimeErr.Message)
	}
}
