package object

import "fmt"

// Kind names the evaluator's error categories. All evaluator errors
// surface to the top level of the driver; no AST node catches one (see
// RuntimeError and Fail below).
type Kind string

const (
	LexicalError       Kind = "LexicalError"
	NameError          Kind = "NameError"
	TypeError          Kind = "TypeError"
	UnboundMethodError Kind = "UnboundMethodError"
	DomainError        Kind = "DomainError"
)

// RuntimeError is the panic payload used to unwind out of the evaluator on
// failure. It is caught exactly once, at the driver (internal/interp),
// never by an individual AST node.
type RuntimeError struct {
	Kind    Kind
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Fail raises a RuntimeError of the given kind. Evaluator code calls this
// instead of returning an error so that deeply nested Execute calls don't
// need to thread an error value back through every return, kept distinct
// from the Return control-flow signal (see ast.Outcome), which is
// implemented as an explicit result instead of a host exception.
func Fail(kind Kind, format string, args ...interface{}) {
	panic(&RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...)})
}
