package parser

import "fmt"

// Error is a syntax error raised at a specific source line. parseStmt
// recovers from it and synchronizes to the next statement boundary.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error on line %d: %s", e.Line, e.Message)
}
