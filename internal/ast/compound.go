package ast

import "pytwig/internal/object"

// Compound executes Statements in order, stopping and propagating the
// first Outcome whose Returning flag is set — this is how a `return`
// inside a nested block unwinds through its enclosing blocks without
// running the statements that follow it.
type Compound struct {
	Statements []Node
}

func NewCompound(statements ...Node) *Compound {
	return &Compound{Statements: statements}
}

func (c *Compound) Execute(closure *object.Closure, ctx object.Context) Outcome {
	result := normal(object.None())
	for _, stmt := range c.Statements {
		result = stmt.Execute(closure, ctx)
		if result.Returning {
			return result
		}
	}
	return result
}

// MethodBody wraps a Compound as the root of a method or constructor: it
// executes Body and converts a Returning outcome back into a plain value,
// since `return` does not unwind past the method that contains it.
type MethodBody struct {
	Body Node
}

func NewMethodBody(body Node) *MethodBody {
	return &MethodBody{Body: body}
}

func (m *MethodBody) Execute(closure *object.Closure, ctx object.Context) Outcome {
	result := m.Body.Execute(closure, ctx)
	return normal(result.Value)
}
