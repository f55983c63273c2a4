package ast

import "pytwig/internal/object"

// Comparison wraps one of the six object.Comparator helpers (Equal, Less,
// NotEqual, LessOrEqual, Greater, GreaterOrEqual), evaluating LHS and RHS
// and producing a fresh Bool.
type Comparison struct {
	binaryOperation
	Compare object.Comparator
}

func NewComparison(lhs, rhs Node, compare object.Comparator) *Comparison {
	return &Comparison{binaryOperation{lhs, rhs}, compare}
}

func (c *Comparison) Execute(closure *object.Closure, ctx object.Context) Outcome {
	lhs, rhs := c.operands(closure, ctx)
	return normal(object.Own(object.Bool(c.Compare(lhs, rhs, ctx))))
}
