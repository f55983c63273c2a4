package ast

import "pytwig/internal/object"

// ValueStatement is a constant node: it always returns a shared reference
// to its stored value, never a fresh copy.
type ValueStatement struct {
	Value object.Ref
}

func NewValueStatement(v object.Ref) *ValueStatement {
	return &ValueStatement{Value: v}
}

func (v *ValueStatement) Execute(_ *object.Closure, _ object.Context) Outcome {
	return normal(object.Share(v.Value))
}

// NoneNode returns an empty reference.
type NoneNode struct{}

func NewNoneNode() *NoneNode {
	return &NoneNode{}
}

func (*NoneNode) Execute(_ *object.Closure, _ object.Context) Outcome {
	return normal(object.None())
}
