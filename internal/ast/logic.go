package ast

import "pytwig/internal/object"

// Or evaluates LHS; if it is truthy, RHS is never evaluated. The result is
// always a fresh Bool, never the operand value itself.
type Or struct{ binaryOperation }

func NewOr(lhs, rhs Node) *Or {
	return &Or{binaryOperation{lhs, rhs}}
}

func (o *Or) Execute(closure *object.Closure, ctx object.Context) Outcome {
	lhs := o.LHS.Execute(closure, ctx).Value
	if object.IsTrue(lhs) {
		return normal(object.Own(object.Bool(true)))
	}
	rhs := o.RHS.Execute(closure, ctx).Value
	return normal(object.Own(object.Bool(object.IsTrue(rhs))))
}

// And evaluates LHS; if it is falsy, RHS is never evaluated. The result is
// always a fresh Bool, never the operand value itself.
type And struct{ binaryOperation }

func NewAnd(lhs, rhs Node) *And {
	return &And{binaryOperation{lhs, rhs}}
}

func (a *And) Execute(closure *object.Closure, ctx object.Context) Outcome {
	lhs := a.LHS.Execute(closure, ctx).Value
	if !object.IsTrue(lhs) {
		return normal(object.Own(object.Bool(false)))
	}
	rhs := a.RHS.Execute(closure, ctx).Value
	return normal(object.Own(object.Bool(object.IsTrue(rhs))))
}

// Not negates the truthiness of Arg.
type Not struct {
	Arg Node
}

func NewNot(arg Node) *Not {
	return &Not{Arg: arg}
}

func (n *Not) Execute(closure *object.Closure, ctx object.Context) Outcome {
	val := n.Arg.Execute(closure, ctx).Value
	return normal(object.Own(object.Bool(!object.IsTrue(val))))
}
