package ast

import "pytwig/internal/object"

type binaryOperation struct {
	LHS, RHS Node
}

func (b binaryOperation) operands(closure *object.Closure, ctx object.Context) (object.Ref, object.Ref) {
	return b.LHS.Execute(closure, ctx).Value, b.RHS.Execute(closure, ctx).Value
}

// Add: Number+Number adds, String+String concatenates, a ClassInstance
// lhs with a one-argument __add__ dispatches to it, anything else is a
// TypeError. This is the only arithmetic node with an operator-overload
// fallback.
type Add struct{ binaryOperation }

func NewAdd(lhs, rhs Node) *Add {
	return &Add{binaryOperation{lhs, rhs}}
}

func (a *Add) Execute(closure *object.Closure, ctx object.Context) Outcome {
	lhs, rhs := a.operands(closure, ctx)
	switch l := lhs.Value().(type) {
	case object.Number:
		if r, ok := rhs.Value().(object.Number); ok {
			return normal(object.Own(l + r))
		}
	case object.String:
		if r, ok := rhs.Value().(object.String); ok {
			return normal(object.Own(l + r))
		}
	case *object.ClassInstance:
		if l.Class.HasMethod("__add__", 1) {
			return normal(l.Call("__add__", []object.Ref{rhs}, ctx))
		}
	}
	object.Fail(object.TypeError, "unsupported operand types for +")
	return Outcome{}
}

// Sub is Number-Number only; no operator-overload fallback.
type Sub struct{ binaryOperation }

func NewSub(lhs, rhs Node) *Sub {
	return &Sub{binaryOperation{lhs, rhs}}
}

func (s *Sub) Execute(closure *object.Closure, ctx object.Context) Outcome {
	l, r := numericOperands(s.binaryOperation, closure, ctx, "-")
	return normal(object.Own(l - r))
}

// Mult is Number*Number only; no operator-overload fallback.
type Mult struct{ binaryOperation }

func NewMult(lhs, rhs Node) *Mult {
	return &Mult{binaryOperation{lhs, rhs}}
}

func (m *Mult) Execute(closure *object.Closure, ctx object.Context) Outcome {
	l, r := numericOperands(m.binaryOperation, closure, ctx, "*")
	return normal(object.Own(l * r))
}

// Div is Number/Number, truncating toward zero; dividing by zero is a
// DomainError.
type Div struct{ binaryOperation }

func NewDiv(lhs, rhs Node) *Div {
	return &Div{binaryOperation{lhs, rhs}}
}

func (d *Div) Execute(closure *object.Closure, ctx object.Context) Outcome {
	l, r := numericOperands(d.binaryOperation, closure, ctx, "/")
	if r == 0 {
		object.Fail(object.DomainError, "integer division by zero")
	}
	return normal(object.Own(l / r))
}

func numericOperands(b binaryOperation, closure *object.Closure, ctx object.Context, op string) (object.Number, object.Number) {
	lhs, rhs := b.operands(closure, ctx)
	l, lok := lhs.Value().(object.Number)
	r, rok := rhs.Value().(object.Number)
	if !lok || !rok {
		object.Fail(object.TypeError, "unsupported operand types for %s", op)
	}
	return l, r
}
