package ast

import "pytwig/internal/object"

// IfElse evaluates Cond; if truthy, executes Then, otherwise Else (which
// may be nil for an `if` with no `else` clause, in which case the result
// is empty). The branch's Outcome — including its Returning flag — is
// propagated unchanged.
type IfElse struct {
	Cond       Node
	Then, Else Node
}

func NewIfElse(cond, then, els Node) *IfElse {
	return &IfElse{Cond: cond, Then: then, Else: els}
}

func (i *IfElse) Execute(closure *object.Closure, ctx object.Context) Outcome {
	cond := i.Cond.Execute(closure, ctx).Value
	if object.IsTrue(cond) {
		return i.Then.Execute(closure, ctx)
	}
	if i.Else != nil {
		return i.Else.Execute(closure, ctx)
	}
	return normal(object.None())
}
