package ast

import "pytwig/internal/object"

// Assignment evaluates rhs and stores it under var in the current closure,
// creating or overwriting the binding, then returns the stored value.
type Assignment struct {
	Var string
	RHS Node
}

func NewAssignment(v string, rhs Node) *Assignment {
	return &Assignment{Var: v, RHS: rhs}
}

func (a *Assignment) Execute(closure *object.Closure, ctx object.Context) Outcome {
	val := a.RHS.Execute(closure, ctx).Value
	closure.Set(a.Var, val)
	return normal(val)
}

// FieldAssignment evaluates ObjectChain to a ClassInstance, evaluates RHS,
// stores RHS's result into the instance's Fields under Field, and returns
// it.
type FieldAssignment struct {
	ObjectChain *VariableValue
	Field       string
	RHS         Node
}

func NewFieldAssignment(objectChain *VariableValue, field string, rhs Node) *FieldAssignment {
	return &FieldAssignment{ObjectChain: objectChain, Field: field, RHS: rhs}
}

func (f *FieldAssignment) Execute(closure *object.Closure, ctx object.Context) Outcome {
	target := f.ObjectChain.resolve(closure, ctx)
	instance, ok := target.Value().(*object.ClassInstance)
	if !ok {
		object.Fail(object.TypeError, "cannot assign attribute %q: target is not an object", f.Field)
	}
	val := f.RHS.Execute(closure, ctx).Value
	instance.Fields.Set(f.Field, val)
	return normal(val)
}
