package ast

import "pytwig/internal/object"

// VariableValue resolves a dotted chain a.b.c…: the first segment must
// exist in the current closure; every non-terminal segment must then
// resolve to a ClassInstance, continuing the walk into its Fields.
type VariableValue struct {
	DottedIDs []string
}

func NewVariableValue(dottedIDs ...string) *VariableValue {
	return &VariableValue{DottedIDs: dottedIDs}
}

func (v *VariableValue) Execute(closure *object.Closure, ctx object.Context) Outcome {
	return normal(v.resolve(closure, ctx))
}

// resolve is also used directly by FieldAssignment to locate the
// ClassInstance an object-chain expression denotes.
func (v *VariableValue) resolve(closure *object.Closure, ctx object.Context) object.Ref {
	current, ok := closure.Get(v.DottedIDs[0])
	if !ok {
		object.Fail(object.NameError, "name %q is not defined", v.DottedIDs[0])
	}
	for _, segment := range v.DottedIDs[1:] {
		instance, ok := current.Value().(*object.ClassInstance)
		if !ok {
			object.Fail(object.TypeError, "cannot access attribute %q of a non-object value", segment)
		}
		current, ok = instance.Fields.Get(segment)
		if !ok {
			object.Fail(object.NameError, "object of class %s has no field %q", instance.Class.Name, segment)
		}
	}
	return current
}
