package ast

import "pytwig/internal/object"

// ClassDefinition binds Class's name in the current closure to the class
// value itself and returns it. The parser is responsible for ordering
// definitions so that a superclass is bound before any subclass or
// instance that depends on it.
type ClassDefinition struct {
	Class *object.Class
}

func NewClassDefinition(cls *object.Class) *ClassDefinition {
	return &ClassDefinition{Class: cls}
}

func (c *ClassDefinition) Execute(closure *object.Closure, ctx object.Context) Outcome {
	ref := object.Share(object.Own(c.Class))
	closure.Set(c.Class.Name, ref)
	return normal(ref)
}
