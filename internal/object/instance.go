package object

import (
	"bytes"
	"fmt"
	"io"
)

// ClassInstance is a live object of some Class, with fields created lazily
// on first assignment via `self.x = ...`.
type ClassInstance struct {
	Class  *Class
	Fields *Closure
}

// NewInstance allocates a fresh, field-less instance of cls.
func NewInstance(cls *Class) *ClassInstance {
	return &ClassInstance{Class: cls, Fields: NewClosure()}
}

// Print invokes __str__ with zero arguments when the class defines one,
// otherwise falls back to the instance's identity, mirroring Python's
// default object repr.
func (o *ClassInstance) Print(w io.Writer, ctx Context) {
	if o.Class.HasMethod("__str__", 0) {
		result := o.Call("__str__", nil, ctx)
		if result.IsNone() {
			io.WriteString(w, "None")
			return
		}
		result.Value().Print(w, ctx)
		return
	}
	fmt.Fprintf(w, "<%s object at %p>", o.Class.Name, o)
}

// HasMethod reports whether name resolves to a method whose arity matches.
func (c *Class) HasMethod(name string, arity int) bool {
	m := c.FindMethod(name)
	return m != nil && m.arityMatches(arity)
}

// Call resolves name through the class chain, requires exact arity, binds
// a fresh closure of formal params plus a shared `self`, and executes the
// body. Resolution or arity failure is reported as UnboundMethodError.
func (o *ClassInstance) Call(name string, args []Ref, ctx Context) Ref {
	method := o.Class.FindMethod(name)
	if method == nil {
		Fail(UnboundMethodError, "object of class %s has no method %q", o.Class.Name, name)
	}
	if !method.arityMatches(len(args)) {
		Fail(UnboundMethodError, "method %s.%s expects %d argument(s), got %d", o.Class.Name, name, len(method.FormalParams), len(args))
	}

	closure := NewClosure()
	for i, param := range method.FormalParams {
		closure.Set(param, args[i])
	}
	closure.Set("self", Share(Own(o)))

	outcome := method.Body.Execute(closure, ctx)
	return outcome.Value
}

// Stringify captures an object's Print output into a fresh String, the
// implementation shared by ast.Stringify.
func Stringify(r Ref, ctx Context) String {
	if r.IsNone() {
		return "None"
	}
	var buf bytes.Buffer
	r.Value().Print(&buf, ctx)
	return String(buf.String())
}
