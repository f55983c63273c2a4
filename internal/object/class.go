package object

import (
	"fmt"
	"io"
)

// Executable is the contract every AST node satisfies (package ast holds
// the concrete node types). It is declared here, not in package ast,
// because a Method's body is an Executable, and Method is owned by Class,
// which lives in this package — declaring the interface here lets
// object.Class hold method bodies without object importing ast (which
// itself must import object).
type Executable interface {
	Execute(closure *Closure, ctx Context) Outcome
}

// Outcome is an explicit result-union used in place of throwing a value to
// implement `return`: Normal carries a value to the caller, Returning
// additionally marks it as an in-flight non-local return that must keep
// propagating until it reaches the nearest enclosing MethodBody node.
type Outcome struct {
	Value     Ref
	Returning bool
}

// Normal wraps v as a non-returning outcome.
func Normal(v Ref) Outcome {
	return Outcome{Value: v}
}

// ReturningOutcome wraps v as an in-flight return unwind.
func ReturningOutcome(v Ref) Outcome {
	return Outcome{Value: v, Returning: true}
}

// Method is a named, owned-by-its-class executable body with an ordered
// list of formal parameter names.
type Method struct {
	Name         string
	FormalParams []string
	Body         Executable
}

func (m *Method) arityMatches(n int) bool {
	return len(m.FormalParams) == n
}

// Class is a user-defined type: an ordered method list plus an optional
// non-owning reference to a single parent class.
type Class struct {
	Name    string
	Methods []*Method
	Parent  *Class
}

func (c *Class) Print(w io.Writer, _ Context) {
	fmt.Fprintf(w, "Class %s", c.Name)
}

// FindMethod walks own methods first, in declaration order, then recurses
// into Parent. The first match by name wins regardless of arity.
func (c *Class) FindMethod(name string) *Method {
	for _, m := range c.Methods {
		if m.Name == name {
			return m
		}
	}
	if c.Parent != nil {
		return c.Parent.FindMethod(name)
	}
	return nil
}
