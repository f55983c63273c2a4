// Package object implements the runtime object model: the
// Number/String/Bool/Class/ClassInstance value variants behind a shared
// Ref handle, the Closure scope map, and the Context execution
// environment. It is kept independent of package ast — ast imports
// object, never the reverse.
package object

import "io"

// Context is the execution environment threaded through every Execute
// call. It exposes only the output sink.
type Context interface {
	Output() io.Writer
}

// Object is the capability every runtime value variant implements:
// printing itself in human-readable form.
type Object interface {
	Print(w io.Writer, ctx Context)
}

// Ref is a handle to an Object. Go's tracing garbage collector already
// reclaims cycles (including a ClassInstance whose method closure holds a
// reference back to itself via "self"), so Own and Share both just wrap
// the same interface value: there is no refcount left to maintain.
type Ref struct {
	value Object
}

// Own boxes v into a Ref.
func Own(v Object) Ref {
	return Ref{value: v}
}

// Share produces a Ref that aliases the same underlying value as r. Needed
// so that a ClassInstance can pass "self" into its own method closure
// without the C++ original's shared_ptr-with-no-op-deleter workaround.
func Share(r Ref) Ref {
	return r
}

// None is an empty handle. It coerces to false under IsTrue.
func None() Ref {
	return Ref{}
}

// IsNone reports whether the handle is empty.
func (r Ref) IsNone() bool {
	return r.value == nil
}

// Value returns the boxed Object, or nil if the handle is empty.
func (r Ref) Value() Object {
	return r.value
}

// IsTrue reports Number != 0, non-empty String, Bool's own value, and
// false for anything else (including an empty Ref).
func IsTrue(r Ref) bool {
	if r.IsNone() {
		return false
	}
	switch v := r.value.(type) {
	case Number:
		return v != 0
	case String:
		return v != ""
	case Bool:
		return bool(v)
	default:
		return false
	}
}

// Closure is an unordered name→Ref scope map. It has no enclosing
// pointer: this language has no closures over enclosing function scopes,
// so only the flat global scope and per-call formal/self bindings are
// ever needed.
type Closure struct {
	vars map[string]Ref
}

// NewClosure returns an empty scope.
func NewClosure() *Closure {
	return &Closure{vars: make(map[string]Ref)}
}

// Get looks up name, reporting whether it is bound.
func (c *Closure) Get(name string) (Ref, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// Set creates or overwrites the binding for name.
func (c *Closure) Set(name string, v Ref) {
	c.vars[name] = v
}
