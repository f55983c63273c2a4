package object

// Comparator is the pluggable comparator signature ast.Comparison
// dispatches through.
type Comparator func(lhs, rhs Ref, ctx Context) bool

// Equal reports that two empty refs are equal; same-variant
// Number/String/Bool compare by value; a ClassInstance lhs with a
// one-argument __eq__ dispatches to it, its result coerced through
// IsTrue. One empty ref paired with a non-empty one matches none of
// those rules and is a TypeError, same as any other unmatched pair.
func Equal(lhs, rhs Ref, ctx Context) bool {
	if lhs.IsNone() && rhs.IsNone() {
		return true
	}
	switch l := lhs.Value().(type) {
	case Number:
		if r, ok := rhs.Value().(Number); ok {
			return l == r
		}
	case String:
		if r, ok := rhs.Value().(String); ok {
			return l == r
		}
	case Bool:
		if r, ok := rhs.Value().(Bool); ok {
			return l == r
		}
	case *ClassInstance:
		if l.Class.HasMethod("__eq__", 1) {
			return IsTrue(l.Call("__eq__", []Ref{rhs}, ctx))
		}
	}
	Fail(TypeError, "values are not comparable for equality")
	return false
}

// Less implements `<`. Comparing two empty refs is a TypeError, as is
// comparing any other pair the rule below doesn't cover.
func Less(lhs, rhs Ref, ctx Context) bool {
	if lhs.IsNone() || rhs.IsNone() {
		Fail(TypeError, "None does not support ordering comparisons")
	}
	switch l := lhs.Value().(type) {
	case Number:
		r, ok := rhs.Value().(Number)
		if ok {
			return l < r
		}
	case String:
		r, ok := rhs.Value().(String)
		if ok {
			return l < r
		}
	case *ClassInstance:
		if l.Class.HasMethod("__lt__", 1) {
			return IsTrue(l.Call("__lt__", []Ref{rhs}, ctx))
		}
	}
	Fail(TypeError, "values do not support ordering comparisons")
	return false
}

// NotEqual, LessOrEqual, Greater, and GreaterOrEqual are all derived from
// Equal and Less.
func NotEqual(lhs, rhs Ref, ctx Context) bool {
	return !Equal(lhs, rhs, ctx)
}

func LessOrEqual(lhs, rhs Ref, ctx Context) bool {
	return Less(lhs, rhs, ctx) || Equal(lhs, rhs, ctx)
}

func Greater(lhs, rhs Ref, ctx Context) bool {
	return !LessOrEqual(lhs, rhs, ctx)
}

func GreaterOrEqual(lhs, rhs Ref, ctx Context) bool {
	return !Less(lhs, rhs, ctx)
}
