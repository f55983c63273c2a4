package ast

import (
	"bytes"
	"io"
	"testing"

	"pytwig/internal/object"
)

type testContext struct {
	buf bytes.Buffer
}

func (c *testContext) Output() io.Writer { return &c.buf }

func num(n int64) Node     { return NewValueStatement(object.Own(object.Number(n))) }
func str(s string) Node    { return NewValueStatement(object.Own(object.String(s))) }
func boolean(b bool) Node  { return NewValueStatement(object.Own(object.Bool(b))) }

// TestSimplePrint covers a comma-separated print statement.
func TestSimplePrint(t *testing.T) {
	ctx := &testContext{}
	root := NewCompound(NewPrint(num(1), num(2), num(3)))
	root.Execute(object.NewClosure(), ctx)
	if got := ctx.buf.String(); got != "1 2 3\n" {
		t.Fatalf("got %q, want %q", got, "1 2 3\n")
	}
}

// TestArithmeticAndDivision covers integer division truncation.
func TestArithmeticAndDivision(t *testing.T) {
	ctx := &testContext{}
	NewPrint(NewDiv(num(7), num(2))).Execute(object.NewClosure(), ctx)
	if got := ctx.buf.String(); got != "3\n" {
		t.Fatalf("7/2 -> %q, want %q", got, "3\n")
	}
}

func TestDivisionByZeroIsDomainError(t *testing.T) {
	defer expectFail(t, object.DomainError)
	NewDiv(num(7), num(0)).Execute(object.NewClosure(), &testContext{})
}

// TestStringConcatenation covers the string-plus-string overload of Add.
func TestStringConcatenation(t *testing.T) {
	ctx := &testContext{}
	NewPrint(NewAdd(str("ab"), str("cd"))).Execute(object.NewClosure(), ctx)
	if got := ctx.buf.String(); got != "abcd\n" {
		t.Fatalf("got %q, want %q", got, "abcd\n")
	}
}

func TestStringSubtractionFails(t *testing.T) {
	defer expectFail(t, object.TypeError)
	NewSub(str("a"), str("b")).Execute(object.NewClosure(), &testContext{})
}

// TestIfElse covers a falsy condition taking the else branch.
func TestIfElse(t *testing.T) {
	ctx := &testContext{}
	closure := object.NewClosure()
	root := NewCompound(
		NewAssignment("x", num(0)),
		NewIfElse(NewVariableValue("x"), NewPrint(str("t")), NewPrint(str("f"))),
	)
	root.Execute(closure, ctx)
	if got := ctx.buf.String(); got != "f\n" {
		t.Fatalf("got %q, want %q", got, "f\n")
	}
}

func TestIfWithoutElseAndFalsyCondition(t *testing.T) {
	ctx := &testContext{}
	result := NewIfElse(boolean(false), NewPrint(str("never")), nil).Execute(object.NewClosure(), ctx)
	if ctx.buf.Len() != 0 {
		t.Fatalf("then-branch should not run, got output %q", ctx.buf.String())
	}
	if !result.Value.IsNone() {
		t.Fatalf("missing else branch should produce an empty result")
	}
}

// TestClassMethodWithReturn covers an early return from inside an if.
func TestClassMethodWithReturn(t *testing.T) {
	ctx := &testContext{}
	closure := object.NewClosure()

	// def f(self, n):
	//   if n: return n
	//   return 42
	fBody := NewMethodBody(NewCompound(
		NewIfElse(NewVariableValue("n"), NewReturn(NewVariableValue("n")), nil),
		NewReturn(num(42)),
	))
	cls := &object.Class{Name: "C"}
	cls.Methods = append(cls.Methods, &object.Method{Name: "f", FormalParams: []string{"n"}, Body: fBody})

	NewClassDefinition(cls).Execute(closure, ctx)
	NewAssignment("c", NewNewInstance(cls)).Execute(closure, ctx)
	NewPrint(NewMethodCall(NewVariableValue("c"), "f", num(5))).Execute(closure, ctx)
	NewPrint(NewMethodCall(NewVariableValue("c"), "f", num(0))).Execute(closure, ctx)

	if got := ctx.buf.String(); got != "5\n42\n" {
		t.Fatalf("got %q, want %q", got, "5\n42\n")
	}
}

// TestInheritanceAndStr covers a subclass inheriting __str__ from its parent.
func TestInheritanceAndStr(t *testing.T) {
	ctx := &testContext{}
	closure := object.NewClosure()

	a := &object.Class{Name: "A"}
	a.Methods = append(a.Methods, &object.Method{Name: "__str__", Body: NewMethodBody(NewReturn(str("A")))})
	b := &object.Class{Name: "B", Parent: a}

	NewClassDefinition(a).Execute(closure, ctx)
	NewClassDefinition(b).Execute(closure, ctx)
	NewPrint(NewNewInstance(b)).Execute(closure, ctx)

	if got := ctx.buf.String(); got != "A\n" {
		t.Fatalf("got %q, want %q", got, "A\n")
	}
}

func TestCompoundPropagatesReturningOutcome(t *testing.T) {
	ctx := &testContext{}
	closure := object.NewClosure()
	compound := NewCompound(
		NewReturn(num(1)),
		NewPrint(str("should not run")),
	)
	outcome := compound.Execute(closure, ctx)
	if !outcome.Returning {
		t.Fatal("Compound must propagate a Returning outcome")
	}
	if ctx.buf.Len() != 0 {
		t.Fatalf("statement after return should not execute, got %q", ctx.buf.String())
	}
}

func TestShortCircuitOr(t *testing.T) {
	ctx := &testContext{}
	closure := object.NewClosure()
	sideEffect := NewPrint(str("evaluated"))
	NewOr(boolean(true), sideEffect).Execute(closure, ctx)
	if ctx.buf.Len() != 0 {
		t.Fatal("Or must not evaluate rhs when lhs is truthy")
	}
}

func TestShortCircuitAnd(t *testing.T) {
	ctx := &testContext{}
	closure := object.NewClosure()
	sideEffect := NewPrint(str("evaluated"))
	NewAnd(boolean(false), sideEffect).Execute(closure, ctx)
	if ctx.buf.Len() != 0 {
		t.Fatal("And must not evaluate rhs when lhs is falsy")
	}
}

func TestStringifyNumberAndNone(t *testing.T) {
	ctx := &testContext{}
	closure := object.NewClosure()

	got := NewStringify(num(42)).Execute(closure, ctx).Value.Value().(object.String)
	if got != "42" {
		t.Fatalf("Stringify(42) = %q, want %q", got, "42")
	}

	got = NewStringify(NewNoneNode()).Execute(closure, ctx).Value.Value().(object.String)
	if got != "None" {
		t.Fatalf("Stringify(none) = %q, want %q", got, "None")
	}
}

func TestFieldAssignmentAndDottedAccess(t *testing.T) {
	ctx := &testContext{}
	closure := object.NewClosure()

	cls := &object.Class{Name: "Point"}
	NewClassDefinition(cls).Execute(closure, ctx)
	NewAssignment("p", NewNewInstance(cls)).Execute(closure, ctx)
	NewFieldAssignment(NewVariableValue("p"), "x", num(7)).Execute(closure, ctx)

	got := NewVariableValue("p", "x").Execute(closure, ctx).Value.Value().(object.Number)
	if got != 7 {
		t.Fatalf("p.x = %v, want 7", got)
	}
}

func TestVariableValueUnboundNameFails(t *testing.T) {
	defer expectFail(t, object.NameError)
	NewVariableValue("missing").Execute(object.NewClosure(), &testContext{})
}

func TestMethodCallOnNonInstanceReturnsEmpty(t *testing.T) {
	result := NewMethodCall(num(1), "whatever").Execute(object.NewClosure(), &testContext{})
	if !result.Value.IsNone() {
		t.Fatal("MethodCall on a non-instance should return empty, not fail")
	}
}

func expectFail(t *testing.T, wantKind object.Kind) {
	t.Helper()
	r := recover()
	if r == nil {
		t.Fatal("expected a panic")
	}
	err, ok := r.(*object.RuntimeError)
	if !ok {
		t.Fatalf("expected *object.RuntimeError, got %T: %v", r, r)
	}
	if err.Kind != wantKind {
		t.Fatalf("expected Kind %s, got %s", wantKind, err.Kind)
	}
}
