package object

import (
	"bytes"
	"io"
	"testing"
)

type testContext struct {
	buf bytes.Buffer
}

func (c *testContext) Output() io.Writer { return &c.buf }

func TestEqual(t *testing.T) {
	ctx := &testContext{}
	cases := []struct {
		name     string
		lhs, rhs Ref
		want     bool
	}{
		{"both empty", None(), None(), true},
		{"equal numbers", Own(Number(3)), Own(Number(3)), true},
		{"unequal numbers", Own(Number(3)), Own(Number(4)), false},
		{"equal strings", Own(String("a")), Own(String("a")), true},
		{"equal bools", Own(Bool(true)), Own(Bool(true)), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Equal(c.lhs, c.rhs, ctx); got != c.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", c.lhs, c.rhs, got, c.want)
			}
		})
	}
}

func TestEqualMismatchedVariantsFail(t *testing.T) {
	defer expectPanic(t, TypeError)
	Equal(Own(Number(1)), Own(String("1")), &testContext{})
}

func TestEqualOneSidedNoneFails(t *testing.T) {
	defer expectPanic(t, TypeError)
	Equal(None(), Own(Number(0)), &testContext{})
}

func TestLessOfTwoNonesIsTypeError(t *testing.T) {
	defer expectPanic(t, TypeError)
	Less(None(), None(), &testContext{})
}

func TestLessNumbers(t *testing.T) {
	ctx := &testContext{}
	if !Less(Own(Number(1)), Own(Number(2)), ctx) {
		t.Error("1 < 2 should be true")
	}
	if Less(Own(Number(2)), Own(Number(1)), ctx) {
		t.Error("2 < 1 should be false")
	}
}

func TestDerivedComparisons(t *testing.T) {
	ctx := &testContext{}
	a, b := Own(Number(1)), Own(Number(2))
	if !NotEqual(a, b, ctx) {
		t.Error("NotEqual(1, 2) should be true")
	}
	if NotEqual(a, a, ctx) {
		t.Error("NotEqual(1, 1) should be false")
	}
	if !LessOrEqual(a, a, ctx) {
		t.Error("LessOrEqual(1, 1) should be true")
	}
	if !LessOrEqual(a, b, ctx) {
		t.Error("LessOrEqual(1, 2) should be true")
	}
	if !Greater(b, a, ctx) {
		t.Error("Greater(2, 1) should be true")
	}
	if !GreaterOrEqual(a, a, ctx) {
		t.Error("GreaterOrEqual(1, 1) should be true")
	}
}

func TestClassInstanceOperatorOverloadDispatch(t *testing.T) {
	ctx := &testContext{}
	// A class whose __eq__ and __lt__ always return True, to exercise
	// dispatch without needing the ast package (which would import this
	// one and create a cycle).
	cls := &Class{Name: "Always"}
	always := &Method{Name: "__eq__", FormalParams: []string{"other"}, Body: stubExecutable{returns: Own(Bool(true))}}
	cls.Methods = append(cls.Methods, always)
	cls.Methods = append(cls.Methods, &Method{Name: "__lt__", FormalParams: []string{"other"}, Body: stubExecutable{returns: Own(Bool(true))}})

	instance := NewInstance(cls)
	if !Equal(Own(instance), Own(Number(1)), ctx) {
		t.Error("Equal should dispatch to __eq__ and coerce its truthiness")
	}
	if !Less(Own(instance), Own(Number(1)), ctx) {
		t.Error("Less should dispatch to __lt__ and coerce its truthiness")
	}
}

type stubExecutable struct {
	returns Ref
}

func (s stubExecutable) Execute(_ *Closure, _ Context) Outcome {
	return Normal(s.returns)
}

func expectPanic(t *testing.T, wantKind Kind) {
	t.Helper()
	r := recover()
	if r == nil {
		t.Fatal("expected a panic")
	}
	err, ok := r.(*RuntimeError)
	if !ok {
		t.Fatalf("expected *RuntimeError, got %T: %v", r, r)
	}
	if err.Kind != wantKind {
		t.Fatalf("expected Kind %s, got %s", wantKind, err.Kind)
	}
}
