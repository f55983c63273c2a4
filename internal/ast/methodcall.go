package ast

import "pytwig/internal/object"

// MethodCall evaluates ObjectExpr; if it is not a ClassInstance, returns
// empty rather than erroring. Otherwise it evaluates Args left-to-right
// and delegates to ClassInstance.Call.
type MethodCall struct {
	ObjectExpr Node
	Method     string
	Args       []Node
}

func NewMethodCall(objectExpr Node, method string, args ...Node) *MethodCall {
	return &MethodCall{ObjectExpr: objectExpr, Method: method, Args: args}
}

func (m *MethodCall) Execute(closure *object.Closure, ctx object.Context) Outcome {
	receiver := m.ObjectExpr.Execute(closure, ctx).Value
	instance, ok := receiver.Value().(*object.ClassInstance)
	if !ok {
		return normal(object.None())
	}

	args := make([]object.Ref, len(m.Args))
	for i, a := range m.Args {
		args[i] = a.Execute(closure, ctx).Value
	}

	return normal(instance.Call(m.Method, args, ctx))
}
