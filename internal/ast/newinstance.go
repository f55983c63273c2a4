package ast

import "pytwig/internal/object"

// NewInstance produces a shared reference to a fresh ClassInstance of
// Class. If Class defines __init__ with matching arity, it is called with
// the evaluated Args and its result discarded — the constructor exists for
// its side effects on self.
type NewInstance struct {
	Class *object.Class
	Args  []Node
}

func NewNewInstance(cls *object.Class, args ...Node) *NewInstance {
	return &NewInstance{Class: cls, Args: args}
}

func (n *NewInstance) Execute(closure *object.Closure, ctx object.Context) Outcome {
	instance := object.NewInstance(n.Class)

	if init := n.Class.FindMethod("__init__"); init != nil && len(init.FormalParams) == len(n.Args) {
		args := make([]object.Ref, len(n.Args))
		for i, a := range n.Args {
			args[i] = a.Execute(closure, ctx).Value
		}
		instance.Call("__init__", args, ctx)
	}

	return normal(object.Share(object.Own(instance)))
}
