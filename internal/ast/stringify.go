package ast

import "pytwig/internal/object"

// Stringify evaluates Arg and collects its Print output into a new String;
// an empty result stringifies to the literal text "None". A bare Class
// value stringifies to its own Print form ("Class <name>") rather than
// erroring.
type Stringify struct {
	Arg Node
}

func NewStringify(arg Node) *Stringify {
	return &Stringify{Arg: arg}
}

func (s *Stringify) Execute(closure *object.Closure, ctx object.Context) Outcome {
	val := s.Arg.Execute(closure, ctx).Value
	return normal(object.Own(object.Stringify(val, ctx)))
}
