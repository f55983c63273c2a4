package ast

import "pytwig/internal/object"

// Print evaluates each argument left-to-right, writing either its Print
// form or the literal text "None" for an empty value, space-separated and
// newline-terminated, to ctx's output sink. It always returns empty.
type Print struct {
	Args []Node
}

func NewPrint(args ...Node) *Print {
	return &Print{Args: args}
}

func (p *Print) Execute(closure *object.Closure, ctx object.Context) Outcome {
	out := ctx.Output()
	for i, arg := range p.Args {
		if i != 0 {
			out.Write([]byte(" "))
		}
		val := arg.Execute(closure, ctx).Value
		if val.IsNone() {
			out.Write([]byte("None"))
		} else {
			val.Value().Print(out, ctx)
		}
	}
	out.Write([]byte("\n"))
	return normal(object.None())
}
