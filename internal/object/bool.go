package object

import "io"

// Bool wraps a boolean, printed as Python-style True/False rather than Go's
// lowercase true/false.
type Bool bool

func (b Bool) Print(w io.Writer, _ Context) {
	if b {
		io.WriteString(w, "True")
	} else {
		io.WriteString(w, "False")
	}
}
