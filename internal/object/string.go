package object

import "io"

// String wraps a byte string, printed verbatim with no surrounding quotes.
type String string

func (s String) Print(w io.Writer, _ Context) {
	io.WriteString(w, string(s))
}
