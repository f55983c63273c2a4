package object

import (
	"fmt"
	"io"
)

// Number wraps a signed integer. Print renders it as plain decimal, with
// no padding or grouping.
type Number int64

func (n Number) Print(w io.Writer, _ Context) {
	fmt.Fprintf(w, "%d", int64(n))
}
