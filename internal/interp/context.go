package interp

import (
	"bytes"
	"io"

	"pytwig/internal/object"
)

// bufferContext owns its output sink and lets callers read back what was
// printed.
type bufferContext struct {
	buf bytes.Buffer
}

// NewBufferContext returns a Context that captures Print output in an
// internal buffer, retrievable via Output().(*bytes.Buffer).String() or
// the returned *BufferContext's String method.
func NewBufferContext() *BufferContext {
	return &BufferContext{}
}

// BufferContext is the exported handle around bufferContext so callers
// (tests, the REPL) can read back captured output without importing
// bytes.Buffer's full surface.
type BufferContext struct {
	bufferContext
}

func (c *BufferContext) Output() io.Writer {
	return &c.buf
}

// String returns everything written to the buffer so far.
func (c *BufferContext) String() string {
	return c.buf.String()
}

// writerContext forwards Print output to an externally owned sink rather
// than buffering its own copy.
type writerContext struct {
	out io.Writer
}

// NewWriterContext returns a Context that writes Print output directly to
// w — used by the CLI driver to stream to stdout.
func NewWriterContext(w io.Writer) object.Context {
	return &writerContext{out: w}
}

func (c *writerContext) Output() io.Writer {
	return c.out
}
