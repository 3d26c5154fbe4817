package cli

import (
	"fmt"
	"io"
)

// IO handles command output. Results go to stdout, diagnostics to stderr.
type IO struct {
	out    io.Writer
	errOut io.Writer
}

// NewIO creates a new IO instance.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// Print writes preformatted text to stdout unchanged.
func (o *IO) Print(s string) {
	_, _ = io.WriteString(o.out, s)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Warn prints a "warning:" line to stderr. Warnings never change the exit
// code.
func (o *IO) Warn(format string, a ...any) {
	_, _ = fmt.Fprintf(o.errOut, "warning: "+format+"\n", a...)
}
