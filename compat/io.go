package compat

import (
	"fmt"
	"io"
)

// NewFileInputStream always returns ErrUnsupported.
func NewFileInputStream(filename string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("%w: open %s", ErrUnsupported, filename)
}

// NewFileOutputStream always returns ErrUnsupported.
func NewFileOutputStream(filename string) (io.WriteCloser, error) {
	return nil, fmt.Errorf("%w: create %s", ErrUnsupported, filename)
}

// Exec always returns ErrUnsupported.
func Exec(prog string) error {
	return fmt.Errorf("%w: exec %s", ErrUnsupported, prog)
}

// ExecArgs always returns ErrUnsupported.
func ExecArgs(args []string) error {
	return fmt.Errorf("%w: exec %v", ErrUnsupported, args)
}

// Interrupt does nothing, there are no threads to interrupt.
func Interrupt() {
}
