package compat

import (
	"errors"
	"fmt"
)

// ErrNullArgument is returned if a required argument is empty.
var ErrNullArgument = fmt.Errorf("argument cannot be empty")

// ErrInvalidRange is returned if a numeric argument is outside its valid range.
var ErrInvalidRange = fmt.Errorf("argument out of range")

// ErrOutOfBounds is returned if an index is outside a string.
var ErrOutOfBounds = fmt.Errorf("index out of bounds")

// ErrUnsupported is returned by file and process operations, which this package does not provide.
var ErrUnsupported = fmt.Errorf("compat: %w", errors.ErrUnsupported)
