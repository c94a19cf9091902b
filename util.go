package fontdata

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrNullArgument is returned if a required argument is absent.
var ErrNullArgument = fmt.Errorf("argument cannot be empty")

// ErrInvalidArgument is returned if an argument violates an invariant, such as a negative height or a malformed
// serialized font descriptor.
var ErrInvalidArgument = fmt.Errorf("invalid argument")

// ErrNotFound is returned if no font in a collection matches a font descriptor.
var ErrNotFound = fmt.Errorf("font not found")

// parseInt32 parses a complete decimal field with an optional sign. It fails on trailing characters and on values
// outside the 32-bit range.
func parseInt32(b []byte) (int, bool) {
	v, n := strconv.ParseInt(b)
	if n == 0 || n != len(b) || v < math.MinInt32 || math.MaxInt32 < v {
		return 0, false
	}
	return int(v), true
}

// StyleFromFlags returns the style with the Bold and Italic flags set as given.
func StyleFromFlags(bold, italic bool) Style {
	var style Style
	if bold {
		style |= Bold
	}
	if italic {
		style |= Italic
	}
	return style
}
