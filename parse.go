package fontdata

import (
	"bytes"
	"fmt"
)

// fdNextField returns the field starting at i up to the next '|' and the position after the separator.
func fdNextField(b []byte, i int) ([]byte, int, bool) {
	if len(b) < i {
		return nil, i, false
	}
	n := bytes.IndexByte(b[i:], '|')
	if n == -1 {
		return nil, i, false
	}
	return b[i : i+n], i + n + 1, true
}

// Parse reads a serialized font descriptor as produced by FontData.String, of the form
//
//	version|name|height|style|platformTag|platformVersion|
//
// The version is not checked. The trailing platform fields are optional and descriptors written for other platforms
// are accepted, only the name, height, and style are applied.
//
// An empty string is the absent descriptor and returns ErrNullArgument rather than ErrInvalidArgument. Any other
// malformed input, including a height or style outside the 32-bit range, returns ErrInvalidArgument.
func Parse(s string) (*FontData, error) {
	if s == "" {
		return nil, fmt.Errorf("fontdata: %w: serialized descriptor", ErrNullArgument)
	}
	b := []byte(s)

	var ok bool
	var name, val []byte
	pos := 0
	if _, pos, ok = fdNextField(b, pos); !ok {
		return nil, fmt.Errorf("fontdata: %w: missing version in %q", ErrInvalidArgument, s)
	}

	if name, pos, ok = fdNextField(b, pos); !ok {
		return nil, fmt.Errorf("fontdata: %w: missing name in %q", ErrInvalidArgument, s)
	}

	if val, pos, ok = fdNextField(b, pos); !ok {
		return nil, fmt.Errorf("fontdata: %w: missing height in %q", ErrInvalidArgument, s)
	}
	height, ok := parseInt32(val)
	if !ok {
		return nil, fmt.Errorf("fontdata: %w: bad height %q", ErrInvalidArgument, val)
	}

	if val, pos, ok = fdNextField(b, pos); !ok {
		return nil, fmt.Errorf("fontdata: %w: missing style in %q", ErrInvalidArgument, s)
	}
	style, ok := parseInt32(val)
	if !ok {
		return nil, fmt.Errorf("fontdata: %w: bad style %q", ErrInvalidArgument, val)
	}

	fd, err := New(string(name), height, Style(style))
	if err != nil {
		return nil, err
	}

	var platform, platformVersion []byte
	if platform, pos, ok = fdNextField(b, pos); !ok {
		return fd, nil
	}
	if platformVersion, _, ok = fdNextField(b, pos); !ok {
		return fd, nil
	}
	if string(platform) != PlatformTag || string(platformVersion) != PlatformVersion {
		Logger().Debug("fontdata: ignoring platform fields",
			"platform", string(platform), "version", string(platformVersion))
	}
	return fd, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *FontData {
	fd, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return fd
}
