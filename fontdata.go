package fontdata

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Style is a bitmask of font style flags. It is 32 bits wide so that every value can be serialized.
type Style int32

// Style flags, Bold and Italic are independent.
const (
	Normal Style = 0
	Bold   Style = 1 << 0
	Italic Style = 1 << 1
)

func (style Style) String() string {
	if style == Normal {
		return "normal"
	}

	var names []string
	if style&Bold != 0 {
		names = append(names, "bold")
	}
	if style&Italic != 0 {
		names = append(names, "italic")
	}
	if rest := style &^ (Bold | Italic); rest != 0 {
		names = append(names, fmt.Sprintf("0x%X", uint32(rest)))
	}
	return strings.Join(names, "|")
}

// PlatformTag and PlatformVersion are written as the trailing fields of a serialized font descriptor.
const (
	PlatformTag     = "GO"
	PlatformVersion = "1"
)

// FontData describes an operating system font by its face name, height in points, and style. A locale may be
// attached which is not taken into account for equality.
//
// FontData is not safe for concurrent mutation.
type FontData struct {
	// Name is the face name, optionally as "foundry-face".
	Name string

	// Height is the font size in points, within [0,math.MaxInt32] when set through New or SetHeight.
	Height int

	Style Style

	lang, country, variant string
}

// Default returns a font descriptor with an empty name, a height of 12 points, and normal style.
func Default() *FontData {
	return &FontData{
		Name:   "",
		Height: 12,
		Style:  Normal,
	}
}

// New returns a font descriptor for the given name, height in points, and style.
func New(name string, height int, style Style) (*FontData, error) {
	fd := &FontData{}
	fd.SetName(name)
	if err := fd.SetHeight(height); err != nil {
		return nil, err
	}
	fd.SetStyle(style)
	return fd, nil
}

// GetName returns the face name.
func (fd *FontData) GetName() string {
	return fd.Name
}

// GetHeight returns the height in points.
func (fd *FontData) GetHeight() int {
	return fd.Height
}

// GetStyle returns the style bitmask.
func (fd *FontData) GetStyle() Style {
	return fd.Style
}

// SetName sets the face name verbatim.
func (fd *FontData) SetName(name string) {
	fd.Name = name
}

// SetHeight sets the height in points. It returns ErrInvalidArgument for negative heights and heights that do not
// fit in 32 bits.
func (fd *FontData) SetHeight(height int) error {
	if height < 0 {
		return fmt.Errorf("fontdata: %w: negative height %d", ErrInvalidArgument, height)
	} else if math.MaxInt32 < height {
		return fmt.Errorf("fontdata: %w: height %d too large", ErrInvalidArgument, height)
	}
	fd.Height = height
	return nil
}

// SetStyle sets the style bitmask verbatim.
func (fd *FontData) SetStyle(style Style) {
	fd.Style = style
}

// Equal returns true if both descriptors have the same name, height, and style. The locale is ignored.
func (fd *FontData) Equal(other *FontData) bool {
	if fd == other {
		return true
	} else if fd == nil || other == nil {
		return false
	}
	return fd.Name == other.Name && fd.Height == other.Height && fd.Style == other.Style
}

// Hash returns a hash over the name, height, and style. The name hash is computed over UTF-16 code units so that
// values match descriptors stored by other toolkits.
func (fd *FontData) Hash() uint32 {
	var h uint32
	for _, c := range utf16.Encode([]rune(fd.Name)) {
		h = 31*h + uint32(c)
	}
	return h ^ uint32(int32(fd.Height)) ^ uint32(fd.Style)
}

// Clone returns a copy of the descriptor including its locale.
func (fd *FontData) Clone() *FontData {
	clone := *fd
	return &clone
}

// String returns the serialized descriptor, which can be read back by Parse.
func (fd *FontData) String() string {
	b := make([]byte, 0, len(fd.Name)+24)
	b = append(b, "1|"...)
	b = append(b, fd.Name...)
	b = append(b, '|')
	b = strconv.AppendInt(b, int64(fd.Height), 10)
	b = append(b, '|')
	b = strconv.AppendInt(b, int64(fd.Style), 10)
	b = append(b, '|')
	b = append(b, PlatformTag...)
	b = append(b, '|')
	b = append(b, PlatformVersion...)
	b = append(b, '|')
	return string(b)
}
