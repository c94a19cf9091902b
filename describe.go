package fontdata

import (
	"fmt"

	"github.com/tdewolff/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

const (
	macStyleBold   = 0
	macStyleItalic = 1

	fsSelectionItalic = 0x0001
	fsSelectionBold   = 0x0020
)

// Describe returns a font descriptor for the font file b of the given height in points. Any of TTF, OTF, WOFF,
// WOFF2, EOT, TTC, and OTC is accepted, index selects the font within a collection. The name is the typographic
// family name, or the family name if absent. The style is taken from the head and OS/2 tables.
func Describe(b []byte, index int, height int) (*FontData, error) {
	fd, _, err := describe(b, index, height)
	return fd, err
}

func describe(b []byte, index int, height int) (*FontData, *sfnt.Font, error) {
	if height < 0 {
		return nil, nil, fmt.Errorf("fontdata: %w: negative height %d", ErrInvalidArgument, height)
	} else if index < 0 {
		return nil, nil, fmt.Errorf("fontdata: %w: negative font index %d", ErrInvalidArgument, index)
	}

	b, err := font.ToSFNT(b)
	if err != nil {
		return nil, nil, fmt.Errorf("fontdata: %w: %v", ErrInvalidArgument, err)
	}
	tables, err := font.ParseSFNT(b, index)
	if err != nil {
		return nil, nil, fmt.Errorf("fontdata: %w: %v", ErrInvalidArgument, err)
	}

	collection, err := opentype.ParseCollection(b)
	if err != nil {
		return nil, nil, fmt.Errorf("fontdata: %w: %v", ErrInvalidArgument, err)
	}
	f, err := collection.Font(index)
	if err != nil {
		return nil, nil, fmt.Errorf("fontdata: %w: %v", ErrInvalidArgument, err)
	}
	name := familyName(f)
	if name == "" {
		return nil, nil, fmt.Errorf("fontdata: %w: font has no family name", ErrInvalidArgument)
	}

	bold, italic := false, false
	if tables.Head != nil {
		bold = tables.Head.MacStyle[macStyleBold]
		italic = tables.Head.MacStyle[macStyleItalic]
	}
	if tables.OS2 != nil {
		bold = bold || tables.OS2.FsSelection&fsSelectionBold != 0
		italic = italic || tables.OS2.FsSelection&fsSelectionItalic != 0
	}

	fd, err := New(name, height, StyleFromFlags(bold, italic))
	if err != nil {
		return nil, nil, err
	}
	return fd, f, nil
}

func familyName(f *sfnt.Font) string {
	var buf sfnt.Buffer
	for _, id := range []sfnt.NameID{sfnt.NameIDTypographicFamily, sfnt.NameIDFamily} {
		if name, err := f.Name(&buf, id); err == nil && name != "" {
			return name
		}
	}
	return ""
}
