package fontdata

import (
	"fmt"
	"strings"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// DefaultDPI is the resolution used by Collection.Face when no positive DPI is given.
var DefaultDPI = 72.0

type collectionEntry struct {
	desc *FontData
	font *sfnt.Font
}

// Collection resolves font descriptors to font faces from a set of registered font files. It is safe for
// concurrent use.
type Collection struct {
	mu      sync.RWMutex
	entries []collectionEntry
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add registers the font at index in font file b and returns its descriptor with a zero height.
func (c *Collection) Add(b []byte, index int) (*FontData, error) {
	fd, f, err := describe(b, index, 0)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries = append(c.entries, collectionEntry{fd, f})
	c.mu.Unlock()

	Logger().Debug("fontdata: added font", "name", fd.Name, "style", fd.Style.String(), "index", index)
	return fd.Clone(), nil
}

// Len returns the number of registered fonts.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Descriptors returns the descriptors of all registered fonts in order of registration.
func (c *Collection) Descriptors() []*FontData {
	c.mu.RLock()
	defer c.mu.RUnlock()

	descs := make([]*FontData, len(c.entries))
	for i, entry := range c.entries {
		descs[i] = entry.desc.Clone()
	}
	return descs
}

// Match returns the descriptor of the registered font matching the name (case-insensitively) and style of fd. If no
// font has the requested style, the first font of the same name is returned. The returned descriptor has the height
// and locale of fd.
func (c *Collection) Match(fd *FontData) (*FontData, error) {
	entry, err := c.match(fd)
	if err != nil {
		return nil, err
	}

	match := fd.Clone()
	match.Name = entry.desc.Name
	match.Style = entry.desc.Style
	return match, nil
}

// Face returns a font face for the registered font matching fd, with a size of fd.Height points at the given DPI.
func (c *Collection) Face(fd *FontData, dpi float64) (xfont.Face, error) {
	entry, err := c.match(fd)
	if err != nil {
		return nil, err
	} else if dpi <= 0.0 {
		dpi = DefaultDPI
	}

	face, err := opentype.NewFace(entry.font, &opentype.FaceOptions{
		Size:    float64(fd.Height),
		DPI:     dpi,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("fontdata: %s: %w", fd.Name, err)
	}
	return face, nil
}

func (c *Collection) match(fd *FontData) (collectionEntry, error) {
	if fd == nil {
		return collectionEntry{}, fmt.Errorf("fontdata: %w: font descriptor", ErrNullArgument)
	}
	style := fd.Style & (Bold | Italic)

	c.mu.RLock()
	defer c.mu.RUnlock()

	fallback := -1
	for i, entry := range c.entries {
		if !strings.EqualFold(entry.desc.Name, fd.Name) {
			continue
		} else if entry.desc.Style == style {
			return entry, nil
		} else if fallback == -1 {
			fallback = i
		}
	}
	if fallback == -1 {
		return collectionEntry{}, fmt.Errorf("fontdata: %w: %s", ErrNotFound, fd.Name)
	}

	entry := c.entries[fallback]
	Logger().Warn("fontdata: style not available", "name", fd.Name,
		"style", style.String(), "fallback", entry.desc.Style.String())
	return entry, nil
}
