package fontdata

import (
	"github.com/go-text/typesetting/font"
)

// boldWeight is the lowest weight considered bold, that is semibold and heavier.
const boldWeight = 600

// Aspect returns the style as a typesetting aspect with normal stretch.
func (fd *FontData) Aspect() font.Aspect {
	aspect := font.Aspect{
		Style:   font.StyleNormal,
		Weight:  font.WeightNormal,
		Stretch: font.StretchNormal,
	}
	if fd.Style&Italic != 0 {
		aspect.Style = font.StyleItalic
	}
	if fd.Style&Bold != 0 {
		aspect.Weight = font.WeightBold
	}
	return aspect
}

// StyleFromAspect returns the style flags for a typesetting aspect, weights of semibold and up are bold.
func StyleFromAspect(aspect font.Aspect) Style {
	return StyleFromFlags(boldWeight <= aspect.Weight, aspect.Style == font.StyleItalic)
}
