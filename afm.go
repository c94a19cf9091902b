package fontdata

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// afmBoldWeights are the AFM Weight values of semibold and heavier.
var afmBoldWeights = map[string]bool{
	"semibold":   true,
	"demibold":   true,
	"demi":       true,
	"bold":       true,
	"extrabold":  true,
	"ultrabold":  true,
	"heavy":      true,
	"black":      true,
	"ultrablack": true,
}

func afmIsWhitespace(c byte) bool {
	return c == ' ' || c == '\t'
}

func afmSkipWhitespace(b []byte, i int) int {
	for i < len(b) && afmIsWhitespace(b[i]) {
		i++
	}
	return i
}

func afmNextValue(b []byte, i int) ([]byte, int) {
	start := i
	for i < len(b) && !afmIsWhitespace(b[i]) {
		i++
	}
	return b[start:i], i
}

// afmParseText returns the remainder of the line, used for values that may contain spaces such as FamilyName.
func afmParseText(b []byte, i int) string {
	i = afmSkipWhitespace(b, i)
	return string(bytes.TrimRight(b[i:], " \t\r"))
}

func afmParseNumber(b []byte, i int) (float64, bool) {
	i = afmSkipWhitespace(b, i)
	v, n := strconv.ParseDecimal(b[i:])
	return v, n != 0
}

// DescribeAFM returns a font descriptor of the given height in points for an Adobe Font Metrics file. Only the
// global font information is read: the name is the FamilyName (or FontName if absent), Bold follows from the Weight
// and Italic from a non-zero ItalicAngle.
func DescribeAFM(b []byte, height int) (*FontData, error) {
	scanner := bufio.NewScanner(bytes.NewReader(b))
	if !scanner.Scan() {
		return nil, fmt.Errorf("afm: %w: empty file", ErrInvalidArgument)
	} else if key, _ := afmNextValue(scanner.Bytes(), 0); string(key) != "StartFontMetrics" {
		return nil, fmt.Errorf("afm: %w: missing StartFontMetrics", ErrInvalidArgument)
	}

	j := 1 // line number
	var fontName, familyName string
	bold, italic := false, false
Scanner:
	for scanner.Scan() {
		j++
		line := scanner.Bytes()
		key, pos := afmNextValue(line, 0)
		switch string(key) {
		case "FontName":
			fontName = afmParseText(line, pos)
		case "FamilyName":
			familyName = afmParseText(line, pos)
		case "Weight":
			bold = afmBoldWeights[strings.ToLower(strings.ReplaceAll(afmParseText(line, pos), " ", ""))]
		case "ItalicAngle":
			angle, ok := afmParseNumber(line, pos)
			if !ok {
				return nil, fmt.Errorf("afm: %w: bad ItalicAngle at line %v", ErrInvalidArgument, j)
			}
			italic = angle != 0.0
		case "StartCharMetrics", "EndFontMetrics":
			// global font information precedes the metrics sections
			break Scanner
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("afm: %w", err)
	}

	name := familyName
	if name == "" {
		name = fontName
	}
	if name == "" {
		return nil, fmt.Errorf("afm: %w: missing FamilyName and FontName", ErrInvalidArgument)
	}
	return New(name, height, StyleFromFlags(bold, italic))
}
