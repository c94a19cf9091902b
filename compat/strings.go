package compat

import (
	"fmt"
	"unicode"
	"unicode/utf16"
)

// IsLetter returns true for upper and lower case letters.
func IsLetter(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r)
}

// IsLetterOrDigit returns true for upper and lower case letters and decimal digits.
func IsLetterOrDigit(r rune) bool {
	return IsLetter(r) || unicode.IsDigit(r)
}

// IsSpaceChar returns true only for the ASCII space.
func IsSpaceChar(r rune) bool {
	return r == ' '
}

// IsWhitespace returns true for ASCII whitespace: tab, line feed, vertical tab, form feed, carriage return, the
// file/group/record/unit separators, and space.
func IsWhitespace(r rune) bool {
	return 0x1c <= r && r <= 0x20 || 0x09 <= r && r <= 0x0d
}

// EqualFold reports whether s1 and s2 are equal ignoring case. Strings are compared per UTF-16 code unit, two units
// are equal if they are identical or have the same upper or lower case mapping. Strings of different UTF-16 length
// are never equal, so "Straße" and "STRASSE" differ.
func EqualFold(s1, s2 string) bool {
	if s1 == s2 {
		return true
	}

	u1 := utf16.Encode([]rune(s1))
	u2 := utf16.Encode([]rune(s2))
	if len(u1) != len(u2) {
		return false
	}
	for i := range u1 {
		c1, c2 := rune(u1[i]), rune(u2[i])
		if c1 != c2 && unicode.ToUpper(c1) != unicode.ToUpper(c2) && unicode.ToLower(c1) != unicode.ToLower(c2) {
			return false
		}
	}
	return true
}

// Substring returns the UTF-16 code units [start,end) of the buffer contents, such as a *strings.Builder or a
// *bytes.Buffer. It returns ErrOutOfBounds if start is negative, larger than end, or end is beyond the contents.
func Substring(buf fmt.Stringer, start, end int) (string, error) {
	u := utf16.Encode([]rune(buf.String()))
	if start < 0 || end < start || len(u) < end {
		return "", fmt.Errorf("compat: %w: [%d,%d) of length %d", ErrOutOfBounds, start, end, len(u))
	}
	return string(utf16.Decode(u[start:end])), nil
}
