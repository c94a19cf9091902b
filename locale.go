package fontdata

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

const localeSep = '_'

// SetLocale sets the locale from an underscore separated string of language, country, and variant, such as
// "en_US". Empty parts are left unset, so "en__POSIX" has no country. An empty string clears the locale.
func (fd *FontData) SetLocale(locale string) {
	fd.lang, fd.country, fd.variant = "", "", ""

	n := len(locale)
	first, second := n, n
	if i := strings.IndexByte(locale, localeSep); i != -1 {
		first = i
		if j := strings.IndexByte(locale[i+1:], localeSep); j != -1 {
			second = i + 1 + j
		}
	}
	if 0 < first {
		fd.lang = locale[:first]
	}
	if first+1 < second {
		fd.country = locale[first+1 : second]
	}
	if second+1 < n {
		fd.variant = locale[second+1:]
	}
}

// Locale returns the set locale parts joined by underscores, unset parts are skipped.
func (fd *FontData) Locale() string {
	sb := strings.Builder{}
	if fd.lang != "" {
		sb.WriteString(fd.lang)
		sb.WriteByte(localeSep)
	}
	if fd.country != "" {
		sb.WriteString(fd.country)
		sb.WriteByte(localeSep)
	}
	if fd.variant != "" {
		sb.WriteString(fd.variant)
	}
	return strings.TrimSuffix(sb.String(), string(localeSep))
}

// Lang returns the language part of the locale.
func (fd *FontData) Lang() (string, bool) {
	return fd.lang, fd.lang != ""
}

// Country returns the country part of the locale.
func (fd *FontData) Country() (string, bool) {
	return fd.country, fd.country != ""
}

// Variant returns the variant part of the locale.
func (fd *FontData) Variant() (string, bool) {
	return fd.variant, fd.variant != ""
}

// LanguageTag returns the locale as a BCP 47 language tag, or language.Und if no locale is set.
func (fd *FontData) LanguageTag() (language.Tag, error) {
	var parts []string
	for _, part := range []string{fd.lang, fd.country, fd.variant} {
		if part != "" {
			parts = append(parts, strings.ReplaceAll(part, string(localeSep), "-"))
		}
	}
	if len(parts) == 0 {
		return language.Und, nil
	}

	tag, err := language.Parse(strings.Join(parts, "-"))
	if err != nil {
		return language.Und, fmt.Errorf("fontdata: %w: locale %q: %v", ErrInvalidArgument, fd.Locale(), err)
	}
	return tag, nil
}

// SetLanguageTag sets the locale from a BCP 47 language tag. The script subtag is dropped and multiple variants are
// joined by underscores. The undetermined language clears the locale.
func (fd *FontData) SetLanguageTag(tag language.Tag) {
	fd.lang, fd.country, fd.variant = "", "", ""

	base, _, region := tag.Raw()
	if base.String() != "und" {
		fd.lang = base.String()
	}
	if region != (language.Region{}) {
		fd.country = region.String()
	}
	variants := tag.Variants()
	if 0 < len(variants) {
		names := make([]string, len(variants))
		for i, v := range variants {
			names[i] = v.String()
		}
		fd.variant = strings.Join(names, string(localeSep))
	}
}
