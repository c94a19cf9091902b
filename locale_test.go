package fontdata

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/text/language"
)

func TestLocale(t *testing.T) {
	var tests = []struct {
		locale                 string
		lang, country, variant string
		expected               string
	}{
		{"", "", "", "", ""},
		{"en", "en", "", "", "en"},
		{"en_US", "en", "US", "", "en_US"},
		{"en_US_POSIX", "en", "US", "POSIX", "en_US_POSIX"},
		{"en__US", "en", "", "US", "en_US"},
		{"_US", "", "US", "", "US"},
		{"__POSIX", "", "", "POSIX", "POSIX"},
		{"en_", "en", "", "", "en"},
		{"en_US_", "en", "US", "", "en_US"},
		{"_", "", "", "", ""},
		{"ja_JP_JP_TRADITIONAL", "ja", "JP", "JP_TRADITIONAL", "ja_JP_JP_TRADITIONAL"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			fd := Default()
			fd.SetLocale(tt.locale)

			lang, ok := fd.Lang()
			test.T(t, lang, tt.lang)
			test.T(t, ok, tt.lang != "")
			country, ok := fd.Country()
			test.T(t, country, tt.country)
			test.T(t, ok, tt.country != "")
			variant, ok := fd.Variant()
			test.T(t, variant, tt.variant)
			test.T(t, ok, tt.variant != "")

			test.T(t, fd.Locale(), tt.expected)
		})
	}
}

func TestLocaleClear(t *testing.T) {
	fd := Default()
	fd.SetLocale("en_US_POSIX")
	fd.SetLocale("")
	test.T(t, fd.Locale(), "")
	_, ok := fd.Lang()
	test.That(t, !ok)
}

func TestLanguageTag(t *testing.T) {
	fd := Default()
	tag, err := fd.LanguageTag()
	test.Error(t, err)
	test.T(t, tag, language.Und)

	fd.SetLocale("en_US")
	tag, err = fd.LanguageTag()
	test.Error(t, err)
	test.T(t, tag.String(), "en-US")

	fd.SetLocale("de__1901")
	tag, err = fd.LanguageTag()
	test.Error(t, err)
	test.T(t, tag.String(), "de-1901")

	fd.SetLocale("not a locale")
	_, err = fd.LanguageTag()
	test.That(t, errors.Is(err, ErrInvalidArgument), err)
}

func TestSetLanguageTag(t *testing.T) {
	var tests = []struct {
		tag      string
		expected string
	}{
		{"und", ""},
		{"en", "en"},
		{"pt-BR", "pt_BR"},
		{"sr-Latn-RS", "sr_RS"},
		{"de-CH-1996", "de_CH_1996"},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			fd := Default()
			fd.SetLocale("fr_FR")
			fd.SetLanguageTag(language.MustParse(tt.tag))
			test.T(t, fd.Locale(), tt.expected)
		})
	}
}
