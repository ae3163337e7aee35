package timeexchange

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is a language code the page has copy for.
type Locale string

const (
	English Locale = "en"
	Greek   Locale = "el"

	DefaultLocale = English
)

var supportedLocales = []Locale{English, Greek}

// Locales returns every supported locale, default first.
func Locales() []Locale {
	return append([]Locale(nil), supportedLocales...)
}

// ParseLocale reports whether s is exactly one of the supported locale codes.
func ParseLocale(s string) (Locale, bool) {
	for _, l := range supportedLocales {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

func (l Locale) String() string {
	return string(l)
}

// SelectLocale picks the locale for a reported language preference such as
// "el-GR" or "en-US". The match is a case-sensitive prefix check, anything
// that does not start with "el" (including "") gets the default locale.
func SelectLocale(pref string) Locale {
	if strings.HasPrefix(pref, string(Greek)) {
		return Greek
	}
	return DefaultLocale
}

// PrimaryPreference returns the visitor's top language from an
// Accept-Language header value, the same thing a browser reports as its
// language. Well-formed headers are ordered by quality and the winning tag is
// returned in canonical form. Malformed headers fall back to the raw first
// entry.
func PrimaryPreference(acceptLanguage string) string {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return ""
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err == nil && len(tags) > 0 {
		return tags[0].String()
	}

	first, _, _ := strings.Cut(acceptLanguage, ",")
	first, _, _ = strings.Cut(first, ";")
	return strings.TrimSpace(first)
}
