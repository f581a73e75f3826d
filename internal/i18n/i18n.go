// Package i18n holds the bundled message catalog. Ukrainian is the default
// language; English is available as a second catalog.
package i18n

import "strings"

const (
	LangUK = "uk"
	LangEN = "en"

	DefaultLang = LangUK
)

var catalogs = map[string]map[string]string{
	LangUK: uk,
	LangEN: en,
}

// Normalize reduces a language tag such as "en-US" to a supported language,
// falling back to DefaultLang.
func Normalize(lang string) string {
	base, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(lang)), "-")
	base, _, _ = strings.Cut(base, "_")
	if _, ok := catalogs[base]; ok {
		return base
	}
	return DefaultLang
}

// T translates code into lang. Unknown languages use DefaultLang and unknown
// codes are returned unchanged.
func T(lang, code string) string {
	if msg, ok := catalogs[Normalize(lang)][code]; ok {
		return msg
	}
	if msg, ok := catalogs[DefaultLang][code]; ok {
		return msg
	}
	return code
}

// Join translates each code and joins the results with newlines.
func Join(lang string, codes []string) string {
	msgs := make([]string, 0, len(codes))
	for _, c := range codes {
		msgs = append(msgs, T(lang, c))
	}
	return strings.Join(msgs, "\n")
}
