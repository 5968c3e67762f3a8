// Package locale holds the Korean and English UI text tables.
//
// Lookups fall back to the default language and finally to "[key]", so a
// missing translation is visible on screen instead of rendering blank.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Default is the language used when nothing else matches.
const Default = "ko"

var (
	supported = []language.Tag{language.Korean, language.English}
	matcher   = language.NewMatcher(supported)
)

// Catalog returns UI text for one language.
type Catalog struct {
	code    string
	tag     language.Tag
	printer *message.Printer
}

// New returns the catalog for a language code such as "en" or "ko-KR".
// Unsupported codes get the default language.
func New(code string) *Catalog {
	tag := Match(code)
	base, _ := tag.Base()
	return &Catalog{
		code:    base.String(),
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// Match picks the supported language closest to the given preferences,
// e.g. "en-US" or an Accept-Language style list "fr, en;q=0.8".
func Match(prefs string) language.Tag {
	if prefs == "" {
		return language.Korean
	}
	tags, _, err := language.ParseAcceptLanguage(prefs)
	if err != nil || len(tags) == 0 {
		return language.Korean
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return language.Korean
	}
	return supported[idx]
}

// Supported returns the language codes with a text table, default first.
func Supported() []string {
	return []string{"ko", "en"}
}

// IsSupported reports whether code names a language with its own table.
func IsSupported(code string) bool {
	_, ok := texts[code]
	return ok
}

// Code returns the catalog's language code.
func (c *Catalog) Code() string {
	return c.code
}

// T returns the text for key.
func (c *Catalog) T(key string) string {
	if s, ok := texts[c.code][key]; ok {
		return s
	}
	if s, ok := texts[Default][key]; ok {
		return s
	}
	return "[" + key + "]"
}

// Number formats n with the language's digit grouping.
func (c *Catalog) Number(n int) string {
	return c.printer.Sprintf("%d", n)
}

// LanguageName returns the display name of a language code.
func (c *Catalog) LanguageName(code string) string {
	switch code {
	case "ko":
		return c.T("korean")
	case "en":
		return c.T("english")
	default:
		return code
	}
}
