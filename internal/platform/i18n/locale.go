// Package i18n resolves the configured display locale and formats values for it.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

// Locale formats user-facing values for one language tag.
type Locale struct {
	tag     language.Tag
	printer *message.Printer
}

// ParseLocale parses a BCP 47 tag such as "en-US". Blank input resolves to
// DefaultLocale.
func ParseLocale(raw string) (Locale, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultLocale
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return Locale{}, fmt.Errorf("parse locale %q: %w", raw, err)
	}
	return Locale{tag: tag, printer: message.NewPrinter(tag)}, nil
}

// MustParseLocale is ParseLocale for compile-time constants.
func MustParseLocale(raw string) Locale {
	loc, err := ParseLocale(raw)
	if err != nil {
		panic(err)
	}
	return loc
}

// Tag returns the full language tag string.
func (l Locale) Tag() string {
	return l.tag.String()
}

// Lang returns the base language subtag used for the html lang attribute.
func (l Locale) Lang() string {
	base, _ := l.tag.Base()
	return base.String()
}

// FormatInt renders n with locale digit grouping, matching what browsers
// produce for Number.prototype.toLocaleString.
func (l Locale) FormatInt(n int64) string {
	if l.printer == nil {
		return message.NewPrinter(language.AmericanEnglish).Sprintf("%d", n)
	}
	return l.printer.Sprintf("%d", n)
}
