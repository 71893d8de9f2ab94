// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Locale identifies one of the two supported interface languages.
type Locale string

const (
	LocaleArabic  Locale = "ar"
	LocaleEnglish Locale = "en"
)

// DefaultLocale is used when no valid language has been stored.
const DefaultLocale = LocaleArabic

// Valid reports whether l is a supported locale tag.
func (l Locale) Valid() bool {
	return l == LocaleArabic || l == LocaleEnglish
}

// Toggle returns the other supported locale.
func (l Locale) Toggle() Locale {
	if l == LocaleArabic {
		return LocaleEnglish
	}
	return LocaleArabic
}

// Direction returns the text direction for the locale ("rtl" or "ltr").
func (l Locale) Direction() string {
	if l == LocaleArabic {
		return "rtl"
	}
	return "ltr"
}

// ParseLocale converts a raw tag into a Locale, falling back to
// DefaultLocale for anything unsupported.
func ParseLocale(s string) Locale {
	l := Locale(s)
	if l.Valid() {
		return l
	}
	return DefaultLocale
}
