// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Settings is the persisted subset of user preferences.
type Settings struct {
	IsPro    bool   `json:"isPro"`
	DarkMode bool   `json:"darkMode"`
	Language Locale `json:"language"`
}

// DefaultSettings returns the first-run settings. The theme follows the
// host's colour-scheme preference.
func DefaultSettings(prefersDark bool, lang Locale) Settings {
	if !lang.Valid() {
		lang = DefaultLocale
	}
	return Settings{DarkMode: prefersDark, Language: lang}
}

// Normalize replaces an unsupported language with DefaultLocale.
func (s Settings) Normalize() Settings {
	if !s.Language.Valid() {
		s.Language = DefaultLocale
	}
	return s
}
