// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug turns page titles into file-name friendly slugs. Letters and
// digits of any script are kept, so Arabic titles survive.
package slug

import (
	"strings"
	"unicode"
)

// MaxLen caps the slug length in runes.
const MaxLen = 80

// Generate creates a slug from s: lower-cased letters and digits, words
// joined by single hyphens.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	var b strings.Builder
	pendingHyphen := false
	n := 0

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r):
			if pendingHyphen && b.Len() > 0 {
				if n+1 >= MaxLen {
					return b.String()
				}
				b.WriteByte('-')
				n++
			}
			pendingHyphen = false
			if n >= MaxLen {
				return b.String()
			}
			b.WriteRune(r)
			n++
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingHyphen = true
		}
	}
	return b.String()
}

// Filename returns the slug of title with ext appended, or fallback with
// ext when the title has no usable characters.
func Filename(title, fallback, ext string) string {
	s := Generate(title)
	if s == "" {
		s = fallback
	}
	return s + ext
}
