// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple two words", "Hello World", "hello-world"},
		{"title with year", "Hello World 2026", "hello-world-2026"},
		{"punctuation", "Hello, World! How's it going?", "hello-world-hows-it-going"},
		{"ampersand and at sign", "Rock & Roll @ the Arena", "rock-roll-the-arena"},
		{"surrounding whitespace", "   padded title   ", "padded-title"},
		{"tabs and newlines", "one\ttwo\nthree", "one-two-three"},
		{"existing hyphens", "well--known -- fact", "well-known-fact"},
		{"underscores", "snake_case_title", "snake-case-title"},
		{"leading hyphen", "-lead", "lead"},
		{"arabic", "خطة السفر", "خطة-السفر"},
		{"arabic with prefix", "خطة: رحلة إلى روما", "خطة-رحلة-إلى-روما"},
		{"mixed scripts", "Daily يومي 5", "daily-يومي-5"},
		{"accented", "Café Crème", "café-crème"},
		{"only symbols", "!!! ### ???", ""},
		{"empty", "", ""},
		{"emoji", "⭐ Goals ⭐", "goals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.input))
		})
	}
}

func TestGenerateMaxLen(t *testing.T) {
	got := Generate(strings.Repeat("word ", 40))

	assert.LessOrEqual(t, utf8.RuneCountInString(got), MaxLen)
	assert.False(t, strings.HasSuffix(got, "-"))
	assert.True(t, strings.HasPrefix(got, "word-word"))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "my-plan.md", Filename("My Plan", "page-1", ".md"))
	assert.Equal(t, "page-1.md", Filename("???", "page-1", ".md"))
}
