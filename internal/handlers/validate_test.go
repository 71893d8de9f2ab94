// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePage(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		content   string
		wantError bool
	}{
		{"valid", "My Plan", "- [ ] task", false},
		{"empty allowed", "", "", false},
		{"title at limit", strings.Repeat("a", 300), "", false},
		{"arabic title at limit", strings.Repeat("خ", 300), "", false},
		{"title too long", strings.Repeat("a", 301), "", true},
		{"content too long", "t", strings.Repeat("a", 100_001), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validatePage(tt.title, tt.content)
			if tt.wantError {
				assert.NotEmpty(t, result)
			} else {
				assert.Empty(t, result)
			}
		})
	}
}

func TestValidateTopicAndQuery(t *testing.T) {
	assert.Empty(t, validateTopic(""))
	assert.Empty(t, validateTopic(strings.Repeat("a", 1000)))
	assert.NotEmpty(t, validateTopic(strings.Repeat("a", 1001)))

	assert.Empty(t, validateQuery("daily"))
	assert.NotEmpty(t, validateQuery(strings.Repeat("a", 201)))
}
