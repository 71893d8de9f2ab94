// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"unicode/utf8"
)

// Input limits, counted in runes.
const (
	maxTitleLen   = 300
	maxContentLen = 100_000
	maxTopicLen   = 1_000
	maxQueryLen   = 200
)

// maxBodyBytes caps a JSON request body. Content of maxContentLen runes
// fits comfortably.
const maxBodyBytes = 1 << 20

// validatePage checks editor inputs and returns the first error found.
// Empty titles and content are allowed.
func validatePage(title, content string) string {
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "Content is too long (max 100,000 characters)."
	}
	return ""
}

// validateTopic checks the generation topic length. Blank topics are left
// to the controller, which answers them with a notification.
func validateTopic(topic string) string {
	if utf8.RuneCountInString(topic) > maxTopicLen {
		return "Topic is too long (max 1,000 characters)."
	}
	return ""
}

// validateQuery checks the template search text.
func validateQuery(query string) string {
	if utf8.RuneCountInString(query) > maxQueryLen {
		return "Search query is too long (max 200 characters)."
	}
	return ""
}
