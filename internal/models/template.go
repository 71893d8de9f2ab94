// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Template is an immutable catalog entry used as the seed for new pages.
// Name, Description and InitialContent hold the Arabic text; the En fields
// hold the English text.
type Template struct {
	ID               string `json:"id"`
	Category         string `json:"category"`
	Name             string `json:"name"`
	NameEn           string `json:"nameEn"`
	Description      string `json:"description"`
	DescriptionEn    string `json:"descriptionEn"`
	Icon             string `json:"icon"`
	IsPremium        bool   `json:"isPremium"`
	Rating           string `json:"rating"`
	Downloads        string `json:"downloads"`
	InitialContent   string `json:"initialContent"`
	InitialContentEn string `json:"initialContentEn"`
}

// LocalizedName returns the template name for the given locale.
func (t Template) LocalizedName(l Locale) string {
	if l == LocaleEnglish {
		return t.NameEn
	}
	return t.Name
}

// LocalizedDescription returns the template description for the given locale.
func (t Template) LocalizedDescription(l Locale) string {
	if l == LocaleEnglish {
		return t.DescriptionEn
	}
	return t.Description
}

// LocalizedContent returns the seed content for the given locale. English
// falls back to the Arabic seed when no English seed exists.
func (t Template) LocalizedContent(l Locale) string {
	if l == LocaleEnglish && t.InitialContentEn != "" {
		return t.InitialContentEn
	}
	return t.InitialContent
}
