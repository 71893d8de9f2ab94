// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// CategoryAll is the pseudo category that matches every template.
const CategoryAll = "all"

// Category groups catalog templates (daily, weekly, goals, ...).
type Category struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	NameEn string `json:"nameEn" yaml:"name_en"`
	Icon   string `json:"icon" yaml:"icon"`
}

// LocalizedName returns the category name for the given locale.
func (c Category) LocalizedName(l Locale) string {
	if l == LocaleEnglish && c.NameEn != "" {
		return c.NameEn
	}
	return c.Name
}
