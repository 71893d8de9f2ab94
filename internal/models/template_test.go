// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateLocalizedFields(t *testing.T) {
	tmpl := Template{
		Name:             "يومي - نموذج أساسي 1",
		NameEn:           "Daily - Basic Template 1",
		Description:      "وصف",
		DescriptionEn:    "description",
		InitialContent:   "# يومي",
		InitialContentEn: "# Daily",
	}

	assert.Equal(t, "يومي - نموذج أساسي 1", tmpl.LocalizedName(LocaleArabic))
	assert.Equal(t, "Daily - Basic Template 1", tmpl.LocalizedName(LocaleEnglish))
	assert.Equal(t, "وصف", tmpl.LocalizedDescription(LocaleArabic))
	assert.Equal(t, "description", tmpl.LocalizedDescription(LocaleEnglish))
	assert.Equal(t, "# يومي", tmpl.LocalizedContent(LocaleArabic))
	assert.Equal(t, "# Daily", tmpl.LocalizedContent(LocaleEnglish))
}

// English content falls back to the Arabic seed when none is defined.
func TestTemplateLocalizedContentFallback(t *testing.T) {
	tmpl := Template{InitialContent: "# ملاحظات"}
	assert.Equal(t, "# ملاحظات", tmpl.LocalizedContent(LocaleEnglish))
}

func TestCategoryLocalizedName(t *testing.T) {
	c := Category{ID: "goals", Name: "أهداف", NameEn: "Goals"}
	assert.Equal(t, "أهداف", c.LocalizedName(LocaleArabic))
	assert.Equal(t, "Goals", c.LocalizedName(LocaleEnglish))

	c.NameEn = ""
	assert.Equal(t, "أهداف", c.LocalizedName(LocaleEnglish))
}

func TestFindPage(t *testing.T) {
	pages := []Page{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	assert.Equal(t, 1, FindPage(pages, "b"))
	assert.Equal(t, -1, FindPage(pages, "zzz"))
	assert.Equal(t, -1, FindPage(nil, "a"))
}

func TestPageTimestamps(t *testing.T) {
	p := Page{CreatedAt: 1700000000000, UpdatedAt: 1700000005000}
	assert.Equal(t, int64(1700000000000), p.Created().UnixMilli())
	assert.Equal(t, 5.0, p.Updated().Sub(p.Created()).Seconds())
}
