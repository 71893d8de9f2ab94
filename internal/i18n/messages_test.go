// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package i18n

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"globalplanner/internal/models"
)

func TestMessagesComplete(t *testing.T) {
	for _, l := range []models.Locale{models.LocaleArabic, models.LocaleEnglish} {
		m := reflect.ValueOf(For(l))
		for i := 0; i < m.NumField(); i++ {
			assert.NotEmpty(t, m.Field(i).String(), "%s: %s is empty", l, m.Type().Field(i).Name)
		}
	}
}

func TestForFallsBackToArabic(t *testing.T) {
	assert.Equal(t, For(models.LocaleArabic), For(models.Locale("fr")))
	assert.Equal(t, "Plan: ", For(models.LocaleEnglish).AutoTitle)
	assert.Equal(t, "خطة: ", For(models.LocaleArabic).AutoTitle)
}

func TestModeChanged(t *testing.T) {
	en := For(models.LocaleEnglish)
	assert.Equal(t, "Dark mode activated 🌙", en.ModeChanged(true))
	assert.Equal(t, "Light mode activated ☀️", en.ModeChanged(false))
}
