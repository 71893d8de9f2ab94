// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globalplanner/internal/i18n"
	"globalplanner/internal/models"
	"globalplanner/internal/planner"
)

func browserData(lang models.Locale) *ViewData {
	chrome := NewChrome(false)
	chrome.ApplyDirection(lang)
	return &ViewData{
		Chrome: chrome.State(),
		T:      i18n.For(lang),
		State: planner.State{
			Settings:         models.Settings{Language: lang},
			View:             planner.ViewTemplates,
			SelectedCategory: models.CategoryAll,
			SidebarOpen:      true,
			Pages:            []models.Page{{ID: "p1", Title: "", UpdatedAt: 1_700_000_000_000}},
		},
		Categories: []models.Category{{ID: "daily", Name: "يومي", NameEn: "Daily"}},
		Templates: []models.Template{
			{ID: "daily-free-1", Category: "daily", Name: "يومي - نموذج أساسي 1", NameEn: "Daily - Basic Template 1", Rating: "4.5", Downloads: "12K"},
			{ID: "daily-pro-1", Category: "daily", NameEn: "Daily - Pro Template 1", IsPremium: true},
		},
		TemplateCount: 132,
		Notifications: []models.Notification{{ID: "n1", Message: "<b>saved</b>", Severity: models.SeveritySuccess}},
	}
}

func TestNew(t *testing.T) {
	rn, err := New()
	require.NoError(t, err)
	for _, name := range views {
		assert.Contains(t, rn.templates, name)
	}
	assert.NotContains(t, rn.templates, "base")
}

func TestBrowserPage(t *testing.T) {
	rn, err := New()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	rn.Page(rec, httptest.NewRequest(http.MethodGet, "/", nil), "browser", browserData(models.LocaleEnglish))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, `dir="ltr"`)
	assert.Contains(t, body, `lang="en"`)
	assert.Contains(t, body, "Daily - Basic Template 1")
	assert.Contains(t, body, "Over 132 ready-made templates")
	assert.Contains(t, body, "PREMIUM")
	assert.Contains(t, body, "locked")
	assert.Contains(t, body, "Untitled")
	assert.Contains(t, body, "&lt;b&gt;saved&lt;/b&gt;")
	assert.NotContains(t, body, "<b>saved</b>")
}

func TestBrowserPageArabic(t *testing.T) {
	rn, err := New()
	require.NoError(t, err)

	data := browserData(models.LocaleArabic)
	data.Templates = nil
	rec := httptest.NewRecorder()
	rn.Page(rec, httptest.NewRequest(http.MethodGet, "/", nil), "browser", data)

	body := rec.Body.String()
	assert.Contains(t, body, `dir="rtl"`)
	assert.Contains(t, body, "لا توجد قوالب مطابقة لبحثك")
	assert.Contains(t, body, "عرض الكل")
}

func TestEditorPageWithDialogs(t *testing.T) {
	rn, err := New()
	require.NoError(t, err)

	page := models.Page{ID: "p1", Title: "Trip", Content: "## Day 1"}
	data := browserData(models.LocaleEnglish)
	data.State.View = planner.ViewEditor
	data.State.ActivePageID = page.ID
	data.State.Pending = &planner.Confirmation{Kind: planner.ConfirmDeletePage, PageID: "p1", Message: "Are you sure?"}
	data.State.UpgradePromptOpen = true
	data.ActivePage = &page
	data.PreviewHTML = "<h2>Day 1</h2>"
	data.AIProvider = "gemini"

	rec := httptest.NewRecorder()
	rn.Page(rec, httptest.NewRequest(http.MethodGet, "/", nil), "editor", data)

	body := rec.Body.String()
	assert.Contains(t, body, `value="Trip"`)
	assert.Contains(t, body, "<h2>Day 1</h2>")
	assert.Contains(t, body, "Are you sure?")
	assert.Contains(t, body, "Upgrade Free")
	assert.Contains(t, body, "gemini")
	assert.Contains(t, body, `data-editor data-error="Could not save changes"`)
	assert.Contains(t, body, `data-busy="Thinking..." data-error="Error connecting to AI"`)
}

func TestPageIgnoresFragmentHeader(t *testing.T) {
	rn, err := New()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	rn.Page(rec, req, "browser", browserData(models.LocaleEnglish))

	body := rec.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "Choose a template to start")
}

func TestMissingTemplate(t *testing.T) {
	rn, err := New()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	rn.Page(rec, httptest.NewRequest(http.MethodGet, "/", nil), "nope", &ViewData{})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestChrome(t *testing.T) {
	c := NewChrome(true)
	assert.True(t, c.PrefersDarkMode())
	assert.Equal(t, "rtl", c.State().Dir)

	c.ApplyDirection(models.LocaleEnglish)
	c.ApplyTheme(true)
	assert.Equal(t, ChromeState{Lang: models.LocaleEnglish, Dir: "ltr", ThemeClass: "dark"}, c.State())

	c.ApplyTheme(false)
	assert.Empty(t, c.State().ThemeClass)
}
