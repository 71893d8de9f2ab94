// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render draws the template browser and the page editor from a
// workspace snapshot, and tracks the document chrome (text direction,
// language and theme) that settings changes are applied to.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"globalplanner/internal/i18n"
	"globalplanner/internal/models"
	"globalplanner/internal/planner"
)

//go:embed templates/*.html
var templateFS embed.FS

// ViewData holds everything the views need.
type ViewData struct {
	Chrome        ChromeState
	T             i18n.Messages
	State         planner.State
	Categories    []models.Category
	Templates     []models.Template
	TemplateCount int
	ActivePage    *models.Page
	PreviewHTML   template.HTML
	Notifications []models.Notification
	AIProvider    string
}

// Lang is the current language.
func (d *ViewData) Lang() models.Locale {
	return d.State.Settings.Language
}

// Renderer parses the views once and executes them per request.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// views are the page templates, each paired with base.html.
var views = []string{"browser", "editor"}

// New parses every view from the embedded filesystem.
func New() (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"templateName": func(t models.Template, l models.Locale) string {
				return t.LocalizedName(l)
			},
			"templateDesc": func(t models.Template, l models.Locale) string {
				return t.LocalizedDescription(l)
			},
			"categoryName": func(c models.Category, l models.Locale) string {
				return c.LocalizedName(l)
			},
			"pageTitle": func(p models.Page, untitled string) string {
				if strings.TrimSpace(p.Title) == "" {
					return untitled
				}
				return p.Title
			},
			"millis": func(ms int64) string {
				return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04")
			},
			"countf": func(format string, n int) string {
				return fmt.Sprintf(format, n)
			},
			"activeClass": func(current, target string) string {
				if current == target {
					return "active"
				}
				return ""
			},
		},
	}

	for _, name := range views {
		tmpl, err := template.New("base.html").Funcs(r.funcMap).ParseFS(
			templateFS, "templates/base.html", "templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

// Page renders a full page.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *ViewData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := executeTemplate(w, tmpl, "base.html", data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}
