// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog holds the immutable template catalog and the filtering
// used by the template browser. The default catalog is generated from the
// category list in catalog.yaml, embedded at compile time.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"globalplanner/internal/models"
)

//go:embed catalog.yaml
var definitionYAML []byte

var (
	// ErrDuplicateTemplate is returned when two templates share an id.
	ErrDuplicateTemplate = errors.New("catalog: duplicate template id")
	// ErrDuplicateCategory is returned when two categories share an id.
	ErrDuplicateCategory = errors.New("catalog: duplicate category id")
	// ErrUnknownCategory is returned when a template references a category
	// that is not part of the catalog.
	ErrUnknownCategory = errors.New("catalog: unknown category")
)

// definition mirrors catalog.yaml.
type definition struct {
	FreePerCategory    int               `yaml:"free_per_category"`
	PremiumPerCategory int               `yaml:"premium_per_category"`
	Categories         []models.Category `yaml:"categories"`
}

// Catalog is an immutable, ordered set of templates and their categories.
// All methods are safe for concurrent use.
type Catalog struct {
	categories []models.Category
	templates  []models.Template
	byID       map[string]int
	byCategory map[string]bool
}

// New builds a catalog from explicit categories and templates. Ids must be
// unique within each collection and every template must belong to one of
// the given categories.
func New(categories []models.Category, templates []models.Template) (*Catalog, error) {
	c := &Catalog{
		categories: append([]models.Category(nil), categories...),
		templates:  append([]models.Template(nil), templates...),
		byID:       make(map[string]int, len(templates)),
		byCategory: make(map[string]bool, len(categories)),
	}

	for _, cat := range categories {
		if c.byCategory[cat.ID] || cat.ID == models.CategoryAll {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, cat.ID)
		}
		c.byCategory[cat.ID] = true
	}

	for i, t := range templates {
		if _, ok := c.byID[t.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTemplate, t.ID)
		}
		if !c.byCategory[t.Category] {
			return nil, fmt.Errorf("%w: template %q has category %q", ErrUnknownCategory, t.ID, t.Category)
		}
		c.byID[t.ID] = i
	}

	return c, nil
}

// Parse builds a catalog from a YAML category definition, generating the
// free and premium templates of every category.
func Parse(data []byte) (*Catalog, error) {
	var def definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("catalog parse: %w", err)
	}

	var templates []models.Template
	for _, cat := range def.Categories {
		for i := 1; i <= def.FreePerCategory; i++ {
			templates = append(templates, freeTemplate(cat, i))
		}
		for i := 1; i <= def.PremiumPerCategory; i++ {
			templates = append(templates, premiumTemplate(cat, i))
		}
	}

	return New(def.Categories, templates)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. It panics if the embedded definition
// is invalid, which is a build defect rather than a runtime condition.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(definitionYAML)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Templates returns every template in catalog order.
func (c *Catalog) Templates() []models.Template {
	return append([]models.Template(nil), c.templates...)
}

// Categories returns the categories in catalog order.
func (c *Catalog) Categories() []models.Category {
	return append([]models.Category(nil), c.categories...)
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}

// Find returns the template with the given id.
func (c *Catalog) Find(id string) (models.Template, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Template{}, false
	}
	return c.templates[i], true
}

// HasCategory reports whether id is a catalog category or the "all" pseudo
// category.
func (c *Catalog) HasCategory(id string) bool {
	return id == models.CategoryAll || c.byCategory[id]
}

// Category returns the category with the given id.
func (c *Catalog) Category(id string) (models.Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return models.Category{}, false
}

// Filter returns the catalog templates matching category and query.
func (c *Catalog) Filter(category, query string) []models.Template {
	return Filter(c.templates, category, query)
}

// Filter keeps the templates whose category equals category (or any when
// category is "all") and whose Arabic or English name contains query,
// compared case-insensitively. The result preserves input order.
func Filter(templates []models.Template, category, query string) []models.Template {
	q := strings.ToLower(query)
	out := make([]models.Template, 0, len(templates))
	for _, t := range templates {
		if category != models.CategoryAll && t.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(t.Name), q) &&
			!strings.Contains(strings.ToLower(t.NameEn), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func freeTemplate(cat models.Category, i int) models.Template {
	id := fmt.Sprintf("%s-free-%d", cat.ID, i)
	return models.Template{
		ID:               id,
		Category:         cat.ID,
		Name:             fmt.Sprintf("%s - نموذج أساسي %d", cat.Name, i),
		NameEn:           fmt.Sprintf("%s - Basic Template %d", cat.NameEn, i),
		Description:      fmt.Sprintf("قالب مجاني لتنظيم الـ %s بشكل بسيط وفعال.", cat.Name),
		DescriptionEn:    fmt.Sprintf("Free template to organize your %s simply and effectively.", cat.NameEn),
		Icon:             "file-text",
		Rating:           "4.5",
		Downloads:        downloads(id, 50),
		InitialContent:   fmt.Sprintf("# %s - نموذج %d\n\n- [ ] مهمة 1\n- [ ] مهمة 2\n\nملاحظات:\n", cat.Name, i),
		InitialContentEn: fmt.Sprintf("# %s - Template %d\n\n- [ ] Task 1\n- [ ] Task 2\n\nNotes:\n", cat.NameEn, i),
	}
}

func premiumTemplate(cat models.Category, i int) models.Template {
	id := fmt.Sprintf("%s-pro-%d", cat.ID, i)
	return models.Template{
		ID:            id,
		Category:      cat.ID,
		Name:          fmt.Sprintf("%s - نموذج احترافي %d", cat.Name, i),
		NameEn:        fmt.Sprintf("%s - Pro Template %d", cat.NameEn, i),
		Description:   "قالب متقدم للأعضاء المميزين مع تحليل ومتابعة دقيقة.",
		DescriptionEn: "Advanced template for premium members with detailed tracking.",
		Icon:          "star",
		IsPremium:     true,
		Rating:        "5.0",
		Downloads:     downloads(id, 10),
		InitialContent: fmt.Sprintf("# 💎 %s احترافي\n\n## الأهداف الرئيسية\n1. \n2. \n\n"+
			"## الجدول الزمني\n| الوقت | النشاط |\n|-------|--------|\n| 09:00 | |\n\n## التقييم\n", cat.Name),
		InitialContentEn: fmt.Sprintf("# 💎 %s Professional\n\n## Main Goals\n1. \n2. \n\n"+
			"## Schedule\n| Time | Activity |\n|-------|--------|\n| 09:00 | |\n\n## Evaluation\n", cat.NameEn),
	}
}

// downloads derives a stable display count ("23K") from the template id.
func downloads(id string, limit uint32) string {
	h := fnv.New32a()
	h.Write([]byte(id))
	return fmt.Sprintf("%dK", h.Sum32()%limit)
}
