// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package planner is the application state controller. It owns the single
// workspace state, exposes every user operation as a method, persists the
// documents that an operation changed and raises notifications.
package planner

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"globalplanner/internal/catalog"
	"globalplanner/internal/i18n"
	"globalplanner/internal/models"
	"globalplanner/internal/store"
)

var (
	ErrTemplateNotFound     = errors.New("planner: template not found")
	ErrPageNotFound         = errors.New("planner: page not found")
	ErrPremiumRequired      = errors.New("planner: premium membership required")
	ErrUnknownCategory      = errors.New("planner: unknown category")
	ErrEmptyTopic           = errors.New("planner: generation topic is empty")
	ErrGenerationInProgress = errors.New("planner: a generation is already in progress")
)

// Persister loads and saves the workspace documents.
type Persister interface {
	Load(ctx context.Context) store.Snapshot
	SavePages(ctx context.Context, pages []models.Page)
	SaveSettings(ctx context.Context, settings models.Settings) bool
}

// Notifier is the transient notification queue.
type Notifier interface {
	Push(message string, severity models.Severity) string
	Dismiss(id string) bool
	List() []models.Notification
}

// Generator drafts plan content for a topic.
type Generator interface {
	Generate(ctx context.Context, topic, categoryHint string, lang models.Locale) (string, error)
}

// Environment receives the presentation side effects of a settings change.
type Environment interface {
	ApplyDirection(lang models.Locale)
	ApplyTheme(dark bool)
	PrefersDarkMode() bool
}

// Options wires a Controller. Catalog, Store and Notifier are required.
type Options struct {
	Catalog   *catalog.Catalog
	Store     Persister
	Notifier  Notifier
	Generator Generator
	Env       Environment

	DefaultLanguage models.Locale
	SidebarOpen     bool

	// Now and NewID default to time.Now and uuid.NewString.
	Now   func() time.Time
	NewID func() string
}

// Controller serialises all operations on the workspace. Each operation
// builds the next state and swaps it in with a single assignment.
type Controller struct {
	mu         sync.Mutex
	state      State
	generating atomic.Bool

	catalog   *catalog.Catalog
	store     Persister
	notifier  Notifier
	generator Generator
	env       Environment
	now       func() time.Time
	newID     func() string
}

// New loads the persisted documents and returns a ready controller. Absent
// documents fall back to an empty page list and first-run settings.
func New(ctx context.Context, opts Options) *Controller {
	c := &Controller{
		catalog:   opts.Catalog,
		store:     opts.Store,
		notifier:  opts.Notifier,
		generator: opts.Generator,
		env:       opts.Env,
		now:       opts.Now,
		newID:     opts.NewID,
	}
	if c.env == nil {
		c.env = nopEnvironment{}
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}

	snap := c.store.Load(ctx)

	settings := models.DefaultSettings(c.env.PrefersDarkMode(), opts.DefaultLanguage)
	if snap.Settings != nil {
		settings = *snap.Settings
	}
	pages := snap.Pages
	if pages == nil {
		pages = []models.Page{}
	}

	c.state = State{
		Pages:            pages,
		Settings:         settings,
		View:             ViewTemplates,
		SelectedCategory: models.CategoryAll,
		SidebarOpen:      opts.SidebarOpen,
	}

	c.env.ApplyDirection(settings.Language)
	c.env.ApplyTheme(settings.DarkMode)

	slog.Info("workspace loaded",
		"pages", len(pages),
		"language", settings.Language,
		"pro", settings.IsPro,
	)
	return c
}

// State returns a snapshot of the workspace.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Messages returns the strings for the current language.
func (c *Controller) Messages() i18n.Messages {
	c.mu.Lock()
	defer c.mu.Unlock()
	return i18n.For(c.state.Settings.Language)
}

// Catalog returns the template catalog.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// commit installs next and persists whichever documents changed. Callers
// hold c.mu.
func (c *Controller) commit(ctx context.Context, next State, pagesChanged, settingsChanged bool) {
	c.state = next

	if pagesChanged {
		c.store.SavePages(ctx, next.Pages)
	}
	if settingsChanged && c.store.SaveSettings(ctx, next.Settings) {
		c.env.ApplyDirection(next.Settings.Language)
		c.env.ApplyTheme(next.Settings.DarkMode)
	}
}

func (c *Controller) msgs() i18n.Messages {
	return i18n.For(c.state.Settings.Language)
}

func (c *Controller) nowMillis() int64 {
	return c.now().UnixMilli()
}

// SelectTemplate instantiates a template as a new page and opens it in the
// editor. A premium template without a premium membership only raises a
// warning and opens the upgrade prompt.
func (c *Controller) SelectTemplate(ctx context.Context, templateID string) (models.Page, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tmpl, ok := c.catalog.Find(templateID)
	if !ok {
		return models.Page{}, ErrTemplateNotFound
	}

	next := c.state.clone()

	if tmpl.IsPremium && !next.Settings.IsPro {
		c.notifier.Push(c.msgs().PremiumOnly, models.SeverityWarning)
		next.UpgradePromptOpen = true
		c.commit(ctx, next, false, false)
		return models.Page{}, ErrPremiumRequired
	}

	lang := next.Settings.Language
	now := c.nowMillis()
	page := models.Page{
		ID:         c.newID(),
		Title:      tmpl.LocalizedName(lang),
		Content:    tmpl.LocalizedContent(lang),
		Category:   tmpl.Category,
		CreatedAt:  now,
		UpdatedAt:  now,
		TemplateID: tmpl.ID,
	}

	next.Pages = append([]models.Page{page}, next.Pages...)
	next.ActivePageID = page.ID
	next.View = ViewEditor
	c.commit(ctx, next, true, false)

	slog.Info("page created", "page_id", page.ID, "template_id", tmpl.ID)
	return page, nil
}

// SavePage rewrites the title and content of the active page. Without an
// active page it does nothing and reports false.
func (c *Controller) SavePage(ctx context.Context, title, content string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := models.FindPage(c.state.Pages, c.state.ActivePageID)
	if c.state.ActivePageID == "" || i < 0 {
		return false
	}

	next := c.state.clone()
	next.Pages[i].Title = title
	next.Pages[i].Content = content
	next.Pages[i].UpdatedAt = c.nowMillis()
	c.commit(ctx, next, true, false)

	c.notifier.Push(c.msgs().Saved, models.SeveritySuccess)
	return true
}

// RequestDeletePage asks for confirmation before deleting a page. It
// replaces any confirmation already pending.
func (c *Controller) RequestDeletePage(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if models.FindPage(c.state.Pages, id) < 0 {
		return ErrPageNotFound
	}

	next := c.state.clone()
	next.Pending = &Confirmation{
		Kind:    ConfirmDeletePage,
		PageID:  id,
		Message: c.msgs().ConfirmDelete,
	}
	c.state = next
	return nil
}

// RequestLanguageToggle asks for confirmation before switching language.
func (c *Controller) RequestLanguageToggle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.clone()
	next.Pending = &Confirmation{
		Kind:    ConfirmToggleLanguage,
		Message: c.msgs().ConfirmLanguage,
	}
	c.state = next
}

// Confirm executes the pending confirmation and reports whether there was
// one. Confirming a delete whose page no longer exists changes nothing.
func (c *Controller) Confirm(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	pending := c.state.Pending
	if pending == nil {
		return false
	}

	next := c.state.clone()
	next.Pending = nil

	switch pending.Kind {
	case ConfirmDeletePage:
		i := models.FindPage(next.Pages, pending.PageID)
		if i < 0 {
			c.commit(ctx, next, false, false)
			return true
		}
		next.Pages = append(next.Pages[:i], next.Pages[i+1:]...)
		if next.ActivePageID == pending.PageID {
			next.ActivePageID = ""
			next.View = ViewTemplates
		}
		c.commit(ctx, next, true, false)
		c.notifier.Push(c.msgs().Deleted, models.SeverityInfo)
		slog.Info("page deleted", "page_id", pending.PageID)

	case ConfirmToggleLanguage:
		next.Settings.Language = next.Settings.Language.Toggle()
		c.commit(ctx, next, false, true)
		slog.Info("language changed", "language", next.Settings.Language)
	}

	return true
}

// Cancel drops the pending confirmation, if any.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Pending == nil {
		return
	}
	next := c.state.clone()
	next.Pending = nil
	c.state = next
}

// Upgrade activates the premium membership. It cannot be reverted.
func (c *Controller) Upgrade(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.clone()
	changed := !next.Settings.IsPro
	next.Settings.IsPro = true
	next.UpgradePromptOpen = false
	c.commit(ctx, next, false, changed)

	c.notifier.Push(c.msgs().Upgraded, models.SeveritySuccess)
}

// OpenUpgradePrompt shows the upgrade dialog.
func (c *Controller) OpenUpgradePrompt() {
	c.setFlag(func(s *State) { s.UpgradePromptOpen = true })
}

// DismissUpgradePrompt hides the upgrade dialog.
func (c *Controller) DismissUpgradePrompt() {
	c.setFlag(func(s *State) { s.UpgradePromptOpen = false })
}

// ToggleSidebar opens or closes the sidebar.
func (c *Controller) ToggleSidebar() {
	c.setFlag(func(s *State) { s.SidebarOpen = !s.SidebarOpen })
}

// NewPage returns to the template browser with no active page.
func (c *Controller) NewPage() {
	c.setFlag(func(s *State) {
		s.View = ViewTemplates
		s.ActivePageID = ""
	})
}

// CloseEditor leaves the editor. Unsaved edits are the caller's concern.
func (c *Controller) CloseEditor() {
	c.NewPage()
}

// OpenPage shows an existing page in the editor.
func (c *Controller) OpenPage(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if models.FindPage(c.state.Pages, id) < 0 {
		return ErrPageNotFound
	}
	next := c.state.clone()
	next.View = ViewEditor
	next.ActivePageID = id
	c.state = next
	return nil
}

// ToggleDarkMode flips the theme immediately.
func (c *Controller) ToggleDarkMode(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.clone()
	next.Settings.DarkMode = !next.Settings.DarkMode
	c.commit(ctx, next, false, true)

	c.notifier.Push(c.msgs().ModeChanged(next.Settings.DarkMode), models.SeverityInfo)
}

// SetSearchQuery sets the template search text.
func (c *Controller) SetSearchQuery(q string) {
	c.setFlag(func(s *State) { s.SearchQuery = q })
}

// SetSelectedCategory selects a catalog category or "all".
func (c *Controller) SetSelectedCategory(id string) error {
	if !c.catalog.HasCategory(id) {
		return ErrUnknownCategory
	}
	c.setFlag(func(s *State) { s.SelectedCategory = id })
	return nil
}

// ResetFilters clears the search and selects every category.
func (c *Controller) ResetFilters() {
	c.setFlag(func(s *State) {
		s.SearchQuery = ""
		s.SelectedCategory = models.CategoryAll
	})
}

// FilteredTemplates returns the catalog templates matching the current
// category and search query.
func (c *Controller) FilteredTemplates() []models.Template {
	c.mu.Lock()
	category, query := c.state.SelectedCategory, c.state.SearchQuery
	c.mu.Unlock()

	return c.catalog.Filter(category, query)
}

// Notifications returns the live notifications.
func (c *Controller) Notifications() []models.Notification {
	return c.notifier.List()
}

// DismissNotification removes a notification early.
func (c *Controller) DismissNotification(id string) bool {
	return c.notifier.Dismiss(id)
}

// setFlag applies a session-only change.
func (c *Controller) setFlag(fn func(*State)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.clone()
	fn(&next)
	c.state = next
}

type nopEnvironment struct{}

func (nopEnvironment) ApplyDirection(models.Locale) {}
func (nopEnvironment) ApplyTheme(bool)              {}
func (nopEnvironment) PrefersDarkMode() bool        { return false }
