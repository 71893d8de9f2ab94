// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package planner

import (
	"slices"

	"globalplanner/internal/models"
)

// View is the screen the workspace is showing.
type View string

const (
	ViewTemplates View = "templates"
	ViewEditor    View = "editor"
)

// ConfirmationKind identifies the action waiting for confirmation.
type ConfirmationKind string

const (
	ConfirmDeletePage     ConfirmationKind = "delete_page"
	ConfirmToggleLanguage ConfirmationKind = "toggle_language"
)

// Confirmation is a destructive or disruptive action awaiting the user's
// answer. Message is localised when the request is made.
type Confirmation struct {
	Kind    ConfirmationKind `json:"kind"`
	PageID  string           `json:"pageId,omitempty"`
	Message string           `json:"message"`
}

// State is the complete workspace state. Pages and Settings are persisted;
// the rest lives for the process only.
type State struct {
	Pages             []models.Page   `json:"pages"`
	Settings          models.Settings `json:"settings"`
	View              View            `json:"view"`
	SelectedCategory  string          `json:"selectedCategory"`
	SearchQuery       string          `json:"searchQuery"`
	ActivePageID      string          `json:"activePageId"`
	SidebarOpen       bool            `json:"sidebarOpen"`
	UpgradePromptOpen bool            `json:"upgradePromptOpen"`
	Pending           *Confirmation   `json:"pendingConfirmation"`
	Generating        bool            `json:"generating"`
}

// ActivePage returns the page being edited, if any.
func (s State) ActivePage() (models.Page, bool) {
	if s.ActivePageID == "" {
		return models.Page{}, false
	}
	i := models.FindPage(s.Pages, s.ActivePageID)
	if i < 0 {
		return models.Page{}, false
	}
	return s.Pages[i], true
}

// clone returns a copy that shares no mutable memory with s.
func (s State) clone() State {
	c := s
	c.Pages = slices.Clone(s.Pages)
	if c.Pages == nil {
		c.Pages = []models.Page{}
	}
	if s.Pending != nil {
		p := *s.Pending
		c.Pending = &p
	}
	return c
}
