// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the planner's domain types: catalog templates and
// categories, pages, settings and notifications.
package models

import "time"

// Page is a user document instantiated from a Template. Timestamps are Unix
// epoch milliseconds so stored documents stay compatible with the browser
// version of the planner.
type Page struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	CreatedAt  int64  `json:"createdAt"`
	UpdatedAt  int64  `json:"updatedAt"`
	TemplateID string `json:"templateId"`
}

// Created returns CreatedAt as a time.Time.
func (p Page) Created() time.Time {
	return time.UnixMilli(p.CreatedAt)
}

// Updated returns UpdatedAt as a time.Time.
func (p Page) Updated() time.Time {
	return time.UnixMilli(p.UpdatedAt)
}

// FindPage returns the index of the page with the given id, or -1.
func FindPage(pages []Page, id string) int {
	for i := range pages {
		if pages[i].ID == id {
			return i
		}
	}
	return -1
}
