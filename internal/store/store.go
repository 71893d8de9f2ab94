// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists the two planner documents, the page list and the
// settings, as JSON values in a key/value Backend. Loading is best effort
// and saving is fire-and-forget: neither ever fails the caller.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"globalplanner/internal/models"
)

// Document keys.
const (
	PagesKey    = "global_planner_pages"
	SettingsKey = "global_planner_settings"
)

// ErrNotFound is returned by a Backend when the key has no value.
var ErrNotFound = errors.New("store: document not found")

// Backend is a durable key/value document store.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Name() string
}

// Snapshot is the result of Load. A nil field means the document was
// absent, unreadable, or corrupt.
type Snapshot struct {
	Pages    []models.Page
	Settings *models.Settings
}

// Store reads and writes the planner documents through a Backend.
type Store struct {
	backend Backend
}

// New returns a Store backed by b.
func New(b Backend) *Store {
	return &Store{backend: b}
}

// Backend returns the underlying backend.
func (s *Store) Backend() Backend {
	return s.backend
}

// Load reads both documents independently. Failures are logged and the
// affected document is reported as absent.
func (s *Store) Load(ctx context.Context) Snapshot {
	var snap Snapshot

	var pages []models.Page
	if s.read(ctx, PagesKey, &pages) {
		snap.Pages = dedupePages(pages)
	}

	var settings models.Settings
	if s.read(ctx, SettingsKey, &settings) {
		settings = settings.Normalize()
		snap.Settings = &settings
	}

	return snap
}

// SavePages writes the page list. Errors are logged and dropped.
func (s *Store) SavePages(ctx context.Context, pages []models.Page) {
	if pages == nil {
		pages = []models.Page{}
	}
	s.write(ctx, PagesKey, pages)
}

// SaveSettings writes the settings and reports whether the write succeeded.
func (s *Store) SaveSettings(ctx context.Context, settings models.Settings) bool {
	return s.write(ctx, SettingsKey, settings)
}

func (s *Store) read(ctx context.Context, key string, v any) bool {
	data, err := s.backend.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		slog.Debug("store document absent", "key", key, "backend", s.backend.Name())
		return false
	}
	if err != nil {
		slog.Warn("store read failed", "key", key, "backend", s.backend.Name(), "error", err)
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("store document corrupt", "key", key, "backend", s.backend.Name(), "error", err)
		return false
	}
	return true
}

func (s *Store) write(ctx context.Context, key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("store encode failed", "key", key, "error", err)
		return false
	}
	if err := s.backend.Put(ctx, key, data); err != nil {
		slog.Warn("store write failed", "key", key, "backend", s.backend.Name(), "error", err)
		return false
	}
	return true
}

// dedupePages drops later pages whose id was already seen.
func dedupePages(pages []models.Page) []models.Page {
	seen := make(map[string]bool, len(pages))
	out := make([]models.Page, 0, len(pages))
	for _, p := range pages {
		if seen[p.ID] {
			slog.Warn("store dropped duplicate page", "id", p.ID)
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}
