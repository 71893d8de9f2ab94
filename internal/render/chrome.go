// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"sync"

	"globalplanner/internal/models"
)

// ChromeState is the document-level presentation derived from settings.
type ChromeState struct {
	Lang       models.Locale
	Dir        string
	ThemeClass string
}

// Chrome receives settings side effects and reports the host colour-scheme
// preference. It is safe for concurrent use.
type Chrome struct {
	mu          sync.RWMutex
	state       ChromeState
	prefersDark bool
}

// NewChrome returns chrome for a host that prefers a dark theme or not.
func NewChrome(prefersDark bool) *Chrome {
	return &Chrome{
		prefersDark: prefersDark,
		state: ChromeState{
			Lang: models.DefaultLocale,
			Dir:  models.DefaultLocale.Direction(),
		},
	}
}

// ApplyDirection sets the language and text direction.
func (c *Chrome) ApplyDirection(lang models.Locale) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Lang = lang
	c.state.Dir = lang.Direction()
}

// ApplyTheme sets the root theme class.
func (c *Chrome) ApplyTheme(dark bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if dark {
		c.state.ThemeClass = "dark"
	} else {
		c.state.ThemeClass = ""
	}
}

// PrefersDarkMode reports the host preference used for first-run settings.
func (c *Chrome) PrefersDarkMode() bool {
	return c.prefersDark
}

// State returns the current chrome.
func (c *Chrome) State() ChromeState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}
