// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package planner

import (
	"context"
	"errors"
	"strings"

	"globalplanner/internal/ai"
	"globalplanner/internal/models"
)

// Divider separates existing content from appended generated content.
const Divider = "\n\n---\n\n"

// Draft is the unsaved title and content of the editor.
type Draft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Generate asks the assistant for a plan about topic and merges it into
// draft. Generated text is appended after Divider when the draft already
// has content, and an empty title becomes the localised "Plan: " prefix
// plus the topic. On failure the draft is returned unchanged together with
// the error. Only one generation runs at a time.
func (c *Controller) Generate(ctx context.Context, topic string, draft Draft) (Draft, error) {
	c.mu.Lock()
	msgs := c.msgs()
	lang := c.state.Settings.Language

	if strings.TrimSpace(topic) == "" {
		c.mu.Unlock()
		c.notifier.Push(msgs.GenerateEmpty, models.SeverityWarning)
		return draft, ErrEmptyTopic
	}

	if !c.generating.CompareAndSwap(false, true) {
		c.mu.Unlock()
		return draft, ErrGenerationInProgress
	}

	hint := ""
	if page, ok := c.state.ActivePage(); ok {
		if cat, ok := c.catalog.Category(page.Category); ok {
			hint = cat.LocalizedName(lang)
		}
	}

	next := c.state.clone()
	next.Generating = true
	c.state = next
	c.mu.Unlock()

	defer c.finishGeneration()

	if c.generator == nil {
		c.notifier.Push(msgs.CredentialMissing, models.SeverityError)
		return draft, ai.ErrCredentialMissing
	}

	generated, err := c.generator.Generate(ctx, topic, hint, lang)
	if err != nil {
		if errors.Is(err, ai.ErrCredentialMissing) {
			c.notifier.Push(msgs.CredentialMissing, models.SeverityError)
		} else {
			c.notifier.Push(msgs.GenerateError, models.SeverityError)
		}
		return draft, err
	}

	out := draft
	if out.Content != "" {
		out.Content = out.Content + Divider + generated
	} else {
		out.Content = generated
	}
	if out.Title == "" {
		out.Title = msgs.AutoTitle + topic
	}

	c.notifier.Push(msgs.GenerateSuccess, models.SeveritySuccess)
	return out, nil
}

func (c *Controller) finishGeneration() {
	c.mu.Lock()
	next := c.state.clone()
	next.Generating = false
	c.state = next
	c.mu.Unlock()

	c.generating.Store(false)
}
