// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"globalplanner/internal/models"
)

// DefaultTimeout bounds a single generation when none is configured.
const DefaultTimeout = 45 * time.Second

var (
	// ErrCredentialMissing means no AI provider is configured. It is returned
	// before any network attempt.
	ErrCredentialMissing = errors.New("ai: credential missing")
	// ErrGenerationFailed wraps any transport or service failure, including
	// an empty response.
	ErrGenerationFailed = errors.New("ai: generation failed")
)

// Assistant turns a planning topic into Markdown plan content.
type Assistant struct {
	registry *Registry
	timeout  time.Duration
}

// NewAssistant returns an assistant over reg. A non-positive timeout uses
// DefaultTimeout.
func NewAssistant(reg *Registry, timeout time.Duration) *Assistant {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Assistant{registry: reg, timeout: timeout}
}

// Available reports whether a provider is configured.
func (a *Assistant) Available() bool {
	if a == nil || a.registry == nil {
		return false
	}
	_, err := a.registry.Active()
	return err == nil
}

// ProviderName returns the active provider name, or "" when none is usable.
func (a *Assistant) ProviderName() string {
	if !a.Available() {
		return ""
	}
	return a.registry.ActiveName()
}

// Providers returns the configured provider names, sorted.
func (a *Assistant) Providers() []string {
	if a == nil || a.registry == nil {
		return []string{}
	}
	return a.registry.Available()
}

// UseProvider makes name the active provider for later generations.
func (a *Assistant) UseProvider(name string) error {
	if a == nil || a.registry == nil || !a.registry.HasProvider(name) {
		return fmt.Errorf("%w for %q", ErrNoProvider, name)
	}
	if err := a.registry.SetActive(name); err != nil {
		return err
	}
	slog.Info("ai provider switched", "provider", name)
	return nil
}

// Generate drafts a plan for topic. categoryHint names the kind of plan
// ("General" when empty) and lang selects the language of the instruction
// and of the expected output.
func (a *Assistant) Generate(ctx context.Context, topic, categoryHint string, lang models.Locale) (string, error) {
	if !a.Available() {
		return "", ErrCredentialMissing
	}

	system, user := Prompt(topic, categoryHint, lang)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	out, err := a.registry.Generate(ctx, system, user)
	if err != nil {
		slog.Warn("ai generation failed",
			"provider", a.registry.ActiveName(),
			"duration", time.Since(start),
			"error", err,
		)
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}

	slog.Info("ai generation complete",
		"provider", a.registry.ActiveName(),
		"duration", time.Since(start),
		"chars", len(out),
	)
	return out, nil
}

// Prompt composes the system and user prompts for a plan request.
func Prompt(topic, categoryHint string, lang models.Locale) (system, user string) {
	if categoryHint == "" {
		categoryHint = "General"
	}

	if lang == models.LocaleEnglish {
		system = strings.Join([]string{
			"You are a smart planning assistant. Create a detailed, well-organised plan in Markdown format.",
			"Please use:",
			"- Clear headings (##).",
			"- Bullet lists (-).",
			"- Checkboxes for tasks (- [ ]).",
			"- Tables where useful.",
			"- Clear, encouraging English.",
			"- No introduction or closing remarks outside the plan content.",
		}, "\n")
		user = fmt.Sprintf("Topic: %q.\nRequested plan type: %s.", topic, categoryHint)
		return system, user
	}

	system = strings.Join([]string{
		"أنت مساعد تخطيط ذكي. قم بإنشاء خطة تفصيلية ومنظمة بتنسيق Markdown.",
		"الرجاء استخدام:",
		"- عناوين واضحة (##).",
		"- قوائم نقاط (-).",
		"- مربعات اختيار للمهام (- [ ]).",
		"- جداول إذا لزم الأمر.",
		"- اجعل اللغة عربية فصحى واضحة ومشجعة.",
		"- لا تضف أي مقدمات أو خاتمات خارج محتوى الخطة.",
	}, "\n")
	user = fmt.Sprintf("الموضوع: %q.\nنوع التخطيط المطلوب: %s.", topic, categoryHint)
	return system, user
}
