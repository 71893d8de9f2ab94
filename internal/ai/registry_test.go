// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProvider records calls and returns a configured response.
type mockProvider struct {
	name       string
	response   string
	err        error
	mu         sync.Mutex
	callCount  int
	lastSystem string
	lastUser   string
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	m.lastSystem = systemPrompt
	m.lastUser = userPrompt
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.response, m.err
}

func (m *mockProvider) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

func TestNewRegistrySkipsProvidersWithoutKeys(t *testing.T) {
	reg := NewRegistry("gemini", map[string]ProviderConfig{
		"gemini":  {APIKey: "g"},
		"openai":  {},
		"claude":  {APIKey: "c"},
		"unknown": {APIKey: "x"},
	})

	assert.Equal(t, []string{"claude", "gemini"}, reg.Available())
	assert.True(t, reg.HasProvider("gemini"))
	assert.False(t, reg.HasProvider("openai"))
	assert.Equal(t, "gemini", reg.ActiveName())
}

func TestRegistryGenerate(t *testing.T) {
	mock := &mockProvider{name: "test", response: "hello"}
	reg := NewRegistry("test", nil)
	reg.Register("test", mock)

	out, err := reg.Generate(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.Equal(t, "system", mock.lastSystem)
	assert.Equal(t, "user", mock.lastUser)
}

func TestRegistryNoProvider(t *testing.T) {
	reg := NewRegistry("gemini", nil)

	_, err := reg.Generate(context.Background(), "s", "u")
	assert.ErrorIs(t, err, ErrNoProvider)

	_, err = reg.Active()
	assert.ErrorIs(t, err, ErrNoProvider)
}

func TestRegistrySetActive(t *testing.T) {
	reg := NewRegistry("a", nil)
	reg.Register("a", &mockProvider{name: "a"})
	reg.Register("b", &mockProvider{name: "b"})

	require.NoError(t, reg.SetActive("b"))
	assert.Equal(t, "b", reg.ActiveName())

	assert.ErrorIs(t, reg.SetActive("missing"), ErrNoProvider)
	assert.Equal(t, "b", reg.ActiveName())
}
