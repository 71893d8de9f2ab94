// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for the workspace
// handler tests. Everything runs in memory; the AI provider is mocked.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"globalplanner/internal/ai"
	"globalplanner/internal/catalog"
	"globalplanner/internal/models"
	"globalplanner/internal/notify"
	"globalplanner/internal/planner"
	"globalplanner/internal/render"
	"globalplanner/internal/store"
)

// mockAIProvider implements ai.Provider for handler tests. When block is
// set, Generate waits for it to close.
type mockAIProvider struct {
	mu       sync.Mutex
	response string
	err      error
	block    chan struct{}
	calls    int
}

func (m *mockAIProvider) Name() string { return "test" }

func (m *mockAIProvider) Generate(ctx context.Context, _, _ string) (string, error) {
	m.mu.Lock()
	m.calls++
	block := m.block
	resp, err := m.response, m.err
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return resp, err
}

// testEnv bundles a workspace with the collaborators tests inspect.
type testEnv struct {
	Backend   *store.MemoryBackend
	Store     *store.Store
	Queue     *notify.Queue
	Chrome    *render.Chrome
	Provider  *mockAIProvider
	Ctrl      *planner.Controller
	Workspace *Workspace
}

// newTestEnv creates an English workspace over an in-memory backend. With
// withAI false the assistant has no provider.
func newTestEnv(t *testing.T, withAI bool) *testEnv {
	t.Helper()

	renderer, err := render.New()
	require.NoError(t, err)

	backend := store.NewMemoryBackend()
	st := store.New(backend)
	queue := notify.New(time.Minute)
	chrome := render.NewChrome(false)

	provider := &mockAIProvider{response: "## Plan\n\n- step one"}
	reg := ai.NewRegistry("test", nil)
	if withAI {
		reg.Register("test", provider)
	}
	assistant := ai.NewAssistant(reg, time.Second)

	ctrl := planner.New(context.Background(), planner.Options{
		Catalog:         catalog.Default(),
		Store:           st,
		Notifier:        queue,
		Generator:       assistant,
		Env:             chrome,
		DefaultLanguage: models.LocaleEnglish,
	})

	return &testEnv{
		Backend:   backend,
		Store:     st,
		Queue:     queue,
		Chrome:    chrome,
		Provider:  provider,
		Ctrl:      ctrl,
		Workspace: NewWorkspace(ctrl, renderer, chrome, assistant),
	}
}

// serve runs handler with optional chi URL params and a JSON body.
func serve(handler http.HandlerFunc, method, body string, params map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/api/test", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, "/api/test", nil)
	}

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

// decode unmarshals a response body.
func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

// stateBody mirrors stateResponse for decoding.
type stateBody struct {
	State         planner.State         `json:"state"`
	Templates     []models.Template     `json:"templates"`
	Notifications []models.Notification `json:"notifications"`
}
