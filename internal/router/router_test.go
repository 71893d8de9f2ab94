// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globalplanner/internal/catalog"
	"globalplanner/internal/handlers"
	"globalplanner/internal/middleware"
	"globalplanner/internal/models"
	"globalplanner/internal/notify"
	"globalplanner/internal/planner"
	"globalplanner/internal/render"
	"globalplanner/internal/store"
)

const testToken = "test-csrf-token"

func newTestRouter(t *testing.T, opts Options) chi.Router {
	t.Helper()

	renderer, err := render.New()
	require.NoError(t, err)
	chrome := render.NewChrome(false)

	queue := notify.New(time.Minute)
	ctrl := planner.New(context.Background(), planner.Options{
		Catalog:         catalog.Default(),
		Store:           store.New(store.NewMemoryBackend()),
		Notifier:        queue,
		Env:             chrome,
		DefaultLanguage: models.LocaleEnglish,
	})

	return New(handlers.NewWorkspace(ctrl, renderer, chrome, nil), opts)
}

// do sends a request carrying a matching CSRF cookie and header.
func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.AddCookie(&http.Cookie{Name: middleware.CSRFCookieName, Value: testToken})
	req.Header.Set(middleware.CSRFHeaderName, testToken)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealthHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	healthHandler(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestHealthSkipsCSRF(t *testing.T) {
	r := newTestRouter(t, Options{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Result().Cookies())
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
}

func TestStaticAssets(t *testing.T) {
	r := newTestRouter(t, Options{})

	for _, path := range []string{"/static/app.js", "/static/app.css"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.NotEmpty(t, rr.Body.String(), path)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHomeIssuesCSRFCookie(t *testing.T) {
	r := newTestRouter(t, Options{SecureCookies: true})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	var found bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == middleware.CSRFCookieName {
			found = true
			assert.True(t, c.Secure)
		}
	}
	assert.True(t, found)
}

func TestMutationsRequireCSRF(t *testing.T) {
	r := newTestRouter(t, Options{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/sidebar", nil))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRoutes(t *testing.T) {
	r := newTestRouter(t, Options{})

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/state", "", http.StatusOK},
		{http.MethodGet, "/api/categories", "", http.StatusOK},
		{http.MethodGet, "/api/templates", "", http.StatusOK},
		{http.MethodPut, "/api/filters", `{"category":"daily"}`, http.StatusOK},
		{http.MethodPost, "/api/filters/reset", "", http.StatusOK},
		{http.MethodPost, "/api/templates/daily-free-1/select", "", http.StatusCreated},
		{http.MethodPost, "/api/templates/nope/select", "", http.StatusNotFound},
		{http.MethodGet, "/api/pages", "", http.StatusOK},
		{http.MethodGet, "/api/pages/missing", "", http.StatusNotFound},
		{http.MethodGet, "/api/pages/missing/preview", "", http.StatusNotFound},
		{http.MethodGet, "/api/pages/missing/export", "", http.StatusNotFound},
		{http.MethodPost, "/api/pages/missing/open", "", http.StatusNotFound},
		{http.MethodDelete, "/api/pages/missing", "", http.StatusNotFound},
		{http.MethodPut, "/api/editor", `{"title":"t","content":"c"}`, http.StatusOK},
		{http.MethodPost, "/api/editor/close", "", http.StatusOK},
		{http.MethodPost, "/api/editor/generate", `{"topic":"trip"}`, http.StatusServiceUnavailable},
		{http.MethodPost, "/api/pages/new", "", http.StatusOK},
		{http.MethodGet, "/api/ai", "", http.StatusOK},
		{http.MethodPut, "/api/ai/provider", `{"provider":"gemini"}`, http.StatusUnprocessableEntity},
		{http.MethodPost, "/api/confirmation", "", http.StatusOK},
		{http.MethodDelete, "/api/confirmation", "", http.StatusOK},
		{http.MethodPost, "/api/settings/upgrade-prompt", "", http.StatusOK},
		{http.MethodDelete, "/api/settings/upgrade-prompt", "", http.StatusOK},
		{http.MethodPost, "/api/settings/upgrade", "", http.StatusOK},
		{http.MethodPost, "/api/settings/language", "", http.StatusAccepted},
		{http.MethodPost, "/api/settings/dark-mode", "", http.StatusOK},
		{http.MethodPost, "/api/sidebar", "", http.StatusOK},
		{http.MethodGet, "/api/notifications", "", http.StatusOK},
		{http.MethodDelete, "/api/notifications/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := do(r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, rr.Code, rr.Body.String())
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	r := newTestRouter(t, Options{})

	rr := do(r, http.MethodPatch, "/api/state", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestGenerateRateLimited(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, time.Minute)
	t.Cleanup(limiter.Stop)
	r := newTestRouter(t, Options{GenerateLimiter: limiter})

	first := do(r, http.MethodPost, "/api/editor/generate", `{"topic":"trip"}`)
	assert.Equal(t, http.StatusServiceUnavailable, first.Code)

	second := do(r, http.MethodPost, "/api/editor/generate", `{"topic":"trip"}`)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// Other editor routes are not limited.
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/editor/close", "").Code)
}
