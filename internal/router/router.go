// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chains for the
// planner: the server-rendered view, static assets and the JSON API.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"globalplanner/internal/handlers"
	"globalplanner/internal/middleware"
	"globalplanner/web"
)

// Options tunes the middleware stack.
type Options struct {
	// SecureCookies marks the CSRF cookie Secure. Enable behind TLS.
	SecureCookies bool
	// GenerateLimiter caps AI generation requests. Nil disables the cap.
	GenerateLimiter *middleware.RateLimiter
}

// New creates the configured Chi router with all middleware and route
// groups wired up.
func New(ws *handlers.Workspace, opts Options) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("router: static assets missing: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewCSRF(opts.SecureCookies))

		r.Get("/", ws.Home)

		r.Route("/api", func(r chi.Router) {
			r.Get("/state", ws.State)
			r.Get("/categories", ws.Categories)
			r.Get("/templates", ws.Templates)
			r.Post("/templates/{id}/select", ws.SelectTemplate)

			r.Put("/filters", ws.SetFilters)
			r.Post("/filters/reset", ws.ResetFilters)

			r.Route("/pages", func(r chi.Router) {
				r.Get("/", ws.Pages)
				r.Post("/new", ws.NewPage)
				r.Get("/{id}", ws.Page)
				r.Get("/{id}/preview", ws.PagePreview)
				r.Get("/{id}/export", ws.ExportPage)
				r.Post("/{id}/open", ws.OpenPage)
				r.Delete("/{id}", ws.DeletePage)
			})

			r.Route("/editor", func(r chi.Router) {
				r.Put("/", ws.SaveEditor)
				r.Post("/close", ws.CloseEditor)
				r.Group(func(r chi.Router) {
					if opts.GenerateLimiter != nil {
						r.Use(opts.GenerateLimiter.Middleware)
					}
					r.Post("/generate", ws.Generate)
				})
			})

			r.Get("/ai", ws.AIProviders)
			r.Put("/ai/provider", ws.SetAIProvider)

			r.Post("/confirmation", ws.Confirm)
			r.Delete("/confirmation", ws.Cancel)

			r.Route("/settings", func(r chi.Router) {
				r.Post("/upgrade", ws.Upgrade)
				r.Post("/upgrade-prompt", ws.OpenUpgradePrompt)
				r.Delete("/upgrade-prompt", ws.DismissUpgradePrompt)
				r.Post("/language", ws.ToggleLanguage)
				r.Post("/dark-mode", ws.ToggleDarkMode)
			})

			r.Post("/sidebar", ws.ToggleSidebar)

			r.Get("/notifications", ws.Notifications)
			r.Delete("/notifications/{id}", ws.DismissNotification)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
