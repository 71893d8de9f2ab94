// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the Global Planner server.
// It loads configuration, opens the document store, sets up routing, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"globalplanner/internal/ai"
	"globalplanner/internal/catalog"
	"globalplanner/internal/config"
	"globalplanner/internal/database"
	"globalplanner/internal/handlers"
	"globalplanner/internal/middleware"
	"globalplanner/internal/notify"
	"globalplanner/internal/planner"
	"globalplanner/internal/render"
	"globalplanner/internal/router"
	"globalplanner/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if !cfg.IsDev() {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})))
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"store", cfg.StoreBackend,
	)

	backend, closeBackend, err := openBackend(cfg)
	if err != nil {
		slog.Error("failed to open store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer closeBackend()

	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}
	chrome := render.NewChrome(cfg.PrefersDarkMode)

	aiRegistry := ai.NewRegistry(cfg.AIProvider, cfg.AIProviders)
	assistant := ai.NewAssistant(aiRegistry, cfg.AITimeout)
	if assistant.Available() {
		slog.Info("ai providers initialized",
			"active", aiRegistry.ActiveName(),
			"available", aiRegistry.Available(),
		)
	} else {
		slog.Warn("ai assistant not configured, generation disabled", "provider", cfg.AIProvider)
	}

	ctrl := planner.New(context.Background(), planner.Options{
		Catalog:         catalog.Default(),
		Store:           store.New(backend),
		Notifier:        notify.New(cfg.NotificationTTL),
		Generator:       assistant,
		Env:             chrome,
		DefaultLanguage: cfg.DefaultLanguage,
		SidebarOpen:     cfg.SidebarOpen,
	})

	var limiter *middleware.RateLimiter
	if cfg.AIRateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.AIRateLimit, cfg.AIRateWindow)
		defer limiter.Stop()
	}

	workspace := handlers.NewWorkspace(ctrl, renderer, chrome, assistant)
	r := router.New(workspace, router.Options{
		SecureCookies:   !cfg.IsDev(),
		GenerateLimiter: limiter,
	})

	// WriteTimeout covers the AI generate endpoint, which waits on the
	// upstream model for up to AI_TIMEOUT.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.AITimeout + 45*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// openBackend connects the document backend selected by STORE_BACKEND.
// The returned func releases its connections.
func openBackend(cfg *config.Config) (store.Backend, func(), error) {
	noop := func() {}

	switch cfg.StoreBackend {
	case config.BackendMemory:
		slog.Warn("using in-memory store, data is lost on restart")
		return store.NewMemoryBackend(), noop, nil

	case config.BackendPostgres:
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store.NewPostgresBackend(db), func() { db.Close() }, nil

	case config.BackendValkey:
		client, err := store.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, cfg.ValkeyDB)
		if err != nil {
			return nil, nil, err
		}
		return store.NewValkeyBackend(client, cfg.ValkeyPrefix), func() { client.Close() }, nil

	case config.BackendS3:
		b, err := store.NewS3Backend(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("s3 storage configured", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
		return b, noop, nil

	case config.BackendFile:
		b, err := store.NewFileBackend(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return b, noop, nil
	}

	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
