// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/tkddzwirzyno/website/internal/config"
	"github.com/tkddzwirzyno/website/internal/handler"
	"github.com/tkddzwirzyno/website/internal/logging"
	"github.com/tkddzwirzyno/website/internal/mailer"
	"github.com/tkddzwirzyno/website/internal/middleware"
	"github.com/tkddzwirzyno/website/internal/pb"
	"github.com/tkddzwirzyno/website/internal/render"
	"github.com/tkddzwirzyno/website/internal/seo"
	"github.com/tkddzwirzyno/website/internal/state"
	"github.com/tkddzwirzyno/website/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

// Contact form rate limit: one submission per 30 seconds per client,
// with a small burst for retries.
const (
	contactFormRPS   = 1.0 / 30.0
	contactFormBurst = 3
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "TKD Dźwirzyno - club website server\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITE_PB_URL            Content backend URL (default: http://127.0.0.1:8090)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITE_BASE_URL          Public site URL used in links and metadata\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITE_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITE_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITE_CACHE_TTL         Shared snapshot lifetime in seconds (default: 60)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITE_SMTP_HOST         SMTP host for contact notifications (optional)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("site %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	client := pb.New(cfg.BackendURL)

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(templatesFS)
	if err != nil {
		return fmt.Errorf("parsing templates: %w", err)
	}

	cache := state.New(client, time.Duration(cfg.CacheTTL)*time.Second, logger)
	site := seo.NewSite(cfg.BaseURL)
	notify := mailer.New(cfg, logger)
	frontend := handler.NewFrontendHandler(client, renderer, site, cfg, notify, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5)) // Gzip compression with level 5
	r.Use(chimw.GetHead)     // Handle HEAD requests for uptime monitoring
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.StripTrailingSlash)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig()))
	r.Use(middleware.SharedState(cache))
	r.Use(middleware.FormRateLimit(contactFormRPS, contactFormBurst))

	// Serve embedded static assets with caching (1 year = 31536000 seconds)
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	staticHandler := middleware.StaticCache(31536000)(http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	r.Handle("/static/*", staticHandler)

	frontend.Mount(r)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB max header size
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "backend", cfg.BackendURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
