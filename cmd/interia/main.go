// Package main is the entry point for the Interia content API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interia/internal/cache"
	"interia/internal/config"
	"interia/internal/database"
	"interia/internal/handlers"
	"interia/internal/imageurl"
	"interia/internal/mailer"
	"interia/internal/router"
	"interia/internal/session"
	"interia/internal/storage"
	"interia/internal/store"
)

func main() {
	// Structured logger — outputs text with debug level everywhere; log
	// volume is modest for a content API.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache + session store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize session store backed by Valkey.
	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Initialize data stores.
	stores := &handlers.Stores{
		Projects:     store.NewProjectStore(db),
		Testimonials: store.NewTestimonialStore(db),
		Certificates: store.NewCertificateStore(db),
		Services:     store.NewServiceStore(db),
		Stats:        store.NewStatStore(db),
		SiteImages:   store.NewSiteImageStore(db),
		SiteSettings: store.NewSiteSettingStore(db),
		About:        store.NewAboutStore(db),
		Media:        store.NewMediaStore(db),
		Users:        store.NewUserStore(db),
	}

	// Connect to S3-compatible object storage (optional — app works without it).
	var storageClient *storage.Client
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.CDNBaseURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured — image uploads disabled")
	}

	// CDN URL builder for delivery-time image transformations.
	images := imageurl.New(cfg.CDNBaseURL)

	// Resend mailer for the contact form (nil when unconfigured: drops mail).
	mail := mailer.New(cfg.ResendAPIKey, cfg.ResendFromEmail)
	if mail == nil {
		slog.Warn("resend not configured — contact form mail disabled")
	}

	// Cached public list responses in Valkey.
	responseCache := cache.NewResponseCache(valkeyClient, cache.DefaultResponseTTL)

	// Create handler groups with their dependencies.
	contentHandlers := handlers.NewContent(cfg, stores, storageClient, images, mail, responseCache)
	authHandlers := handlers.NewAuth(cfg, sessionStore, stores.Users)

	// Set up the Chi router with all middleware and routes.
	r := router.New(cfg, sessionStore, responseCache, contentHandlers, authHandlers)

	// Create the HTTP server with sensible timeouts. WriteTimeout must
	// accommodate image uploads pushed through to object storage.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
