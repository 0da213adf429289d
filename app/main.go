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

	"github.com/kronos-guild/website/app/blog"
	"github.com/kronos-guild/website/app/card"
	"github.com/kronos-guild/website/app/cfg"
	"github.com/kronos-guild/website/app/feed"
	"github.com/kronos-guild/website/app/render"
	"github.com/kronos-guild/website/app/site"
	"github.com/kronos-guild/website/app/web"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	setupLogger(appCfg.Debug)

	slog.Info("Starting Kronos Guild server", "version", appCfg.Version)

	siteConfig, err := site.Load(appCfg.SiteFile)
	if err != nil {
		slog.Error("Failed to load site configuration", "path", appCfg.SiteFile, "error", err)
		os.Exit(1)
	}

	mapper, err := card.NewMapper(siteConfig.PlaceholderImage, siteConfig.CardVariant)
	if err != nil {
		slog.Error("Failed to create card mapper", "error", err)
		os.Exit(1)
	}

	repo := blog.NewRepository(
		blog.NewStore(appCfg.ContentDir),
		blog.WithConcurrency(appCfg.ReadConcurrency),
		blog.WithStrict(appCfg.StrictContent),
	)

	// Surface content problems at startup; requests read the directory again.
	if posts, err := repo.List(context.Background()); err != nil {
		slog.Warn("Initial content scan failed", "dir", appCfg.ContentDir, "error", err)
	} else {
		slog.Info("Content directory scanned", "dir", appCfg.ContentDir, "posts", len(posts))
	}

	siteURL := appCfg.SiteURL()
	channel := feed.Channel{
		Title:       siteConfig.BlogTitle,
		Link:        siteURL,
		Description: siteConfig.Description,
		SelfURL:     siteURL + "/rss.xml",
		Language:    "en",
		ImageURL:    absoluteURL(siteURL, siteConfig.PreviewImage),
		Version:     appCfg.Version,
	}

	handler := web.NewHandler(repo, render.New(), mapper, siteConfig, channel)
	server := web.NewServer(handler, appCfg.StaticDir)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port, "url", siteURL)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func absoluteURL(siteURL, p string) string {
	if p == "" {
		return ""
	}
	if len(p) > 4 && p[:4] == "http" {
		return p
	}
	if p[0] != '/' {
		p = "/" + p
	}
	return siteURL + "/assets" + p
}
