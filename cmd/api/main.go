package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aurodavid1986/ordering-app/internal/config"
	"github.com/aurodavid1986/ordering-app/internal/logging"
	"github.com/aurodavid1986/ordering-app/internal/menu"
	"github.com/aurodavid1986/ordering-app/internal/router"
	"github.com/aurodavid1986/ordering-app/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sweepInterval = time.Minute

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ config: %v", err)
	}

	logger, err := logging.New(cfg.Production())
	if err != nil {
		log.Fatalf("❌ logger init failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ───────────────────────── MENU ─────────────────────────
	catalog := menu.DefaultCatalog()
	if cfg.MenuFile != "" {
		catalog, err = menu.LoadFile(cfg.MenuFile)
		if err != nil {
			logger.Fatal("menu file rejected", zap.String("path", cfg.MenuFile), zap.Error(err))
		}
	}
	logger.Info("menu loaded",
		zap.Strings("dates", catalog.AvailableDates()),
		zap.String("source", menuSource(cfg.MenuFile)))

	// ───────────────────────── SESSIONS ─────────────────────────
	tokens, err := session.NewTokens(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		logger.Fatal("session tokens", zap.Error(err))
	}

	sessions := session.NewService(
		session.NewInMemoryRepository(),
		catalog,
		logger.Named("session"),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go runSweeper(ctx, sessions, cfg.SessionTTL)

	// ───────────────────────── HTTP ─────────────────────────
	r := router.NewRouter(router.Deps{
		Catalog:     catalog,
		Sessions:    sessions,
		Tokens:      tokens,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger.Named("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("🚀 API running", zap.String("addr", "http://localhost:"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}

// runSweeper drops sessions idle longer than ttl until ctx is cancelled.
func runSweeper(ctx context.Context, sessions *session.Service, ttl time.Duration) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sessions.Sweep(ttl)
		}
	}
}

func menuSource(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}
