package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"craftlink/internal/app"
	"craftlink/internal/config"
	"craftlink/internal/server"
	"craftlink/internal/store"
	"craftlink/internal/token"
	"craftlink/internal/util"
)

func main() {
	// Optional during development; production sets real environment variables.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := util.InitLogger(cfg.LogLevel)

	secret := cfg.JWTSecret
	if secret == "" {
		slog.Warn("SECRET_KEY not set, using development default; do not run this in production")
		secret = config.DevSecretKey
	}
	ttl, err := config.ParseTokenTTL(cfg.TokenTTL)
	if err != nil {
		log.Fatalf("failed to parse token TTL: %v", err)
	}
	codec, err := token.NewCodec(token.Config{Secret: secret, TTL: ttl})
	if err != nil {
		log.Fatalf("failed to init token codec: %v", err)
	}

	dataStore, err := store.NewGormStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}
	if cfg.SeedIfEmpty {
		n, err := store.SeedSampleData(dataStore)
		if err != nil {
			log.Fatalf("failed to seed sample data: %v", err)
		}
		if n > 0 {
			slog.Info("seeded sample craftsmen", "count", n)
		}
	}

	appCore, err := app.New(app.Config{Store: dataStore, Codec: codec})
	if err != nil {
		log.Fatalf("failed to init app: %v", err)
	}
	httpServer := server.New(server.Config{
		App:         appCore,
		Version:     cfg.Version,
		DebugErrors: cfg.DebugErrors,
	})

	trusted, err := util.NewTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		log.Fatalf("failed to parse trusted proxies: %v", err)
	}
	handler := util.WithRequestID(
		util.WithRequestLog(trusted,
			util.WithSecurityHeaders(
				util.WithCORS(httpServer.Router()))))

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "err", err)
		}
	}
}
