// @title Mew Mate API
// @version 1.0
// @description Registro de cetrería: halconeros, aves, pesajes, alimentaciones, cacerías y entrenamientos.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"mew-mate-api/internal/adapters/auth/jwks"
	pg "mew-mate-api/internal/adapters/storage/postgres"
	"mew-mate-api/internal/platform/config"
	"mew-mate-api/internal/platform/httpclient"
	"mew-mate-api/internal/platform/logger"
	"mew-mate-api/internal/platform/metrics"
	"mew-mate-api/internal/ports/auth"
	"mew-mate-api/internal/router"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		App:    cfg.AppName,
		Env:    cfg.Env,
	})
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	verifier, err := newVerifier(ctx, cfg, log)
	if err != nil {
		return err
	}

	m, err := metrics.NewHTTPMetrics()
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier:   verifier,
		DB:             db,
		Logger:         log,
		Metrics:        m,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		Logbook:        cfg.Logbook,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// openDatabase devuelve nil sin DB_DSN: el router cae al store in-memory.
func openDatabase(ctx context.Context, cfg *config.Config, log *zap.Logger) (*sql.DB, error) {
	if cfg.Database.DSN == "" {
		log.Warn("DB_DSN not set, using in-memory storage")
		return nil, nil
	}

	db, err := pg.Open(ctx, cfg.Database.DSN, pg.PoolOptions{
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if cfg.Database.RunMigrations {
		if err := pg.RunMigrations(db, log); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}

// newVerifier descarga el JWKS una sola vez. Sin verificación => modo dev (X-Debug-User-ID).
func newVerifier(ctx context.Context, cfg *config.Config, log *zap.Logger) (auth.AuthVerifier, error) {
	if !cfg.Auth.EnableVerification {
		log.Warn("auth verification disabled, accepting X-Debug-User-ID")
		return nil, nil
	}

	jcfg := jwks.Config{
		URL:      cfg.Auth.JWKSURL,
		APIKey:   cfg.Auth.JWKSAPIKey,
		Issuer:   cfg.Auth.Issuer,
		Audience: cfg.Auth.Audience,
	}
	keys, err := jwks.LoadKeySet(ctx, httpclient.New(cfg.Auth.FetchTimeout), jcfg)
	if err != nil {
		return nil, err
	}
	log.Info("jwks loaded", zap.String("url", cfg.Auth.JWKSURL))
	return jwks.NewVerifier(keys, jcfg), nil
}
