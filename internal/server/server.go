// Package server boots the application: configuration, logging sinks,
// database, cache, storage, the middleware stack and the HTTP listener.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bilemo/api/app/routes"
	"github.com/bilemo/api/config"
	"github.com/bilemo/api/pkg/cache"
	"github.com/bilemo/api/pkg/database"
	"github.com/bilemo/api/pkg/logger"
	"github.com/bilemo/api/pkg/metrics"
	"github.com/bilemo/api/pkg/middleware"
	"github.com/bilemo/api/pkg/reqid"
	"github.com/bilemo/api/pkg/router"
	"github.com/bilemo/api/pkg/storage"
)

// NewRouter assembles the middleware stack and the full route table.
func NewRouter(store cache.Store) *router.Router {
	r := router.New()
	r.Use(
		reqid.Middleware(),
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(middleware.DefaultCORSOptions()),
		metrics.Middleware(),
	)
	routes.RegisterAPI(r, database.DB, store)
	return r
}

// newStore picks the cache driver: Redis when it answers, otherwise the
// in-process store so the API still runs on a laptop without Redis.
func newStore() cache.Store {
	store, err := cache.NewRedisStore()
	if err != nil {
		logger.Warn("redis unavailable, using in-memory cache", "error", err)
		return cache.NewMemoryStore()
	}
	logger.Info("cache connected", "addr", config.RedisAddr())
	return store
}

// Start boots every subsystem and serves until SIGINT/SIGTERM, then
// drains in-flight requests.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if uri := config.MongoURI(); uri != "" {
		if _, err := logger.EnableMongoSink(uri, "bilemo", "logs"); err != nil {
			logger.Warn("mongo log sink disabled", "error", err)
		}
	}

	if err := database.Connect(); err != nil {
		return err
	}
	storage.Connect()

	store := newStore()
	r := NewRouter(store)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("bilemo api listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if closer, ok := store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	return nil
}
