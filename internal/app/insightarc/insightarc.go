// Package insightarc собирает все компоненты сервера: хранилище MongoDB,
// кеш Redis, сервисы и HTTP-маршруты.
package insightarc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/insightarc/insightarc-server/internal/cache"
	"github.com/insightarc/insightarc-server/internal/config"
	"github.com/insightarc/insightarc-server/internal/lib/jwt"
	articleservice "github.com/insightarc/insightarc-server/internal/services/article"
	publisherservice "github.com/insightarc/insightarc-server/internal/services/publisher"
	subscriptionservice "github.com/insightarc/insightarc-server/internal/services/subscription"
	userservice "github.com/insightarc/insightarc-server/internal/services/user"
	"github.com/insightarc/insightarc-server/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func waitForDB(ctx context.Context, db *repository.Storage) error {
	for range 10 {
		err := repository.CheckDatabaseReady(ctx, db)
		if err == nil {
			return nil
		}
		time.Sleep(3 * time.Second)
	}
	return fmt.Errorf("database not ready after retries")
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(ctx, cfg.MongoConnection)
	if err != nil {
		return nil, err
	}
	if err = waitForDB(ctx, db); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		// каталог тарифов читается из Mongo напрямую, пока Redis недоступен
		logger.Warn("cache unavailable, continuing without cache", slog.Any("err", err))
		cacheRedis = nil
	}

	tokenMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	userService := userservice.New(db, logger)
	articleService := articleservice.New(db, logger)
	publisherService := publisherservice.New(db, logger)
	subscriptionService := subscriptionservice.New(db, cacheRedis, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, cfg, tokenMaker,
		userService, articleService, publisherService, subscriptionService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if dbErr := a.db.Close(timeoutCtx); dbErr != nil {
			a.logger.Error("failed to close mongodb client", slog.Any("err", dbErr))
		}
		return err
	}
}
