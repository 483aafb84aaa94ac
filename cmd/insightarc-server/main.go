// Package main InsightArc Server API
//
// @title           InsightArc Server API
// @version         1.0
// @description     API новостной платформы: пользователи, статьи, издатели и подписки

// @contact.name   API Support
// @contact.email  support@insightarc.example

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:9000
// @BasePath  /

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
// @description JWT в HTTP-only cookie с именем "token".
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/insightarc/insightarc-server/docs"
	"github.com/insightarc/insightarc-server/internal/app/insightarc"
	"github.com/insightarc/insightarc-server/internal/config"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting insightarc-server", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := insightarc.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", slog.Any("err", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("insightarc-server stopped gracefully")
}
