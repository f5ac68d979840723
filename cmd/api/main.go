package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	shared "github.com/liftlog/server/pkg"
	"github.com/liftlog/server/pkg/bootstrap"
	"github.com/liftlog/server/pkg/httpapi"
	infrasentry "github.com/liftlog/server/pkg/infrastructure/sentry"
	"github.com/liftlog/server/pkg/registry"
	"github.com/liftlog/server/pkg/types"
)

func main() {
	ctx := context.Background()

	svc, err := bootstrap.NewService(ctx)
	if err != nil {
		slog.Error("Bootstrap failed", "error", err)
		os.Exit(1)
	}

	logger := bootstrap.NewLogger("api")

	if err := infrasentry.Init(infrasentry.Config{
		DSN:         svc.Config.SentryDSN,
		Environment: svc.Config.Environment,
		ServerName:  "api",
	}, logger); err != nil {
		logger.Warn("Continuing without Sentry", "error", err)
	}
	defer infrasentry.Flush(2 * time.Second)

	cache := registry.NewCache(registryLoader(svc.DB), svc.Config.RegistryTTL, logger)
	handler := httpapi.NewHandler(svc.DB, svc.Pub, cache, logger)

	server := &http.Server{
		Addr:              ":" + svc.Config.Port,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("API listening", "port", svc.Config.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			infrasentry.CaptureException(err, nil, logger)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
	logger.Info("API stopped")
}

// registryLoader adapts the Database interface to the cache loader.
func registryLoader(db shared.Database) registry.LoaderFunc {
	return func(ctx context.Context) ([]*types.ExerciseRecord, []*types.AliasRecord, error) {
		records, err := db.ListActiveExercises(ctx)
		if err != nil {
			return nil, nil, err
		}
		aliases, err := db.ListExerciseAliases(ctx)
		if err != nil {
			return nil, nil, err
		}
		return records, aliases, nil
	}
}
