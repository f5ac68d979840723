// The recalc worker subscribes to profile-updated and registry-updated events
// and recomputes the affected users' stored strength levels.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"cloud.google.com/go/pubsub"
	cloudevents "github.com/cloudevents/sdk-go/v2"

	shared "github.com/liftlog/server/pkg"
	"github.com/liftlog/server/pkg/bootstrap"
	infrapubsub "github.com/liftlog/server/pkg/infrastructure/pubsub"
	infrasentry "github.com/liftlog/server/pkg/infrastructure/sentry"
	"github.com/liftlog/server/pkg/recalc"
	"github.com/liftlog/server/pkg/registry"
	"github.com/liftlog/server/pkg/types"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc, err := bootstrap.NewService(ctx)
	if err != nil {
		slog.Error("Bootstrap failed", "error", err)
		os.Exit(1)
	}

	logger := bootstrap.NewLogger("recalc-worker")

	if err := infrasentry.Init(infrasentry.Config{
		DSN:         svc.Config.SentryDSN,
		Environment: svc.Config.Environment,
		ServerName:  "recalc-worker",
	}, logger); err != nil {
		logger.Warn("Continuing without Sentry", "error", err)
	}
	defer infrasentry.Flush(2 * time.Second)

	psClient, err := pubsub.NewClient(ctx, svc.Config.ProjectID)
	if err != nil {
		logger.Error("PubSub init failed", "error", err)
		os.Exit(1)
	}
	defer psClient.Close()

	cache := registry.NewCache(registryLoader(svc.DB), svc.Config.RegistryTTL, logger)
	worker := &worker{
		recalc: recalc.New(svc.DB, cache, logger),
		logger: logger,
	}

	var wg sync.WaitGroup
	receive := func(subID string, handle func(context.Context, *pubsub.Message)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := psClient.Subscription(subID)
			logger.Info("Receiving", "subscription", subID)
			if err := sub.Receive(ctx, handle); err != nil && ctx.Err() == nil {
				logger.Error("Receive failed", "subscription", subID, "error", err)
				infrasentry.CaptureException(err, map[string]string{"subscription": subID}, logger)
				cancel()
			}
		}()
	}

	receive(shared.SubRecalcProfileUpdated, worker.handleProfileUpdated)
	receive(shared.SubRecalcRegistryUpdated, worker.handleRegistryUpdated)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-stop:
	case <-ctx.Done():
	}
	cancel()
	wg.Wait()
	logger.Info("Worker stopped")
}

type worker struct {
	recalc *recalc.Recalculator
	logger *slog.Logger
}

func (w *worker) handleProfileUpdated(ctx context.Context, msg *pubsub.Message) {
	defer infrasentry.RecoverAndCapture(w.logger)

	var e cloudevents.Event
	if err := json.Unmarshal(msg.Data, &e); err != nil {
		w.logger.Error("Dropping malformed event", "error", err)
		msg.Ack() // poison message, never retryable
		return
	}

	var payload infrapubsub.ProfileUpdatedPayload
	if err := e.DataAs(&payload); err != nil || payload.UserID == "" {
		w.logger.Error("Dropping event without user id", "event_id", e.ID(), "error", err)
		msg.Ack()
		return
	}

	summary, err := w.recalc.RecalculateUser(ctx, payload.UserID)
	if err != nil {
		w.logger.Error("Recalculation failed", "user_id", payload.UserID, "error", err)
		infrasentry.CaptureException(err, map[string]string{"user_id": payload.UserID}, w.logger)
		msg.Nack()
		return
	}

	w.logger.Info("Profile fan-out done",
		"user_id", payload.UserID,
		"updated", summary.Updated,
		"unchanged", summary.Unchanged,
		"failed", summary.Failed,
	)
	msg.Ack()
}

func (w *worker) handleRegistryUpdated(ctx context.Context, msg *pubsub.Message) {
	w.recalc.InvalidateRegistry()
	w.logger.Info("Registry cache invalidated")
	msg.Ack()
}

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
