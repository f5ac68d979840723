// Package recalc fans a profile or registry change out to the affected
// personal records, recomputing each stored strength level.
package recalc

import (
	"context"
	"fmt"
	"log/slog"

	shared "github.com/liftlog/server/pkg"
	"github.com/liftlog/server/pkg/observability"
	"github.com/liftlog/server/pkg/registry"
	"github.com/liftlog/server/pkg/strength"
)

// Summary counts per-record outcomes of one fan-out run.
type Summary struct {
	Updated   int
	Unchanged int
	Failed    int
}

// Recalculator reclassifies a user's personal records against the current
// registry index and profile.
type Recalculator struct {
	db     shared.Database
	cache  *registry.Cache
	logger *slog.Logger
}

func New(db shared.Database, cache *registry.Cache, logger *slog.Logger) *Recalculator {
	return &Recalculator{db: db, cache: cache, logger: logger}
}

// RecalculateUser recomputes the strength level of every personal record the
// user owns. Individual record failures are logged and counted but never
// abort the run; only a missing profile or an unreadable record list is fatal.
func (r *Recalculator) RecalculateUser(ctx context.Context, userID string) (Summary, error) {
	var summary Summary

	profile, err := r.db.GetUserProfile(ctx, userID)
	if err != nil {
		return summary, fmt.Errorf("load profile %s: %w", userID, err)
	}

	records, err := r.db.ListPersonalRecords(ctx, userID)
	if err != nil {
		return summary, fmt.Errorf("list personal records %s: %w", userID, err)
	}

	idx := r.cache.Index(ctx)

	for _, record := range records {
		level := strength.Classify(*record, profile, idx)
		if level == record.StrengthLevel {
			summary.Unchanged++
			observability.RecordRecalcOutcome("unchanged")
			continue
		}

		err := r.db.UpdatePersonalRecord(ctx, userID, record.ExerciseName, map[string]interface{}{
			"strength_level": string(level),
		})
		if err != nil {
			summary.Failed++
			observability.RecordRecalcOutcome("failed")
			r.logger.Error("Failed to update personal record level",
				"user_id", userID,
				"exercise", record.ExerciseName,
				"error", err,
			)
			continue
		}

		summary.Updated++
		observability.RecordRecalcOutcome("updated")
		observability.RecordClassification(string(level))
		r.logger.Info("Personal record reclassified",
			"user_id", userID,
			"exercise", record.ExerciseName,
			"from", string(record.StrengthLevel),
			"to", string(level),
		)
	}

	r.logger.Info("Recalculation complete",
		"user_id", userID,
		"updated", summary.Updated,
		"unchanged", summary.Unchanged,
		"failed", summary.Failed,
	)
	return summary, nil
}

// InvalidateRegistry drops the cached registry snapshot so the next
// classification sees fresh records. Called on registry-updated events.
func (r *Recalculator) InvalidateRegistry() {
	r.cache.Invalidate()
}
