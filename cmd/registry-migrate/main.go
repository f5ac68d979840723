// registry-migrate seeds the canonical exercise registry and alias table.
//
// It backs up the current registry to GCS, validates the uniqueness invariant
// over the merged snapshot, and only then writes. A snapshot that would leave
// two active records claiming the same normalized name aborts the run.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	shared "github.com/liftlog/server/pkg"
	"github.com/liftlog/server/pkg/bootstrap"
	infrapubsub "github.com/liftlog/server/pkg/infrastructure/pubsub"
	"github.com/liftlog/server/pkg/registry"
	"github.com/liftlog/server/pkg/types"
)

// aliasSeeds maps vendor and free-text spellings to canonical ids. These are
// names normalization alone cannot bridge.
var aliasSeeds = map[string]string{
	"treadmill":    "machine-treadmill-run",
	"incline walk": "other-walk",
	"air bike":     "other-cycling",
	"assault bike": "other-cycling",
	"breaststroke": "other-swimming",
	"freestyle":    "other-swimming",
	"crosstrainer": "machine-elliptical",
}

type backupSnapshot struct {
	BatchID   string                  `json:"batch_id"`
	CreatedAt time.Time               `json:"created_at"`
	Exercises []*types.ExerciseRecord `json:"exercises"`
	Aliases   []*types.AliasRecord    `json:"aliases"`
}

func main() {
	dryRun := flag.Bool("dry-run", false, "validate and report without writing")
	restoreObject := flag.String("restore", "", "GCS backup object to restore instead of seeding")
	flag.Parse()

	ctx := context.Background()
	svc, err := bootstrap.NewService(ctx)
	if err != nil {
		slog.Error("Bootstrap failed", "error", err)
		os.Exit(1)
	}
	logger := bootstrap.NewLogger("registry-migrate")

	if *restoreObject != "" {
		if err := restore(ctx, svc, logger, *restoreObject); err != nil {
			logger.Error("Restore failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := run(ctx, svc, logger, *dryRun); err != nil {
		logger.Error("Migration failed", "error", err)
		os.Exit(1)
	}
}

// restore rewrites the registry from a previously written backup snapshot.
// The same uniqueness gate applies: a corrupt backup never reaches the store.
func restore(ctx context.Context, svc *bootstrap.Service, logger *slog.Logger, object string) error {
	if svc.Config.GCSBackupBucket == "" {
		return fmt.Errorf("restore requires GCS_BACKUP_BUCKET")
	}

	data, err := svc.Store.Read(ctx, svc.Config.GCSBackupBucket, object)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	var snapshot backupSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("decode backup %s: %w", object, err)
	}
	logger.Info("Restoring registry",
		"object", object,
		"source_batch_id", snapshot.BatchID,
		"exercises", len(snapshot.Exercises),
		"aliases", len(snapshot.Aliases),
	)

	if violations := registry.Validate(snapshot.Exercises); len(violations) > 0 {
		for _, v := range violations {
			logger.Error("Uniqueness violation in backup", "error", v.Error())
		}
		return fmt.Errorf("backup has %d uniqueness violations", len(violations))
	}

	for _, rec := range snapshot.Exercises {
		if err := svc.DB.SetExercise(ctx, rec); err != nil {
			return fmt.Errorf("restore exercise %s: %w", rec.ID, err)
		}
	}
	for _, alias := range snapshot.Aliases {
		if err := svc.DB.SetExerciseAlias(ctx, alias); err != nil {
			return fmt.Errorf("restore alias %q: %w", alias.Alias, err)
		}
	}

	e, err := infrapubsub.NewCloudEvent("registry-migrate", infrapubsub.EventTypeRegistryUpdated,
		infrapubsub.RegistryUpdatedPayload{ExerciseID: snapshot.BatchID})
	if err != nil {
		return fmt.Errorf("build registry-updated event: %w", err)
	}
	if _, err := svc.Pub.PublishCloudEvent(ctx, shared.TopicRegistryUpdated, e); err != nil {
		return fmt.Errorf("publish registry-updated: %w", err)
	}

	logger.Info("Restore complete", "object", object)
	return nil
}

func run(ctx context.Context, svc *bootstrap.Service, logger *slog.Logger, dryRun bool) error {
	batchID := uuid.NewString()
	logger.Info("Starting registry migration", "batch_id", batchID, "dry_run", dryRun)

	existing, err := svc.DB.ListActiveExercises(ctx)
	if err != nil {
		return fmt.Errorf("list existing registry: %w", err)
	}
	aliases, err := svc.DB.ListExerciseAliases(ctx)
	if err != nil {
		return fmt.Errorf("list existing aliases: %w", err)
	}

	seeds := registry.SeedRecords()
	now := time.Now().UTC()
	title := cases.Title(language.English)
	for _, rec := range seeds {
		if rec.Name == "" {
			rec.Name = title.String(rec.NormalizedName)
		}
		rec.UpdatedAt = now
	}

	merged := mergeSnapshots(existing, seeds)
	if violations := registry.Validate(merged); len(violations) > 0 {
		for _, v := range violations {
			logger.Error("Uniqueness violation", "error", v.Error())
		}
		return fmt.Errorf("registry snapshot has %d uniqueness violations", len(violations))
	}

	if dryRun {
		logger.Info("Dry run complete", "seeds", len(seeds), "existing", len(existing))
		return nil
	}

	if err := writeBackup(ctx, svc, logger, batchID, existing, aliases); err != nil {
		return err
	}

	for _, rec := range seeds {
		if err := svc.DB.SetExercise(ctx, rec); err != nil {
			return fmt.Errorf("write exercise %s: %w", rec.ID, err)
		}
	}
	for alias, canonicalID := range aliasSeeds {
		record := &types.AliasRecord{Alias: registry.Normalize(alias), CanonicalID: canonicalID}
		if err := svc.DB.SetExerciseAlias(ctx, record); err != nil {
			return fmt.Errorf("write alias %q: %w", alias, err)
		}
	}
	logger.Info("Registry written", "exercises", len(seeds), "aliases", len(aliasSeeds))

	e, err := infrapubsub.NewCloudEvent("registry-migrate", infrapubsub.EventTypeRegistryUpdated,
		infrapubsub.RegistryUpdatedPayload{ExerciseID: batchID})
	if err != nil {
		return fmt.Errorf("build registry-updated event: %w", err)
	}
	if _, err := svc.Pub.PublishCloudEvent(ctx, shared.TopicRegistryUpdated, e); err != nil {
		return fmt.Errorf("publish registry-updated: %w", err)
	}

	logger.Info("Migration complete", "batch_id", batchID)
	return nil
}

// mergeSnapshots overlays seeds on the existing registry by id, keeping
// existing records the seed set does not touch.
func mergeSnapshots(existing, seeds []*types.ExerciseRecord) []*types.ExerciseRecord {
	seeded := make(map[string]bool, len(seeds))
	for _, rec := range seeds {
		seeded[rec.ID] = true
	}

	merged := make([]*types.ExerciseRecord, 0, len(existing)+len(seeds))
	merged = append(merged, seeds...)
	for _, rec := range existing {
		if !seeded[rec.ID] {
			merged = append(merged, rec)
		}
	}
	return merged
}

func writeBackup(ctx context.Context, svc *bootstrap.Service, logger *slog.Logger, batchID string, exercises []*types.ExerciseRecord, aliases []*types.AliasRecord) error {
	if svc.Config.GCSBackupBucket == "" {
		logger.Warn("GCS_BACKUP_BUCKET not set, skipping backup")
		return nil
	}

	snapshot := backupSnapshot{
		BatchID:   batchID,
		CreatedAt: time.Now().UTC(),
		Exercises: exercises,
		Aliases:   aliases,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal backup: %w", err)
	}

	object := fmt.Sprintf("registry-backups/%s-%s.json", snapshot.CreatedAt.Format("20060102T150405Z"), batchID)
	if err := svc.Store.Write(ctx, svc.Config.GCSBackupBucket, object, data); err != nil {
		return fmt.Errorf("write backup to gcs: %w", err)
	}
	logger.Info("Backup written", "bucket", svc.Config.GCSBackupBucket, "object", object, "bytes", len(data))
	return nil
}
