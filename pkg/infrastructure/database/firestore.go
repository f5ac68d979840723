package database

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/liftlog/server/pkg/registry"
	storage "github.com/liftlog/server/pkg/storage/firestore"
	"github.com/liftlog/server/pkg/types"
)

// FirestoreAdapter provides database operations using Firestore
// It wraps our typed storage client
type FirestoreAdapter struct {
	Client  *firestore.Client
	storage *storage.Client // internal typed wrapper
}

func NewFirestoreAdapter(client *firestore.Client) *FirestoreAdapter {
	return &FirestoreAdapter{
		Client:  client,
		storage: storage.NewClient(client),
	}
}

// --- Users ---

func (a *FirestoreAdapter) GetUserProfile(ctx context.Context, id string) (*types.UserProfile, error) {
	profile, err := a.storage.Users().Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile.UserID == "" {
		profile.UserID = id
	}
	return profile, nil
}

func (a *FirestoreAdapter) UpdateUserProfile(ctx context.Context, id string, data map[string]interface{}) error {
	return a.storage.Users().Doc(id).Update(ctx, data)
}

// --- Exercise registry ---

func (a *FirestoreAdapter) ListActiveExercises(ctx context.Context) ([]*types.ExerciseRecord, error) {
	col := a.storage.Exercises()
	return col.Query(ctx, col.Ref.Where("is_active", "==", true))
}

func (a *FirestoreAdapter) ListExerciseAliases(ctx context.Context) ([]*types.AliasRecord, error) {
	return a.storage.ExerciseAliases().All(ctx)
}

func (a *FirestoreAdapter) GetExercise(ctx context.Context, id string) (*types.ExerciseRecord, error) {
	record, err := a.storage.Exercises().Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}
	if record.ID == "" {
		record.ID = id
	}
	return record, nil
}

func (a *FirestoreAdapter) SetExercise(ctx context.Context, record *types.ExerciseRecord) error {
	return a.storage.Exercises().Doc(record.ID).Set(ctx, record)
}

func (a *FirestoreAdapter) SetExerciseAlias(ctx context.Context, alias *types.AliasRecord) error {
	return a.storage.ExerciseAliases().Doc(alias.Alias).Set(ctx, alias)
}

// --- Personal records ---

func (a *FirestoreAdapter) ListPersonalRecords(ctx context.Context, userID string) ([]*types.PersonalRecord, error) {
	return a.storage.PersonalRecords(userID).All(ctx)
}

// Personal record documents are keyed by the normalized exercise name, so
// "Bench Press" and "bench press" land on the same document.

func (a *FirestoreAdapter) SetPersonalRecord(ctx context.Context, userID string, record *types.PersonalRecord) error {
	return a.storage.PersonalRecords(userID).Doc(registry.Normalize(record.ExerciseName)).Set(ctx, record)
}

func (a *FirestoreAdapter) UpdatePersonalRecord(ctx context.Context, userID string, recordID string, data map[string]interface{}) error {
	return a.storage.PersonalRecords(userID).Doc(registry.Normalize(recordID)).Update(ctx, data)
}

// --- Workout logs ---

func (a *FirestoreAdapter) ListRecentCardioLogs(ctx context.Context, userID string, limit int) ([]types.LoggedExercise, error) {
	col := a.storage.WorkoutLogs(userID)
	q := col.Ref.
		Where("category", "==", string(types.CategoryCardio)).
		OrderBy("date", firestore.Desc).
		Limit(limit)
	entries, err := col.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]types.LoggedExercise, 0, len(entries))
	for _, e := range entries {
		out = append(out, *e)
	}
	return out, nil
}

func (a *FirestoreAdapter) AddWorkoutLog(ctx context.Context, userID string, entry *types.LoggedExercise) (string, error) {
	doc := a.storage.WorkoutLogs(userID).NewDoc()
	if err := doc.Set(ctx, entry); err != nil {
		return "", err
	}
	return doc.ID(), nil
}
