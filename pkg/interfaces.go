package shared

import (
	"context"

	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/liftlog/server/pkg/types"
)

// --- Persistence Interfaces ---

type Database interface {
	// Users
	GetUserProfile(ctx context.Context, id string) (*types.UserProfile, error)
	UpdateUserProfile(ctx context.Context, id string, data map[string]interface{}) error

	// Exercise registry
	ListActiveExercises(ctx context.Context) ([]*types.ExerciseRecord, error)
	ListExerciseAliases(ctx context.Context) ([]*types.AliasRecord, error)
	GetExercise(ctx context.Context, id string) (*types.ExerciseRecord, error)
	SetExercise(ctx context.Context, record *types.ExerciseRecord) error
	SetExerciseAlias(ctx context.Context, alias *types.AliasRecord) error

	// Personal records: sub-collection of users, keyed by normalized exercise name
	ListPersonalRecords(ctx context.Context, userID string) ([]*types.PersonalRecord, error)
	SetPersonalRecord(ctx context.Context, userID string, record *types.PersonalRecord) error
	UpdatePersonalRecord(ctx context.Context, userID string, recordID string, data map[string]interface{}) error

	// Workout logs: the read side feeds historical pace estimation
	ListRecentCardioLogs(ctx context.Context, userID string, limit int) ([]types.LoggedExercise, error)
	AddWorkoutLog(ctx context.Context, userID string, entry *types.LoggedExercise) (string, error)
}

// --- Messaging Interfaces ---

type Publisher interface {
	PublishCloudEvent(ctx context.Context, topic string, e event.Event) (string, error)
}

// --- Storage Interfaces ---

type BlobStore interface {
	Write(ctx context.Context, bucket, object string, data []byte) error
	Read(ctx context.Context, bucket, object string) ([]byte, error)
}
