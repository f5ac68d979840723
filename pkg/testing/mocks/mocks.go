package mocks

import (
	"context"
	"fmt"

	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/liftlog/server/pkg/types"
)

// --- Mock Database ---
type MockDatabase struct {
	GetUserProfileFunc    func(ctx context.Context, id string) (*types.UserProfile, error)
	UpdateUserProfileFunc func(ctx context.Context, id string, data map[string]interface{}) error

	ListActiveExercisesFunc func(ctx context.Context) ([]*types.ExerciseRecord, error)
	ListExerciseAliasesFunc func(ctx context.Context) ([]*types.AliasRecord, error)
	GetExerciseFunc         func(ctx context.Context, id string) (*types.ExerciseRecord, error)
	SetExerciseFunc         func(ctx context.Context, record *types.ExerciseRecord) error
	SetExerciseAliasFunc    func(ctx context.Context, alias *types.AliasRecord) error

	ListPersonalRecordsFunc  func(ctx context.Context, userID string) ([]*types.PersonalRecord, error)
	SetPersonalRecordFunc    func(ctx context.Context, userID string, record *types.PersonalRecord) error
	UpdatePersonalRecordFunc func(ctx context.Context, userID string, recordID string, data map[string]interface{}) error

	ListRecentCardioLogsFunc func(ctx context.Context, userID string, limit int) ([]types.LoggedExercise, error)
	AddWorkoutLogFunc        func(ctx context.Context, userID string, entry *types.LoggedExercise) (string, error)
}

func (m *MockDatabase) GetUserProfile(ctx context.Context, id string) (*types.UserProfile, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, id)
	}
	return nil, fmt.Errorf("user not found")
}

func (m *MockDatabase) UpdateUserProfile(ctx context.Context, id string, data map[string]interface{}) error {
	if m.UpdateUserProfileFunc != nil {
		return m.UpdateUserProfileFunc(ctx, id, data)
	}
	return nil
}

func (m *MockDatabase) ListActiveExercises(ctx context.Context) ([]*types.ExerciseRecord, error) {
	if m.ListActiveExercisesFunc != nil {
		return m.ListActiveExercisesFunc(ctx)
	}
	return nil, nil
}

func (m *MockDatabase) ListExerciseAliases(ctx context.Context) ([]*types.AliasRecord, error) {
	if m.ListExerciseAliasesFunc != nil {
		return m.ListExerciseAliasesFunc(ctx)
	}
	return nil, nil
}

func (m *MockDatabase) GetExercise(ctx context.Context, id string) (*types.ExerciseRecord, error) {
	if m.GetExerciseFunc != nil {
		return m.GetExerciseFunc(ctx, id)
	}
	return nil, fmt.Errorf("exercise not found")
}

func (m *MockDatabase) SetExercise(ctx context.Context, record *types.ExerciseRecord) error {
	if m.SetExerciseFunc != nil {
		return m.SetExerciseFunc(ctx, record)
	}
	return nil
}

func (m *MockDatabase) SetExerciseAlias(ctx context.Context, alias *types.AliasRecord) error {
	if m.SetExerciseAliasFunc != nil {
		return m.SetExerciseAliasFunc(ctx, alias)
	}
	return nil
}

func (m *MockDatabase) ListPersonalRecords(ctx context.Context, userID string) ([]*types.PersonalRecord, error) {
	if m.ListPersonalRecordsFunc != nil {
		return m.ListPersonalRecordsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockDatabase) SetPersonalRecord(ctx context.Context, userID string, record *types.PersonalRecord) error {
	if m.SetPersonalRecordFunc != nil {
		return m.SetPersonalRecordFunc(ctx, userID, record)
	}
	return nil
}

func (m *MockDatabase) UpdatePersonalRecord(ctx context.Context, userID string, recordID string, data map[string]interface{}) error {
	if m.UpdatePersonalRecordFunc != nil {
		return m.UpdatePersonalRecordFunc(ctx, userID, recordID, data)
	}
	return nil
}

func (m *MockDatabase) ListRecentCardioLogs(ctx context.Context, userID string, limit int) ([]types.LoggedExercise, error) {
	if m.ListRecentCardioLogsFunc != nil {
		return m.ListRecentCardioLogsFunc(ctx, userID, limit)
	}
	return nil, nil
}

func (m *MockDatabase) AddWorkoutLog(ctx context.Context, userID string, entry *types.LoggedExercise) (string, error) {
	if m.AddWorkoutLogFunc != nil {
		return m.AddWorkoutLogFunc(ctx, userID, entry)
	}
	return "mock-log-id", nil
}

// --- Mock Publisher ---
type MockPublisher struct {
	PublishCloudEventFunc func(ctx context.Context, topic string, e event.Event) (string, error)
}

func (m *MockPublisher) PublishCloudEvent(ctx context.Context, topic string, e event.Event) (string, error) {
	if m.PublishCloudEventFunc != nil {
		return m.PublishCloudEventFunc(ctx, topic, e)
	}
	return "msg-id", nil
}

// --- Mock Storage ---
type MockBlobStore struct {
	WriteFunc func(ctx context.Context, bucket, object string, data []byte) error
	ReadFunc  func(ctx context.Context, bucket, object string) ([]byte, error)
}

func (m *MockBlobStore) Write(ctx context.Context, bucket, object string, data []byte) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, bucket, object, data)
	}
	return nil
}

func (m *MockBlobStore) Read(ctx context.Context, bucket, object string) ([]byte, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, bucket, object)
	}
	return []byte("mock-data"), nil
}
