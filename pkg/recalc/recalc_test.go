package recalc

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/liftlog/server/pkg/registry"
	"github.com/liftlog/server/pkg/testing/mocks"
	"github.com/liftlog/server/pkg/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func benchOnlyLoader(ctx context.Context) ([]*types.ExerciseRecord, []*types.AliasRecord, error) {
	return []*types.ExerciseRecord{
		{
			ID:             "bench-press",
			Name:           "Bench Press",
			NormalizedName: "bench press",
			Type:           types.TypeStrength,
			IsActive:       true,
			Standards: &types.StrengthStandards{
				BaseType: types.BaseBodyweight,
				Standards: map[string]types.TierRatios{
					types.GenderMale: {Intermediate: 1.0, Advanced: 1.5, Elite: 2.0},
				},
			},
		},
	}, nil, nil
}

func maleProfile() *types.UserProfile {
	return &types.UserProfile{
		UserID:      "user-1",
		Gender:      types.GenderMale,
		WeightValue: 100,
		WeightUnit:  "kg",
	}
}

func TestRecalculateUserUpdatesChangedLevels(t *testing.T) {
	updates := map[string]string{}
	db := &mocks.MockDatabase{
		GetUserProfileFunc: func(ctx context.Context, id string) (*types.UserProfile, error) {
			return maleProfile(), nil
		},
		ListPersonalRecordsFunc: func(ctx context.Context, userID string) ([]*types.PersonalRecord, error) {
			return []*types.PersonalRecord{
				{ExerciseName: "bench press", Weight: 150, WeightUnit: "kg", StrengthLevel: types.LevelBeginner},
				{ExerciseName: "bench press", Weight: 100, WeightUnit: "kg", StrengthLevel: types.LevelIntermediate},
			}, nil
		},
		UpdatePersonalRecordFunc: func(ctx context.Context, userID, recordID string, data map[string]interface{}) error {
			level, _ := data["strength_level"].(string)
			updates[recordID] = level
			return nil
		},
	}

	cache := registry.NewCache(benchOnlyLoader, time.Minute, testLogger())
	r := New(db, cache, testLogger())

	summary, err := r.RecalculateUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("RecalculateUser: %v", err)
	}
	if summary.Updated != 1 || summary.Unchanged != 1 || summary.Failed != 0 {
		t.Errorf("summary = %+v, want 1 updated, 1 unchanged, 0 failed", summary)
	}
	if updates["bench press"] != string(types.LevelAdvanced) {
		t.Errorf("stored level = %q, want Advanced", updates["bench press"])
	}
}

func TestRecalculateUserContinuesPastFailures(t *testing.T) {
	calls := 0
	db := &mocks.MockDatabase{
		GetUserProfileFunc: func(ctx context.Context, id string) (*types.UserProfile, error) {
			return maleProfile(), nil
		},
		ListPersonalRecordsFunc: func(ctx context.Context, userID string) ([]*types.PersonalRecord, error) {
			return []*types.PersonalRecord{
				{ExerciseName: "bench press", Weight: 150, WeightUnit: "kg", StrengthLevel: types.LevelBeginner},
				{ExerciseName: "bench press", Weight: 210, WeightUnit: "kg", StrengthLevel: types.LevelBeginner},
			}, nil
		},
		UpdatePersonalRecordFunc: func(ctx context.Context, userID, recordID string, data map[string]interface{}) error {
			calls++
			if calls == 1 {
				return errors.New("firestore unavailable")
			}
			return nil
		},
	}

	cache := registry.NewCache(benchOnlyLoader, time.Minute, testLogger())
	r := New(db, cache, testLogger())

	summary, err := r.RecalculateUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("RecalculateUser: %v", err)
	}
	if summary.Failed != 1 || summary.Updated != 1 {
		t.Errorf("summary = %+v, want 1 failed and 1 updated", summary)
	}
}

func TestRecalculateUserProfileLoadErrorIsFatal(t *testing.T) {
	db := &mocks.MockDatabase{
		GetUserProfileFunc: func(ctx context.Context, id string) (*types.UserProfile, error) {
			return nil, errors.New("not found")
		},
	}

	cache := registry.NewCache(benchOnlyLoader, time.Minute, testLogger())
	r := New(db, cache, testLogger())

	if _, err := r.RecalculateUser(context.Background(), "missing"); err == nil {
		t.Fatal("expected error when profile load fails")
	}
}

func TestRecalculateUserNoRecordsIsNoop(t *testing.T) {
	db := &mocks.MockDatabase{
		GetUserProfileFunc: func(ctx context.Context, id string) (*types.UserProfile, error) {
			return maleProfile(), nil
		},
	}

	cache := registry.NewCache(benchOnlyLoader, time.Minute, testLogger())
	r := New(db, cache, testLogger())

	summary, err := r.RecalculateUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("RecalculateUser: %v", err)
	}
	if summary != (Summary{}) {
		t.Errorf("summary = %+v, want zero", summary)
	}
}
