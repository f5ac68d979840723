package calories

import (
	"testing"

	"github.com/liftlog/server/pkg/types"
)

func liftingProfile(gender string) *types.UserProfile {
	return &types.UserProfile{
		Gender:      gender,
		WeightValue: 80,
		WeightUnit:  "kg",
	}
}

func TestEstimateResistanceZeroSets(t *testing.T) {
	exercise := types.LoggedExercise{
		Name:     "Bench Press",
		Category: types.CategoryUpperBody,
		Sets:     0, Reps: 8,
		Weight: 135, WeightUnit: "lbs",
	}

	if got := Estimate(exercise, liftingProfile(types.GenderMale), nil); got != 0 {
		t.Errorf("Estimate with sets=0 = %d, want 0", got)
	}
}

func TestEstimateResistanceBenchPress(t *testing.T) {
	// 3x10: 4 s/rep and 90 s rest. Work 120 s, rest 180 s.
	// Bench MET 5.8: 5.8*80*(120/3600) + 1.5*80*(180/3600) = 15.47 + 6 = 21.
	exercise := types.LoggedExercise{
		Name:     "Bench Press",
		Category: types.CategoryUpperBody,
		Sets:     3, Reps: 10,
		Weight: 100, WeightUnit: "kg",
	}

	if got := Estimate(exercise, liftingProfile(types.GenderMale), nil); got != 21 {
		t.Errorf("Estimate = %d, want 21", got)
	}
}

func TestEstimateResistanceFemaleMultiplier(t *testing.T) {
	exercise := types.LoggedExercise{
		Name:     "Squat",
		Category: types.CategoryLowerBody,
		Sets:     5, Reps: 5,
		Weight: 120, WeightUnit: "kg",
	}

	male := Estimate(exercise, liftingProfile(types.GenderMale), nil)
	female := Estimate(exercise, liftingProfile(types.GenderFemale), nil)

	if male <= 0 || female <= 0 {
		t.Fatalf("expected positive estimates, got male=%d female=%d", male, female)
	}
	if female >= male {
		t.Errorf("female estimate %d should be below male %d at equal bodyweight", female, male)
	}
}

func TestEstimateResistanceBodyweightPull(t *testing.T) {
	// Pull ups carry no logged weight; the load is the lifter's bodyweight
	// and the MET is the flat 8.5.
	// 3x8: 5 s/rep, 150 s rest. Work 120 s, rest 300 s.
	// 8.5*80*(120/3600) + 1.5*80*(300/3600) = 22.67 + 10 = 33.
	exercise := types.LoggedExercise{
		Name:     "Pull Up",
		Category: types.CategoryUpperBody,
		Sets:     3, Reps: 8,
	}

	if got := Estimate(exercise, liftingProfile(types.GenderMale), nil); got != 33 {
		t.Errorf("Estimate = %d, want 33", got)
	}
}

func TestEstimateResistanceUnloadedIsZero(t *testing.T) {
	// Not in the bodyweight list and no weight logged: nothing to score.
	exercise := types.LoggedExercise{
		Name:     "Face Pull",
		Category: types.CategoryUpperBody,
		Sets:     3, Reps: 15,
	}

	if got := Estimate(exercise, liftingProfile(types.GenderMale), nil); got != 0 {
		t.Errorf("Estimate = %d, want 0", got)
	}
}

func TestEstimateResistanceMissingProfile(t *testing.T) {
	exercise := types.LoggedExercise{
		Name:     "Deadlift",
		Category: types.CategoryLowerBody,
		Sets:     3, Reps: 5,
		Weight: 180, WeightUnit: "kg",
	}

	noGender := &types.UserProfile{WeightValue: 80, WeightUnit: "kg"}
	if got := Estimate(exercise, noGender, nil); got != 0 {
		t.Errorf("Estimate without gender = %d, want 0", got)
	}

	noWeight := &types.UserProfile{Gender: types.GenderMale}
	if got := Estimate(exercise, noWeight, nil); got != 0 {
		t.Errorf("Estimate without bodyweight = %d, want 0", got)
	}
}

func TestResistanceMETOrdering(t *testing.T) {
	// Compound lower-body lifts must score above isolation and machine work.
	squat := resistanceMET("squat")
	curl := resistanceMET("bicep curl")
	cable := resistanceMET("cable crossover")
	unknown := resistanceMET("mystery movement")

	if squat != 7.0 {
		t.Errorf("squat MET = %v, want 7.0", squat)
	}
	if !(squat > unknown && unknown > curl && curl > cable) {
		t.Errorf("MET ordering wrong: squat=%v unknown=%v curl=%v cable=%v", squat, unknown, curl, cable)
	}

	// Specific keywords beat generic ones.
	if legPress := resistanceMET("leg press"); legPress != 3+0.85*4 {
		t.Errorf("leg press MET = %v, want %v", legPress, 3+0.85*4)
	}
}

func TestTempoForReps(t *testing.T) {
	tests := []struct {
		reps      int
		secPerRep float64
		restSec   float64
	}{
		{3, 6.0, 180},
		{5, 6.0, 180},
		{8, 5.0, 150},
		{12, 4.0, 90},
		{15, 3.0, 60},
		{25, 2.5, 45},
	}

	for _, tt := range tests {
		sec, rest := tempoForReps(tt.reps)
		if sec != tt.secPerRep || rest != tt.restSec {
			t.Errorf("tempoForReps(%d) = (%v, %v), want (%v, %v)", tt.reps, sec, rest, tt.secPerRep, tt.restSec)
		}
	}
}
