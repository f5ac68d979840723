package cardiotarget

import (
	"testing"

	"github.com/liftlog/server/pkg/types"
)

func TestWeeklyTargetsReferenceProfile(t *testing.T) {
	// 70 kg, maintain, moderately active, intermediate: every factor is
	// neutral, so base is the raw 600 baseline and stretch is 600 * 1.25.
	profile := &types.UserProfile{
		WeightValue:     70,
		WeightUnit:      "kg",
		WeightGoal:      "maintain",
		ActivityLevel:   "moderately_active",
		ExperienceLevel: "intermediate",
	}

	got := WeeklyTargets(profile, nil)
	if got.BaseGoal != 600 {
		t.Errorf("BaseGoal = %d, want 600", got.BaseGoal)
	}
	if got.StretchGoal != 750 {
		t.Errorf("StretchGoal = %d, want 750", got.StretchGoal)
	}
}

func TestWeeklyTargetsScalesWithFactors(t *testing.T) {
	// 90 kg, lose, very active, advanced:
	// 600 * 90/70 * 1.3 * 1.15 * 1.2 = 1383.9 -> 1384; stretch 1384 * 1.25.
	profile := &types.UserProfile{
		WeightValue:     90,
		WeightUnit:      "kg",
		WeightGoal:      "lose",
		ActivityLevel:   "very_active",
		ExperienceLevel: "advanced",
	}

	got := WeeklyTargets(profile, nil)
	if got.BaseGoal != 1384 {
		t.Errorf("BaseGoal = %d, want 1384", got.BaseGoal)
	}
	if got.StretchGoal != 1730 {
		t.Errorf("StretchGoal = %d, want 1730", got.StretchGoal)
	}
}

func TestWeeklyTargetsBounds(t *testing.T) {
	profiles := []*types.UserProfile{
		nil,
		{},
		{WeightValue: 40, WeightUnit: "kg", WeightGoal: "gain", ActivityLevel: "sedentary", ExperienceLevel: "beginner"},
		{WeightValue: 400, WeightUnit: "lbs", WeightGoal: "lose", ActivityLevel: "extremely_active", ExperienceLevel: "advanced"},
		{WeightValue: 70, WeightUnit: "kg", WeightGoal: "bulk", ActivityLevel: "couch", ExperienceLevel: "elite"},
	}

	for _, p := range profiles {
		got := WeeklyTargets(p, nil)
		if got.BaseGoal < MinBaseGoal || got.BaseGoal > MaxBaseGoal {
			t.Errorf("profile %+v: BaseGoal %d outside [%d, %d]", p, got.BaseGoal, MinBaseGoal, MaxBaseGoal)
		}
		if got.StretchGoal < MinStretchGoal || got.StretchGoal > MaxStretchGoal {
			t.Errorf("profile %+v: StretchGoal %d outside [%d, %d]", p, got.StretchGoal, MinStretchGoal, MaxStretchGoal)
		}
		if got.StretchGoal < got.BaseGoal {
			t.Errorf("profile %+v: stretch %d below base %d", p, got.StretchGoal, got.BaseGoal)
		}
	}
}

func TestWeeklyTargetsLowWeightClampsToFloor(t *testing.T) {
	// 45 kg gain/sedentary/beginner computes well under the floor.
	profile := &types.UserProfile{
		WeightValue:     45,
		WeightUnit:      "kg",
		WeightGoal:      "gain",
		ActivityLevel:   "sedentary",
		ExperienceLevel: "beginner",
	}

	got := WeeklyTargets(profile, nil)
	if got.BaseGoal != MinBaseGoal {
		t.Errorf("BaseGoal = %d, want clamped floor %d", got.BaseGoal, MinBaseGoal)
	}
}

func TestWeeklyTargetsRecentAverageRaisesBase(t *testing.T) {
	profile := &types.UserProfile{
		WeightValue:     70,
		WeightUnit:      "kg",
		WeightGoal:      "maintain",
		ActivityLevel:   "moderately_active",
		ExperienceLevel: "intermediate",
	}

	raised := WeeklyTargets(profile, &Options{RecentWeeklyAverage: 900})
	if raised.BaseGoal != 900 {
		t.Errorf("BaseGoal = %d, want raised to 900", raised.BaseGoal)
	}

	// A lower recent average never drags the base down.
	lowered := WeeklyTargets(profile, &Options{RecentWeeklyAverage: 200})
	if lowered.BaseGoal != 600 {
		t.Errorf("BaseGoal = %d, want unchanged 600", lowered.BaseGoal)
	}

	// The raised base still clamps to the safety band.
	extreme := WeeklyTargets(profile, &Options{RecentWeeklyAverage: 10000})
	if extreme.BaseGoal != MaxBaseGoal {
		t.Errorf("BaseGoal = %d, want clamped %d", extreme.BaseGoal, MaxBaseGoal)
	}
}

func TestWeeklyTargetsBeginnerStretchIsLargestRelative(t *testing.T) {
	base := &types.UserProfile{
		WeightValue:   70,
		WeightUnit:    "kg",
		WeightGoal:    "maintain",
		ActivityLevel: "moderately_active",
	}

	beginner := *base
	beginner.ExperienceLevel = "beginner"
	intermediate := *base
	intermediate.ExperienceLevel = "intermediate"

	b := WeeklyTargets(&beginner, nil)
	i := WeeklyTargets(&intermediate, nil)

	bRatio := float64(b.StretchGoal) / float64(b.BaseGoal)
	iRatio := float64(i.StretchGoal) / float64(i.BaseGoal)
	if bRatio <= iRatio {
		t.Errorf("beginner stretch ratio %.3f should exceed intermediate %.3f", bRatio, iRatio)
	}
}
