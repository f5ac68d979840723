// Package cardiotarget computes weekly cardio calorie goals from a user
// profile. All multipliers and bounds live in fixed tables; the formulas are
// expected to evolve, the shape is not.
package cardiotarget

import (
	"math"

	"github.com/liftlog/server/pkg/types"
	"github.com/liftlog/server/pkg/units"
)

// weeklyBaseline is derived from public-health cardio-minute guidance
// (150 moderate minutes) at the reference bodyweight.
const (
	weeklyBaseline    = 600.0
	referenceWeightKg = 70.0
)

// Safety bands. Base and stretch clamp independently.
const (
	MinBaseGoal    = 400
	MaxBaseGoal    = 2500
	MinStretchGoal = 500
	MaxStretchGoal = 3000
)

var weightGoalFactors = map[string]float64{
	"lose":     1.3,
	"maintain": 1.0,
	"gain":     0.85,
}

var activityLevelFactors = map[string]float64{
	"sedentary":         0.8,
	"lightly_active":    0.9,
	"moderately_active": 1.0,
	"very_active":       1.15,
	"extremely_active":  1.3,
}

var experienceFactors = map[string]float64{
	"beginner":     0.85,
	"intermediate": 1.0,
	"advanced":     1.2,
}

// Beginners get the largest relative stretch: the gap between doing a little
// and doing a bit more is where the habit forms.
var stretchFactors = map[string]float64{
	"beginner":     1.4,
	"intermediate": 1.25,
	"advanced":     1.25,
}

// Targets are the computed weekly goals in kcal.
type Targets struct {
	BaseGoal    int
	StretchGoal int
}

// Options tune the computation.
type Options struct {
	// RecentWeeklyAverage, when positive and above the computed base, raises
	// the base to match: targets follow the user up, never drag them down.
	RecentWeeklyAverage float64
}

// WeeklyTargets computes the base and stretch weekly cardio calorie goals.
// Unknown profile fields fall back to the neutral factor; a missing weight
// skips the bodyweight scaling entirely.
func WeeklyTargets(profile *types.UserProfile, opts *Options) Targets {
	base := weeklyBaseline

	if profile != nil {
		if weightKg := units.WeightToKg(profile.WeightValue, profile.WeightUnit); weightKg > 0 {
			base *= weightKg / referenceWeightKg
		}
		base *= factorOr(weightGoalFactors, profile.WeightGoal, 1.0)
		base *= factorOr(activityLevelFactors, profile.ActivityLevel, 1.0)
		base *= factorOr(experienceFactors, profile.ExperienceLevel, 1.0)
	}

	if opts != nil && opts.RecentWeeklyAverage > base {
		base = opts.RecentWeeklyAverage
	}

	base = clamp(base, MinBaseGoal, MaxBaseGoal)

	stretchFactor := 1.25
	if profile != nil {
		stretchFactor = factorOr(stretchFactors, profile.ExperienceLevel, stretchFactor)
	}
	stretch := clamp(base*stretchFactor, MinStretchGoal, MaxStretchGoal)
	if stretch < base {
		stretch = base
	}

	return Targets{
		BaseGoal:    int(math.Round(base)),
		StretchGoal: int(math.Round(stretch)),
	}
}

func factorOr(table map[string]float64, key string, fallback float64) float64 {
	if f, ok := table[key]; ok {
		return f
	}
	return fallback
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
