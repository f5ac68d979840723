// Package calories estimates calories burned for logged exercises. Cardio
// entries go through MET tables keyed by pace or activity; resistance entries
// use a work/rest time decomposition with per-exercise MET heuristics.
//
// Estimates are supplementary, never authoritative: missing data silently
// yields 0 ("unknown, don't display") and a known calorie value is returned
// unchanged.
package calories

import (
	"math"

	"github.com/liftlog/server/pkg/types"
)

// Estimate returns whole kcal burned for a logged exercise, always >= 0.
// A positive exercise.Calories short-circuits: estimation never overwrites a
// value supplied by the user or a device. recentLogs feeds the historical
// pace fallback for cardio entries logged without a duration.
func Estimate(exercise types.LoggedExercise, profile *types.UserProfile, recentLogs []types.LoggedExercise) int {
	if exercise.Calories > 0 {
		return exercise.Calories
	}
	if profile == nil {
		return 0
	}
	if exercise.Category == types.CategoryCardio {
		return estimateCardio(exercise, profile, recentLogs)
	}
	return estimateResistance(exercise, profile)
}

// roundKcal collapses a float estimate to the stored integer form, clamping
// degenerate negatives to the 0 sentinel.
func roundKcal(kcal float64) int {
	if kcal <= 0 || math.IsNaN(kcal) || math.IsInf(kcal, 0) {
		return 0
	}
	return int(math.Round(kcal))
}
