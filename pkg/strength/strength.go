// Package strength classifies lifted weights into proficiency tiers against
// bodyweight- or muscle-mass-relative ratio standards.
//
// This is a display-classification helper, not a validated pipeline: every
// unresolvable precondition yields LevelNA, never an error. Absence of data
// is expected (new users, exotic exercises).
package strength

import (
	"math"

	"github.com/liftlog/server/pkg/registry"
	"github.com/liftlog/server/pkg/types"
	"github.com/liftlog/server/pkg/units"
)

// TierWeights are the lifted-weight thresholds for each tier, expressed in
// Unit. A lift exactly at a displayed threshold classifies at or above that
// tier.
type TierWeights struct {
	Intermediate float64
	Advanced     float64
	Elite        float64
	Unit         string
}

// Classify computes the proficiency tier for a personal record given the
// owner's profile. Returns LevelNA when the exercise has no strength
// standards, the profile lacks a recognized gender, or the required base
// quantity is missing.
func Classify(record types.PersonalRecord, profile *types.UserProfile, idx *registry.Index) types.StrengthLevel {
	rec := idx.Resolve(record.ExerciseName)
	if rec == nil || rec.Standards == nil {
		return types.LevelNA
	}
	if !profile.HasGender() {
		return types.LevelNA
	}

	base := baseQuantityKg(rec.Standards, profile)
	if base <= 0 {
		return types.LevelNA
	}

	lifted := units.WeightToKg(record.Weight, record.WeightUnit)
	if lifted <= 0 {
		return types.LevelNA
	}

	ratios, ok := rec.Standards.ForGender(profile.Gender)
	if !ok {
		return types.LevelNA
	}

	ratio := lifted / base * ageFactor(profile.Age)

	// Highest tier first so boundaries are never double counted.
	switch {
	case ratio >= ratios.Elite:
		return types.LevelElite
	case ratio >= ratios.Advanced:
		return types.LevelAdvanced
	case ratio >= ratios.Intermediate:
		return types.LevelIntermediate
	default:
		return types.LevelBeginner
	}
}

// Thresholds inverts Classify: the lifted weight required for each tier, in
// outputUnit. Values round up so a lift exactly at a displayed threshold is
// guaranteed to classify at or above that tier. Returns nil under the same
// missing-data conditions that make Classify return LevelNA.
func Thresholds(exerciseName string, profile *types.UserProfile, outputUnit string, idx *registry.Index) *TierWeights {
	rec := idx.Resolve(exerciseName)
	if rec == nil || rec.Standards == nil {
		return nil
	}
	if !profile.HasGender() {
		return nil
	}

	base := baseQuantityKg(rec.Standards, profile)
	if base <= 0 {
		return nil
	}

	ratios, ok := rec.Standards.ForGender(profile.Gender)
	if !ok {
		return nil
	}

	factor := ageFactor(profile.Age)
	required := func(ratio float64) float64 {
		kg := ratio * base / factor
		return math.Ceil(units.WeightFromKg(kg, outputUnit))
	}

	return &TierWeights{
		Intermediate: required(ratios.Intermediate),
		Advanced:     required(ratios.Advanced),
		Elite:        required(ratios.Elite),
		Unit:         outputUnit,
	}
}

// baseQuantityKg selects and converts the normalization base. Unknown base
// types yield 0 so callers take their N/A path.
func baseQuantityKg(std *types.StrengthStandards, profile *types.UserProfile) float64 {
	switch std.BaseType {
	case types.BaseBodyweight:
		return units.WeightToKg(profile.WeightValue, profile.WeightUnit)
	case types.BaseSkeletalMuscleMass:
		return units.WeightToKg(profile.SkeletalMuscleMassValue, profile.SkeletalMuscleMassUnit)
	default:
		return 0
	}
}

// ageFactor is the linear masters adjustment: +1% per year past 40, uncapped.
func ageFactor(age int) float64 {
	if age > 40 {
		return 1 + float64(age-40)*0.01
	}
	return 1
}
