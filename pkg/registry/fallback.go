package registry

import "github.com/liftlog/server/pkg/types"

// legacyCanonical maps normalized names that predate the registry to the
// normalized name of the record that superseded them. Consulted only after
// the registry itself (active names, then legacy names, then aliases) has
// failed to resolve.
var legacyCanonical = map[string]string{
	"jogging":               "run",
	"jog":                   "run",
	"indoor run":            "treadmill run",
	"stairmaster":           "climbmill",
	"stair stepper":         "climbmill",
	"stationary bike":       "cycling",
	"spin":                  "cycling",
	"erg":                   "rowing",
	"indoor rowing":         "rowing",
	"flat bench press":      "bench press",
	"back squat":            "squat",
	"conventional deadlift": "deadlift",
	"military press":        "overhead press",
	"shoulder press":        "overhead press",
	"bent over row":         "barbell row",
	"chin up":               "pull up",
}

// builtinRecords is the hardcoded ultimate fallback used when the backing
// store is unavailable. It carries the exercises the dashboard cannot render
// without, with the same standards the migration seeder writes.
func builtinRecords() []*types.ExerciseRecord {
	return []*types.ExerciseRecord{
		{
			ID: "barbell-bench-press", Name: "Bench Press", NormalizedName: "bench press",
			Equipment: types.EquipmentBarbell, Category: types.CategoryUpperBody, Type: types.TypeStrength,
			IsActive: true,
			Standards: &types.StrengthStandards{
				BaseType: types.BaseBodyweight,
				Standards: map[string]types.TierRatios{
					types.GenderMale:   {Intermediate: 1.0, Advanced: 1.5, Elite: 2.0},
					types.GenderFemale: {Intermediate: 0.5, Advanced: 0.75, Elite: 1.0},
				},
			},
		},
		{
			ID: "barbell-squat", Name: "Squat", NormalizedName: "squat",
			Equipment: types.EquipmentBarbell, Category: types.CategoryLowerBody, Type: types.TypeStrength,
			IsActive: true,
			Standards: &types.StrengthStandards{
				BaseType: types.BaseBodyweight,
				Standards: map[string]types.TierRatios{
					types.GenderMale:   {Intermediate: 1.25, Advanced: 1.75, Elite: 2.5},
					types.GenderFemale: {Intermediate: 0.75, Advanced: 1.25, Elite: 1.5},
				},
			},
		},
		{
			ID: "barbell-deadlift", Name: "Deadlift", NormalizedName: "deadlift",
			Equipment: types.EquipmentBarbell, Category: types.CategoryLowerBody, Type: types.TypeStrength,
			IsActive: true,
			Standards: &types.StrengthStandards{
				BaseType: types.BaseBodyweight,
				Standards: map[string]types.TierRatios{
					types.GenderMale:   {Intermediate: 1.5, Advanced: 2.0, Elite: 2.5},
					types.GenderFemale: {Intermediate: 1.0, Advanced: 1.25, Elite: 1.75},
				},
			},
		},
		{
			ID: "barbell-overhead-press", Name: "Overhead Press", NormalizedName: "overhead press",
			Equipment: types.EquipmentBarbell, Category: types.CategoryUpperBody, Type: types.TypeStrength,
			IsActive: true,
			Standards: &types.StrengthStandards{
				BaseType: types.BaseBodyweight,
				Standards: map[string]types.TierRatios{
					types.GenderMale:   {Intermediate: 0.65, Advanced: 0.9, Elite: 1.25},
					types.GenderFemale: {Intermediate: 0.35, Advanced: 0.5, Elite: 0.75},
				},
			},
		},
		{
			ID: "barbell-row", Name: "Barbell Row", NormalizedName: "barbell row",
			Equipment: types.EquipmentBarbell, Category: types.CategoryUpperBody, Type: types.TypeStrength,
			IsActive: true,
			Standards: &types.StrengthStandards{
				BaseType: types.BaseBodyweight,
				Standards: map[string]types.TierRatios{
					types.GenderMale:   {Intermediate: 0.9, Advanced: 1.2, Elite: 1.5},
					types.GenderFemale: {Intermediate: 0.5, Advanced: 0.7, Elite: 0.9},
				},
			},
		},
		{
			ID: "other-pull-up", Name: "Pull Up", NormalizedName: "pull up",
			Equipment: types.EquipmentOther, Category: types.CategoryUpperBody, Type: types.TypeStrength,
			IsActive: true,
			// Pull strength tracks lean mass much closer than total bodyweight,
			// so this record normalizes against skeletal muscle mass.
			Standards: &types.StrengthStandards{
				BaseType: types.BaseSkeletalMuscleMass,
				Standards: map[string]types.TierRatios{
					types.GenderMale:   {Intermediate: 2.0, Advanced: 2.6, Elite: 3.2},
					types.GenderFemale: {Intermediate: 1.6, Advanced: 2.1, Elite: 2.6},
				},
			},
		},
		{
			ID: "other-run", Name: "Run", NormalizedName: "run",
			Equipment: types.EquipmentOther, Category: types.CategoryCardio, Type: types.TypeCardio,
			IsActive: true,
		},
		{
			ID: "machine-treadmill-run", Name: "Treadmill Run", NormalizedName: "treadmill run",
			Equipment: types.EquipmentMachine, Category: types.CategoryCardio, Type: types.TypeCardio,
			IsActive: true,
		},
		{
			ID: "other-walk", Name: "Walk", NormalizedName: "walk",
			Equipment: types.EquipmentOther, Category: types.CategoryCardio, Type: types.TypeCardio,
			IsActive: true,
		},
		{
			ID: "machine-elliptical", Name: "Elliptical", NormalizedName: "elliptical",
			Equipment: types.EquipmentMachine, Category: types.CategoryCardio, Type: types.TypeCardio,
			IsActive: true,
		},
		{
			ID: "other-cycling", Name: "Cycling", NormalizedName: "cycling",
			Equipment: types.EquipmentOther, Category: types.CategoryCardio, Type: types.TypeCardio,
			LegacyNames: []string{"bike", "cycle"},
			IsActive:    true,
		},
		{
			ID: "machine-rowing", Name: "Rowing", NormalizedName: "rowing",
			Equipment: types.EquipmentMachine, Category: types.CategoryCardio, Type: types.TypeCardio,
			LegacyNames: []string{"row machine"},
			IsActive:    true,
		},
		{
			ID: "other-swimming", Name: "Swimming", NormalizedName: "swimming",
			Equipment: types.EquipmentOther, Category: types.CategoryCardio, Type: types.TypeCardio,
			LegacyNames: []string{"swim"},
			IsActive:    true,
		},
		{
			ID: "machine-climbmill", Name: "Climbmill", NormalizedName: "climbmill",
			Equipment: types.EquipmentMachine, Category: types.CategoryCardio, Type: types.TypeCardio,
			IsActive: true,
		},
	}
}

// BuiltinIndex returns an index over the hardcoded fallback table. Used when
// the registry store has never been reachable.
func BuiltinIndex() *Index {
	return NewIndex(builtinRecords(), nil, nil)
}

// SeedRecords returns a fresh copy of the canonical seed set. The migration
// tool writes these to the store; they are the same records the runtime
// fallback serves.
func SeedRecords() []*types.ExerciseRecord {
	return builtinRecords()
}
