// Package types holds the domain records shared across the engine, storage and
// service layers. Fields mirror the Firestore document shapes; validation is
// construction-time via the Has* helpers rather than falsy-value coercion.
package types

import "time"

// Gender values recognized by the strength standards tables. Anything else
// classifies as LevelNA.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Equipment enumerates how an exercise is loaded.
type Equipment string

const (
	EquipmentBarbell  Equipment = "barbell"
	EquipmentDumbbell Equipment = "dumbbell"
	EquipmentCable    Equipment = "cable"
	EquipmentMachine  Equipment = "machine"
	EquipmentSmith    Equipment = "smith"
	EquipmentOther    Equipment = "other"
)

// Category is the body-region grouping shown in the UI and used to pick the
// calorie estimation branch.
type Category string

const (
	CategoryUpperBody Category = "Upper Body"
	CategoryLowerBody Category = "Lower Body"
	CategoryCore      Category = "Core"
	CategoryFullBody  Category = "Full Body"
	CategoryCardio    Category = "Cardio"
	CategoryOther     Category = "Other"
)

// ExerciseType splits the registry into strength and cardio records.
type ExerciseType string

const (
	TypeStrength ExerciseType = "strength"
	TypeCardio   ExerciseType = "cardio"
)

// StrengthLevel is a proficiency tier relative to population ratio benchmarks.
type StrengthLevel string

const (
	LevelBeginner     StrengthLevel = "Beginner"
	LevelIntermediate StrengthLevel = "Intermediate"
	LevelAdvanced     StrengthLevel = "Advanced"
	LevelElite        StrengthLevel = "Elite"
	LevelNA           StrengthLevel = "N/A"
)

// Base quantities a strength standard can be expressed against.
const (
	BaseBodyweight         = "bw"
	BaseSkeletalMuscleMass = "smm"
)

// TierRatios are lifted-kg / base-kg thresholds for one gender.
type TierRatios struct {
	Intermediate float64
	Advanced     float64
	Elite        float64
}

// StrengthStandards holds per-gender ratio thresholds and the base quantity
// they normalize against.
type StrengthStandards struct {
	BaseType  string
	Standards map[string]TierRatios // keyed by GenderMale / GenderFemale
}

// ForGender returns the ratio table for a gender, or false if the record has
// no standards for it.
func (s *StrengthStandards) ForGender(gender string) (TierRatios, bool) {
	if s == nil || s.Standards == nil {
		return TierRatios{}, false
	}
	r, ok := s.Standards[gender]
	return r, ok
}

// ExerciseRecord is a canonical registry entry. NormalizedName is the lookup
// key; LegacyNames are prior keys that must keep resolving after renames.
type ExerciseRecord struct {
	ID             string
	Name           string
	NormalizedName string
	Equipment      Equipment
	Category       Category
	Type           ExerciseType
	Standards      *StrengthStandards
	LegacyNames    []string
	IsActive       bool
	UpdatedAt      time.Time
}

// AliasRecord maps an activity alias (already normalized) to a canonical
// exercise id. Many aliases may point at the same record.
type AliasRecord struct {
	Alias       string
	CanonicalID string
}

// UserProfile is the subset of the user document the engine reads. The engine
// never writes profiles.
type UserProfile struct {
	UserID                  string
	Gender                  string
	WeightValue             float64
	WeightUnit              string
	SkeletalMuscleMassValue float64
	SkeletalMuscleMassUnit  string
	HeightValue             float64
	HeightUnit              string
	Age                     int
	ExperienceLevel         string // beginner | intermediate | advanced
	ActivityLevel           string // sedentary .. extremely_active
	WeightGoal              string // lose | maintain | gain
	CardioCalculationMethod string // auto | manual
	WeeklyCardioGoal        int
	WeeklyCardioStretchGoal int
	UpdatedAt               time.Time
}

// HasGender reports whether the profile carries a gender the standards tables
// understand.
func (p *UserProfile) HasGender() bool {
	return p != nil && (p.Gender == GenderMale || p.Gender == GenderFemale)
}

// LoggedExercise is a single logged workout entry (one exercise, cardio or
// resistance). Calories > 0 means the value came from the user or a device and
// estimation must not overwrite it.
type LoggedExercise struct {
	Name         string
	Category     Category
	Sets         int
	Reps         int
	Weight       float64
	WeightUnit   string
	Distance     float64
	DistanceUnit string
	Duration     float64
	DurationUnit string
	Calories     int
	Date         time.Time
}

// PersonalRecord is a user's best lift for one exercise. StrengthLevel is
// derived and recomputed whenever the record or the owning profile changes.
type PersonalRecord struct {
	ExerciseName  string
	Weight        float64
	WeightUnit    string
	Date          time.Time
	Category      Category
	StrengthLevel StrengthLevel
}
