package firestore

import (
	"time"

	"github.com/liftlog/server/pkg/types"
)

// Helper to safely get string from map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Helper to safely get float from map. Firestore decodes numbers as int64 or
// float64 depending on how they were written.
func getFloat(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}

func getInt(m map[string]interface{}, key string) int {
	return int(getFloat(m, key))
}

func getBool(m map[string]interface{}, key string) bool {
	if v, ok := m[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func getTime(m map[string]interface{}, key string) time.Time {
	if v, ok := m[key]; ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}

func getStringSlice(m map[string]interface{}, key string) []string {
	v, ok := m[key]
	if !ok {
		return nil
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func getMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key]; ok {
		if mm, ok := v.(map[string]interface{}); ok {
			return mm
		}
	}
	return nil
}

// --- ExerciseRecord Converters ---

func ExerciseToFirestore(e *types.ExerciseRecord) map[string]interface{} {
	m := map[string]interface{}{
		"id":              e.ID,
		"name":            e.Name,
		"normalized_name": e.NormalizedName,
		"equipment":       string(e.Equipment),
		"category":        string(e.Category),
		"type":            string(e.Type),
		"is_active":       e.IsActive,
	}

	if !e.UpdatedAt.IsZero() {
		m["updated_at"] = e.UpdatedAt
	}
	if len(e.LegacyNames) > 0 {
		m["legacy_names"] = e.LegacyNames
	}
	if e.Standards != nil {
		standards := make(map[string]interface{}, len(e.Standards.Standards))
		for gender, ratios := range e.Standards.Standards {
			standards[gender] = map[string]interface{}{
				"intermediate": ratios.Intermediate,
				"advanced":     ratios.Advanced,
				"elite":        ratios.Elite,
			}
		}
		m["strength_standards"] = map[string]interface{}{
			"base_type": e.Standards.BaseType,
			"standards": standards,
		}
	}

	return m
}

func FirestoreToExercise(m map[string]interface{}) *types.ExerciseRecord {
	e := &types.ExerciseRecord{
		ID:             getString(m, "id"),
		Name:           getString(m, "name"),
		NormalizedName: getString(m, "normalized_name"),
		Equipment:      types.Equipment(getString(m, "equipment")),
		Category:       types.Category(getString(m, "category")),
		Type:           types.ExerciseType(getString(m, "type")),
		LegacyNames:    getStringSlice(m, "legacy_names"),
		IsActive:       getBool(m, "is_active"),
		UpdatedAt:      getTime(m, "updated_at"),
	}

	if raw := getMap(m, "strength_standards"); raw != nil {
		std := &types.StrengthStandards{
			BaseType:  getString(raw, "base_type"),
			Standards: make(map[string]types.TierRatios),
		}
		for gender, v := range getMap(raw, "standards") {
			ratios, ok := v.(map[string]interface{})
			if !ok {
				continue
			}
			std.Standards[gender] = types.TierRatios{
				Intermediate: getFloat(ratios, "intermediate"),
				Advanced:     getFloat(ratios, "advanced"),
				Elite:        getFloat(ratios, "elite"),
			}
		}
		e.Standards = std
	}

	return e
}

// --- AliasRecord Converters ---

func AliasToFirestore(a *types.AliasRecord) map[string]interface{} {
	return map[string]interface{}{
		"alias":        a.Alias,
		"canonical_id": a.CanonicalID,
	}
}

func FirestoreToAlias(m map[string]interface{}) *types.AliasRecord {
	return &types.AliasRecord{
		Alias:       getString(m, "alias"),
		CanonicalID: getString(m, "canonical_id"),
	}
}

// --- UserProfile Converters ---

func UserProfileToFirestore(u *types.UserProfile) map[string]interface{} {
	m := map[string]interface{}{
		"user_id": u.UserID,
	}

	if u.Gender != "" {
		m["gender"] = u.Gender
	}
	if u.WeightValue > 0 {
		m["weight_value"] = u.WeightValue
		m["weight_unit"] = u.WeightUnit
	}
	if u.SkeletalMuscleMassValue > 0 {
		m["skeletal_muscle_mass_value"] = u.SkeletalMuscleMassValue
		m["skeletal_muscle_mass_unit"] = u.SkeletalMuscleMassUnit
	}
	if u.HeightValue > 0 {
		m["height_value"] = u.HeightValue
		m["height_unit"] = u.HeightUnit
	}
	if u.Age > 0 {
		m["age"] = u.Age
	}
	if u.ExperienceLevel != "" {
		m["experience_level"] = u.ExperienceLevel
	}
	if u.ActivityLevel != "" {
		m["activity_level"] = u.ActivityLevel
	}
	if u.WeightGoal != "" {
		m["weight_goal"] = u.WeightGoal
	}
	if u.CardioCalculationMethod != "" {
		m["cardio_calculation_method"] = u.CardioCalculationMethod
	}
	if u.WeeklyCardioGoal > 0 {
		m["weekly_cardio_calorie_goal"] = u.WeeklyCardioGoal
	}
	if u.WeeklyCardioStretchGoal > 0 {
		m["weekly_cardio_stretch_calorie_goal"] = u.WeeklyCardioStretchGoal
	}
	if !u.UpdatedAt.IsZero() {
		m["updated_at"] = u.UpdatedAt
	}

	return m
}

func FirestoreToUserProfile(m map[string]interface{}) *types.UserProfile {
	return &types.UserProfile{
		UserID:                  getString(m, "user_id"),
		Gender:                  getString(m, "gender"),
		WeightValue:             getFloat(m, "weight_value"),
		WeightUnit:              getString(m, "weight_unit"),
		SkeletalMuscleMassValue: getFloat(m, "skeletal_muscle_mass_value"),
		SkeletalMuscleMassUnit:  getString(m, "skeletal_muscle_mass_unit"),
		HeightValue:             getFloat(m, "height_value"),
		HeightUnit:              getString(m, "height_unit"),
		Age:                     getInt(m, "age"),
		ExperienceLevel:         getString(m, "experience_level"),
		ActivityLevel:           getString(m, "activity_level"),
		WeightGoal:              getString(m, "weight_goal"),
		CardioCalculationMethod: getString(m, "cardio_calculation_method"),
		WeeklyCardioGoal:        getInt(m, "weekly_cardio_calorie_goal"),
		WeeklyCardioStretchGoal: getInt(m, "weekly_cardio_stretch_calorie_goal"),
		UpdatedAt:               getTime(m, "updated_at"),
	}
}

// --- PersonalRecord Converters ---

func PersonalRecordToFirestore(r *types.PersonalRecord) map[string]interface{} {
	m := map[string]interface{}{
		"exercise_name": r.ExerciseName,
		"weight":        r.Weight,
		"weight_unit":   r.WeightUnit,
		"category":      string(r.Category),
	}

	if !r.Date.IsZero() {
		m["date"] = r.Date
	}
	if r.StrengthLevel != "" {
		m["strength_level"] = string(r.StrengthLevel)
	}

	return m
}

func FirestoreToPersonalRecord(m map[string]interface{}) *types.PersonalRecord {
	return &types.PersonalRecord{
		ExerciseName:  getString(m, "exercise_name"),
		Weight:        getFloat(m, "weight"),
		WeightUnit:    getString(m, "weight_unit"),
		Date:          getTime(m, "date"),
		Category:      types.Category(getString(m, "category")),
		StrengthLevel: types.StrengthLevel(getString(m, "strength_level")),
	}
}

// --- LoggedExercise Converters ---

func LoggedExerciseToFirestore(l *types.LoggedExercise) map[string]interface{} {
	m := map[string]interface{}{
		"name":     l.Name,
		"category": string(l.Category),
	}

	if l.Sets > 0 {
		m["sets"] = l.Sets
	}
	if l.Reps > 0 {
		m["reps"] = l.Reps
	}
	if l.Weight > 0 {
		m["weight"] = l.Weight
		m["weight_unit"] = l.WeightUnit
	}
	if l.Distance > 0 {
		m["distance"] = l.Distance
		m["distance_unit"] = l.DistanceUnit
	}
	if l.Duration > 0 {
		m["duration"] = l.Duration
		m["duration_unit"] = l.DurationUnit
	}
	if l.Calories > 0 {
		m["calories"] = l.Calories
	}
	if !l.Date.IsZero() {
		m["date"] = l.Date
	}

	return m
}

func FirestoreToLoggedExercise(m map[string]interface{}) *types.LoggedExercise {
	return &types.LoggedExercise{
		Name:         getString(m, "name"),
		Category:     types.Category(getString(m, "category")),
		Sets:         getInt(m, "sets"),
		Reps:         getInt(m, "reps"),
		Weight:       getFloat(m, "weight"),
		WeightUnit:   getString(m, "weight_unit"),
		Distance:     getFloat(m, "distance"),
		DistanceUnit: getString(m, "distance_unit"),
		Duration:     getFloat(m, "duration"),
		DurationUnit: getString(m, "duration_unit"),
		Calories:     getInt(m, "calories"),
		Date:         getTime(m, "date"),
	}
}
