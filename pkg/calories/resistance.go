package calories

import (
	"strings"

	"github.com/liftlog/server/pkg/registry"
	"github.com/liftlog/server/pkg/types"
	"github.com/liftlog/server/pkg/units"
)

// bodyweightKeywords mark exercises where the moved load is the lifter's own
// bodyweight rather than the logged weight.
var bodyweightKeywords = []string{"pull up", "pull-up", "pullup", "chin up", "chin-up", "chinup", "dip", "push up", "push-up", "pushup"}

// bodyweightPullKeywords are the pulling/dipping subset that gets a flat high
// MET: hoisting the whole body over a bar costs more than the factor table
// would suggest.
var bodyweightPullKeywords = []string{"pull up", "pull-up", "pullup", "chin up", "chin-up", "chinup", "dip"}

const bodyweightPullMET = 8.5

// restMET is the background rate applied to time between sets.
const restMET = 1.5

// femaleMultiplier reflects the average lower resting and working metabolic
// rate used by the estimator.
const femaleMultiplier = 0.92

// calorieFactors map name keywords onto a 0..1 intensity factor; MET = 3 +
// factor*4. Compound lower-body lifts sit at the top, isolation and
// cable/machine movements at the bottom. Ordered: first match wins, so the
// specific entries ("leg press") precede the generic ones ("press").
var calorieFactors = []struct {
	keyword string
	factor  float64
}{
	{"leg press", 0.85},
	{"hip thrust", 0.85},
	{"squat", 1.0},
	{"deadlift", 1.0},
	{"clean", 1.0},
	{"snatch", 1.0},
	{"lunge", 0.9},
	{"bench", 0.7},
	{"row", 0.7},
	{"press", 0.65},
	{"push up", 0.6},
	{"push-up", 0.6},
	{"pushup", 0.6},
	{"pulldown", 0.55},
	{"curl", 0.35},
	{"extension", 0.35},
	{"plank", 0.35},
	{"raise", 0.3},
	{"fly", 0.3},
	{"crunch", 0.3},
	{"cable", 0.25},
	{"machine", 0.25},
}

const defaultCalorieFactor = 0.5

// repTempos estimates seconds per rep and rest between sets from the rep
// scheme. Low-rep work assumes heavier loads, slower bar speed and longer
// rests; high-rep work the opposite.
var repTempos = []struct {
	maxReps   int
	secPerRep float64
	restSec   float64
}{
	{5, 6.0, 180},
	{8, 5.0, 150},
	{12, 4.0, 90},
	{20, 3.0, 60},
}

const (
	fallbackSecPerRep = 2.5
	fallbackRestSec   = 45
)

func tempoForReps(reps int) (secPerRep, restSec float64) {
	for _, t := range repTempos {
		if reps <= t.maxReps {
			return t.secPerRep, t.restSec
		}
	}
	return fallbackSecPerRep, fallbackRestSec
}

func isBodyweightExercise(normalized string) bool {
	return containsAny(normalized, bodyweightKeywords...)
}

func resistanceMET(normalized string) float64 {
	if containsAny(normalized, bodyweightPullKeywords...) {
		return bodyweightPullMET
	}
	for _, cf := range calorieFactors {
		if strings.Contains(normalized, cf.keyword) {
			return 3 + cf.factor*4
		}
	}
	return 3 + defaultCalorieFactor*4
}

// estimateResistance implements the resistance branch: decompose the set
// scheme into work and rest time, scale by an exercise MET and the gender
// multiplier. Preconditions (sets, reps, bodyweight, gender, load) that fail
// yield 0.
func estimateResistance(exercise types.LoggedExercise, profile *types.UserProfile) int {
	if exercise.Sets <= 0 || exercise.Reps <= 0 {
		return 0
	}
	weightKg := units.WeightToKg(profile.WeightValue, profile.WeightUnit)
	if weightKg <= 0 {
		return 0
	}
	if !profile.HasGender() {
		return 0
	}

	normalized := registry.Normalize(exercise.Name)

	loadKg := units.WeightToKg(exercise.Weight, exercise.WeightUnit)
	if isBodyweightExercise(normalized) {
		loadKg = weightKg
	}
	if loadKg <= 0 {
		// Unloaded movement outside the bodyweight list: nothing to score.
		return 0
	}

	secPerRep, restSec := tempoForReps(exercise.Reps)
	workHours := secPerRep * float64(exercise.Reps) * float64(exercise.Sets) / 3600.0
	restHours := restSec * float64(exercise.Sets-1) / 3600.0 // no rest after the final set

	met := resistanceMET(normalized)

	genderMult := 1.0
	if profile.Gender == types.GenderFemale {
		genderMult = femaleMultiplier
	}

	workKcal := met * weightKg * workHours * genderMult
	restKcal := restMET * weightKg * restHours * genderMult
	return roundKcal(workKcal + restKcal)
}
