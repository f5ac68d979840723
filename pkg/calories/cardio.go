package calories

import (
	"strings"

	"github.com/liftlog/server/pkg/registry"
	"github.com/liftlog/server/pkg/types"
	"github.com/liftlog/server/pkg/units"
)

// cardioActivity is the keyword-derived activity family. Pace-based families
// pick a MET by speed; fixed-MET families use a constant.
type cardioActivity int

const (
	activityUnknown cardioActivity = iota
	activityRun
	activityWalk
	activityElliptical
	activityRowing
	activityCycling
	activitySwimming
	activityClimbmill
)

// runningMETBySpeed maps treadmill speeds (mph) to MET values. Lookup is
// nearest-neighbor, the table is deliberately sparse.
var runningMETBySpeed = map[float64]float64{
	5.0:  8.3,
	5.2:  9.0,
	6.0:  9.8,
	6.7:  10.5,
	7.0:  11.0,
	7.5:  11.5,
	8.0:  11.8,
	8.6:  12.3,
	9.0:  12.8,
	10.0: 14.5,
	11.0: 16.0,
	12.0: 19.0,
}

var walkingMETBySpeed = map[float64]float64{
	2.0: 2.8,
	2.5: 3.0,
	3.0: 3.5,
	3.5: 4.3,
	4.0: 5.0,
	4.5: 7.0,
	5.0: 8.3,
}

// fixedMET holds constant MET values for non-pace activities.
var fixedMET = map[cardioActivity]float64{
	activityRowing:    7.0,
	activityCycling:   7.5,
	activitySwimming:  8.0,
	activityClimbmill: 9.0,
}

// defaultPaceMinPerMi supplies a pace when neither the entry nor the user's
// history provides one. Used to derive duration from distance (fixed-MET
// activities) or a MET from a duration-only entry (pace-based activities).
var defaultPaceMinPerMi = map[cardioActivity]float64{
	activityRun:        10.0,
	activityWalk:       20.0,
	activityElliptical: 12.0,
	activityRowing:     7.5,
	activityCycling:    4.0,
	activitySwimming:   30.0,
}

// classifyCardioActivity buckets an exercise name into an activity family by
// keyword. Walk is checked before the run family so "Treadmill Walk" lands on
// the walking table.
func classifyCardioActivity(name string) cardioActivity {
	n := registry.Normalize(name)
	switch {
	case containsAny(n, "walk"):
		return activityWalk
	case containsAny(n, "run", "jog", "treadmill", "sprint"):
		return activityRun
	case containsAny(n, "elliptical"):
		return activityElliptical
	case containsAny(n, "row", "erg"):
		return activityRowing
	case containsAny(n, "cycle", "cycling", "bike", "spin"):
		return activityCycling
	case containsAny(n, "swim"):
		return activitySwimming
	case containsAny(n, "climbmill", "stairmaster", "stair"):
		return activityClimbmill
	default:
		return activityUnknown
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// estimateCardio implements the cardio branch: establish a MET and a positive
// duration, then kcal = MET * weight(kg) * hours. Anything unresolvable
// yields 0.
func estimateCardio(exercise types.LoggedExercise, profile *types.UserProfile, recentLogs []types.LoggedExercise) int {
	weightKg := units.WeightToKg(profile.WeightValue, profile.WeightUnit)
	if weightKg <= 0 {
		return 0
	}

	distanceMi := units.DistanceToMiles(exercise.Distance, exercise.DistanceUnit)
	durationMin := units.DurationToMinutes(exercise.Duration, exercise.DurationUnit)
	if exercise.Duration <= 0 {
		durationMin = 0
	}
	if distanceMi <= 0 && durationMin <= 0 {
		return 0
	}

	activity := classifyCardioActivity(exercise.Name)

	var met float64
	switch activity {
	case activityRun, activityWalk, activityElliptical:
		var pace float64 // minutes per mile
		switch {
		case durationMin > 0 && distanceMi > 0:
			pace = durationMin / distanceMi
		case distanceMi > 0:
			// No duration logged: estimate pace from the user's own history
			// for this activity family, then derive the duration from it.
			pace = paceFromHistory(activity, exercise.DistanceUnit, recentLogs)
			durationMin = pace * distanceMi
		default:
			// Duration-only entry: the default pace stands in for the
			// unknown speed when picking a MET.
			pace = defaultPaceMinPerMi[activity]
		}
		met = paceMET(activity, pace)
	case activityRowing, activityCycling, activitySwimming:
		met = fixedMET[activity]
		if durationMin <= 0 {
			durationMin = distanceMi * defaultPaceMinPerMi[activity]
		}
	case activityClimbmill:
		// Climbmill distance is floors, not miles: duration is mandatory.
		met = fixedMET[activityClimbmill]
		if durationMin <= 0 {
			return 0
		}
	default:
		return 0
	}

	if met <= 0 || durationMin <= 0 {
		return 0
	}

	return roundKcal(met * weightKg * (durationMin / 60.0))
}

// paceMET resolves minutes-per-mile to a MET via nearest tabulated speed.
// The table follows the activity family, not the pace: a slow run still uses
// the running table.
func paceMET(activity cardioActivity, paceMinPerMi float64) float64 {
	if paceMinPerMi <= 0 {
		return 0
	}
	table := runningMETBySpeed
	if activity == activityWalk {
		table = walkingMETBySpeed
	}
	mph := 60.0 / paceMinPerMi

	var bestSpeed, bestDelta float64
	first := true
	for speed := range table {
		delta := mph - speed
		if delta < 0 {
			delta = -delta
		}
		if first || delta < bestDelta || (delta == bestDelta && speed < bestSpeed) {
			bestSpeed, bestDelta = speed, delta
			first = false
		}
	}
	return table[bestSpeed]
}

// paceFromHistory averages the pace of prior logs in the same activity
// family and distance unit, requiring positive distance and duration.
// Falls back to the family default when no usable history exists.
func paceFromHistory(activity cardioActivity, distanceUnit string, recentLogs []types.LoggedExercise) float64 {
	var sum float64
	var count int
	for _, entry := range recentLogs {
		if classifyCardioActivity(entry.Name) != activity {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(entry.DistanceUnit), strings.TrimSpace(distanceUnit)) {
			continue
		}
		mi := units.DistanceToMiles(entry.Distance, entry.DistanceUnit)
		min := units.DurationToMinutes(entry.Duration, entry.DurationUnit)
		if mi <= 0 || min <= 0 {
			continue
		}
		sum += min / mi
		count++
	}
	if count == 0 {
		return defaultPaceMinPerMi[activity]
	}
	return sum / float64(count)
}
