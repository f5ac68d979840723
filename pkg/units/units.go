// Package units provides the scalar conversions every other engine package
// leans on. All functions are pure; unrecognized units fall through to the
// value unchanged where a sane identity exists, or 0 where it does not.
package units

import "strings"

const (
	LbsPerKg    = 2.20462
	KmPerMile   = 1.60934
	FeetPerMi   = 5280.0
	MetersPerMi = 1609.34
	CmPerInch   = 2.54
)

// LbsToKg converts pounds to kilograms.
func LbsToKg(lbs float64) float64 {
	return lbs / LbsPerKg
}

// KgToLbs converts kilograms to pounds.
func KgToLbs(kg float64) float64 {
	return kg * LbsPerKg
}

// WeightToKg normalizes a weight value to kilograms. Unknown units are
// treated as kilograms already.
func WeightToKg(value float64, unit string) float64 {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "lbs", "lb":
		return LbsToKg(value)
	default:
		return value
	}
}

// WeightFromKg converts kilograms into the requested display unit.
func WeightFromKg(kg float64, unit string) float64 {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "lbs", "lb":
		return KgToLbs(kg)
	default:
		return kg
	}
}

// DistanceToMiles normalizes a distance value to miles. Unrecognized units
// yield 0 so callers fall into their missing-data paths.
func DistanceToMiles(value float64, unit string) float64 {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "mi", "mile", "miles":
		return value
	case "km", "kilometer", "kilometers":
		return value / KmPerMile
	case "ft", "feet":
		return value / FeetPerMi
	case "m", "meter", "meters":
		return value / MetersPerMi
	default:
		return 0
	}
}

// DurationToMinutes normalizes a duration value to minutes. Unrecognized
// units are treated as minutes, the app default.
func DurationToMinutes(value float64, unit string) float64 {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "sec", "secs", "seconds", "s":
		return value / 60.0
	case "hr", "hrs", "hours", "h":
		return value * 60.0
	default:
		return value
	}
}

// InchesToCm converts inches to centimeters.
func InchesToCm(in float64) float64 {
	return in * CmPerInch
}

// CmToInches converts centimeters to inches.
func CmToInches(cm float64) float64 {
	return cm / CmPerInch
}
