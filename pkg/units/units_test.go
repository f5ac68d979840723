package units

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestWeightToKg(t *testing.T) {
	tests := []struct {
		value    float64
		unit     string
		expected float64
	}{
		{100, "kg", 100},
		{220.462, "lbs", 100},
		{220.462, "LBS", 100},
		{45, "lb", 45 / 2.20462},
		{80, "", 80}, // unknown unit treated as kg
	}

	for _, tt := range tests {
		got := WeightToKg(tt.value, tt.unit)
		if !almostEqual(got, tt.expected) {
			t.Errorf("WeightToKg(%v, %q) = %v, want %v", tt.value, tt.unit, got, tt.expected)
		}
	}
}

func TestWeightRoundTrip(t *testing.T) {
	kg := WeightToKg(135, "lbs")
	back := WeightFromKg(kg, "lbs")
	if !almostEqual(back, 135) {
		t.Errorf("lbs->kg->lbs round trip = %v, want 135", back)
	}
}

func TestDistanceToMiles(t *testing.T) {
	tests := []struct {
		value    float64
		unit     string
		expected float64
	}{
		{1, "mi", 1},
		{1.60934, "km", 1},
		{5280, "ft", 1},
		{1609.34, "m", 1},
		{5, "furlongs", 0}, // unknown unit yields 0
	}

	for _, tt := range tests {
		got := DistanceToMiles(tt.value, tt.unit)
		if !almostEqual(got, tt.expected) {
			t.Errorf("DistanceToMiles(%v, %q) = %v, want %v", tt.value, tt.unit, got, tt.expected)
		}
	}
}

func TestDurationToMinutes(t *testing.T) {
	tests := []struct {
		value    float64
		unit     string
		expected float64
	}{
		{90, "sec", 1.5},
		{1.5, "hr", 90},
		{30, "min", 30},
		{30, "", 30},
	}

	for _, tt := range tests {
		got := DurationToMinutes(tt.value, tt.unit)
		if !almostEqual(got, tt.expected) {
			t.Errorf("DurationToMinutes(%v, %q) = %v, want %v", tt.value, tt.unit, got, tt.expected)
		}
	}
}

func TestInchesCm(t *testing.T) {
	if !almostEqual(InchesToCm(10), 25.4) {
		t.Errorf("InchesToCm(10) = %v, want 25.4", InchesToCm(10))
	}
	if !almostEqual(CmToInches(25.4), 10) {
		t.Errorf("CmToInches(25.4) = %v, want 10", CmToInches(25.4))
	}
}
