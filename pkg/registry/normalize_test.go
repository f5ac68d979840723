package registry

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Bench Press", "bench press"},
		{"  Bench   Press  ", "bench press"},
		{"EGYM Chest Press", "chest press"},
		{"egym chest press", "chest press"},
		{"Lateral Raise (Per Arm)", "lateral raise"},
		{"Cable Row (Seated) (Wide Grip)", "cable row"},
		{"(Warmup) EGYM Leg Press", "leg press"},
		{"", ""},
		{"   ", ""},
		{"EGYM", "egym"}, // bare token, not a prefix
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Bench Press",
		"EGYM EGYM Chest Press",
		"Lateral Raise (Per Arm)",
		"  (x) egym  Squat  ",
		"deadlift",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
