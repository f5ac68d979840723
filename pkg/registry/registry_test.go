package registry

import (
	"log/slog"
	"testing"

	"github.com/liftlog/server/pkg/types"
)

func testRecords() []*types.ExerciseRecord {
	return []*types.ExerciseRecord{
		{
			ID: "barbell-bench-press", Name: "Bench Press", NormalizedName: "bench press",
			Equipment: types.EquipmentBarbell, Category: types.CategoryUpperBody,
			Type: types.TypeStrength, IsActive: true,
			LegacyNames: []string{"flat barbell bench"},
		},
		{
			ID: "other-run", Name: "Run", NormalizedName: "run",
			Equipment: types.EquipmentOther, Category: types.CategoryCardio,
			Type: types.TypeCardio, IsActive: true,
		},
		{
			ID: "machine-pec-deck", Name: "Pec Deck", NormalizedName: "pec deck",
			Equipment: types.EquipmentMachine, Category: types.CategoryUpperBody,
			Type: types.TypeStrength, IsActive: false, // deactivated, historical only
		},
	}
}

func TestIndexResolve(t *testing.T) {
	idx := NewIndex(testRecords(), []*types.AliasRecord{
		{Alias: "road running", CanonicalID: "other-run"},
	}, slog.Default())

	tests := []struct {
		name     string
		wantID   string
		wantNil  bool
	}{
		{name: "Bench Press", wantID: "barbell-bench-press"},
		{name: "  bench   press ", wantID: "barbell-bench-press"},
		{name: "EGYM Bench Press", wantID: "barbell-bench-press"},
		{name: "Bench Press (Paused)", wantID: "barbell-bench-press"},
		{name: "Flat Barbell Bench", wantID: "barbell-bench-press"}, // legacy name
		{name: "road running", wantID: "other-run"},                 // alias record
		{name: "Jogging", wantID: "other-run"},                      // static fallback map
		{name: "Pec Deck", wantNil: true},                           // inactive excluded
		{name: "Zercher Squat", wantNil: true},
		{name: "", wantNil: true},
	}

	for _, tt := range tests {
		rec := idx.Resolve(tt.name)
		if tt.wantNil {
			if rec != nil {
				t.Errorf("Resolve(%q) = %s, want nil", tt.name, rec.ID)
			}
			continue
		}
		if rec == nil {
			t.Errorf("Resolve(%q) = nil, want %s", tt.name, tt.wantID)
			continue
		}
		if rec.ID != tt.wantID {
			t.Errorf("Resolve(%q) = %s, want %s", tt.name, rec.ID, tt.wantID)
		}
	}
}

func TestIndexInactiveStillAddressableByID(t *testing.T) {
	idx := NewIndex(testRecords(), nil, slog.Default())

	if rec := idx.Get("machine-pec-deck"); rec == nil {
		t.Error("expected inactive record to remain addressable by id")
	}
	if idx.Len() != 2 {
		t.Errorf("Len() = %d, want 2 active entries", idx.Len())
	}
}

func TestIndexDuplicateKeepsFirst(t *testing.T) {
	records := []*types.ExerciseRecord{
		{ID: "barbell-squat", Name: "Squat", NormalizedName: "squat", IsActive: true},
		{ID: "barbell-barbell-squat", Name: "Squat", NormalizedName: "squat", IsActive: true},
	}

	idx := NewIndex(records, nil, slog.Default())

	rec := idx.Resolve("squat")
	if rec == nil || rec.ID != "barbell-squat" {
		t.Fatalf("expected first record to win duplicate claim, got %+v", rec)
	}
}

func TestAliasToInactiveRecordDoesNotResolve(t *testing.T) {
	idx := NewIndex(testRecords(), []*types.AliasRecord{
		{Alias: "chest fly machine", CanonicalID: "machine-pec-deck"},
	}, slog.Default())

	if rec := idx.Resolve("chest fly machine"); rec != nil {
		t.Errorf("alias to inactive record resolved to %s, want nil", rec.ID)
	}
}

func TestValidate(t *testing.T) {
	records := []*types.ExerciseRecord{
		{ID: "barbell-squat", Name: "Squat", NormalizedName: "squat", IsActive: true},
		{ID: "barbell-barbell-squat", Name: "Squat", NormalizedName: "squat", IsActive: true},
		{ID: "barbell-deadlift", Name: "Deadlift", NormalizedName: "deadlift", IsActive: true,
			LegacyNames: []string{"squat"}}, // legacy colliding with active name
		{ID: "machine-old-squat", Name: "Squat", NormalizedName: "squat", IsActive: false},
	}

	violations := Validate(records)
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(violations), violations)
	}
	if violations[0].RejectedID != "barbell-barbell-squat" {
		t.Errorf("first violation rejected %s, want barbell-barbell-squat", violations[0].RejectedID)
	}
	if violations[1].RejectedID != "barbell-deadlift" {
		t.Errorf("second violation rejected %s, want barbell-deadlift", violations[1].RejectedID)
	}
}

func TestValidateCleanSnapshot(t *testing.T) {
	if violations := Validate(builtinRecords()); len(violations) != 0 {
		t.Errorf("builtin table should satisfy the uniqueness invariant, got %v", violations)
	}
}

func TestBuiltinIndexResolvesCoreLifts(t *testing.T) {
	idx := BuiltinIndex()

	for _, name := range []string{"Bench Press", "Squat", "Deadlift", "Run", "jogging", "Chin Up"} {
		if idx.Resolve(name) == nil {
			t.Errorf("builtin index failed to resolve %q", name)
		}
	}
}
