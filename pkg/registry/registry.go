// Package registry resolves free-text exercise names to canonical registry
// records. Resolution is best-effort and never blocking: a miss returns nil
// and callers fall back to the normalized input string.
package registry

import (
	"fmt"
	"log/slog"

	"github.com/liftlog/server/pkg/types"
)

// DuplicateNameError reports a violation of the uniqueness invariant: at most
// one active record may claim a given normalized or legacy name.
type DuplicateNameError struct {
	Key        string
	KeptID     string
	RejectedID string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate normalized name %q: %s already claims it, %s rejected", e.Key, e.KeptID, e.RejectedID)
}

// Index is an immutable in-memory view of the exercise registry. Build it
// once from a store snapshot and share it freely; lookups are read-only.
type Index struct {
	byName   map[string]*types.ExerciseRecord
	byLegacy map[string]*types.ExerciseRecord
	byID     map[string]*types.ExerciseRecord
	byAlias  map[string]string
}

// NewIndex builds an index from registry records and alias records. Inactive
// records are kept addressable by id (historical display) but excluded from
// name lookups. Duplicate claims on a normalized or legacy name keep the
// first record seen and log the rest; write-time rejection belongs to
// Validate, the index must stay usable with dirty data.
func NewIndex(records []*types.ExerciseRecord, aliases []*types.AliasRecord, logger *slog.Logger) *Index {
	idx := &Index{
		byName:   make(map[string]*types.ExerciseRecord, len(records)),
		byLegacy: make(map[string]*types.ExerciseRecord),
		byID:     make(map[string]*types.ExerciseRecord, len(records)),
		byAlias:  make(map[string]string, len(aliases)),
	}

	for _, rec := range records {
		if rec == nil || rec.ID == "" {
			continue
		}
		idx.byID[rec.ID] = rec
		if !rec.IsActive {
			continue
		}
		key := rec.NormalizedName
		if key == "" {
			key = Normalize(rec.Name)
		}
		if existing, ok := idx.byName[key]; ok {
			if logger != nil {
				logger.Warn("Duplicate active exercise name in registry",
					"normalized_name", key,
					"kept_id", existing.ID,
					"dropped_id", rec.ID,
				)
			}
			continue
		}
		idx.byName[key] = rec
		for _, legacy := range rec.LegacyNames {
			lk := Normalize(legacy)
			if lk == "" || lk == key {
				continue
			}
			if existing, ok := idx.byLegacy[lk]; ok && existing.ID != rec.ID {
				if logger != nil {
					logger.Warn("Duplicate legacy exercise name in registry",
						"legacy_name", lk,
						"kept_id", existing.ID,
						"dropped_id", rec.ID,
					)
				}
				continue
			}
			idx.byLegacy[lk] = rec
		}
	}

	for _, alias := range aliases {
		if alias == nil || alias.Alias == "" || alias.CanonicalID == "" {
			continue
		}
		idx.byAlias[Normalize(alias.Alias)] = alias.CanonicalID
	}

	return idx
}

// Resolve maps a free-text exercise name to its canonical record, or nil if
// nothing matches. Search order: active normalized names, legacy names, alias
// table, then the static pre-registry fallback map.
func (idx *Index) Resolve(name string) *types.ExerciseRecord {
	key := Normalize(name)
	if key == "" {
		return nil
	}
	if rec := idx.lookup(key); rec != nil {
		return rec
	}
	if canonical, ok := legacyCanonical[key]; ok {
		return idx.lookup(canonical)
	}
	return nil
}

func (idx *Index) lookup(key string) *types.ExerciseRecord {
	if rec, ok := idx.byName[key]; ok {
		return rec
	}
	if rec, ok := idx.byLegacy[key]; ok {
		return rec
	}
	if id, ok := idx.byAlias[key]; ok {
		if rec, ok := idx.byID[id]; ok && rec.IsActive {
			return rec
		}
	}
	return nil
}

// Get returns a record by id, active or not.
func (idx *Index) Get(id string) *types.ExerciseRecord {
	return idx.byID[id]
}

// Len reports the number of active name entries.
func (idx *Index) Len() int {
	return len(idx.byName)
}

// Validate checks the uniqueness invariant over a prospective registry
// snapshot and returns every violation. Migration tooling runs this before
// writing; an empty result means the snapshot is safe to commit.
func Validate(records []*types.ExerciseRecord) []*DuplicateNameError {
	var violations []*DuplicateNameError
	claimed := make(map[string]string) // key -> record id

	for _, rec := range records {
		if rec == nil || !rec.IsActive {
			continue
		}
		keys := []string{rec.NormalizedName}
		if rec.NormalizedName == "" {
			keys[0] = Normalize(rec.Name)
		}
		for _, legacy := range rec.LegacyNames {
			if lk := Normalize(legacy); lk != "" && lk != keys[0] {
				keys = append(keys, lk)
			}
		}
		for _, key := range keys {
			if owner, ok := claimed[key]; ok && owner != rec.ID {
				violations = append(violations, &DuplicateNameError{
					Key:        key,
					KeptID:     owner,
					RejectedID: rec.ID,
				})
				continue
			}
			claimed[key] = rec.ID
		}
	}

	return violations
}
