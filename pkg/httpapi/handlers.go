// Package httpapi exposes the engine over HTTP for the mobile clients.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	shared "github.com/liftlog/server/pkg"
	"github.com/liftlog/server/pkg/calories"
	"github.com/liftlog/server/pkg/cardiotarget"
	infrapubsub "github.com/liftlog/server/pkg/infrastructure/pubsub"
	"github.com/liftlog/server/pkg/observability"
	"github.com/liftlog/server/pkg/registry"
	"github.com/liftlog/server/pkg/strength"
	"github.com/liftlog/server/pkg/types"
)

// recentLogWindow is how many recent cardio entries feed historical pace
// estimation.
const recentLogWindow = 20

// Handler handles HTTP interactions.
type Handler struct {
	db       shared.Database
	pub      shared.Publisher
	registry *registry.Cache
	logger   *slog.Logger
}

// NewHandler constructs Handler.
func NewHandler(db shared.Database, pub shared.Publisher, cache *registry.Cache, logger *slog.Logger) *Handler {
	return &Handler{db: db, pub: pub, registry: cache, logger: logger}
}

// Router builds the service router.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/exercises/{id}", h.getExercise)
		r.Post("/exercises/resolve", h.resolveExercise)
		r.Post("/strength/classify", h.classifyStrength)
		r.Post("/strength/thresholds", h.strengthThresholds)
		r.Post("/calories/estimate", h.estimateCalories)
		r.Post("/cardio/targets", h.cardioTargets)
		r.Post("/workouts/log", h.logWorkout)
		r.Post("/records", h.upsertRecord)
		r.Patch("/users/{id}/profile", h.updateProfile)
	})

	return r
}

// healthz returns an OK response for readiness probes.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// --- Resolve ---

// ResolveRequest represents the request payload.
type ResolveRequest struct {
	Name string `json:"name"`
}

// Validate ensures request integrity.
func (r ResolveRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

// ResolveResponse is the canonical record a name resolved to, if any.
type ResolveResponse struct {
	Matched        bool   `json:"matched"`
	NormalizedName string `json:"normalized_name"`
	CanonicalID    string `json:"canonical_id,omitempty"`
	CanonicalName  string `json:"canonical_name,omitempty"`
	Type           string `json:"type,omitempty"`
	Category       string `json:"category,omitempty"`
}

func (h *Handler) resolveExercise(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	resp := ResolveResponse{NormalizedName: registry.Normalize(req.Name)}
	if rec := h.registry.Index(r.Context()).Resolve(req.Name); rec != nil {
		resp.Matched = true
		resp.CanonicalID = rec.ID
		resp.CanonicalName = rec.Name
		resp.Type = string(rec.Type)
		resp.Category = string(rec.Category)
	}

	writeJSON(w, http.StatusOK, resp)
}

// getExercise returns one canonical registry record by id, straight from the
// store rather than the cached index so admin edits show up immediately.
func (h *Handler) getExercise(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.db.GetExercise(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "exercise not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":              rec.ID,
		"name":            rec.Name,
		"normalized_name": rec.NormalizedName,
		"equipment":       string(rec.Equipment),
		"category":        string(rec.Category),
		"type":            string(rec.Type),
		"is_active":       rec.IsActive,
	})
}

// --- Classify ---

// ClassifyRequest represents the request payload.
type ClassifyRequest struct {
	UserID       string  `json:"user_id"`
	ExerciseName string  `json:"exercise_name"`
	Weight       float64 `json:"weight"`
	WeightUnit   string  `json:"weight_unit"`
}

// Validate ensures request integrity.
func (r ClassifyRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required")
	}
	if strings.TrimSpace(r.ExerciseName) == "" {
		return errors.New("exercise_name is required")
	}
	return nil
}

func (h *Handler) classifyStrength(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	profile, err := h.db.GetUserProfile(r.Context(), req.UserID)
	if err != nil {
		h.logger.Error("Profile load failed", "user_id", req.UserID, "error", err)
		writeError(w, http.StatusNotFound, "not_found", "user profile not found")
		return
	}

	record := types.PersonalRecord{
		ExerciseName: req.ExerciseName,
		Weight:       req.Weight,
		WeightUnit:   req.WeightUnit,
	}
	level := strength.Classify(record, profile, h.registry.Index(r.Context()))
	observability.RecordClassification(string(level))

	writeJSON(w, http.StatusOK, map[string]string{"level": string(level)})
}

// --- Thresholds ---

// ThresholdsRequest represents the request payload.
type ThresholdsRequest struct {
	UserID       string `json:"user_id"`
	ExerciseName string `json:"exercise_name"`
	Unit         string `json:"unit"`
}

// Validate ensures request integrity.
func (r ThresholdsRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required")
	}
	if strings.TrimSpace(r.ExerciseName) == "" {
		return errors.New("exercise_name is required")
	}
	return nil
}

func (h *Handler) strengthThresholds(w http.ResponseWriter, r *http.Request) {
	var req ThresholdsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	unit := req.Unit
	if unit == "" {
		unit = "kg"
	}

	profile, err := h.db.GetUserProfile(r.Context(), req.UserID)
	if err != nil {
		h.logger.Error("Profile load failed", "user_id", req.UserID, "error", err)
		writeError(w, http.StatusNotFound, "not_found", "user profile not found")
		return
	}

	weights := strength.Thresholds(req.ExerciseName, profile, unit, h.registry.Index(r.Context()))
	if weights == nil {
		writeError(w, http.StatusNotFound, "no_standards", "no thresholds available for this exercise and profile")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"intermediate": weights.Intermediate,
		"advanced":     weights.Advanced,
		"elite":        weights.Elite,
		"unit":         weights.Unit,
	})
}

// --- Estimate ---

// EstimateRequest represents the request payload. The exercise fields mirror a
// workout log entry.
type EstimateRequest struct {
	UserID       string  `json:"user_id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	Weight       float64 `json:"weight"`
	WeightUnit   string  `json:"weight_unit"`
	Distance     float64 `json:"distance"`
	DistanceUnit string  `json:"distance_unit"`
	Duration     float64 `json:"duration"`
	DurationUnit string  `json:"duration_unit"`
	Calories     int     `json:"calories"`
}

// Validate ensures request integrity.
func (r EstimateRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

func (h *Handler) estimateCalories(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	profile, err := h.db.GetUserProfile(r.Context(), req.UserID)
	if err != nil {
		h.logger.Error("Profile load failed", "user_id", req.UserID, "error", err)
		writeError(w, http.StatusNotFound, "not_found", "user profile not found")
		return
	}

	exercise := types.LoggedExercise{
		Name:         req.Name,
		Category:     types.Category(req.Category),
		Sets:         req.Sets,
		Reps:         req.Reps,
		Weight:       req.Weight,
		WeightUnit:   req.WeightUnit,
		Distance:     req.Distance,
		DistanceUnit: req.DistanceUnit,
		Duration:     req.Duration,
		DurationUnit: req.DurationUnit,
		Calories:     req.Calories,
	}

	// History only matters for the cardio pace fallback.
	var recent []types.LoggedExercise
	if exercise.Category == types.CategoryCardio && exercise.Calories == 0 {
		recent, err = h.db.ListRecentCardioLogs(r.Context(), req.UserID, recentLogWindow)
		if err != nil {
			h.logger.Warn("Recent cardio history unavailable, using default pace",
				"user_id", req.UserID, "error", err)
			recent = nil
		}
	}

	kcal := calories.Estimate(exercise, profile, recent)
	observability.RecordCalorieEstimate(estimateBranch(exercise))

	writeJSON(w, http.StatusOK, map[string]int{"calories": kcal})
}

func estimateBranch(exercise types.LoggedExercise) string {
	switch {
	case exercise.Calories > 0:
		return "short_circuit"
	case exercise.Category == types.CategoryCardio:
		return "cardio"
	default:
		return "resistance"
	}
}

// --- Targets ---

// TargetsRequest represents the request payload.
type TargetsRequest struct {
	UserID              string  `json:"user_id"`
	RecentWeeklyAverage float64 `json:"recent_weekly_average"`
}

// Validate ensures request integrity.
func (r TargetsRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required")
	}
	return nil
}

func (h *Handler) cardioTargets(w http.ResponseWriter, r *http.Request) {
	var req TargetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	profile, err := h.db.GetUserProfile(r.Context(), req.UserID)
	if err != nil {
		h.logger.Error("Profile load failed", "user_id", req.UserID, "error", err)
		writeError(w, http.StatusNotFound, "not_found", "user profile not found")
		return
	}

	targets := cardiotarget.WeeklyTargets(profile, &cardiotarget.Options{
		RecentWeeklyAverage: req.RecentWeeklyAverage,
	})

	writeJSON(w, http.StatusOK, map[string]int{
		"base_goal":    targets.BaseGoal,
		"stretch_goal": targets.StretchGoal,
	})
}

// --- Workout logs ---

// LogWorkoutRequest represents the request payload. Calories of zero means the
// client wants the entry estimated before it is stored.
type LogWorkoutRequest struct {
	UserID       string  `json:"user_id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	Weight       float64 `json:"weight"`
	WeightUnit   string  `json:"weight_unit"`
	Distance     float64 `json:"distance"`
	DistanceUnit string  `json:"distance_unit"`
	Duration     float64 `json:"duration"`
	DurationUnit string  `json:"duration_unit"`
	Calories     int     `json:"calories"`
	Date         string  `json:"date"` // RFC 3339, defaults to now
}

// Validate ensures request integrity.
func (r LogWorkoutRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if r.Date != "" {
		if _, err := time.Parse(time.RFC3339, r.Date); err != nil {
			return errors.New("date must be RFC 3339")
		}
	}
	return nil
}

func (h *Handler) logWorkout(w http.ResponseWriter, r *http.Request) {
	var req LogWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	profile, err := h.db.GetUserProfile(r.Context(), req.UserID)
	if err != nil {
		h.logger.Error("Profile load failed", "user_id", req.UserID, "error", err)
		writeError(w, http.StatusNotFound, "not_found", "user profile not found")
		return
	}

	entry := types.LoggedExercise{
		Name:         req.Name,
		Category:     types.Category(req.Category),
		Sets:         req.Sets,
		Reps:         req.Reps,
		Weight:       req.Weight,
		WeightUnit:   req.WeightUnit,
		Distance:     req.Distance,
		DistanceUnit: req.DistanceUnit,
		Duration:     req.Duration,
		DurationUnit: req.DurationUnit,
		Calories:     req.Calories,
		Date:         time.Now().UTC(),
	}
	if req.Date != "" {
		entry.Date, _ = time.Parse(time.RFC3339, req.Date)
	}

	// Device-reported calories stay as-is; everything else gets estimated
	// before the entry is persisted.
	if entry.Calories == 0 {
		var recent []types.LoggedExercise
		if entry.Category == types.CategoryCardio {
			recent, err = h.db.ListRecentCardioLogs(r.Context(), req.UserID, recentLogWindow)
			if err != nil {
				h.logger.Warn("Recent cardio history unavailable, using default pace",
					"user_id", req.UserID, "error", err)
				recent = nil
			}
		}
		observability.RecordCalorieEstimate(estimateBranch(entry))
		entry.Calories = calories.Estimate(entry, profile, recent)
	}

	id, err := h.db.AddWorkoutLog(r.Context(), req.UserID, &entry)
	if err != nil {
		h.logger.Error("Workout log write failed", "user_id", req.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "write_failed", "unable to store workout log")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":       id,
		"calories": entry.Calories,
	})
}

// --- Records ---

// UpsertRecordRequest represents the request payload.
type UpsertRecordRequest struct {
	UserID       string  `json:"user_id"`
	ExerciseName string  `json:"exercise_name"`
	Weight       float64 `json:"weight"`
	WeightUnit   string  `json:"weight_unit"`
}

// Validate ensures request integrity.
func (r UpsertRecordRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required")
	}
	if strings.TrimSpace(r.ExerciseName) == "" {
		return errors.New("exercise_name is required")
	}
	if r.Weight <= 0 {
		return errors.New("weight must be positive")
	}
	return nil
}

// upsertRecord stores a personal record under the normalized exercise name and
// classifies it on the way in, so reads never see an unclassified record.
func (h *Handler) upsertRecord(w http.ResponseWriter, r *http.Request) {
	var req UpsertRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	profile, err := h.db.GetUserProfile(r.Context(), req.UserID)
	if err != nil {
		h.logger.Error("Profile load failed", "user_id", req.UserID, "error", err)
		writeError(w, http.StatusNotFound, "not_found", "user profile not found")
		return
	}

	idx := h.registry.Index(r.Context())
	record := types.PersonalRecord{
		ExerciseName: registry.Normalize(req.ExerciseName),
		Weight:       req.Weight,
		WeightUnit:   req.WeightUnit,
		Date:         time.Now().UTC(),
		Category:     types.CategoryOther,
	}
	if rec := idx.Resolve(req.ExerciseName); rec != nil {
		record.Category = rec.Category
	}
	record.StrengthLevel = strength.Classify(record, profile, idx)
	observability.RecordClassification(string(record.StrengthLevel))

	if err := h.db.SetPersonalRecord(r.Context(), req.UserID, &record); err != nil {
		h.logger.Error("Record write failed", "user_id", req.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "write_failed", "unable to store record")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"exercise_name": record.ExerciseName,
		"weight":        record.Weight,
		"level":         string(record.StrengthLevel),
	})
}

// --- Profile ---

// UpdateProfileRequest represents the request payload. Pointer fields
// distinguish "leave alone" from "set to zero value".
type UpdateProfileRequest struct {
	Gender           *string  `json:"gender"`
	WeightValue      *float64 `json:"weight_value"`
	WeightUnit       *string  `json:"weight_unit"`
	Age              *int     `json:"age"`
	ExperienceLevel  *string  `json:"experience_level"`
	ActivityLevel    *string  `json:"activity_level"`
	WeightGoal       *string  `json:"weight_goal"`
	WeeklyCardioGoal *int     `json:"weekly_cardio_calorie_goal"`
}

// fields builds the Firestore update map, returning the changed field names.
func (r UpdateProfileRequest) fields() (map[string]interface{}, []string) {
	data := map[string]interface{}{}
	if r.Gender != nil {
		data["gender"] = *r.Gender
	}
	if r.WeightValue != nil {
		data["weight_value"] = *r.WeightValue
	}
	if r.WeightUnit != nil {
		data["weight_unit"] = *r.WeightUnit
	}
	if r.Age != nil {
		data["age"] = *r.Age
	}
	if r.ExperienceLevel != nil {
		data["experience_level"] = *r.ExperienceLevel
	}
	if r.ActivityLevel != nil {
		data["activity_level"] = *r.ActivityLevel
	}
	if r.WeightGoal != nil {
		data["weight_goal"] = *r.WeightGoal
	}
	if r.WeeklyCardioGoal != nil {
		data["weekly_cardio_calorie_goal"] = *r.WeeklyCardioGoal
	}

	changed := make([]string, 0, len(data))
	for name := range data {
		changed = append(changed, name)
	}
	return data, changed
}

// updateProfile patches profile fields and fans the change out to the recalc
// worker, which recomputes the user's stored strength levels.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	data, changed := req.fields()
	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, "validation_failed", "no fields to update")
		return
	}
	data["updated_at"] = time.Now().UTC()

	if err := h.db.UpdateUserProfile(r.Context(), userID, data); err != nil {
		h.logger.Error("Profile update failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "write_failed", "unable to update profile")
		return
	}

	// Recalculation is best effort here; a missed event only delays the
	// fan-out until the next profile change.
	e, err := infrapubsub.NewCloudEvent("httpapi", infrapubsub.EventTypeProfileUpdated,
		infrapubsub.ProfileUpdatedPayload{UserID: userID, ChangedFields: changed})
	if err == nil {
		_, err = h.pub.PublishCloudEvent(r.Context(), shared.TopicProfileUpdated, e)
	}
	if err != nil {
		h.logger.Warn("Profile-updated publish failed", "user_id", userID, "error", err)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user_id": userID,
		"updated": changed,
	})
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, map[string]string{"type": code, "detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
