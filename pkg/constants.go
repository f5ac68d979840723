package shared

const (
	ProjectID = "liftlog-project" // Can be overridden by env var in main if needed

	TopicProfileUpdated   = "topic-profile-updated"
	TopicRegistryUpdated  = "topic-registry-updated"
	TopicRecordReclassify = "topic-record-reclassify"

	SubRecalcProfileUpdated  = "sub-recalc-profile-updated"
	SubRecalcRegistryUpdated = "sub-recalc-registry-updated"

	CollectionUsers           = "users"
	CollectionExercises       = "exercises"
	CollectionExerciseAliases = "exercise_aliases"
	CollectionPersonalRecords = "personal_records"
	CollectionWorkoutLogs     = "workout_logs"
)
