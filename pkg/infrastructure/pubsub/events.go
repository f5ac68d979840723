package pubsub

import (
	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
)

// Event types carried over the internal topics.
const (
	EventTypeProfileUpdated   = "com.liftlog.user.profile.updated"
	EventTypeRegistryUpdated  = "com.liftlog.registry.updated"
	EventTypeRecordReclassify = "com.liftlog.records.reclassify"
)

// ProfileUpdatedPayload announces that a user profile changed in a way that can
// invalidate derived strength levels (weight, muscle mass, age, gender).
type ProfileUpdatedPayload struct {
	UserID        string   `json:"user_id"`
	ChangedFields []string `json:"changed_fields,omitempty"`
}

// RegistryUpdatedPayload announces a registry write so cached indexes reload.
type RegistryUpdatedPayload struct {
	ExerciseID string `json:"exercise_id"`
	Renamed    bool   `json:"renamed"`
}

// NewCloudEvent creates a standardized CloudEvent v1.0
func NewCloudEvent(source, eventType string, data interface{}) (cloudevents.Event, error) {
	e := cloudevents.NewEvent()
	e.SetSpecVersion("1.0")
	e.SetID(uuid.NewString())
	e.SetType(eventType)
	e.SetSource(source)

	if err := e.SetData(cloudevents.ApplicationJSON, data); err != nil {
		return e, err
	}

	return e, nil
}
