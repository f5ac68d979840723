package firestore

import (
	"cloud.google.com/go/firestore"

	shared "github.com/liftlog/server/pkg"
	"github.com/liftlog/server/pkg/types"
)

type Client struct {
	fs *firestore.Client
}

func NewClient(client *firestore.Client) *Client {
	return &Client{fs: client}
}

func (c *Client) Close() error {
	return c.fs.Close()
}

func (c *Client) Users() *Collection[types.UserProfile] {
	return &Collection[types.UserProfile]{
		Ref:           c.fs.Collection(shared.CollectionUsers),
		ToFirestore:   UserProfileToFirestore,
		FromFirestore: FirestoreToUserProfile,
	}
}

// Exercises is the top-level canonical registry: exercises/{id}
func (c *Client) Exercises() *Collection[types.ExerciseRecord] {
	return &Collection[types.ExerciseRecord]{
		Ref:           c.fs.Collection(shared.CollectionExercises),
		ToFirestore:   ExerciseToFirestore,
		FromFirestore: FirestoreToExercise,
	}
}

// ExerciseAliases is a top-level collection: exercise_aliases/{alias}
func (c *Client) ExerciseAliases() *Collection[types.AliasRecord] {
	return &Collection[types.AliasRecord]{
		Ref:           c.fs.Collection(shared.CollectionExerciseAliases),
		ToFirestore:   AliasToFirestore,
		FromFirestore: FirestoreToAlias,
	}
}

// PersonalRecords are sub-collections of Users:
// users/{uid}/personal_records/{normalizedName}
func (c *Client) PersonalRecords(userID string) *Collection[types.PersonalRecord] {
	return &Collection[types.PersonalRecord]{
		Ref:           c.fs.Collection(shared.CollectionUsers).Doc(userID).Collection(shared.CollectionPersonalRecords),
		ToFirestore:   PersonalRecordToFirestore,
		FromFirestore: FirestoreToPersonalRecord,
	}
}

// WorkoutLogs are sub-collections of Users: users/{uid}/workout_logs/{id}
func (c *Client) WorkoutLogs(userID string) *Collection[types.LoggedExercise] {
	return &Collection[types.LoggedExercise]{
		Ref:           c.fs.Collection(shared.CollectionUsers).Doc(userID).Collection(shared.CollectionWorkoutLogs),
		ToFirestore:   LoggedExerciseToFirestore,
		FromFirestore: FirestoreToLoggedExercise,
	}
}
