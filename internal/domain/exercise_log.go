package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseLogEntry records a single exercise performed by a user. Logging is
// never gated by the weekly session lock.
type ExerciseLogEntry struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        string             `bson:"userId" json:"userId"`
	WorkoutType   WorkoutType        `bson:"workoutType" json:"workoutType"`
	DayOfWeek     DayOfWeek          `bson:"dayOfWeek" json:"dayOfWeek"`
	ExerciseTitle string             `bson:"exerciseTitle" json:"exerciseTitle"`
	Sets          int                `bson:"sets" json:"sets"`
	Weight        float64            `bson:"weight" json:"weight"`
	WeekStart     time.Time          `bson:"weekStart" json:"weekStart"`
	CompletedAt   time.Time          `bson:"completedAt" json:"completedAt"`
}

// Entry converts the log record into the shape stored on a session.
func (l ExerciseLogEntry) Entry() ExerciseEntry {
	return ExerciseEntry{
		ExerciseTitle: l.ExerciseTitle,
		Sets:          l.Sets,
		Weight:        l.Weight,
		CompletedAt:   l.CompletedAt,
	}
}
