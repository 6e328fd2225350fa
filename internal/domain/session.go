package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseEntry is one performed exercise inside a finished session.
type ExerciseEntry struct {
	ExerciseTitle string    `bson:"exerciseTitle" json:"exerciseTitle"`
	Sets          int       `bson:"sets" json:"sets"`
	Weight        float64   `bson:"weight" json:"weight"`
	CompletedAt   time.Time `bson:"completedAt" json:"completedAt"`
}

// Session is a finalized WeeklyWorkoutSession. At most one may exist per
// (UserID, WorkoutType, DayOfWeek) inside a single week window.
type Session struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	WorkoutType WorkoutType        `bson:"workoutType" json:"workoutType"`
	DayOfWeek   DayOfWeek          `bson:"dayOfWeek" json:"dayOfWeek"`
	Exercises   []ExerciseEntry    `bson:"exercises" json:"exercises"`
	WeekStart   time.Time          `bson:"weekStart" json:"weekStart"`
	WeekEnd     time.Time          `bson:"weekEnd" json:"weekEnd"`
	CompletedAt time.Time          `bson:"completedAt" json:"completedAt"`
}

// DayStatus is the per-day entry of a weekly status report.
type DayStatus struct {
	Completed   bool            `json:"completed"`
	CompletedAt *time.Time      `json:"completedAt"`
	Exercises   []ExerciseEntry `json:"exercises"`
}

// WeeklyStatus maps every weekday label to its completion state.
type WeeklyStatus map[DayOfWeek]DayStatus
