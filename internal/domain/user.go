package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

const (
	RoleMember    Role = "member"
	RoleModerator Role = "moderator"
)

// NotificationPrefs holds the user's notification toggles.
type NotificationPrefs struct {
	WorkoutReminders  bool `bson:"workoutReminders" json:"workoutReminders"`
	CommunityActivity bool `bson:"communityActivity" json:"communityActivity"`
	WeeklySummary     bool `bson:"weeklySummary" json:"weeklySummary"`
}

// DefaultNotificationPrefs is applied to newly registered users.
func DefaultNotificationPrefs() NotificationPrefs {
	return NotificationPrefs{WorkoutReminders: true, CommunityActivity: true, WeeklySummary: true}
}

// User is an account together with its profile attributes.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // never exposed
	Role         Role               `bson:"role" json:"role"`

	Goals         []WorkoutType     `bson:"goals,omitempty" json:"goals,omitempty"`
	Notifications NotificationPrefs `bson:"notifications" json:"notifications"`
	HeightCm      float64           `bson:"heightCm,omitempty" json:"heightCm,omitempty"`
	WeightKg      float64           `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	AvatarKey     string            `bson:"avatarKey,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) IsModerator() bool {
	return u.Role == RoleModerator
}
