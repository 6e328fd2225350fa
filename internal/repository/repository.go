package repository

import (
	"context"
	"time"

	"fitnesshub/fitness-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = RepositoryError("duplicate key")
	// ErrUnavailable wraps timeouts and connectivity failures; callers may retry.
	ErrUnavailable = RepositoryError("store unavailable")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// SessionFilter selects weekly sessions by owner, program and completion time
// range. An empty DayOfWeek matches every day.
type SessionFilter struct {
	UserID      string
	WorkoutType domain.WorkoutType
	DayOfWeek   domain.DayOfWeek
	From        time.Time
	To          time.Time
}

// SessionRepository persists finalized weekly sessions. Implementations must
// enforce uniqueness over (userId, workoutType, dayOfWeek, weekStart) and
// report violations as ErrDuplicate.
type SessionRepository interface {
	Insert(ctx context.Context, session *domain.Session) (*domain.Session, error)
	FindOne(ctx context.Context, filter SessionFilter) (*domain.Session, error)
	FindMany(ctx context.Context, filter SessionFilter) ([]domain.Session, error)
}

// ExerciseLogRepository stores the append-only per-exercise log.
type ExerciseLogRepository interface {
	Create(ctx context.Context, entry *domain.ExerciseLogEntry) (primitive.ObjectID, error)
	FindByDay(ctx context.Context, userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, weekStart time.Time) ([]domain.ExerciseLogEntry, error)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateGoals(ctx context.Context, id primitive.ObjectID, goals []domain.WorkoutType) error
	UpdateNotifications(ctx context.Context, id primitive.ObjectID, prefs domain.NotificationPrefs) error
	UpdateBodyMetrics(ctx context.Context, id primitive.ObjectID, heightCm, weightKg float64) error
	SetAvatarKey(ctx context.Context, id primitive.ObjectID, key string) error
}

// PostRepository defines the interface for community posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error)
	// List returns posts newest first. A zero before means "from the newest".
	List(ctx context.Context, limit int, before time.Time) ([]domain.Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncrementCounters(ctx context.Context, id primitive.ObjectID, likes, comments int) error
}

// CommentRepository defines the interface for post comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID primitive.ObjectID) ([]domain.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) error
}

// LikeRepository defines the interface for post likes. Create returns
// ErrDuplicate when the user already liked the post.
type LikeRepository interface {
	Create(ctx context.Context, like *domain.Like) (primitive.ObjectID, error)
	Delete(ctx context.Context, postID, userID primitive.ObjectID) error
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) error
}
