package service

import (
	"context"
	"errors"
	"time"

	"fitnesshub/fitness-app/internal/domain"
	"fitnesshub/fitness-app/internal/repository"
)

// DefaultStoreTimeout bounds every store call made by the workout services.
const DefaultStoreTimeout = 5 * time.Second

// callStore runs fn under a timeout and turns expiry or connectivity errors
// into a TransientStoreError. Other errors are returned unchanged.
func callStore(ctx context.Context, timeout time.Duration, op string, fn func(ctx context.Context) error) error {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := fn(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrUnavailable) || errors.Is(err, context.DeadlineExceeded) {
		return &TransientStoreError{Op: op, Err: err}
	}
	return err
}

// Recorder receives business events for metrics. metrics.Manager implements it.
type Recorder interface {
	SessionCompleted(workoutType domain.WorkoutType)
	CompletionRejected(reason string)
	ExerciseLogged(workoutType domain.WorkoutType)
	FeedEvent(eventType domain.FeedEventType)
}

type noopRecorder struct{}

func (noopRecorder) SessionCompleted(domain.WorkoutType) {}
func (noopRecorder) CompletionRejected(string)           {}
func (noopRecorder) ExerciseLogged(domain.WorkoutType)   {}
func (noopRecorder) FeedEvent(domain.FeedEventType)      {}
