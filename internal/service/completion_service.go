package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitnesshub/fitness-app/internal/domain"
	"fitnesshub/fitness-app/internal/repository"

	log "github.com/sirupsen/logrus"
)

// CompletionService gates "finish workout" actions to one completion per
// calendar week per (user, workout type, day label). A zero reference time
// means "now".
type CompletionService interface {
	WeekBounds(ref time.Time) domain.WeekBounds
	CheckCompletion(ctx context.Context, userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, ref time.Time) (*domain.Session, error)
	MarkCompleted(ctx context.Context, userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, exercises []domain.ExerciseEntry, ref time.Time) (*domain.Session, error)
	GetWeeklyStatus(ctx context.Context, userID string, workoutType domain.WorkoutType, ref time.Time) (domain.WeeklyStatus, error)
}

// CompletionOptions configures the tracker.
type CompletionOptions struct {
	Location     *time.Location   // calendar used for week bounds, UTC when nil
	StoreTimeout time.Duration    // per store call, DefaultStoreTimeout when zero
	Now          func() time.Time // clock, time.Now when nil
	Recorder     Recorder
}

// completionService implements the CompletionService interface.
type completionService struct {
	sessionRepo  repository.SessionRepository
	location     *time.Location
	storeTimeout time.Duration
	now          func() time.Time
	recorder     Recorder
}

// NewCompletionService creates a new instance of completionService.
func NewCompletionService(sessionRepo repository.SessionRepository, opts CompletionOptions) CompletionService {
	s := &completionService{
		sessionRepo:  sessionRepo,
		location:     opts.Location,
		storeTimeout: opts.StoreTimeout,
		now:          opts.Now,
		recorder:     opts.Recorder,
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if s.storeTimeout <= 0 {
		s.storeTimeout = DefaultStoreTimeout
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.recorder == nil {
		s.recorder = noopRecorder{}
	}
	return s
}

// refOrNow resolves the reference instant at stored precision so that a
// completion written at ref is found again by a lookup at ref.
func (s *completionService) refOrNow(ref time.Time) time.Time {
	if ref.IsZero() {
		ref = s.now()
	}
	return ref.Truncate(domain.TimePrecision)
}

// WeekBounds returns the Monday-Sunday window containing ref.
func (s *completionService) WeekBounds(ref time.Time) domain.WeekBounds {
	return domain.ComputeWeekBounds(s.refOrNow(ref), s.location)
}

// CheckCompletion returns the session finished this week for the key, or nil
// when the day is still unlocked.
func (s *completionService) CheckCompletion(ctx context.Context, userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, ref time.Time) (*domain.Session, error) {
	if err := validateSessionKey(userID, workoutType, day); err != nil {
		return nil, err
	}
	week := s.WeekBounds(ref)

	var session *domain.Session
	err := callStore(ctx, s.storeTimeout, "check completion", func(ctx context.Context) error {
		var err error
		session, err = s.sessionRepo.FindOne(ctx, repository.SessionFilter{
			UserID:      userID,
			WorkoutType: workoutType,
			DayOfWeek:   day,
			From:        week.Start,
			To:          week.End,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("check completion: %w", err)
	}
	return session, nil
}

// MarkCompleted finalizes the session for the current week. The pre-check
// gives the common case a clean answer; the store's unique index settles
// concurrent attempts that both pass it.
func (s *completionService) MarkCompleted(ctx context.Context, userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, exercises []domain.ExerciseEntry, ref time.Time) (*domain.Session, error) {
	if err := validateSessionKey(userID, workoutType, day); err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, &ValidationError{Field: "exercises", Reason: "at least one exercise is required"}
	}
	for _, e := range exercises {
		if err := validateExercise(e); err != nil {
			return nil, err
		}
	}

	ref = s.refOrNow(ref)
	logger := log.WithFields(log.Fields{
		"user":        userID,
		"workoutType": workoutType,
		"day":         day,
	})

	existing, err := s.CheckCompletion(ctx, userID, workoutType, day, ref)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.recorder.CompletionRejected("already_completed")
		logger.Debugf("session already completed at %s", existing.CompletedAt)
		return nil, fmt.Errorf("%s %s: %w", workoutType, day, ErrAlreadyCompleted)
	}

	week := s.WeekBounds(ref)
	entries := make([]domain.ExerciseEntry, len(exercises))
	for i, e := range exercises {
		if e.CompletedAt.IsZero() {
			e.CompletedAt = ref
		}
		e.CompletedAt = e.CompletedAt.Truncate(domain.TimePrecision).UTC()
		entries[i] = e
	}

	session := &domain.Session{
		UserID:      userID,
		WorkoutType: workoutType,
		DayOfWeek:   day,
		Exercises:   entries,
		WeekStart:   week.Start.UTC(),
		WeekEnd:     week.End.UTC(),
		CompletedAt: ref.UTC(),
	}

	err = callStore(ctx, s.storeTimeout, "mark completed", func(ctx context.Context) error {
		var err error
		session, err = s.sessionRepo.Insert(ctx, session)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.recorder.CompletionRejected("duplicate_insert")
			logger.Info("concurrent completion rejected by unique index")
			return nil, fmt.Errorf("%s %s: %w", workoutType, day, ErrAlreadyCompleted)
		}
		if errors.Is(err, ErrTransientStore) {
			s.recorder.CompletionRejected("transient")
		}
		return nil, fmt.Errorf("mark completed: %w", err)
	}

	s.recorder.SessionCompleted(workoutType)
	logger.Infof("session completed for week starting %s", session.WeekStart.Format(time.DateOnly))
	return session, nil
}

// GetWeeklyStatus reports every weekday of the current week, defaulting to
// not completed.
func (s *completionService) GetWeeklyStatus(ctx context.Context, userID string, workoutType domain.WorkoutType, ref time.Time) (domain.WeeklyStatus, error) {
	if err := validateProgram(userID, workoutType); err != nil {
		return nil, err
	}
	week := s.WeekBounds(ref)

	var sessions []domain.Session
	err := callStore(ctx, s.storeTimeout, "weekly status", func(ctx context.Context) error {
		var err error
		sessions, err = s.sessionRepo.FindMany(ctx, repository.SessionFilter{
			UserID:      userID,
			WorkoutType: workoutType,
			From:        week.Start,
			To:          week.End,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("weekly status: %w", err)
	}

	status := make(domain.WeeklyStatus, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		status[day] = domain.DayStatus{Exercises: []domain.ExerciseEntry{}}
	}
	for _, session := range sessions {
		current, ok := status[session.DayOfWeek]
		if !ok || current.Completed {
			continue
		}
		completedAt := session.CompletedAt
		exercises := session.Exercises
		if exercises == nil {
			exercises = []domain.ExerciseEntry{}
		}
		status[session.DayOfWeek] = domain.DayStatus{
			Completed:   true,
			CompletedAt: &completedAt,
			Exercises:   exercises,
		}
	}
	return status, nil
}
