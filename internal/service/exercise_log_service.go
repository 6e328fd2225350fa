package service

import (
	"context"
	"fmt"
	"time"

	"fitnesshub/fitness-app/internal/domain"
	"fitnesshub/fitness-app/internal/repository"

	log "github.com/sirupsen/logrus"
)

// ExerciseLogService records individual exercises as they are performed and
// turns a day's log into a finished session. Logging is never locked; only
// FinishSession is subject to the weekly completion rule.
type ExerciseLogService interface {
	LogExercise(ctx context.Context, userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, entry domain.ExerciseEntry, ref time.Time) (*domain.ExerciseLogEntry, error)
	ListWeekLog(ctx context.Context, userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, ref time.Time) ([]domain.ExerciseLogEntry, error)
	FinishSession(ctx context.Context, userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, ref time.Time) (*domain.Session, error)
}

type exerciseLogService struct {
	logRepo      repository.ExerciseLogRepository
	completion   CompletionService
	storeTimeout time.Duration
	now          func() time.Time
	recorder     Recorder
}

// NewExerciseLogService creates a new instance of exerciseLogService. It
// shares the clock, timeout and recorder settings of the tracker.
func NewExerciseLogService(logRepo repository.ExerciseLogRepository, completion CompletionService, opts CompletionOptions) ExerciseLogService {
	s := &exerciseLogService{
		logRepo:      logRepo,
		completion:   completion,
		storeTimeout: opts.StoreTimeout,
		now:          opts.Now,
		recorder:     opts.Recorder,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.recorder == nil {
		s.recorder = noopRecorder{}
	}
	return s
}

// LogExercise persists one performed exercise immediately.
func (s *exerciseLogService) LogExercise(ctx context.Context, userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, entry domain.ExerciseEntry, ref time.Time) (*domain.ExerciseLogEntry, error) {
	if err := validateSessionKey(userID, workoutType, day); err != nil {
		return nil, err
	}
	if err := validateExercise(entry); err != nil {
		return nil, err
	}
	if ref.IsZero() {
		ref = s.now()
	}
	if entry.CompletedAt.IsZero() {
		entry.CompletedAt = ref
	}

	logEntry := &domain.ExerciseLogEntry{
		UserID:        userID,
		WorkoutType:   workoutType,
		DayOfWeek:     day,
		ExerciseTitle: entry.ExerciseTitle,
		Sets:          entry.Sets,
		Weight:        entry.Weight,
		WeekStart:     s.completion.WeekBounds(ref).Start.UTC(),
		CompletedAt:   entry.CompletedAt.Truncate(domain.TimePrecision).UTC(),
	}
	err := callStore(ctx, s.storeTimeout, "log exercise", func(ctx context.Context) error {
		_, err := s.logRepo.Create(ctx, logEntry)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("log exercise: %w", err)
	}

	s.recorder.ExerciseLogged(workoutType)
	return logEntry, nil
}

// ListWeekLog returns what was logged for the day label in the week of ref.
func (s *exerciseLogService) ListWeekLog(ctx context.Context, userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, ref time.Time) ([]domain.ExerciseLogEntry, error) {
	if err := validateSessionKey(userID, workoutType, day); err != nil {
		return nil, err
	}
	if ref.IsZero() {
		ref = s.now()
	}
	weekStart := s.completion.WeekBounds(ref).Start.UTC()

	var entries []domain.ExerciseLogEntry
	err := callStore(ctx, s.storeTimeout, "list exercise log", func(ctx context.Context) error {
		var err error
		entries, err = s.logRepo.FindByDay(ctx, userID, workoutType, day, weekStart)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list exercise log: %w", err)
	}
	if entries == nil {
		entries = []domain.ExerciseLogEntry{}
	}
	return entries, nil
}

// FinishSession snapshots the exercises logged this week for the day label
// into a completed session.
func (s *exerciseLogService) FinishSession(ctx context.Context, userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, ref time.Time) (*domain.Session, error) {
	if ref.IsZero() {
		ref = s.now()
	}
	entries, err := s.ListWeekLog(ctx, userID, workoutType, day, ref)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, &ValidationError{Field: "exercises", Reason: "log at least one exercise before finishing the session"}
	}

	exercises := make([]domain.ExerciseEntry, len(entries))
	for i, e := range entries {
		exercises[i] = e.Entry()
	}

	session, err := s.completion.MarkCompleted(ctx, userID, workoutType, day, exercises, ref)
	if err != nil {
		return nil, err
	}
	log.WithField("user", userID).Debugf("finished %s %s with %d exercises", workoutType, day, len(exercises))
	return session, nil
}
