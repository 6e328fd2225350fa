package service

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"
	"time"

	"fitnesshub/fitness-app/internal/catalog"
	"fitnesshub/fitness-app/internal/domain"
)

// DayPlan is the selection of catalog exercises shown for one program day.
type DayPlan struct {
	WorkoutType domain.WorkoutType `json:"workoutType"`
	DayOfWeek   domain.DayOfWeek   `json:"dayOfWeek"`
	WeekStart   time.Time          `json:"weekStart"`
	RestDay     bool               `json:"restDay"`
	Exercises   []domain.Exercise  `json:"exercises"`
}

// CatalogService serves the static program catalog.
type CatalogService interface {
	Programs() []catalog.Program
	PlanForWeek(userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, ref time.Time, count int) (*DayPlan, error)
}

// WeekCalendar computes week windows. CompletionService satisfies it.
type WeekCalendar interface {
	WeekBounds(ref time.Time) domain.WeekBounds
}

// FixedCalendar is a WeekCalendar for a location with no store behind it.
type FixedCalendar struct {
	Location *time.Location
}

func (c FixedCalendar) WeekBounds(ref time.Time) domain.WeekBounds {
	if ref.IsZero() {
		ref = time.Now()
	}
	return domain.ComputeWeekBounds(ref, c.Location)
}

type catalogService struct {
	calendar WeekCalendar
}

// NewCatalogService creates a catalog service seeded by the weeks of
// calendar, normally the tracker itself.
func NewCatalogService(calendar WeekCalendar) CatalogService {
	return &catalogService{calendar: calendar}
}

func (s *catalogService) Programs() []catalog.Program {
	return catalog.Programs()
}

// PlanForWeek picks the day's exercises with a seed derived from the user,
// program and week, so a user sees the same plan for the whole week.
func (s *catalogService) PlanForWeek(userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, ref time.Time, count int) (*DayPlan, error) {
	if err := validateSessionKey(userID, workoutType, day); err != nil {
		return nil, err
	}
	if count <= 0 {
		count = catalog.DefaultPlanSize
	}
	weekStart := s.calendar.WeekBounds(ref).Start

	rng := rand.New(rand.NewSource(planSeed(userID, workoutType, day, weekStart)))
	return &DayPlan{
		WorkoutType: workoutType,
		DayOfWeek:   day,
		WeekStart:   weekStart.UTC(),
		RestDay:     catalog.IsRestDay(workoutType, day),
		Exercises:   catalog.DayPlan(workoutType, day, count, rng),
	}, nil
}

func planSeed(userID string, workoutType domain.WorkoutType, day domain.DayOfWeek, weekStart time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(userID))
	h.Write([]byte(workoutType))
	h.Write([]byte(day))
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(weekStart.Unix()))
	h.Write(buf[:])
	return int64(h.Sum64())
}
