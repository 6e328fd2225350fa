// Package catalog holds the static exercise lists of every program.
package catalog

import (
	"math/rand"

	"fitnesshub/fitness-app/internal/domain"
)

// DefaultPlanSize is how many exercises a day plan shows when the caller
// does not ask for a specific count.
const DefaultPlanSize = 4

// Schedule maps weekday labels to the exercise pool trained that day. Days
// missing from the map are rest days.
type Schedule map[domain.DayOfWeek][]domain.Exercise

// Program is a workout type together with its weekly schedule.
type Program struct {
	Type     domain.WorkoutType `json:"type"`
	Title    string             `json:"title"`
	Schedule Schedule           `json:"schedule"`
}

// Programs returns every program in display order.
func Programs() []Program {
	programs := make([]Program, 0, len(domain.WorkoutTypes))
	for _, t := range domain.WorkoutTypes {
		programs = append(programs, Program{Type: t, Title: t.Title(), Schedule: schedules[t]})
	}
	return programs
}

// IsRestDay reports whether the program schedules nothing on day.
func IsRestDay(t domain.WorkoutType, day domain.DayOfWeek) bool {
	return len(schedules[t][day]) == 0
}

// Pool returns a copy of the full exercise pool for a program day.
func Pool(t domain.WorkoutType, day domain.DayOfWeek) []domain.Exercise {
	pool := schedules[t][day]
	out := make([]domain.Exercise, len(pool))
	copy(out, pool)
	return out
}

// DayPlan picks count exercises from the day's pool using rng. The same rng
// seed always yields the same plan. A non-positive count returns the whole
// pool in shuffled order; a nil rng keeps the catalog order.
func DayPlan(t domain.WorkoutType, day domain.DayOfWeek, count int, rng *rand.Rand) []domain.Exercise {
	pool := Pool(t, day)
	if rng != nil {
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	}
	if count > 0 && count < len(pool) {
		pool = pool[:count]
	}
	return pool
}
