package service

import (
	"fitnesshub/fitness-app/internal/domain"
)

func validateProgram(userID string, workoutType domain.WorkoutType) error {
	if userID == "" {
		return &ValidationError{Field: "userId", Reason: "is required"}
	}
	if !workoutType.IsValid() {
		return &ValidationError{Field: "workoutType", Reason: "unknown program " + string(workoutType)}
	}
	return nil
}

func validateSessionKey(userID string, workoutType domain.WorkoutType, day domain.DayOfWeek) error {
	if err := validateProgram(userID, workoutType); err != nil {
		return err
	}
	if !day.IsValid() {
		return &ValidationError{Field: "dayOfWeek", Reason: "must be a weekday name such as Monday, got " + string(day)}
	}
	return nil
}

func validateExercise(e domain.ExerciseEntry) error {
	if e.ExerciseTitle == "" {
		return &ValidationError{Field: "exerciseTitle", Reason: "is required"}
	}
	if e.Sets < 0 {
		return &ValidationError{Field: "sets", Reason: "must not be negative"}
	}
	if e.Weight < 0 {
		return &ValidationError{Field: "weight", Reason: "must not be negative"}
	}
	return nil
}
