package domain

// WorkoutType is the program key identifying which exercise catalog applies.
type WorkoutType string

const (
	WorkoutStrengthTraining WorkoutType = "strength-training"
	WorkoutLoseWeight       WorkoutType = "lose-weight"
	WorkoutMuscleBuilding   WorkoutType = "muscle-building"
	WorkoutEnduranceStamina WorkoutType = "improve-endurance-and-stamina"
	WorkoutFlexibility      WorkoutType = "improve-flexibility"
	WorkoutActiveLifestyle  WorkoutType = "active-lifestyle"
)

// WorkoutTypes lists every known program key in display order.
var WorkoutTypes = []WorkoutType{
	WorkoutStrengthTraining,
	WorkoutLoseWeight,
	WorkoutMuscleBuilding,
	WorkoutEnduranceStamina,
	WorkoutFlexibility,
	WorkoutActiveLifestyle,
}

var workoutTitles = map[WorkoutType]string{
	WorkoutStrengthTraining: "Strength Training",
	WorkoutLoseWeight:       "Lose Weight",
	WorkoutMuscleBuilding:   "Muscle Building",
	WorkoutEnduranceStamina: "Improve Endurance and Stamina",
	WorkoutFlexibility:      "Improve Flexibility",
	WorkoutActiveLifestyle:  "Active Lifestyle",
}

func (w WorkoutType) IsValid() bool {
	_, ok := workoutTitles[w]
	return ok
}

// Title returns the human readable program name, or the raw key if unknown.
func (w WorkoutType) Title() string {
	if t, ok := workoutTitles[w]; ok {
		return t
	}
	return string(w)
}
