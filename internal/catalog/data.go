package catalog

import "fitnesshub/fitness-app/internal/domain"

func ex(title, group, difficulty string, sets int, reps string) domain.Exercise {
	return domain.Exercise{Title: title, MuscleGroup: group, Difficulty: difficulty, Sets: sets, Reps: reps}
}

var (
	upperStrength = []domain.Exercise{
		ex("Bench Press", "Chest", "Medium", 4, "6-8"),
		ex("Overhead Press", "Shoulders", "Medium", 4, "6-8"),
		ex("Barbell Row", "Back", "Medium", 4, "6-8"),
		ex("Weighted Pull-Up", "Back", "Advanced", 3, "5-6"),
		ex("Dips", "Triceps", "Medium", 3, "8-10"),
		ex("Face Pull", "Shoulders", "Novice", 3, "12-15"),
	}
	lowerStrength = []domain.Exercise{
		ex("Back Squat", "Legs", "Medium", 5, "5"),
		ex("Deadlift", "Posterior chain", "Advanced", 3, "5"),
		ex("Bulgarian Split Squat", "Legs", "Medium", 3, "8"),
		ex("Hip Thrust", "Glutes", "Novice", 3, "10"),
		ex("Standing Calf Raise", "Calves", "Novice", 4, "12"),
	}
	cardioBurn = []domain.Exercise{
		ex("Jump Rope", "Full body", "Novice", 3, "60s"),
		ex("Burpees", "Full body", "Medium", 3, "12"),
		ex("Mountain Climbers", "Core", "Novice", 3, "40s"),
		ex("High Knees", "Legs", "Novice", 3, "45s"),
		ex("Kettlebell Swing", "Posterior chain", "Medium", 4, "15"),
		ex("Rowing Intervals", "Full body", "Medium", 5, "250m"),
	}
	circuitBurn = []domain.Exercise{
		ex("Goblet Squat", "Legs", "Novice", 3, "15"),
		ex("Push-Up", "Chest", "Novice", 3, "12"),
		ex("Walking Lunge", "Legs", "Novice", 3, "20"),
		ex("Plank", "Core", "Novice", 3, "45s"),
		ex("Box Step-Up", "Legs", "Novice", 3, "12"),
	}
	pushHypertrophy = []domain.Exercise{
		ex("Incline Dumbbell Press", "Chest", "Medium", 4, "8-12"),
		ex("Cable Fly", "Chest", "Novice", 3, "12-15"),
		ex("Seated Dumbbell Press", "Shoulders", "Medium", 4, "8-12"),
		ex("Lateral Raise", "Shoulders", "Novice", 4, "12-15"),
		ex("Overhead Triceps Extension", "Triceps", "Novice", 3, "10-12"),
	}
	pullHypertrophy = []domain.Exercise{
		ex("Lat Pulldown", "Back", "Novice", 4, "8-12"),
		ex("Seated Cable Row", "Back", "Novice", 4, "8-12"),
		ex("Chest Supported Row", "Back", "Medium", 3, "10"),
		ex("Barbell Curl", "Biceps", "Novice", 3, "10-12"),
		ex("Hammer Curl", "Biceps", "Novice", 3, "12"),
	}
	legHypertrophy = []domain.Exercise{
		ex("Leg Press", "Legs", "Novice", 4, "10-12"),
		ex("Romanian Deadlift", "Hamstrings", "Medium", 4, "8-10"),
		ex("Leg Extension", "Quads", "Novice", 3, "12-15"),
		ex("Lying Leg Curl", "Hamstrings", "Novice", 3, "12-15"),
		ex("Seated Calf Raise", "Calves", "Novice", 4, "15"),
	}
	endurance = []domain.Exercise{
		ex("Tempo Run", "Cardio", "Medium", 1, "25min"),
		ex("Cycling Intervals", "Cardio", "Medium", 6, "2min"),
		ex("Stair Climber", "Cardio", "Novice", 1, "15min"),
		ex("Battle Ropes", "Full body", "Medium", 4, "30s"),
		ex("Farmer's Carry", "Grip", "Novice", 4, "40m"),
		ex("Thrusters", "Full body", "Medium", 4, "12"),
	}
	longSteady = []domain.Exercise{
		ex("Long Easy Run", "Cardio", "Novice", 1, "45min"),
		ex("Swim", "Full body", "Medium", 1, "30min"),
		ex("Brisk Walk", "Cardio", "Novice", 1, "60min"),
	}
	mobility = []domain.Exercise{
		ex("World's Greatest Stretch", "Full body", "Novice", 2, "5/side"),
		ex("Pigeon Pose", "Hips", "Novice", 2, "60s"),
		ex("Cat-Cow", "Spine", "Novice", 2, "10"),
		ex("Thoracic Rotation", "Spine", "Novice", 2, "8/side"),
		ex("Hamstring Floss", "Hamstrings", "Novice", 2, "10"),
		ex("Deep Squat Hold", "Hips", "Medium", 3, "45s"),
	}
	yogaFlow = []domain.Exercise{
		ex("Sun Salutation", "Full body", "Novice", 3, "1 flow"),
		ex("Downward Dog", "Posterior chain", "Novice", 3, "45s"),
		ex("Warrior II", "Legs", "Novice", 2, "45s/side"),
		ex("Seated Forward Fold", "Hamstrings", "Novice", 2, "60s"),
		ex("Bridge Pose", "Glutes", "Novice", 3, "30s"),
	}
	everyday = []domain.Exercise{
		ex("Brisk Walk", "Cardio", "Novice", 1, "30min"),
		ex("Bodyweight Squat", "Legs", "Novice", 3, "15"),
		ex("Incline Push-Up", "Chest", "Novice", 3, "10"),
		ex("Glute Bridge", "Glutes", "Novice", 3, "15"),
		ex("Bird Dog", "Core", "Novice", 3, "10/side"),
		ex("Dead Bug", "Core", "Novice", 3, "10"),
	}
)

var schedules = map[domain.WorkoutType]Schedule{
	domain.WorkoutStrengthTraining: {
		domain.Monday:   lowerStrength,
		domain.Tuesday:  upperStrength,
		domain.Thursday: lowerStrength,
		domain.Friday:   upperStrength,
		domain.Saturday: mobility,
	},
	domain.WorkoutLoseWeight: {
		domain.Monday:    cardioBurn,
		domain.Tuesday:   circuitBurn,
		domain.Wednesday: cardioBurn,
		domain.Thursday:  circuitBurn,
		domain.Friday:    cardioBurn,
		domain.Saturday:  everyday,
	},
	domain.WorkoutMuscleBuilding: {
		domain.Monday:    pushHypertrophy,
		domain.Tuesday:   pullHypertrophy,
		domain.Wednesday: legHypertrophy,
		domain.Friday:    pushHypertrophy,
		domain.Saturday:  pullHypertrophy,
		domain.Sunday:    legHypertrophy,
	},
	domain.WorkoutEnduranceStamina: {
		domain.Monday:    endurance,
		domain.Wednesday: endurance,
		domain.Thursday:  mobility,
		domain.Friday:    endurance,
		domain.Sunday:    longSteady,
	},
	domain.WorkoutFlexibility: {
		domain.Monday:    mobility,
		domain.Tuesday:   yogaFlow,
		domain.Wednesday: mobility,
		domain.Thursday:  yogaFlow,
		domain.Friday:    mobility,
		domain.Saturday:  yogaFlow,
	},
	domain.WorkoutActiveLifestyle: {
		domain.Monday:    everyday,
		domain.Wednesday: everyday,
		domain.Friday:    everyday,
		domain.Saturday:  longSteady,
	},
}
