package domain

// Exercise is a catalog exercise definition. Catalog entries are static data
// and are not persisted.
type Exercise struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	MuscleGroup string `json:"muscleGroup,omitempty"` // e.g. "Legs", "Core", "Full body"
	Difficulty  string `json:"difficulty,omitempty"`  // "Novice", "Medium", "Advanced"
	Sets        int    `json:"sets"`                  // suggested sets
	Reps        string `json:"reps,omitempty"`        // "8-12", "30s"
}
