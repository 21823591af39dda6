package model

// WorkoutCategory est une énumération fermée des types d'exercices
type WorkoutCategory string

const (
	WorkoutResistance  WorkoutCategory = "resistance"
	WorkoutHome        WorkoutCategory = "home-workout"
	WorkoutCardio      WorkoutCategory = "cardio"
	WorkoutFlexibility WorkoutCategory = "flexibility"
	WorkoutStrength    WorkoutCategory = "strength"
)

// WorkoutExercise est une définition de catalogue d'exercice de musculation
type WorkoutExercise struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Category   WorkoutCategory `json:"category"`
	TargetSets int             `json:"targetSets,omitempty"`
	TargetReps string          `json:"targetReps,omitempty"`
	Icon       string          `json:"icon"`
}

// ExerciseSet est une série au sein d'une session d'entraînement
type ExerciseSet struct {
	ID        string  `json:"id"`
	Weight    float64 `json:"weight,omitempty"`
	Reps      int     `json:"reps"`
	Notes     string  `json:"notes,omitempty"`
	Completed bool    `json:"completed"`
	RestTime  int     `json:"restTime,omitempty"` // en secondes
}

// WorkoutSession est un événement de journalisation d'exercice, distinct
// de la progression ExerciseItem. Append-only pour un jour donné ; une
// fois terminée, seuls les flags Completed des séries restent mutables.
type WorkoutSession struct {
	ID          string        `json:"id"`
	ExerciseID  string        `json:"exerciseId"`
	Date        string        `json:"date"`
	Sets        []ExerciseSet `json:"sets"`
	TotalVolume float64       `json:"totalVolume,omitempty"`
	Duration    int           `json:"duration,omitempty"` // en minutes
	Finished    bool          `json:"finished"`
}

// ComputeTotalVolume calcule le volume total (somme poids × répétitions)
func (s *WorkoutSession) ComputeTotalVolume() float64 {
	var total float64
	for _, set := range s.Sets {
		total += set.Weight * float64(set.Reps)
	}
	return total
}
