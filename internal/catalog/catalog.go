// Package catalog contient les définitions statiques des items suivis :
// régime méditerranéen, objectifs d'exercice et exercices de musculation.
// Les cibles sont fixes ; seul le suivi par utilisateur est mutable.
package catalog

import (
	model "github.com/mokobill/MedTrack/internal/models"
)

var foodItems = []model.FoodItem{
	{
		ID:             "fruits",
		Name:           "Fruits",
		Category:       model.CategoryFruit,
		ServingSize:    "Serving size: 1 medium fruit or 80g fresh fruit or 30g dried fruit",
		ServingsPerDay: 3,
		TrackingPeriod: model.PeriodDaily,
		Icon:           "Apple",
	},
	{
		ID:             "vegetables",
		Name:           "Vegetables",
		Category:       model.CategoryVegetable,
		ServingSize:    "Serving size: 80g raw weight",
		ServingsPerDay: 2,
		TrackingPeriod: model.PeriodDaily,
		Icon:           "Carrot",
	},
	{
		ID:              "fish",
		Name:            "Fish/Seafood",
		Category:        model.CategoryProtein,
		ServingSize:     "Serving size: 140g raw weight or ~1 fillet",
		ServingsPerWeek: 3,
		TrackingPeriod:  model.PeriodWeekly,
		Icon:            "Fish",
	},
	{
		ID:              "legumes",
		Name:            "Beans/Legumes",
		Category:        model.CategoryProtein,
		ServingSize:     "Serving size: 1/2 cup cooked or 1 cup dried",
		ServingsPerWeek: 3,
		TrackingPeriod:  model.PeriodWeekly,
		Icon:            "Wheat",
	},
	{
		ID:             "oliveoil",
		Name:           "Olive Oil",
		Category:       model.CategoryOil,
		ServingSize:    "Serving size: 1 tablespoon",
		ServingsPerDay: 4,
		TrackingPeriod: model.PeriodDaily,
		Icon:           "Droplets",
	},
	{
		ID:             "nuts",
		Name:           "Nuts",
		Category:       model.CategoryProtein,
		ServingSize:    "Serving size: 30g or a handful",
		ServingsPerDay: 1,
		TrackingPeriod: model.PeriodDaily,
		Icon:           "Nut",
	},
}

var exerciseItems = []model.ExerciseItem{
	{
		ID:        "resistance",
		Name:      "Resistance Training",
		Frequency: 3,
		Period:    model.ExercisePerWeek,
		Completed: 0,
		Icon:      "Dumbbell",
	},
}

var workoutExercises = []model.WorkoutExercise{
	// Jambes
	{ID: "bulgarians", Name: "Bulgarian Split Squats", Category: model.WorkoutStrength, TargetSets: 3, TargetReps: "10-15", Icon: "Dumbbell"},
	{ID: "lunges", Name: "Single Leg Lunges", Category: model.WorkoutStrength, TargetSets: 3, TargetReps: "10-15", Icon: "Dumbbell"},
	{ID: "push-ups", Name: "Push-Ups", Category: model.WorkoutStrength, TargetSets: 4, TargetReps: "10-15", Icon: "Dumbbell"},
	{ID: "diamond", Name: "Diamond Push-Ups", Category: model.WorkoutStrength, TargetSets: 4, TargetReps: "10-15", Icon: "Dumbbell"},
	// Haut du corps
	{ID: "pike-push", Name: "Pike Push-Ups", Category: model.WorkoutStrength, TargetSets: 4, TargetReps: "10-15", Icon: "Dumbbell"},
	{ID: "rows", Name: "Inverted Rows", Category: model.WorkoutStrength, TargetSets: 4, TargetReps: "10-15", Icon: "Dumbbell"},
	{ID: "glutes", Name: "Single Leg Glute Bridges", Category: model.WorkoutStrength, TargetSets: 4, TargetReps: "10-15", Icon: "Dumbbell"},
	{ID: "nordics", Name: "Nordics", Category: model.WorkoutStrength, TargetSets: 3, TargetReps: "10-15", Icon: "Dumbbell"},
	// Gainage
	{ID: "hollow-hold", Name: "Hollow Hold", Category: model.WorkoutStrength, TargetSets: 3, TargetReps: "30-40s", Icon: "Dumbbell"},
	{ID: "side-planks", Name: "Side Planks", Category: model.WorkoutStrength, TargetSets: 3, TargetReps: "30-40s", Icon: "Dumbbell"},
}

// FoodItems retourne une copie des définitions alimentaires
func FoodItems() []model.FoodItem {
	items := make([]model.FoodItem, len(foodItems))
	copy(items, foodItems)
	return items
}

// ExerciseItems retourne une copie des objectifs d'exercice (Completed = 0)
func ExerciseItems() []model.ExerciseItem {
	items := make([]model.ExerciseItem, len(exerciseItems))
	copy(items, exerciseItems)
	return items
}

// WorkoutExercises retourne une copie des exercices de musculation
func WorkoutExercises() []model.WorkoutExercise {
	items := make([]model.WorkoutExercise, len(workoutExercises))
	copy(items, workoutExercises)
	return items
}

// FindFoodItem cherche un item alimentaire par identifiant
func FindFoodItem(itemID string) (model.FoodItem, bool) {
	for _, item := range foodItems {
		if item.ID == itemID {
			return item, true
		}
	}
	return model.FoodItem{}, false
}

// FindWorkoutExercise cherche un exercice de musculation par identifiant
func FindWorkoutExercise(exerciseID string) (model.WorkoutExercise, bool) {
	for _, ex := range workoutExercises {
		if ex.ID == exerciseID {
			return ex, true
		}
	}
	return model.WorkoutExercise{}, false
}
