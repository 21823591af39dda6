package model

// TrackingPeriod discrimine les objectifs alimentaires journaliers et hebdomadaires
type TrackingPeriod string

const (
	PeriodDaily  TrackingPeriod = "daily"
	PeriodWeekly TrackingPeriod = "weekly"
)

// ExercisePeriod discrimine la fréquence des objectifs d'exercice
type ExercisePeriod string

const (
	ExercisePerDay  ExercisePeriod = "day"
	ExercisePerWeek ExercisePeriod = "week"
)

// FoodCategory est une énumération fermée des catégories du catalogue
type FoodCategory string

const (
	CategoryFruit     FoodCategory = "fruit"
	CategoryVegetable FoodCategory = "vegetable"
	CategoryProtein   FoodCategory = "protein"
	CategoryGrain     FoodCategory = "grain"
	CategoryOil       FoodCategory = "oil"
	CategoryOther     FoodCategory = "other"
)

// ParseFoodCategory résout une catégorie avec repli sur CategoryOther
func ParseFoodCategory(s string) FoodCategory {
	switch FoodCategory(s) {
	case CategoryFruit, CategoryVegetable, CategoryProtein, CategoryGrain, CategoryOil:
		return FoodCategory(s)
	default:
		return CategoryOther
	}
}

// FoodItem est une définition immuable du catalogue. La cible vit sur
// exactement un des deux champs ServingsPerDay/ServingsPerWeek, celui
// qui correspond à TrackingPeriod.
type FoodItem struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Category        FoodCategory   `json:"category"`
	ServingSize     string         `json:"servingSize"`
	ServingsPerDay  int            `json:"servingsPerDay,omitempty"`
	ServingsPerWeek int            `json:"servingsPerWeek,omitempty"`
	TrackingPeriod  TrackingPeriod `json:"trackingPeriod"`
	Icon            string         `json:"icon"`
}

// Target retourne la cible de l'item selon sa période de suivi
func (f FoodItem) Target() int {
	if f.TrackingPeriod == PeriodWeekly {
		return f.ServingsPerWeek
	}
	return f.ServingsPerDay
}

// ExerciseItem porte une définition de catalogue et un compteur de
// progression. Completed n'est jamais négatif ; il est comparé à
// Frequency avec >= pour la complétion.
type ExerciseItem struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Frequency int            `json:"frequency"`
	Period    ExercisePeriod `json:"period"`
	Completed int            `json:"completed"`
	Icon      string         `json:"icon"`
}

// DailyTracking mappe les items journaliers vers un nombre de portions
// pour une date donnée (YYYY-MM-DD). Créé paresseusement, jamais supprimé.
type DailyTracking struct {
	Date  string         `json:"date"`
	Items map[string]int `json:"items"`
}

// WeeklyTracking est l'équivalent hebdomadaire, indexé par le lundi de
// la semaine (YYYY-MM-DD).
type WeeklyTracking struct {
	WeekStart string         `json:"weekStart"`
	Items     map[string]int `json:"items"`
}

type NotificationPreference struct {
	Enabled bool     `json:"enabled"`
	Times   []string `json:"times"`
}

type UserSettings struct {
	Notifications NotificationPreference `json:"notifications"`
	Theme         string                 `json:"theme"`
	Name          string                 `json:"name"`
	Username      string                 `json:"username"`
}

// UserState est le document agrégat complet d'un utilisateur, sérialisé
// en JSON dans le store clé/valeur. LastWeekStart mémorise la dernière
// semaine connue pour rendre le rollover hebdomadaire idempotent.
type UserState struct {
	FoodItems        []FoodItem                 `json:"foodItems"`
	ExerciseItems    []ExerciseItem             `json:"exerciseItems"`
	WorkoutExercises []WorkoutExercise          `json:"workoutExercises"`
	WorkoutSessions  []WorkoutSession           `json:"workoutSessions"`
	Tracking         map[string]*DailyTracking  `json:"tracking"`
	WeeklyTracking   map[string]*WeeklyTracking `json:"weeklyTracking"`
	LastWeekStart    string                     `json:"lastWeekStart,omitempty"`
	Settings         UserSettings               `json:"settings"`
}

// FindFoodItem retourne l'item du catalogue utilisateur, ou nil
func (s *UserState) FindFoodItem(itemID string) *FoodItem {
	for i := range s.FoodItems {
		if s.FoodItems[i].ID == itemID {
			return &s.FoodItems[i]
		}
	}
	return nil
}

// FindExerciseItem retourne l'item d'exercice, ou nil
func (s *UserState) FindExerciseItem(exerciseID string) *ExerciseItem {
	for i := range s.ExerciseItems {
		if s.ExerciseItems[i].ID == exerciseID {
			return &s.ExerciseItems[i]
		}
	}
	return nil
}
