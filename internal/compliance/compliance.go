// Package compliance dérive les états de complétion et les pourcentages
// de conformité à partir du catalogue et d'un instantané de suivi.
// Aucune mutation, aucune E/S : tout est calculé sur l'instantané fourni.
package compliance

import (
	model "github.com/mokobill/MedTrack/internal/models"
	"github.com/mokobill/MedTrack/internal/period"
)

// Status est le libellé d'avancement dérivé d'un pourcentage
type Status string

const (
	StatusNotStarted    Status = "Not Started"
	StatusStarted       Status = "Started"
	StatusGoodProgress  Status = "Good Progress"
	StatusGreatProgress Status = "Great Progress"
	StatusPerfect       Status = "Perfect"
)

// StatusLabel mappe un pourcentage sur un des cinq paliers. Bornes
// basses incluses, hautes exclues ; "Perfect" exige exactement 100.
func StatusLabel(percentage float64) Status {
	switch {
	case percentage == 100:
		return StatusPerfect
	case percentage >= 75:
		return StatusGreatProgress
	case percentage >= 50:
		return StatusGoodProgress
	case percentage > 0:
		return StatusStarted
	default:
		return StatusNotStarted
	}
}

// Snapshot est une vue en lecture seule de l'état d'un utilisateur
type Snapshot struct {
	FoodItems      []model.FoodItem
	ExerciseItems  []model.ExerciseItem
	Tracking       map[string]*model.DailyTracking
	WeeklyTracking map[string]*model.WeeklyTracking
}

// SnapshotOf construit un instantané depuis un agrégat utilisateur
func SnapshotOf(state *model.UserState) Snapshot {
	return Snapshot{
		FoodItems:      state.FoodItems,
		ExerciseItems:  state.ExerciseItems,
		Tracking:       state.Tracking,
		WeeklyTracking: state.WeeklyTracking,
	}
}

// FoodCount retourne le compteur applicable à un item pour une date :
// le jour même pour les items journaliers, la semaine contenant la date
// pour les items hebdomadaires.
func (s Snapshot) FoodCount(item model.FoodItem, date string) int {
	if item.TrackingPeriod == model.PeriodWeekly {
		weekStart, err := period.WeekStartKeyFor(date)
		if err != nil {
			return 0
		}
		if rec, ok := s.WeeklyTracking[weekStart]; ok {
			return rec.Items[item.ID]
		}
		return 0
	}
	if rec, ok := s.Tracking[date]; ok {
		return rec.Items[item.ID]
	}
	return 0
}

// IsFoodItemComplete : count >= target, quel que soit le dépassement
func IsFoodItemComplete(item model.FoodItem, count int) bool {
	return count >= item.Target()
}

// IsExerciseItemComplete : completed >= frequency
func IsExerciseItemComplete(item model.ExerciseItem) bool {
	return item.Completed >= item.Frequency
}

// DailySummary est le détail de conformité d'une date
type DailySummary struct {
	Date              string  `json:"date"`
	CompletedDaily    int     `json:"completedDaily"`
	TotalDaily        int     `json:"totalDaily"`
	CompletedWeekly   int     `json:"completedWeekly"`
	TotalWeekly       int     `json:"totalWeekly"`
	CompletedExercise int     `json:"completedExercise"`
	TotalExercise     int     `json:"totalExercise"`
	CompletedItems    int     `json:"completedItems"`
	TotalItems        int     `json:"totalItems"`
	Percentage        float64 `json:"percentage"`
	Status            Status  `json:"status"`
}

// DailyCompliance calcule la conformité d'une date : items journaliers
// du jour, items hebdomadaires de la semaine contenant le jour, et
// objectifs d'exercice. Zéro item applicable donne 0, jamais NaN.
func DailyCompliance(snap Snapshot, date string) DailySummary {
	summary := DailySummary{Date: date}

	for _, item := range snap.FoodItems {
		count := snap.FoodCount(item, date)
		complete := IsFoodItemComplete(item, count)
		if item.TrackingPeriod == model.PeriodWeekly {
			summary.TotalWeekly++
			if complete {
				summary.CompletedWeekly++
			}
		} else {
			summary.TotalDaily++
			if complete {
				summary.CompletedDaily++
			}
		}
	}

	for _, item := range snap.ExerciseItems {
		summary.TotalExercise++
		if IsExerciseItemComplete(item) {
			summary.CompletedExercise++
		}
	}

	summary.CompletedItems = summary.CompletedDaily + summary.CompletedWeekly + summary.CompletedExercise
	summary.TotalItems = summary.TotalDaily + summary.TotalWeekly + summary.TotalExercise
	if summary.TotalItems > 0 {
		summary.Percentage = float64(summary.CompletedItems) / float64(summary.TotalItems) * 100
	}
	summary.Status = StatusLabel(summary.Percentage)

	return summary
}

// WeeklyCompliance est la moyenne arithmétique des conformités
// journalières sur les dates fournies — chaque jour pèse pareil, quel
// que soit le nombre d'items applicables.
func WeeklyCompliance(snap Snapshot, weekDates []string) float64 {
	if len(weekDates) == 0 {
		return 0
	}
	var total float64
	for _, date := range weekDates {
		total += DailyCompliance(snap, date).Percentage
	}
	return total / float64(len(weekDates))
}

// DailyItemsCompliance restreint le calcul aux items journaliers d'une
// date (complétés, total, pourcentage). Utilisé par l'export.
func DailyItemsCompliance(snap Snapshot, date string) (int, int, float64) {
	completed, total := 0, 0
	for _, item := range snap.FoodItems {
		if item.TrackingPeriod != model.PeriodDaily {
			continue
		}
		total++
		if IsFoodItemComplete(item, snap.FoodCount(item, date)) {
			completed++
		}
	}
	return completed, total, percentage(completed, total)
}

// WeeklyItemsCompliance restreint le calcul aux items hebdomadaires
// d'une semaine donnée
func WeeklyItemsCompliance(snap Snapshot, weekStart string) (int, int, float64) {
	completed, total := 0, 0
	for _, item := range snap.FoodItems {
		if item.TrackingPeriod != model.PeriodWeekly {
			continue
		}
		total++
		count := 0
		if rec, ok := snap.WeeklyTracking[weekStart]; ok {
			count = rec.Items[item.ID]
		}
		if IsFoodItemComplete(item, count) {
			completed++
		}
	}
	return completed, total, percentage(completed, total)
}

// ExerciseCompliance restreint le calcul aux objectifs d'exercice
func ExerciseCompliance(snap Snapshot) (int, int, float64) {
	completed, total := 0, 0
	for _, item := range snap.ExerciseItems {
		total++
		if IsExerciseItemComplete(item) {
			completed++
		}
	}
	return completed, total, percentage(completed, total)
}

func percentage(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
