package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mokobill/MedTrack/internal/compliance"
	"github.com/mokobill/MedTrack/internal/middleware"
	model "github.com/mokobill/MedTrack/internal/models"
	"github.com/mokobill/MedTrack/internal/period"
	"github.com/mokobill/MedTrack/internal/tracking"
	"github.com/mokobill/MedTrack/internal/utils"
)

// currentTracker charge le tracker de l'utilisateur authentifié et
// avance les périodes (rollover hebdomadaire + date du jour)
func currentTracker(w http.ResponseWriter, r *http.Request) (*tracking.Tracker, bool) {
	username, err := middleware.GetUsernameFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context")
		return nil, false
	}

	tracker := tracking.NewTracker(r.Context(), username, appStore)
	if err := tracker.EnsureCurrent(r.Context()); err != nil {
		utils.LogError("advancing periods for %s: %v", username, err)
	}
	return tracker, true
}

// GetToday retourne l'état de suivi du jour : enregistrements courants
// et résumé de conformité
func GetToday(w http.ResponseWriter, r *http.Request) {
	tracker, ok := currentTracker(w, r)
	if !ok {
		return
	}

	date := period.CurrentDateKey()
	weekStart := period.CurrentWeekStartKey()
	state := tracker.State()

	utils.Success(w, map[string]interface{}{
		"date":           date,
		"displayDate":    period.DisplayDate(date),
		"weekStart":      weekStart,
		"foodItems":      state.FoodItems,
		"exerciseItems":  state.ExerciseItems,
		"tracking":       state.Tracking[date],
		"weeklyTracking": state.WeeklyTracking[weekStart],
		"summary":        compliance.DailyCompliance(compliance.SnapshotOf(state), date),
	})
}

// GetTrackingDay retourne l'enregistrement journalier d'une date
func GetTrackingDay(w http.ResponseWriter, r *http.Request) {
	tracker, ok := currentTracker(w, r)
	if !ok {
		return
	}

	date := mux.Vars(r)["date"]
	if _, err := period.WeekStartKeyFor(date); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	rec := tracker.State().Tracking[date]
	if rec == nil {
		rec = &model.DailyTracking{Date: date, Items: map[string]int{}}
	}
	utils.Success(w, rec)
}

// GetTrackingWeek retourne l'enregistrement hebdomadaire d'une semaine
func GetTrackingWeek(w http.ResponseWriter, r *http.Request) {
	tracker, ok := currentTracker(w, r)
	if !ok {
		return
	}

	weekStart := mux.Vars(r)["weekStart"]
	if _, err := period.WeekDates(weekStart); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid week start, expected YYYY-MM-DD")
		return
	}

	rec := tracker.State().WeeklyTracking[weekStart]
	if rec == nil {
		rec = &model.WeeklyTracking{WeekStart: weekStart, Items: map[string]int{}}
	}
	utils.Success(w, rec)
}

// IncrementFood incrémente le compteur d'un item alimentaire pour la
// période courante. La notification de complétion part seulement quand
// la cible vient d'être atteinte exactement.
func IncrementFood(w http.ResponseWriter, r *http.Request) {
	tracker, ok := currentTracker(w, r)
	if !ok {
		return
	}

	itemID := mux.Vars(r)["itemId"]
	item := tracker.State().FindFoodItem(itemID)
	if item == nil {
		utils.Error(w, http.StatusNotFound, "food item not found")
		return
	}

	var count int
	var justReached bool
	var err error
	var goalLabel string

	if item.TrackingPeriod == model.PeriodWeekly {
		count, justReached, err = tracker.IncrementWeekly(r.Context(), period.CurrentWeekStartKey(), itemID)
		goalLabel = item.Name + " weekly goal"
	} else {
		count, justReached, err = tracker.IncrementDaily(r.Context(), period.CurrentDateKey(), itemID)
		goalLabel = item.Name + " daily goal"
	}
	if err != nil {
		utils.LogError("persisting increment for %s: %v", tracker.Username(), err)
	}

	if justReached {
		notifier.ShowCompletion(goalLabel)
	}

	utils.Success(w, map[string]interface{}{
		"itemId":            itemID,
		"count":             count,
		"justReachedTarget": justReached,
	})
}

// DecrementFood décrémente le compteur d'un item alimentaire. Sous
// zéro : no-op silencieux.
func DecrementFood(w http.ResponseWriter, r *http.Request) {
	tracker, ok := currentTracker(w, r)
	if !ok {
		return
	}

	itemID := mux.Vars(r)["itemId"]
	item := tracker.State().FindFoodItem(itemID)
	if item == nil {
		utils.Error(w, http.StatusNotFound, "food item not found")
		return
	}

	var count int
	var err error
	if item.TrackingPeriod == model.PeriodWeekly {
		count, err = tracker.DecrementWeekly(r.Context(), period.CurrentWeekStartKey(), itemID)
	} else {
		count, err = tracker.DecrementDaily(r.Context(), period.CurrentDateKey(), itemID)
	}
	if err != nil {
		utils.LogError("persisting decrement for %s: %v", tracker.Username(), err)
	}

	utils.Success(w, map[string]interface{}{
		"itemId": itemID,
		"count":  count,
	})
}

// CompleteExercise avance la progression d'un objectif d'exercice
func CompleteExercise(w http.ResponseWriter, r *http.Request) {
	tracker, ok := currentTracker(w, r)
	if !ok {
		return
	}

	exerciseID := mux.Vars(r)["itemId"]
	item := tracker.State().FindExerciseItem(exerciseID)
	if item == nil {
		utils.Error(w, http.StatusNotFound, "exercise item not found")
		return
	}

	completed, justReached, err := tracker.IncrementExerciseProgress(r.Context(), exerciseID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if justReached {
		notifier.ShowCompletion(item.Name)
	}

	utils.Success(w, map[string]interface{}{
		"itemId":            exerciseID,
		"completed":         completed,
		"frequency":         item.Frequency,
		"justReachedTarget": justReached,
	})
}
