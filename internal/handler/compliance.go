package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mokobill/MedTrack/internal/compliance"
	"github.com/mokobill/MedTrack/internal/period"
	"github.com/mokobill/MedTrack/internal/utils"
)

// GetDailyCompliance retourne le résumé de conformité d'une date
func GetDailyCompliance(w http.ResponseWriter, r *http.Request) {
	tracker, ok := currentTracker(w, r)
	if !ok {
		return
	}

	date := mux.Vars(r)["date"]
	if _, err := period.WeekStartKeyFor(date); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	snap := compliance.SnapshotOf(tracker.State())
	utils.Success(w, compliance.DailyCompliance(snap, date))
}

// GetWeeklyCompliance retourne la conformité moyenne d'une semaine,
// avec le détail jour par jour
func GetWeeklyCompliance(w http.ResponseWriter, r *http.Request) {
	tracker, ok := currentTracker(w, r)
	if !ok {
		return
	}

	weekStart := mux.Vars(r)["weekStart"]
	weekDates, err := period.WeekDates(weekStart)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid week start, expected YYYY-MM-DD")
		return
	}

	snap := compliance.SnapshotOf(tracker.State())

	days := make([]compliance.DailySummary, 0, len(weekDates))
	for _, date := range weekDates {
		days = append(days, compliance.DailyCompliance(snap, date))
	}
	overall := compliance.WeeklyCompliance(snap, weekDates)

	utils.Success(w, map[string]interface{}{
		"weekStart":  weekStart,
		"days":       days,
		"percentage": overall,
		"status":     compliance.StatusLabel(overall),
	})
}
