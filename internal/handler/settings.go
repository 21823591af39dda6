package handler

import (
	"net/http"

	model "github.com/mokobill/MedTrack/internal/models"
	"github.com/mokobill/MedTrack/internal/utils"
)

// GetSettings retourne les réglages de l'utilisateur
func GetSettings(w http.ResponseWriter, r *http.Request) {
	tracker, ok := currentTracker(w, r)
	if !ok {
		return
	}
	utils.Success(w, tracker.State().Settings)
}

// UpdateSettings remplace les réglages et replanifie (ou annule) les
// rappels selon la préférence de notification
func UpdateSettings(w http.ResponseWriter, r *http.Request) {
	tracker, ok := currentTracker(w, r)
	if !ok {
		return
	}

	var settings model.UserSettings
	if err := utils.DecodeJSON(r, &settings); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := tracker.UpdateSettings(r.Context(), settings); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save settings: "+err.Error())
		return
	}

	if settings.Notifications.Enabled {
		notifier.ScheduleAll(tracker.State().Settings, tracker.State().FoodItems)
	} else {
		notifier.CancelAll()
	}

	utils.Success(w, tracker.State().Settings)
}
