package handler

import (
	"net/http"

	"github.com/mokobill/MedTrack/internal/utils"
)

type permissionRequest struct {
	Granted bool `json:"granted"`
}

// SetNotificationPermission enregistre le résultat de la demande de
// permission côté client. Refusée : les rappels sont silencieusement
// abandonnés.
func SetNotificationPermission(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentTracker(w, r); !ok {
		return
	}

	var req permissionRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	notifier.SetPermission(req.Granted)
	utils.Success(w, map[string]interface{}{"granted": req.Granted})
}

// ScheduleNotifications (re)planifie les rappels de l'utilisateur
func ScheduleNotifications(w http.ResponseWriter, r *http.Request) {
	tracker, ok := currentTracker(w, r)
	if !ok {
		return
	}

	notifier.ScheduleAll(tracker.State().Settings, tracker.State().FoodItems)
	utils.Success(w, map[string]interface{}{"scheduled": notifier.Pending()})
}

// CancelNotifications annule tous les rappels planifiés
func CancelNotifications(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentTracker(w, r); !ok {
		return
	}

	notifier.CancelAll()
	utils.Message(w, "all scheduled reminders cleared")
}
