package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mokobill/MedTrack/internal/period"
	"github.com/mokobill/MedTrack/internal/utils"
)

type startWorkoutRequest struct {
	ExerciseID string `json:"exerciseId"`
	Date       string `json:"date,omitempty"`
}

// StartWorkout ouvre une session d'entraînement pour un exercice du
// catalogue (date du jour par défaut)
func StartWorkout(w http.ResponseWriter, r *http.Request) {
	tracker, ok := currentTracker(w, r)
	if !ok {
		return
	}

	var req startWorkoutRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Date == "" {
		req.Date = period.CurrentDateKey()
	}

	session, err := tracker.StartWorkout(r.Context(), req.ExerciseID, req.Date)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.Success(w, session)
}

type addSetRequest struct {
	Weight float64 `json:"weight,omitempty"`
	Reps   int     `json:"reps"`
	Notes  string  `json:"notes,omitempty"`
}

// AddWorkoutSet ajoute une série à une session ouverte
func AddWorkoutSet(w http.ResponseWriter, r *http.Request) {
	tracker, ok := currentTracker(w, r)
	if !ok {
		return
	}

	var req addSetRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Reps <= 0 {
		utils.Error(w, http.StatusBadRequest, "reps must be positive")
		return
	}

	set, err := tracker.AddSet(r.Context(), mux.Vars(r)["sessionId"], req.Weight, req.Reps, req.Notes)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.Success(w, set)
}

// CompleteWorkoutSet marque une série comme effectuée
func CompleteWorkoutSet(w http.ResponseWriter, r *http.Request) {
	tracker, ok := currentTracker(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	if err := tracker.CompleteSet(r.Context(), vars["sessionId"], vars["setId"]); err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}

	utils.Message(w, "set completed")
}

type finishWorkoutRequest struct {
	Duration int `json:"duration,omitempty"` // en minutes
}

// FinishWorkout clôt une session et fige son volume total
func FinishWorkout(w http.ResponseWriter, r *http.Request) {
	tracker, ok := currentTracker(w, r)
	if !ok {
		return
	}

	var req finishWorkoutRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	session, err := tracker.FinishWorkout(r.Context(), mux.Vars(r)["sessionId"], req.Duration)
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}

	utils.Success(w, session)
}

// GetWorkouts liste les sessions d'une date (date du jour par défaut)
func GetWorkouts(w http.ResponseWriter, r *http.Request) {
	tracker, ok := currentTracker(w, r)
	if !ok {
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = period.CurrentDateKey()
	}

	sessions := tracker.WorkoutsForDate(date)

	var totalVolume float64
	totalSets := 0
	for _, s := range sessions {
		totalVolume += s.TotalVolume
		totalSets += len(s.Sets)
	}

	utils.Success(w, map[string]interface{}{
		"date":        date,
		"sessions":    sessions,
		"totalSets":   totalSets,
		"totalVolume": totalVolume,
	})
}
