package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/mokobill/MedTrack/internal/database"
	"github.com/mokobill/MedTrack/internal/middleware"
	"github.com/mokobill/MedTrack/internal/period"
	"github.com/mokobill/MedTrack/internal/utils"
)

// trackAppAccess incrémente le compteur d'accès du jour pour un
// utilisateur (une ligne par utilisateur et par date)
func trackAppAccess(ctx context.Context, username string) error {
	_, err := database.DB.Exec(ctx,
		`INSERT INTO app_access_logs(user_identifier, access_date, access_count, last_accessed_at)
		 VALUES($1, $2, 1, NOW())
		 ON CONFLICT (user_identifier, access_date) DO UPDATE
		 SET access_count = app_access_logs.access_count + 1,
		     last_accessed_at = NOW(),
		     updated_at = NOW()`,
		username, period.CurrentDateKey(),
	)
	return err
}

// TrackAccess journalise explicitement un accès applicatif
func TrackAccess(w http.ResponseWriter, r *http.Request) {
	username, err := middleware.GetUsernameFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	if err := trackAppAccess(r.Context(), username); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not track access: "+err.Error())
		return
	}

	utils.Message(w, "access tracked")
}

// GetAccessStats retourne les compteurs d'accès de l'utilisateur sur un
// intervalle de dates (semaine courante par défaut)
func GetAccessStats(w http.ResponseWriter, r *http.Request) {
	username, err := middleware.GetUsernameFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		weekDates, _ := period.WeekDates(period.CurrentWeekStartKey())
		start, end = weekDates[0], weekDates[6]
	}

	rows, err := database.DB.Query(r.Context(),
		`SELECT access_date, access_count, last_accessed_at
		 FROM app_access_logs
		 WHERE user_identifier=$1 AND access_date >= $2 AND access_date <= $3
		 ORDER BY access_date`,
		username, start, end,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load access stats: "+err.Error())
		return
	}
	defer rows.Close()

	type accessStat struct {
		AccessDate     time.Time `json:"accessDate"`
		AccessCount    int       `json:"accessCount"`
		LastAccessedAt time.Time `json:"lastAccessedAt"`
	}
	stats := []accessStat{}
	total := 0
	for rows.Next() {
		var s accessStat
		if err := rows.Scan(&s.AccessDate, &s.AccessCount, &s.LastAccessedAt); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan access stats: "+err.Error())
			return
		}
		total += s.AccessCount
		stats = append(stats, s)
	}

	utils.Success(w, map[string]interface{}{
		"start": start,
		"end":   end,
		"stats": stats,
		"total": total,
	})
}
