package handler

import (
	"fmt"
	"net/http"

	"github.com/mokobill/MedTrack/internal/export"
	"github.com/mokobill/MedTrack/internal/middleware"
	"github.com/mokobill/MedTrack/internal/period"
	"github.com/mokobill/MedTrack/internal/utils"
)

// ExportWeeklyReport construit le rapport de conformité de tous les
// utilisateurs du roster pour une semaine. Réservé à l'administrateur.
// ?weekStart=YYYY-MM-DD choisit la semaine (courante par défaut),
// ?format=csv renvoie la feuille de synthèse au lieu du JSON.
func ExportWeeklyReport(w http.ResponseWriter, r *http.Request) {
	username, err := middleware.GetUsernameFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context")
		return
	}
	if username != "admin" {
		utils.Error(w, http.StatusForbidden, "export is restricted to the administrator")
		return
	}

	weekStart := r.URL.Query().Get("weekStart")
	if weekStart == "" {
		weekStart = period.CurrentWeekStartKey()
	} else if parsed, err := period.WeekStartKeyFor(weekStart); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid week start, expected YYYY-MM-DD")
		return
	} else {
		// Normaliser sur le lundi de la semaine demandée
		weekStart = parsed
	}

	report, err := export.BuildWeeklyReport(r.Context(), appStore, weekStart)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not build report: "+err.Error())
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename()))
		if err := report.WriteCSV(w); err != nil {
			utils.LogError("writing CSV report: %v", err)
		}
		return
	}

	utils.Success(w, report)
}
