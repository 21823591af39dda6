package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV encode la feuille de synthèse du rapport : une ligne par
// utilisateur avec ses conformités de la semaine. La génération xlsx de
// l'application d'origine est hors périmètre ici.
func (r *WeeklyReport) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{
		"Username", "Display Name", "Week Start", "Week End", "Days Tracked",
		"Daily Compliance %", "Weekly Compliance %", "Exercise Compliance %", "Overall Compliance %",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, user := range r.Users {
		row := []string{
			user.Username,
			user.DisplayName,
			user.WeekStart,
			user.WeekEnd,
			fmt.Sprintf("%d", user.Summary.TotalDaysTracked),
			fmt.Sprintf("%.2f", user.Summary.AverageDailyCompliance),
			fmt.Sprintf("%.2f", user.Summary.AverageWeeklyCompliance),
			fmt.Sprintf("%.2f", user.Summary.AverageExerciseCompliance),
			fmt.Sprintf("%.2f", user.Summary.OverallCompliance),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Filename retourne le nom de fichier du rapport
func (r *WeeklyReport) Filename() string {
	return fmt.Sprintf("MediterraneanDiet-WeeklyReport-%s-%s.csv",
		r.WeekStart, r.GeneratedAt.Format("20060102-1504"))
}
