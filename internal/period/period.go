// Package period dérive les identifiants calendaires du suivi : clé de
// date (YYYY-MM-DD), lundi de la semaine courante et détection de
// franchissement de période. Fonctions totales, heure locale.
package period

import (
	"fmt"
	"time"
)

// KeyLayout est le format des clés de date et de début de semaine
const KeyLayout = "2006-01-02"

// DateKey formate un instant en clé de date locale
func DateKey(t time.Time) string {
	return t.Format(KeyLayout)
}

// CurrentDateKey retourne la clé de la date du jour
func CurrentDateKey() string {
	return DateKey(time.Now())
}

// WeekStart retourne le lundi 00:00 de la semaine contenant ref
func WeekStart(ref time.Time) time.Time {
	weekday := int(ref.Weekday())
	if weekday == 0 {
		weekday = 7 // dimanche
	}
	monday := ref.AddDate(0, 0, -(weekday - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, monday.Location())
}

// WeekStartKey retourne la clé du lundi de la semaine contenant ref
func WeekStartKey(ref time.Time) string {
	return DateKey(WeekStart(ref))
}

// CurrentWeekStartKey retourne la clé du lundi de la semaine courante
func CurrentWeekStartKey() string {
	return WeekStartKey(time.Now())
}

// WeekStartKeyFor retourne le lundi de la semaine contenant une clé de date
func WeekStartKeyFor(dateKey string) (string, error) {
	t, err := time.ParseInLocation(KeyLayout, dateKey, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date key %q: %w", dateKey, err)
	}
	return WeekStartKey(t), nil
}

// WeekDates retourne les 7 clés de dates de la semaine commençant à weekStart
func WeekDates(weekStart string) ([]string, error) {
	start, err := time.ParseInLocation(KeyLayout, weekStart, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid week start %q: %w", weekStart, err)
	}
	dates := make([]string, 7)
	for i := 0; i < 7; i++ {
		dates[i] = DateKey(start.AddDate(0, 0, i))
	}
	return dates, nil
}

// HasWeekRolledOver indique si la semaine courante diffère de la
// dernière semaine connue. Déclenche le reset hebdomadaire côté appelant.
func HasWeekRolledOver(lastKnownWeekStart string) bool {
	return CurrentWeekStartKey() != lastKnownWeekStart
}

// HasDateRolledOver indique si la date courante diffère de la dernière
// date connue. Informatif : les enregistrements journaliers ne sont
// jamais supprimés, seulement créés.
func HasDateRolledOver(lastKnownDate string) bool {
	return CurrentDateKey() != lastKnownDate
}

// DisplayDate formate une clé de date pour affichage ("Monday, January 2")
func DisplayDate(dateKey string) string {
	t, err := time.ParseInLocation(KeyLayout, dateKey, time.Local)
	if err != nil {
		return dateKey
	}
	return t.Format("Monday, January 2")
}
