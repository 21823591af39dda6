// Package export construit le rapport de conformité multi-utilisateurs
// d'une semaine en rejouant le moteur de conformité sur l'état de chaque
// utilisateur du roster. Un utilisateur sans données apparaît avec des
// chiffres à zéro, jamais omis.
package export

import (
	"context"
	"math"
	"time"

	"github.com/mokobill/MedTrack/internal/auth"
	"github.com/mokobill/MedTrack/internal/compliance"
	model "github.com/mokobill/MedTrack/internal/models"
	"github.com/mokobill/MedTrack/internal/period"
	"github.com/mokobill/MedTrack/internal/store"
)

// DailyRow détaille les items journaliers d'une date pour un utilisateur
type DailyRow struct {
	Date           string         `json:"date"`
	Counts         map[string]int `json:"counts"`
	GoalsCompleted int            `json:"goalsCompleted"`
	GoalsTotal     int            `json:"goalsTotal"`
	Compliance     float64        `json:"compliance"`
}

// WeeklyRow détaille les items hebdomadaires de la semaine
type WeeklyRow struct {
	WeekStart      string         `json:"weekStart"`
	Counts         map[string]int `json:"counts"`
	GoalsCompleted int            `json:"goalsCompleted"`
	GoalsTotal     int            `json:"goalsTotal"`
	Compliance     float64        `json:"compliance"`
}

// ExerciseRow détaille la progression des objectifs d'exercice
type ExerciseRow struct {
	WeekStart      string         `json:"weekStart"`
	Completed      map[string]int `json:"completed"`
	GoalsCompleted int            `json:"goalsCompleted"`
	GoalsTotal     int            `json:"goalsTotal"`
	Compliance     float64        `json:"compliance"`
}

// UserSummary agrège les conformités d'un utilisateur sur la semaine.
// Overall est la moyenne non pondérée des trois conformités.
type UserSummary struct {
	TotalDaysTracked          int     `json:"totalDaysTracked"`
	AverageDailyCompliance    float64 `json:"averageDailyCompliance"`
	AverageWeeklyCompliance   float64 `json:"averageWeeklyCompliance"`
	AverageExerciseCompliance float64 `json:"averageExerciseCompliance"`
	OverallCompliance         float64 `json:"overallCompliance"`
}

// UserReport est la ligne complète d'un utilisateur dans le rapport
type UserReport struct {
	Username    string      `json:"username"`
	DisplayName string      `json:"displayName"`
	WeekStart   string      `json:"weekStart"`
	WeekEnd     string      `json:"weekEnd"`
	Daily       []DailyRow  `json:"daily"`
	Weekly      WeeklyRow   `json:"weekly"`
	Exercise    ExerciseRow `json:"exercise"`
	Summary     UserSummary `json:"summary"`
}

// WeeklyReport est le rapport tabulaire complet d'une semaine
type WeeklyReport struct {
	WeekStart   string       `json:"weekStart"`
	WeekEnd     string       `json:"weekEnd"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Users       []UserReport `json:"users"`
}

// BuildWeeklyReport rejoue la conformité de chaque utilisateur du roster
// sur les 7 dates de la semaine commençant à weekStart
func BuildWeeklyReport(ctx context.Context, st store.Store, weekStart string) (*WeeklyReport, error) {
	weekDates, err := period.WeekDates(weekStart)
	if err != nil {
		return nil, err
	}

	report := &WeeklyReport{
		WeekStart:   weekDates[0],
		WeekEnd:     weekDates[6],
		GeneratedAt: time.Now(),
	}

	for _, cred := range auth.Roster() {
		state := st.Load(ctx, cred.Username)
		report.Users = append(report.Users, buildUserReport(cred.Username, state, weekDates))
	}

	return report, nil
}

func buildUserReport(username string, state *model.UserState, weekDates []string) UserReport {
	snap := compliance.SnapshotOf(state)
	weekStart := weekDates[0]

	user := UserReport{
		Username:    username,
		DisplayName: state.Settings.Name,
		WeekStart:   weekStart,
		WeekEnd:     weekDates[6],
	}
	if user.DisplayName == "" {
		user.DisplayName = auth.DisplayName(username)
	}

	var dailySum float64
	daysTracked := 0
	for _, date := range weekDates {
		row := DailyRow{Date: date, Counts: map[string]int{}}
		tracked := false
		for _, item := range snap.FoodItems {
			if item.TrackingPeriod != model.PeriodDaily {
				continue
			}
			count := snap.FoodCount(item, date)
			row.Counts[item.ID] = count
			if count > 0 {
				tracked = true
			}
		}
		row.GoalsCompleted, row.GoalsTotal, row.Compliance = compliance.DailyItemsCompliance(snap, date)
		row.Compliance = round2(row.Compliance)
		if tracked {
			daysTracked++
		}
		dailySum += row.Compliance
		user.Daily = append(user.Daily, row)
	}

	weekly := WeeklyRow{WeekStart: weekStart, Counts: map[string]int{}}
	for _, item := range snap.FoodItems {
		if item.TrackingPeriod != model.PeriodWeekly {
			continue
		}
		count := 0
		if rec, ok := snap.WeeklyTracking[weekStart]; ok {
			count = rec.Items[item.ID]
		}
		weekly.Counts[item.ID] = count
	}
	weekly.GoalsCompleted, weekly.GoalsTotal, weekly.Compliance = compliance.WeeklyItemsCompliance(snap, weekStart)
	weekly.Compliance = round2(weekly.Compliance)
	user.Weekly = weekly

	exercise := ExerciseRow{WeekStart: weekStart, Completed: map[string]int{}}
	for _, item := range snap.ExerciseItems {
		exercise.Completed[item.ID] = item.Completed
	}
	exercise.GoalsCompleted, exercise.GoalsTotal, exercise.Compliance = compliance.ExerciseCompliance(snap)
	exercise.Compliance = round2(exercise.Compliance)
	user.Exercise = exercise

	avgDaily := round2(dailySum / float64(len(weekDates)))
	user.Summary = UserSummary{
		TotalDaysTracked:          daysTracked,
		AverageDailyCompliance:    avgDaily,
		AverageWeeklyCompliance:   weekly.Compliance,
		AverageExerciseCompliance: exercise.Compliance,
		OverallCompliance:         round2((avgDaily + weekly.Compliance + exercise.Compliance) / 3),
	}

	return user
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
